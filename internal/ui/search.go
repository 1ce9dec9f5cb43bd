package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// minQueryLength gates provider requests so one or two keystrokes
	// never reach the network.
	minQueryLength = 3

	// debounceInterval coalesces keystrokes into a single request once
	// typing pauses.
	debounceInterval = 300 * time.Millisecond
)

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.library):
		m.view = BookmarksView
		return m, m.fetchBookmarks()
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.resultList.SelectedItem().(movieItem); ok {
			m.view = DetailView
			m.detail = nil
			m.detailErr = nil
			m.fetchingByID = item.movie.ImdbID
			return m, m.fetchDetail(item.movie.ImdbID)
		}
		return m, nil
	// Arrow keys only here. The letter aliases (j/k) belong to the
	// text input while the search box has focus.
	case msg.Type == tea.KeyUp, msg.Type == tea.KeyDown:
		var cmd tea.Cmd
		m.resultList, cmd = m.resultList.Update(msg)
		return m, cmd
	}

	if msg.String() == "ctrl+p" {
		m.view = ProfileView
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() == before {
		return m, cmd
	}

	m.inputSeq++
	query := strings.TrimSpace(m.input.Value())
	if len(query) < minQueryLength {
		m.results = nil
		m.searching = false
		m.resultList.SetItems(nil)
		return m, cmd
	}

	seq := m.inputSeq
	return m, tea.Batch(cmd, tea.Tick(debounceInterval, func(time.Time) tea.Msg {
		return debounceElapsedMsg{seq: seq}
	}))
}

// handleDebounce fires a provider request only for the newest pending
// keystroke. Ticks scheduled by earlier keystrokes arrive with a stale
// sequence number and are dropped.
func (m *Model) handleDebounce(msg debounceElapsedMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.inputSeq {
		return m, nil
	}

	query := strings.TrimSpace(m.input.Value())
	if len(query) < minQueryLength {
		return m, nil
	}

	m.querySeq++
	m.searching = true
	return m, m.doSearch(query, m.querySeq)
}

// handleSearchResult applies a response only when it answers the newest
// dispatched query, so a slow response for an old query can never
// overwrite fresher results.
func (m *Model) handleSearchResult(msg searchResultMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.querySeq {
		return m, nil
	}

	m.searching = false
	if msg.err != nil {
		m.err = msg.err
		m.results = nil
		m.resultList.SetItems(nil)
		return m, nil
	}

	m.err = nil
	m.lastQuery = msg.query
	m.results = msg.results
	items := make([]list.Item, len(msg.results))
	for i, mv := range msg.results {
		items[i] = movieItem{movie: mv}
	}
	m.resultList.SetItems(items)
	return m, nil
}

func (m *Model) doSearch(query string, seq int) tea.Cmd {
	return func() tea.Msg {
		results, err := m.movies.Search(m.ctx, query)
		return searchResultMsg{seq: seq, query: query, results: results, err: err}
	}
}

func (m *Model) renderSearch() string {
	title := styles.title.Render("Movie Search")

	var status string
	switch {
	case m.err != nil:
		status = styles.err.Render(fmt.Sprintf("Error: %v", m.err))
	case m.searching:
		status = styles.help.Render("Searching...")
	case len(strings.TrimSpace(m.input.Value())) > 0 && len(strings.TrimSpace(m.input.Value())) < minQueryLength:
		status = styles.help.Render("Keep typing, searches start at 3 characters")
	case m.lastQuery != "" && len(m.results) == 0:
		status = styles.warn.Render(fmt.Sprintf("No movies found for %q", m.lastQuery))
	}

	helpKeys := []key.Binding{m.keys.enter, m.keys.library, m.keys.quit}
	return fmt.Sprintf(
		"%s\n%s\n%s\n\n%s\n\n%s",
		title, m.input.View(), status, m.resultList.View(), m.help.ShortHelpView(helpKeys),
	)
}
