package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/services"
	"github.com/Nox008/Movie-Search-App/internal/session"
	"github.com/Nox008/Movie-Search-App/internal/shared"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	SearchView ViewState = iota
	DetailView
	BookmarksView
	LoginView
	ProfileView
)

// detailTimeout bounds a single movie detail fetch.
const detailTimeout = 60 * time.Second

// Model represents the TUI application state.
type Model struct {
	ctx       context.Context
	view      ViewState
	movies    services.MovieService
	auth      services.AuthService
	bookmarks services.BookmarkService
	sess      *session.Session
	width     int
	height    int

	// search
	input      textinput.Model
	inputSeq   int
	querySeq   int
	searching  bool
	resultList list.Model
	results    []models.MovieSummary
	lastQuery  string

	// detail
	detail       *models.MovieDetail
	bookmarked   bool
	detailErr    error
	fetchingByID string

	// bookmarks
	bookmarkList  list.Model
	bookmarkItems []models.Bookmark
	sort          models.BookmarkSort

	// auth form
	form       models.AuthForm
	mode       models.AuthMode
	fields     []textinput.Model
	focused    int
	formErrors map[string]string

	status string
	err    error
	help   help.Model
	keys   keyMap
}

type debounceElapsedMsg struct {
	seq int
}

type searchResultMsg struct {
	seq     int
	query   string
	results []models.MovieSummary
	err     error
}

type detailFetchedMsg struct {
	id       string
	detail   *models.MovieDetail
	checked  bool
	checkErr error
	err      error
}

type bookmarksFetchedMsg struct {
	bookmarks []models.Bookmark
	err       error
}

type bookmarkToggledMsg struct {
	movieID string
	added   bool
	err     error
}

type authCompletedMsg struct {
	result *services.AuthResult
	err    error
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, movies services.MovieService, auth services.AuthService, bookmarks services.BookmarkService, sess *session.Session) *Model {
	m := &Model{
		ctx:       ctx,
		movies:    movies,
		auth:      auth,
		bookmarks: bookmarks,
		sess:      sess,
		sort:      models.SortNewest,
		mode:      models.ModeLogin,
		help:      help.New(),
		keys:      newKeyMap(),
	}

	m.input = textinput.New()
	m.input.Placeholder = "Search for movies..."
	m.input.Focus()
	m.resultList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.resultList.Title = "Results"
	m.resultList.SetShowHelp(false)
	m.bookmarkList = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.bookmarkList.Title = "Bookmarks"
	m.bookmarkList.SetShowHelp(false)

	if _, ok := sess.User(); ok {
		m.view = SearchView
	} else {
		m.view = LoginView
		m.resetForm()
	}
	return m
}

// Init starts the cursor blink for whichever input has focus.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resultList.SetSize(msg.Width-4, msg.Height-10)
		m.bookmarkList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		switch m.view {
		case SearchView:
			return m.handleSearchKeys(msg)
		case DetailView:
			return m.handleDetailKeys(msg)
		case BookmarksView:
			return m.handleBookmarkKeys(msg)
		case LoginView:
			return m.handleLoginKeys(msg)
		case ProfileView:
			return m.handleProfileKeys(msg)
		}

	case debounceElapsedMsg:
		return m.handleDebounce(msg)

	case searchResultMsg:
		return m.handleSearchResult(msg)

	case detailFetchedMsg:
		// A rejected token ends the session even when the fetch is stale.
		if m.sess.HandleAuthError(msg.checkErr) {
			return m.toLogin("Session expired, sign in again")
		}
		if msg.id != m.fetchingByID {
			return m, nil
		}
		m.detail = msg.detail
		m.bookmarked = msg.checked
		m.detailErr = msg.err
		return m, nil

	case bookmarksFetchedMsg:
		if msg.err != nil {
			if m.sess.HandleAuthError(msg.err) {
				return m.toLogin("Session expired, sign in again")
			}
			m.err = msg.err
			return m, nil
		}
		m.bookmarkItems = msg.bookmarks
		m.refreshBookmarkList()
		return m, nil

	case bookmarkToggledMsg:
		if msg.err != nil {
			if m.sess.HandleAuthError(msg.err) {
				return m.toLogin("Session expired, sign in again")
			}
			m.err = msg.err
			return m, nil
		}
		if m.view == DetailView && m.detail != nil && m.detail.ImdbID == msg.movieID {
			m.bookmarked = msg.added
		}
		if m.view == BookmarksView {
			return m, m.fetchBookmarks()
		}
		return m, nil

	case authCompletedMsg:
		return m.handleAuthCompleted(msg)
	}

	return m.updateActive(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case SearchView:
		return m.renderSearch()
	case DetailView:
		return m.renderDetail()
	case BookmarksView:
		return m.renderBookmarks()
	case LoginView:
		return m.renderLogin()
	case ProfileView:
		return m.renderProfile()
	default:
		return ""
	}
}

func (m *Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.view = SearchView
		m.detail = nil
		m.detailErr = nil
		// Discard any fetch still in flight for the abandoned detail.
		m.fetchingByID = ""
		return m, nil
	case key.Matches(msg, m.keys.bookmark):
		if m.detail != nil {
			return m, m.toggleBookmark(*m.detail, m.bookmarked)
		}
	}
	return m, nil
}

func (m *Model) handleBookmarkKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.bookmarkList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.bookmarkList, cmd = m.bookmarkList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.search):
		m.view = SearchView
		return m, nil
	case key.Matches(msg, m.keys.sort):
		m.sort = nextSort(m.sort)
		m.refreshBookmarkList()
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if item, ok := m.bookmarkList.SelectedItem().(bookmarkItem); ok {
			return m, m.removeBookmark(item.bookmark.MovieID)
		}
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if item, ok := m.bookmarkList.SelectedItem().(bookmarkItem); ok {
			m.view = DetailView
			m.detail = nil
			m.detailErr = nil
			m.fetchingByID = item.bookmark.MovieID
			return m, m.fetchDetail(item.bookmark.MovieID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.bookmarkList, cmd = m.bookmarkList.Update(msg)
	return m, cmd
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.search):
		m.view = SearchView
		return m, nil
	}
	return m, nil
}

func (m *Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case SearchView:
		m.resultList, cmd = m.resultList.Update(msg)
	case BookmarksView:
		m.bookmarkList, cmd = m.bookmarkList.Update(msg)
	}
	return m, cmd
}

func (m *Model) toLogin(status string) (tea.Model, tea.Cmd) {
	m.view = LoginView
	m.status = status
	m.resetForm()
	return m, textinput.Blink
}

func nextSort(s models.BookmarkSort) models.BookmarkSort {
	switch s {
	case models.SortNewest:
		return models.SortOldest
	case models.SortOldest:
		return models.SortTitle
	case models.SortTitle:
		return models.SortRating
	default:
		return models.SortNewest
	}
}

func (m *Model) refreshBookmarkList() {
	sorted := make([]models.Bookmark, len(m.bookmarkItems))
	copy(sorted, m.bookmarkItems)
	models.SortBookmarks(sorted, m.sort)
	items := make([]list.Item, len(sorted))
	for i, b := range sorted {
		items[i] = bookmarkItem{bookmark: b}
	}
	m.bookmarkList.SetItems(items)
	m.bookmarkList.Title = fmt.Sprintf("Bookmarks (%s)", m.sort)
}

func (m *Model) fetchDetail(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(m.ctx, detailTimeout)
		defer cancel()

		detail, err := m.movies.ByID(ctx, id)
		if err != nil {
			if errors.Is(ctx.Err(), context.DeadlineExceeded) {
				err = fmt.Errorf("%w: movie detail took longer than %s", shared.ErrTimeout, detailTimeout)
			}
			return detailFetchedMsg{id: id, err: err}
		}

		checked := false
		var checkErr error
		if _, ok := m.sess.User(); ok {
			checked, checkErr = m.bookmarks.CheckBookmark(ctx, id)
		}
		return detailFetchedMsg{id: id, detail: detail, checked: checked, checkErr: checkErr}
	}
}

func (m *Model) fetchBookmarks() tea.Cmd {
	return func() tea.Msg {
		bookmarks, err := m.bookmarks.Bookmarks(m.ctx)
		return bookmarksFetchedMsg{bookmarks: bookmarks, err: err}
	}
}

func (m *Model) toggleBookmark(detail models.MovieDetail, bookmarked bool) tea.Cmd {
	return func() tea.Msg {
		if bookmarked {
			err := m.bookmarks.RemoveBookmark(m.ctx, detail.ImdbID)
			return bookmarkToggledMsg{movieID: detail.ImdbID, added: false, err: err}
		}
		err := m.bookmarks.AddBookmark(m.ctx, models.BookmarkFromDetail(&detail))
		return bookmarkToggledMsg{movieID: detail.ImdbID, added: true, err: err}
	}
}

func (m *Model) removeBookmark(movieID string) tea.Cmd {
	return func() tea.Msg {
		err := m.bookmarks.RemoveBookmark(m.ctx, movieID)
		return bookmarkToggledMsg{movieID: movieID, added: false, err: err}
	}
}

func (m *Model) renderDetail() string {
	if m.detailErr != nil {
		if errors.Is(m.detailErr, shared.ErrTimeout) {
			return styles.err.Render("Request timed out. Press esc to go back and retry.")
		}
		if errors.Is(m.detailErr, shared.ErrMovieNotFound) {
			return styles.warn.Render("Movie not found.\n\nPress esc to go back.")
		}
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress esc to go back", m.detailErr))
	}
	if m.detail == nil {
		return styles.help.Render("Loading movie details...")
	}

	d := m.detail
	title := styles.title.Render(fmt.Sprintf("%s (%s)", d.Title, d.Year))

	mark := ""
	if m.bookmarked {
		mark = styles.ok.Render(" ✓ bookmarked")
	}

	body := fmt.Sprintf(
		"%s | %s | %s%s\n\n%s\n\nDirector: %s\nActors: %s\nRating: %s",
		d.Rated, d.Runtime, d.Genre, mark, d.Plot, d.Director, d.Actors, d.ImdbRating,
	)

	helpKeys := []key.Binding{m.keys.bookmark, m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n\n%s", title, body, m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderBookmarks() string {
	helpKeys := []key.Binding{m.keys.enter, m.keys.remove, m.keys.sort, m.keys.search, m.keys.quit}
	return fmt.Sprintf("%s\n\n%s", m.bookmarkList.View(), m.help.ShortHelpView(helpKeys))
}

func (m *Model) renderProfile() string {
	user, ok := m.sess.User()
	if !ok {
		return styles.warn.Render("Not signed in.\n\nPress esc to go back.")
	}

	title := styles.title.Render("Profile")
	body := fmt.Sprintf("Name: %s\nEmail: %s", user.Name, user.Email)
	if !user.CreatedAt.IsZero() {
		body += fmt.Sprintf("\nMember since: %s", user.CreatedAt.Format("Jan 2, 2006"))
	}

	helpKeys := []key.Binding{m.keys.back, m.keys.quit}
	return fmt.Sprintf("%s\n%s\n\n%s", title, body, m.help.ShortHelpView(helpKeys))
}
