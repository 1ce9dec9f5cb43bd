package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/services"
)

// fieldKeys returns the form field names for the current mode, in display
// order. The names double as keys in the validation error map.
func (m *Model) fieldKeys() []string {
	if m.mode == models.ModeSignup {
		return []string{"name", "email", "password", "confirmPassword"}
	}
	return []string{"email", "password"}
}

func (m *Model) resetForm() {
	keys := m.fieldKeys()
	m.fields = make([]textinput.Model, len(keys))
	for i, name := range keys {
		ti := textinput.New()
		switch name {
		case "name":
			ti.Placeholder = "Name"
		case "email":
			ti.Placeholder = "Email"
		case "password":
			ti.Placeholder = "Password"
			ti.EchoMode = textinput.EchoPassword
		case "confirmPassword":
			ti.Placeholder = "Confirm password"
			ti.EchoMode = textinput.EchoPassword
		}
		m.fields[i] = ti
	}
	m.focused = 0
	m.fields[0].Focus()
	m.form = models.AuthForm{}
	m.formErrors = nil
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.tab):
		m.fields[m.focused].Blur()
		m.focused = (m.focused + 1) % len(m.fields)
		return m, m.fields[m.focused].Focus()
	case key.Matches(msg, m.keys.enter):
		if m.focused < len(m.fields)-1 {
			m.fields[m.focused].Blur()
			m.focused++
			return m, m.fields[m.focused].Focus()
		}
		return m.submitForm()
	}

	if msg.String() == "ctrl+t" {
		if m.mode == models.ModeLogin {
			m.mode = models.ModeSignup
		} else {
			m.mode = models.ModeLogin
		}
		m.resetForm()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.fields[m.focused], cmd = m.fields[m.focused].Update(msg)
	return m, cmd
}

// submitForm validates locally before any request leaves the client. A form
// with errors never reaches the gateway.
func (m *Model) submitForm() (tea.Model, tea.Cmd) {
	form := models.AuthForm{}
	for i, name := range m.fieldKeys() {
		value := strings.TrimSpace(m.fields[i].Value())
		switch name {
		case "name":
			form.Name = value
		case "email":
			form.Email = value
		case "password":
			form.Password = m.fields[i].Value()
		case "confirmPassword":
			form.ConfirmPassword = m.fields[i].Value()
		}
	}

	if errs := form.Validate(m.mode); len(errs) > 0 {
		m.formErrors = errs
		return m, nil
	}

	m.form = form
	m.formErrors = nil
	m.status = "Signing in..."
	mode := m.mode
	return m, func() tea.Msg {
		var result *services.AuthResult
		var err error
		if mode == models.ModeSignup {
			result, err = m.auth.Signup(m.ctx, form.Name, form.Email, form.Password, form.ConfirmPassword)
		} else {
			result, err = m.auth.Login(m.ctx, form.Email, form.Password)
		}
		return authCompletedMsg{result: result, err: err}
	}
}

func (m *Model) handleAuthCompleted(msg authCompletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.status = services.UserMessage(msg.err)
		return m, nil
	}

	if err := m.sess.Login(msg.result.Token, msg.result.User); err != nil {
		m.status = fmt.Sprintf("Failed to save session: %v", err)
		return m, nil
	}

	m.status = ""
	m.err = nil
	m.view = SearchView
	return m, textinput.Blink
}

func (m *Model) renderLogin() string {
	heading := "Sign In"
	toggle := "ctrl+t to create an account"
	if m.mode == models.ModeSignup {
		heading = "Create Account"
		toggle = "ctrl+t to sign in instead"
	}
	title := styles.title.Render(heading)

	var b strings.Builder
	for i, name := range m.fieldKeys() {
		b.WriteString(m.fields[i].View())
		if msg, ok := m.formErrors[name]; ok {
			b.WriteString("\n  " + styles.err.Render(msg))
		}
		b.WriteString("\n")
	}

	var status string
	if m.status != "" {
		status = styles.warn.Render(m.status) + "\n"
	}

	helpKeys := []key.Binding{m.keys.tab, m.keys.enter, m.keys.quit}
	return fmt.Sprintf(
		"%s\n%s\n%s%s\n\n%s",
		title, b.String(), status, styles.help.Render(toggle), m.help.ShortHelpView(helpKeys),
	)
}
