// Terminal client for the employee data-collection form. Follows The
// Elm Architecture: all state lives in App, messages drive Update, View
// renders the current screen.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Devendra616/collectEmpData-sub000/internal/formflow"
)

// appState is the current screen.
type appState int

const (
	stateLogin appState = iota
	stateSection
	stateReview
)

const requestTimeout = 15 * time.Second

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	labelStyle  = lipgloss.NewStyle().Width(22).Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
)

// messages

type loginDoneMsg struct {
	session *formflow.Session
	err     error
}

type sectionLoadedMsg struct {
	raw json.RawMessage
	err error
}

type saveDoneMsg struct {
	advance bool
	err     error
}

type submitDoneMsg struct{ err error }

// App holds all TUI state.
type App struct {
	serverURL string
	client    *formflow.Client
	session   *formflow.Session
	machine   *formflow.Machine

	state  appState
	inputs []textinput.Model
	focus  int

	status    string
	errMsg    string
	fieldErrs map[string]string

	width, height int
}

// NewApp creates the TUI over the given API base URL.
func NewApp(serverURL string) *App {
	a := &App{
		serverURL: serverURL,
		client:    formflow.NewClient(serverURL),
		state:     stateLogin,
	}
	a.setLoginInputs()
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

func (a *App) setLoginInputs() {
	sapID := textinput.New()
	sapID.Placeholder = "8-digit SAP ID"
	sapID.CharLimit = 8
	sapID.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword

	a.inputs = []textinput.Model{sapID, password}
	a.focus = 0
}

func (a *App) setSectionInputs(form sectionForm, values []string) {
	inputs := make([]textinput.Model, len(form.fields))
	for i, f := range form.fields {
		in := textinput.New()
		in.Placeholder = f.placeholder
		in.Cursor.Style = cursorStyle
		if i < len(values) {
			in.SetValue(values[i])
		}
		if i == 0 {
			in.Focus()
		}
		inputs[i] = in
	}
	a.inputs = inputs
	a.focus = 0
}

func (a *App) values() []string {
	out := make([]string, len(a.inputs))
	for i := range a.inputs {
		out[i] = a.inputs[i].Value()
	}
	return out
}

func (a *App) setFocus(idx int) tea.Cmd {
	if len(a.inputs) == 0 {
		return nil
	}
	if idx < 0 {
		idx = len(a.inputs) - 1
	}
	idx %= len(a.inputs)

	var cmd tea.Cmd
	for i := range a.inputs {
		if i == idx {
			cmd = a.inputs[i].Focus()
		} else {
			a.inputs[i].Blur()
		}
	}
	a.focus = idx
	return cmd
}

// ── commands ──

func (a *App) loginCmd(sapID, password string) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		sess, err := client.Login(ctx, sapID, password)
		return loginDoneMsg{session: sess, err: err}
	}
}

func (a *App) loadSectionCmd() tea.Cmd {
	m := a.machine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		raw, err := m.LoadSection(ctx)
		return sectionLoadedMsg{raw: raw, err: err}
	}
}

func (a *App) saveCmd(payload interface{}, advance bool) tea.Cmd {
	m := a.machine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		var err error
		if advance {
			err = m.Advance(ctx, payload)
		} else {
			err = m.SaveDraft(ctx, payload)
		}
		return saveDoneMsg{advance: advance, err: err}
	}
}

func (a *App) submitCmd() tea.Cmd {
	m := a.machine
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return submitDoneMsg{err: m.FinalSubmit(ctx)}
	}
}

// ── update ──

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, nil

	case loginDoneMsg:
		if msg.err != nil {
			a.errMsg = loginErrorText(msg.err)
			return a, nil
		}
		a.session = msg.session
		a.machine = formflow.NewMachine(a.client, a.session)
		a.state = stateSection
		a.errMsg = ""
		a.status = "loading..."
		return a, a.loadSectionCmd()

	case sectionLoadedMsg:
		a.status = ""
		if msg.err != nil {
			a.errMsg = msg.err.Error()
		}
		form := forms[a.machine.Current()]
		a.setSectionInputs(form, form.fill(msg.raw))
		return a, nil

	case saveDoneMsg:
		return a.handleSaveDone(msg)

	case submitDoneMsg:
		if msg.err != nil {
			a.errMsg = msg.err.Error()
			return a, nil
		}
		a.errMsg = ""
		a.status = "form submitted, now read-only"
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, a.updateInputs(msg)
}

func (a *App) handleSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	a.status = ""
	a.fieldErrs = nil
	if msg.err != nil {
		var lerr *formflow.LocalValidationError
		var verr *formflow.ValidationFailedError
		switch {
		case errors.As(msg.err, &lerr):
			a.fieldErrs = lerr.Fields
			a.errMsg = "fix the highlighted fields"
		case errors.As(msg.err, &verr):
			a.fieldErrs = verr.Fields
			a.errMsg = "server rejected the payload"
		case errors.Is(msg.err, formflow.ErrReadOnly):
			a.errMsg = "form already submitted"
		default:
			a.errMsg = msg.err.Error()
		}
		return a, nil
	}

	a.errMsg = ""
	if !msg.advance {
		a.status = "draft saved"
		return a, nil
	}
	if a.machine.Current() == formflow.StepReview {
		a.state = stateReview
		return a, nil
	}
	a.status = "loading..."
	return a, a.loadSectionCmd()
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+q":
		return a, tea.Quit
	}

	switch a.state {
	case stateLogin:
		return a.handleLoginKey(msg)
	case stateSection:
		return a.handleSectionKey(msg)
	case stateReview:
		return a.handleReviewKey(msg)
	}
	return a, nil
}

func (a *App) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return a, a.setFocus(a.focus + 1)
	case "shift+tab", "up":
		return a, a.setFocus(a.focus - 1)
	case "enter":
		if a.focus < len(a.inputs)-1 {
			return a, a.setFocus(a.focus + 1)
		}
		a.status = "signing in..."
		return a, a.loginCmd(a.inputs[0].Value(), a.inputs[1].Value())
	}
	return a, a.updateInputs(msg)
}

func (a *App) handleSectionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down", "enter":
		return a, a.setFocus(a.focus + 1)
	case "shift+tab", "up":
		return a, a.setFocus(a.focus - 1)
	case "ctrl+s":
		return a.buildAndSave(false)
	case "ctrl+n":
		return a.buildAndSave(true)
	case "ctrl+b":
		if err := a.machine.Retreat(); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.status = "loading..."
		return a, a.loadSectionCmd()
	}
	return a, a.updateInputs(msg)
}

func (a *App) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "s":
		a.status = "submitting..."
		return a, a.submitCmd()
	case "ctrl+b", "b":
		if err := a.machine.Retreat(); err != nil {
			a.errMsg = err.Error()
			return a, nil
		}
		a.state = stateSection
		a.status = "loading..."
		return a, a.loadSectionCmd()
	}
	return a, nil
}

func (a *App) buildAndSave(advance bool) (tea.Model, tea.Cmd) {
	form := forms[a.machine.Current()]
	payload, err := form.build(a.values())
	if err != nil {
		a.errMsg = err.Error()
		return a, nil
	}
	a.status = "saving..."
	return a, a.saveCmd(payload, advance)
}

func (a *App) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(a.inputs))
	for i := range a.inputs {
		a.inputs[i], cmds[i] = a.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// ── view ──

// View implements tea.Model.
func (a *App) View() string {
	var b strings.Builder

	switch a.state {
	case stateLogin:
		b.WriteString(titleStyle.Render("Employee Data Collection - Sign In"))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("SAP ID") + a.inputs[0].View() + "\n")
		b.WriteString(labelStyle.Render("Password") + a.inputs[1].View() + "\n")
		b.WriteString("\n" + helpStyle.Render("enter: sign in · ctrl+q: quit") + "\n")

	case stateSection:
		form := forms[a.machine.Current()]
		header := form.title
		if a.machine.ReadOnly() {
			header += "  [read-only]"
		}
		b.WriteString(titleStyle.Render(header))
		b.WriteString("\n\n")
		for i, f := range form.fields {
			b.WriteString(labelStyle.Render(f.label) + a.inputs[i].View())
			if msg := a.fieldErrorFor(f.key, i); msg != "" {
				b.WriteString("  " + errorStyle.Render(msg))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n" + helpStyle.Render(
			"ctrl+n: save & next · ctrl+s: save draft · ctrl+b: back · ctrl+q: quit") + "\n")

	case stateReview:
		b.WriteString(titleStyle.Render("Review & Submit"))
		b.WriteString("\n\n")
		if a.machine.ReadOnly() {
			b.WriteString(okStyle.Render("Form submitted. Sections are read-only.") + "\n")
		} else {
			b.WriteString("All sections saved. Submission is final: after submitting,\n")
			b.WriteString("only an administrator can reopen the form.\n\n")
			b.WriteString(helpStyle.Render("s: submit · b: back · ctrl+q: quit") + "\n")
		}
	}

	if a.status != "" {
		b.WriteString("\n" + okStyle.Render(a.status))
	}
	if a.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(a.errMsg))
	}
	return b.String()
}

// fieldErrorFor matches a validation key to a screen field. Array
// sections come back index-qualified ("family[0].title"); the screen
// edits entry 0, so strip the prefix before matching.
func (a *App) fieldErrorFor(key string, _ int) string {
	if len(a.fieldErrs) == 0 {
		return ""
	}
	if msg, ok := a.fieldErrs[key]; ok {
		return msg
	}
	for k, msg := range a.fieldErrs {
		if idx := strings.Index(k, "]."); idx >= 0 && k[idx+2:] == key {
			return msg
		}
	}
	return ""
}

func loginErrorText(err error) string {
	if errors.Is(err, formflow.ErrUnauthorized) {
		return "invalid SAP ID or password"
	}
	var serr *formflow.StatusError
	if errors.As(err, &serr) {
		return serr.Message
	}
	return err.Error()
}
