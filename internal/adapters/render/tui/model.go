package tui

import (
	"context"
	"errors"
	"io"

	"github.com/bnema/fetchpad/internal/application"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedModel = errors.New("unexpected final bubbletea model type")

type Options struct {
	Input     io.Reader
	Output    io.Writer
	AltScreen bool
}

// Result reports how the user left the program.
type Result struct {
	Export bool
}

type model struct {
	ctx      context.Context
	session  *application.Session
	keys     keyMap
	styles   styles
	layout   layout
	content  viewport.Model
	selected string
	export   bool
}

func newModel(ctx context.Context, session *application.Session) model {
	l := newLayout(0, 0)
	m := model{
		ctx:     ctx,
		session: session,
		keys:    newKeyMap(),
		styles:  newStyles(),
		layout:  l,
		content: viewport.New(l.contentInnerW, l.contentRows),
	}
	m.syncContent()
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = newLayout(msg.Width, msg.Height)
		m.content.Width = m.layout.contentInnerW
		m.content.Height = m.layout.contentRows
		m.selected = ""
		m.syncContent()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ScrollUp):
		m.content.PageUp()
		return m, nil
	case key.Matches(msg, m.keys.ScrollDown):
		m.content.PageDown()
		return m, nil
	}

	for _, ev := range m.keys.decode(msg) {
		out := m.session.Handle(m.ctx, ev)
		if out.Quit {
			m.export = out.Export
			return m, tea.Quit
		}
	}

	m.syncContent()
	return m, nil
}

// syncContent reloads the content pane when the selected entry changed.
func (m *model) syncContent() {
	view := m.session.Snapshot()
	sig := ""
	if view.HistoryLen > 0 {
		sig = view.Keys[view.Selected] + "\x00" + view.SelectedValue
	}
	if sig == m.selected && sig != "" {
		return
	}

	m.selected = sig
	if view.HistoryLen == 0 {
		m.content.SetContent(m.styles.empty.Render("Press (E) and type a URL to send a GET request."))
	} else {
		m.content.SetContent(formatContent(view.SelectedValue, m.layout.contentInnerW, m.styles))
	}
	m.content.GotoTop()
}

func (m model) View() string {
	return renderView(m.session.Snapshot(), m.content.View(), m.layout, m.styles)
}

// Run drives session from the terminal until the user quits.
func Run(ctx context.Context, session *application.Session, opts Options) (Result, error) {
	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		programOpts = append(programOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	finalModel, err := tea.NewProgram(newModel(ctx, session), programOpts...).Run()
	if err != nil {
		return Result{}, err
	}

	final, ok := finalModel.(model)
	if !ok {
		return Result{}, ErrUnexpectedModel
	}

	return Result{Export: final.export}, nil
}
