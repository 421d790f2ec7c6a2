package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/fetchpad/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fetchFunc performs one request and returns what the history stored for it.
type fetchFunc func(ctx context.Context, url string) (domain.Entry, error)

type fetchedMsg struct {
	entry domain.Entry
	err   error
}

type fetchProgressModel struct {
	ctx     context.Context
	spinner spinner.Model
	ok      lipgloss.Style
	failed  lipgloss.Style
	urls    []string
	fetch   fetchFunc
	lines   []string
	err     error
	done    bool
}

func newFetchProgressModel(ctx context.Context, urls []string, fetch fetchFunc) fetchProgressModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return fetchProgressModel{
		ctx:     ctx,
		spinner: s,
		ok:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		urls:    urls,
		fetch:   fetch,
	}
}

func (m fetchProgressModel) Init() tea.Cmd {
	if len(m.urls) == 0 {
		return tea.Quit
	}
	return tea.Batch(m.spinner.Tick, m.fetchNext())
}

// fetchNext requests the first URL without a completion line.
func (m fetchProgressModel) fetchNext() tea.Cmd {
	ctx, fetch, url := m.ctx, m.fetch, m.urls[len(m.lines)]
	return func() tea.Msg {
		entry, err := fetch(ctx, url)
		return fetchedMsg{entry: entry, err: err}
	}
}

func (m fetchProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case fetchedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.done = true
			return m, tea.Quit
		}

		m.lines = append(m.lines, m.completionLine(msg.entry))
		if len(m.lines) == len(m.urls) {
			m.done = true
			return m, tea.Quit
		}
		return m, m.fetchNext()
	default:
		return m, nil
	}
}

func (m fetchProgressModel) completionLine(entry domain.Entry) string {
	if domain.IsErrorMarker(entry.Value) {
		return fmt.Sprintf("%s %s %s", m.failed.Render("✗"), entry.URL, entry.Value)
	}
	return fmt.Sprintf("%s %s (%d bytes)", m.ok.Render("✓"), entry.URL, len(entry.Value))
}

func (m fetchProgressModel) View() string {
	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if !m.done {
		current := len(m.lines)
		fmt.Fprintf(&b, "%s Fetching %s... (%d/%d)", m.spinner.View(), m.urls[current], current+1, len(m.urls))
	}

	return b.String()
}

// runFetchProgress fetches urls in order, reporting each result on output.
// It stops at the first error returned by fetch.
func runFetchProgress(ctx context.Context, output io.Writer, urls []string, fetch fetchFunc) error {
	p := tea.NewProgram(
		newFetchProgressModel(ctx, urls, fetch),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(fetchProgressModel)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.err
}
