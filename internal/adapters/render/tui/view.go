package tui

import (
	"fmt"
	"strings"

	"github.com/bnema/fetchpad/internal/application"
	"github.com/bnema/fetchpad/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	minWidth      = 40
	minHeight     = 14

	headerHeight = 5
	footerHeight = 3

	appTitle    = "fetchpad"
	appSubtitle = "ad-hoc HTTP GET scratchpad"
)

// layout holds the outer sizes of every region for a terminal of width x height.
type layout struct {
	width         int
	height        int
	listWidth     int
	contentWidth  int
	panelHeight   int
	listRows      int
	contentRows   int
	contentInnerW int
}

func newLayout(width, height int) layout {
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	width = max(width, minWidth)
	height = max(height, minHeight)

	l := layout{width: width, height: height}
	l.listWidth = width * 2 / 5
	l.contentWidth = width - l.listWidth
	l.panelHeight = height - headerHeight - footerHeight
	// border (2) + title line + move hint line
	l.listRows = l.panelHeight - 4
	// border (2) + title line
	l.contentRows = l.panelHeight - 3
	l.contentInnerW = l.contentWidth - 2
	return l
}

func renderView(v application.View, content string, l layout, s styles) string {
	switch v.Screen {
	case domain.ScreenConfirmExit:
		return renderPopup(l, s, "Export", "Export request history and quit? (y/n)")
	case domain.ScreenConfirmClear:
		return renderPopup(l, s, "Clear Request History", "(Y) to confirm / (N) to cancel")
	}

	middle := lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderHistory(v, l, s),
		renderContent(content, l, s),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		renderHeader(v, l, s),
		middle,
		renderFooter(v, l, s),
	)
}

func renderHeader(v application.View, l layout, s styles) string {
	lines := []string{
		s.title.Render(appTitle),
		s.subtitle.Render(appSubtitle),
		s.hint.Render(navigationHint(v.Screen)),
	}

	return s.panel.
		Width(l.width - 2).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func navigationHint(screen domain.Screen) string {
	switch screen {
	case domain.ScreenMain:
		return "(E) to edit / (Q) to quit / (C) to clear history"
	case domain.ScreenEditing:
		return "Editing Mode - (ESC) to cancel / (ENTER) to complete"
	case domain.ScreenConfirmExit:
		return "Exiting"
	case domain.ScreenConfirmClear:
		return "Clearing history - (Y) to confirm / (N) to cancel"
	default:
		return ""
	}
}

func renderHistory(v application.View, l layout, s styles) string {
	inner := l.listWidth - 2
	lines := []string{s.panelTitle.Render(centerText("Request History", inner))}

	if len(v.Keys) == 0 {
		lines = append(lines, s.empty.Render(truncate("No requests yet.", inner)))
	}

	start, end := visibleWindow(len(v.Keys), v.Selected, l.listRows)
	for i := start; i < end; i++ {
		label := runewidth.FillRight(truncate(v.Keys[i], inner), inner)
		if i == v.Selected {
			lines = append(lines, s.selected.Render(label))
			continue
		}
		lines = append(lines, s.item.Render(label))
	}

	for len(lines) < l.listRows+1 {
		lines = append(lines, "")
	}

	hint := ""
	if v.Screen == domain.ScreenMain && v.HistoryLen > 1 {
		hint = centerText("Use ↓↑ to move", inner)
	}
	lines = append(lines, s.panelFooter.Render(hint))

	panel := s.panel
	if v.Screen == domain.ScreenMain {
		panel = s.activePanel
	}

	return panel.Width(inner).Height(l.panelHeight - 2).Render(strings.Join(lines, "\n"))
}

// visibleWindow returns the [start, end) slice of rows to show so that the
// selected row stays on screen.
func visibleWindow(total, selected, rows int) (int, int) {
	if rows <= 0 || total == 0 {
		return 0, 0
	}
	if total <= rows {
		return 0, total
	}

	start := selected - rows + 1
	if start < 0 {
		start = 0
	}
	return start, start + rows
}

func renderContent(content string, l layout, s styles) string {
	inner := l.contentWidth - 2
	body := lipgloss.JoinVertical(
		lipgloss.Left,
		s.panelTitle.Render(centerText("Content", inner)),
		content,
	)

	return s.panel.Width(inner).Height(l.panelHeight - 2).Render(body)
}

// formatContent prepares a stored value for the content pane: JSON bodies
// are indented, error markers are highlighted, and long lines are wrapped.
func formatContent(value string, width int, s styles) string {
	switch {
	case value == "":
		return ""
	case domain.IsErrorMarker(value):
		return s.errorMarker.Width(width).Render(value)
	case gjson.Valid(value):
		value = strings.TrimRight(string(pretty.Pretty([]byte(value))), "\n")
	}

	return lipgloss.NewStyle().Width(width).Render(value)
}

func renderFooter(v application.View, l layout, s styles) string {
	inner := l.width - 2
	if !v.Editing {
		return s.footer.Width(inner).Render(fmt.Sprintf("%d request(s)", v.HistoryLen))
	}

	label := s.prompt.Render(strings.ToUpper(v.EditTarget.String()) + " > ")
	room := inner - lipgloss.Width(label) - 1

	return s.footerEdit.Width(inner).Render(label + tail(v.Buffer, room) + "▏")
}

// tail keeps the end of text so the cursor side of a long URL stays visible.
func tail(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}

	runes := []rune(text)
	used := 1
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > width {
			break
		}
		used += w
		start--
	}

	return "…" + string(runes[start:])
}

func renderPopup(l layout, s styles, title, text string) string {
	box := s.popup.Render(lipgloss.JoinVertical(
		lipgloss.Center,
		s.popupTitle.Render(title),
		"",
		s.popupText.Render(text),
	))

	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, box)
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(text, width, "…")
}

func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
