package tui

import (
	"unicode"

	"github.com/bnema/fetchpad/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Backspace  key.Binding
	Tab        key.Binding
	Esc        key.Binding
	ForceQuit  key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "previous request")),
		Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "next request")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send request")),
		Backspace:  key.NewBinding(key.WithKeys("backspace"), key.WithHelp("backspace", "delete")),
		Tab:        key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Esc:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit without export")),
		ScrollUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll content up")),
		ScrollDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll content down")),
	}
}

// decode turns a terminal key message into controller events. A pasted or
// buffered run of characters yields one event per rune; control characters
// such as a pasted trailing newline are dropped.
func (k keyMap) decode(msg tea.KeyMsg) []domain.KeyEvent {
	switch {
	case msg.Alt:
		return nil
	case msg.Type == tea.KeyRunes, msg.Type == tea.KeySpace:
		events := make([]domain.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if unicode.IsControl(r) {
				continue
			}
			events = append(events, domain.CharKey(r))
		}
		return events
	case key.Matches(msg, k.Up):
		return []domain.KeyEvent{domain.NamedKey(domain.KeyUp)}
	case key.Matches(msg, k.Down):
		return []domain.KeyEvent{domain.NamedKey(domain.KeyDown)}
	case key.Matches(msg, k.Enter):
		return []domain.KeyEvent{domain.NamedKey(domain.KeyEnter)}
	case key.Matches(msg, k.Backspace):
		return []domain.KeyEvent{domain.NamedKey(domain.KeyBackspace)}
	case key.Matches(msg, k.Tab):
		return []domain.KeyEvent{domain.NamedKey(domain.KeyTab)}
	case key.Matches(msg, k.Esc):
		return []domain.KeyEvent{domain.NamedKey(domain.KeyEsc)}
	default:
		return nil
	}
}
