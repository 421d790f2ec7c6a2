package application

import (
	"context"
	"slices"
	"unicode"

	"github.com/bnema/fetchpad/internal/domain"
	"github.com/bnema/fetchpad/internal/ports"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Outcome tells the input loop what to do after an event was handled.
type Outcome struct {
	Quit   bool
	Export bool
}

// Session is the controller for one run: it owns the mode, the request
// history and the selection, and it is not safe for concurrent use.
type Session struct {
	id       string
	mode     domain.Mode
	history  *domain.RequestStore
	selected int
	fetcher  ports.Fetcher
	log      zerolog.Logger
}

func NewSession(fetcher ports.Fetcher, log zerolog.Logger) *Session {
	id := uuid.NewString()

	return &Session{
		id:      id,
		mode:    domain.MainMode{},
		history: domain.NewRequestStore(),
		fetcher: fetcher,
		log:     log.With().Str("session", id).Logger(),
	}
}

func (s *Session) ID() string {
	return s.id
}

// Handle applies one key event to completion. A confirmed exit is the only
// event that returns Outcome.Quit.
func (s *Session) Handle(ctx context.Context, ev domain.KeyEvent) Outcome {
	if ev.Release {
		return Outcome{}
	}

	from := s.mode.Screen()
	var out Outcome

	switch mode := s.mode.(type) {
	case domain.MainMode:
		s.handleMain(ev)
	case domain.EditingMode:
		s.handleEditing(ctx, mode, ev)
	case domain.ConfirmExitMode:
		out = s.handleConfirmExit(ev)
	case domain.ConfirmClearMode:
		s.handleConfirmClear(ev)
	}

	if to := s.mode.Screen(); to != from || out.Quit {
		s.log.Debug().
			Stringer("from", from).
			Stringer("to", to).
			Bool("quit", out.Quit).
			Msg("screen transition")
	}

	return out
}

func (s *Session) handleMain(ev domain.KeyEvent) {
	switch ev.Kind {
	case domain.KeyChar:
		switch unicode.ToLower(ev.Rune) {
		case 'e':
			s.mode = domain.EditingMode{Target: domain.EditTargetURL}
		case 'q':
			s.mode = domain.ConfirmExitMode{}
		case 'c':
			s.mode = domain.ConfirmClearMode{}
		}
	case domain.KeyUp:
		if s.history.Len() > 1 && s.selected > 0 {
			s.selected--
		}
	case domain.KeyDown:
		if s.history.Len() > 1 && s.selected < s.history.Len()-1 {
			s.selected++
		}
	}
}

func (s *Session) handleEditing(ctx context.Context, mode domain.EditingMode, ev domain.KeyEvent) {
	switch ev.Kind {
	case domain.KeyChar:
		mode.Buffer += string(ev.Rune)
		s.mode = mode
	case domain.KeyBackspace:
		if runes := []rune(mode.Buffer); len(runes) > 0 {
			mode.Buffer = string(runes[:len(runes)-1])
		}
		s.mode = mode
	case domain.KeyTab:
		mode.Target = mode.Target.Next()
		s.mode = mode
	case domain.KeyEsc:
		s.mode = domain.MainMode{}
	case domain.KeyEnter:
		s.saveRequest(ctx, mode.Buffer)
		s.mode = domain.MainMode{}
	}
}

func (s *Session) handleConfirmExit(ev domain.KeyEvent) Outcome {
	if ev.Kind != domain.KeyChar {
		return Outcome{}
	}

	switch unicode.ToLower(ev.Rune) {
	case 'y':
		return Outcome{Quit: true, Export: true}
	case 'n', 'q':
		s.mode = domain.MainMode{}
	}

	return Outcome{}
}

func (s *Session) handleConfirmClear(ev domain.KeyEvent) {
	if ev.Kind != domain.KeyChar {
		return
	}

	switch unicode.ToLower(ev.Rune) {
	case 'y':
		cleared := s.history.Len()
		s.history.Clear()
		s.selected = 0
		s.mode = domain.MainMode{}
		s.log.Info().Int("entries", cleared).Msg("history cleared")
	case 'n':
		s.mode = domain.MainMode{}
	}
}

// saveRequest is the only path through which a fetch result reaches the history.
// Fetch failures are stored as error markers and never abort the session.
func (s *Session) saveRequest(ctx context.Context, url string) {
	value, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("request failed")
		value = domain.ErrorMarker(err)
	} else {
		s.log.Info().Str("url", url).Int("bytes", len(value)).Msg("request saved")
	}

	s.history.Insert(url, value)
}

func (s *Session) Mode() domain.Mode {
	return s.mode
}

func (s *Session) Screen() domain.Screen {
	return s.mode.Screen()
}

// Buffer returns the URL being typed, or "" outside the editing screen.
func (s *Session) Buffer() string {
	if mode, ok := s.mode.(domain.EditingMode); ok {
		return mode.Buffer
	}
	return ""
}

func (s *Session) EditTarget() (domain.EditTarget, bool) {
	if mode, ok := s.mode.(domain.EditingMode); ok {
		return mode.Target, true
	}
	return 0, false
}

func (s *Session) Selected() int {
	return s.selected
}

func (s *Session) HistoryLen() int {
	return s.history.Len()
}

func (s *Session) Entries() []domain.Entry {
	return s.history.Entries()
}

// Lookup returns the stored value for url: the body or an error marker.
func (s *Session) Lookup(url string) (domain.Entry, bool) {
	value, ok := s.history.Get(url)
	if !ok {
		return domain.Entry{}, false
	}
	return domain.Entry{URL: url, Value: value}, true
}

// SelectedEntry returns the highlighted entry; ok is false when history is empty.
func (s *Session) SelectedEntry() (domain.Entry, bool) {
	entry, err := s.history.EntryAt(s.selected)
	if err != nil {
		return domain.Entry{}, false
	}
	return entry, true
}

// View is a settled, read-only copy of what a renderer needs.
type View struct {
	Screen        domain.Screen
	Buffer        string
	EditTarget    domain.EditTarget
	Editing       bool
	Keys          []string
	SelectedValue string
	Selected      int
	HistoryLen    int
}

func (s *Session) Snapshot() View {
	target, editing := s.EditTarget()
	view := View{
		Screen:     s.Screen(),
		Buffer:     s.Buffer(),
		EditTarget: target,
		Editing:    editing,
		Keys:       slices.Collect(s.history.Keys()),
		Selected:   s.selected,
		HistoryLen: s.history.Len(),
	}

	if entry, ok := s.SelectedEntry(); ok {
		view.SelectedValue = entry.Value
	}

	return view
}
