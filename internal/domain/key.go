package domain

type KeyKind int

const (
	KeyOther KeyKind = iota
	KeyChar
	KeyUp
	KeyDown
	KeyEnter
	KeyBackspace
	KeyTab
	KeyEsc
)

// KeyEvent is a decoded key press or release handed to the session controller.
type KeyEvent struct {
	Kind    KeyKind
	Rune    rune
	Release bool
}

func CharKey(r rune) KeyEvent {
	return KeyEvent{Kind: KeyChar, Rune: r}
}

func NamedKey(kind KeyKind) KeyEvent {
	return KeyEvent{Kind: kind}
}
