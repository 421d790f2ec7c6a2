package domain

// Mode is the active screen together with the state only that screen owns.
// The edit target and buffer live inside EditingMode, so they cannot outlive it.
type Mode interface {
	Screen() Screen
	isMode()
}

type MainMode struct{}

type EditingMode struct {
	Target EditTarget
	Buffer string
}

type ConfirmExitMode struct{}

type ConfirmClearMode struct{}

func (MainMode) Screen() Screen         { return ScreenMain }
func (EditingMode) Screen() Screen      { return ScreenEditing }
func (ConfirmExitMode) Screen() Screen  { return ScreenConfirmExit }
func (ConfirmClearMode) Screen() Screen { return ScreenConfirmClear }

func (MainMode) isMode()         {}
func (EditingMode) isMode()      {}
func (ConfirmExitMode) isMode()  {}
func (ConfirmClearMode) isMode() {}
