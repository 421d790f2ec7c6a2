package domain

type Screen int

const (
	ScreenMain Screen = iota
	ScreenEditing
	ScreenConfirmExit
	ScreenConfirmClear
)

func (s Screen) String() string {
	switch s {
	case ScreenMain:
		return "main"
	case ScreenEditing:
		return "editing"
	case ScreenConfirmExit:
		return "confirm_exit"
	case ScreenConfirmClear:
		return "confirm_clear"
	default:
		return "unknown"
	}
}

// EditTarget names the field being edited. Only the URL exists today.
type EditTarget int

const (
	EditTargetURL EditTarget = iota
)

func (t EditTarget) String() string {
	switch t {
	case EditTargetURL:
		return "url"
	default:
		return "unknown"
	}
}

// Next cycles to the following editable field.
func (t EditTarget) Next() EditTarget {
	switch t {
	case EditTargetURL:
		return EditTargetURL
	default:
		return EditTargetURL
	}
}
