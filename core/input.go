package core

// MouseButton values match GLFW's button numbering.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseRight:
		return "right"
	case MouseMiddle:
		return "middle"
	default:
		return "button"
	}
}

// Action values match GLFW's Release/Press/Repeat.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)
