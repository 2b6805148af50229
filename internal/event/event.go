// Package event is the library's representation of what happened to a window.
package event

// WindowID identifies a window. Only one kind of canvas window exists per
// document, so every window shares the zero ID.
type WindowID struct{}

type Kind int

const (
	RedrawRequested Kind = iota
	CursorMoved
	CursorEntered
	CursorLeft
	MouseInput
	MouseWheel
	KeyboardInput
	ReceivedCharacter
	Focused
	Destroyed
)

func (k Kind) String() string {
	switch k {
	case RedrawRequested:
		return "RedrawRequested"
	case CursorMoved:
		return "CursorMoved"
	case CursorEntered:
		return "CursorEntered"
	case CursorLeft:
		return "CursorLeft"
	case MouseInput:
		return "MouseInput"
	case MouseWheel:
		return "MouseWheel"
	case KeyboardInput:
		return "KeyboardInput"
	case ReceivedCharacter:
		return "ReceivedCharacter"
	case Focused:
		return "Focused"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

type ElementState int

const (
	Pressed ElementState = iota
	Released
)

func (s ElementState) String() string {
	if s == Pressed {
		return "Pressed"
	}
	return "Released"
}

// MouseButton follows the DOM's MouseEvent.button numbering.
type MouseButton int

const (
	LeftButton MouseButton = iota
	MiddleButton
	RightButton
)

type Modifiers struct {
	Shift, Ctrl, Alt, Logo bool
}

type Position struct {
	X, Y float64
}

// WindowEvent carries the fields relevant to its Kind. The rest are zero.
type WindowEvent struct {
	Kind Kind

	Position  Position
	Delta     Position
	State     ElementState
	Button    MouseButton
	Key       string
	Code      string
	Char      rune
	Modifiers Modifiers
	Focused   bool
}

// Event is addressed to one window.
type Event struct {
	WindowID WindowID
	Window   WindowEvent
}
