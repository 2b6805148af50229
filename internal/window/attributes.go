package window

const (
	defaultWidth  = 1024
	defaultHeight = 768
	defaultTitle  = "webwindow"
)

type LogicalSize struct {
	Width, Height float64
}

type LogicalPosition struct {
	X, Y float64
}

// Icon is RGBA pixel data. Canvas windows have no icon to set.
type Icon struct {
	RGBA          []byte
	Width, Height uint32
}

// Attributes configure a new window. A nil Dimensions means 1024x768.
type Attributes struct {
	Dimensions    *LogicalSize
	MinDimensions *LogicalSize
	MaxDimensions *LogicalSize
	Resizable     bool
	Title         string
	Maximized     bool
	Visible       bool
	Decorations   bool
	AlwaysOnTop   bool
	WindowIcon    *Icon
}

func DefaultAttributes() Attributes {
	return Attributes{
		Resizable:   true,
		Title:       defaultTitle,
		Visible:     true,
		Decorations: true,
	}
}
