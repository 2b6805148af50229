package window

import "fmt"

// Cursor is the closed set of pointer styles a window can show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
	CursorHand
	CursorArrow
	CursorMove
	CursorText
	CursorWait
	CursorHelp
	CursorProgress

	CursorNotAllowed
	CursorContextMenu
	CursorCell
	CursorVerticalText
	CursorAlias
	CursorCopy
	CursorNoDrop
	CursorGrab
	CursorGrabbing
	CursorAllScroll
	CursorZoomIn
	CursorZoomOut

	CursorEResize
	CursorNResize
	CursorNeResize
	CursorNwResize
	CursorSResize
	CursorSeResize
	CursorSwResize
	CursorWResize
	CursorEwResize
	CursorNsResize
	CursorNeswResize
	CursorNwseResize
	CursorColResize
	CursorRowResize

	cursorCount
)

// String returns the CSS cursor value for c.
func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "auto"
	case CursorCrosshair:
		return "crosshair"
	case CursorHand:
		return "pointer"
	case CursorArrow:
		return "default"
	case CursorMove:
		return "move"
	case CursorText:
		return "text"
	case CursorWait:
		return "wait"
	case CursorHelp:
		return "help"
	case CursorProgress:
		return "progress"

	case CursorNotAllowed:
		return "not-allowed"
	case CursorContextMenu:
		return "context-menu"
	case CursorCell:
		return "cell"
	case CursorVerticalText:
		return "vertical-text"
	case CursorAlias:
		return "alias"
	case CursorCopy:
		return "copy"
	case CursorNoDrop:
		return "no-drop"
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	case CursorAllScroll:
		return "all-scroll"
	case CursorZoomIn:
		return "zoom-in"
	case CursorZoomOut:
		return "zoom-out"

	case CursorEResize:
		return "e-resize"
	case CursorNResize:
		return "n-resize"
	case CursorNeResize:
		return "ne-resize"
	case CursorNwResize:
		return "nw-resize"
	case CursorSResize:
		return "s-resize"
	case CursorSeResize:
		return "se-resize"
	case CursorSwResize:
		return "sw-resize"
	case CursorWResize:
		return "w-resize"
	case CursorEwResize:
		return "ew-resize"
	case CursorNsResize:
		return "ns-resize"
	case CursorNeswResize:
		return "nesw-resize"
	case CursorNwseResize:
		return "nwse-resize"
	case CursorColResize:
		return "col-resize"
	case CursorRowResize:
		return "row-resize"
	default:
		panic(fmt.Sprintf("window: unknown cursor %d", int(c)))
	}
}
