// File: api/schemas/input.go
// Package schemas holds the small, dependency-free types shared between the
// behavior engine and the input executors that carry its events to a live
// browser. Keeping them here lets executor implementations live outside the
// core without import cycles.
package schemas

// Point is an integer screen coordinate.
type Point struct {
	X int
	Y int
}

// MouseButton identifies a pointer button. It is a closed set; executors
// must reject values outside the constants below.
type MouseButton string

const (
	ButtonNone   MouseButton = "none"
	ButtonLeft   MouseButton = "left"
	ButtonRight  MouseButton = "right"
	ButtonMiddle MouseButton = "middle"
)

// Valid reports whether b names a pressable button. ButtonNone is a state
// marker, not a pressable button.
func (b MouseButton) Valid() bool {
	switch b {
	case ButtonLeft, ButtonRight, ButtonMiddle:
		return true
	}
	return false
}

// ScrollDirection identifies a vertical scroll direction.
type ScrollDirection string

const (
	ScrollUp   ScrollDirection = "up"
	ScrollDown ScrollDirection = "down"
)

// Valid reports whether d is a recognized direction.
func (d ScrollDirection) Valid() bool {
	return d == ScrollUp || d == ScrollDown
}

// Geometry describes the usable window or screen area the engine may roam
// inside during idle behavior.
type Geometry struct {
	Width  int
	Height int
}
