package filler

import (
	"fmt"
	"strings"
)

// Color is one of the six palette colors a cell can hold. The zero value is
// not a palette color.
type Color int

// The palette.
const (
	Red Color = iota + 1
	Yellow
	Green
	Blue
	Purple
	Black
)

var palette = [...]Color{Red, Yellow, Green, Blue, Purple, Black}

var colorNames = map[Color]string{
	Red:    "Red",
	Yellow: "Yellow",
	Green:  "Green",
	Blue:   "Blue",
	Purple: "Purple",
	Black:  "Black",
}

// Single letter keys. Black uses "k" so it does not collide with Blue.
var colorKeys = map[Color]string{
	Red:    "r",
	Yellow: "y",
	Green:  "g",
	Blue:   "b",
	Purple: "p",
	Black:  "k",
}

// Colors returns every palette color in a fixed order.
func Colors() []Color {
	out := make([]Color, len(palette))
	copy(out, palette[:])
	return out
}

// Valid reports whether c is a member of the palette.
func (c Color) Valid() bool {
	return c >= Red && c <= Black
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", int(c))
}

// Key returns the one letter shorthand for c, or "?" if c is not a palette
// color.
func (c Color) Key() string {
	if k, ok := colorKeys[c]; ok {
		return k
	}
	return "?"
}

// ParseColor accepts a color name ("blue") or its key ("b"), ignoring case
// and surrounding space.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, c := range palette {
		if s == c.Key() || s == strings.ToLower(c.String()) {
			return c, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}
