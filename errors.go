package filler

import (
	"errors"
	"fmt"
)

var (
	// ErrColorUnavailable is returned when the chosen color is the current
	// color of either player.
	ErrColorUnavailable = errors.New("color unavailable")

	// ErrUnknownColor is returned for values outside the palette.
	ErrUnknownColor = errors.New("unknown color")

	// ErrMatchOver is returned for moves made after every cell is owned.
	ErrMatchOver = errors.New("match is over")
)

// MoveError describes a rejected move. It unwraps to one of the sentinel
// errors above.
type MoveError struct {
	Player Player
	Color  Color
	Err    error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("player %s cannot play %s: %v", e.Player, e.Color, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}
