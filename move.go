package filler

import "fmt"

// Move is one accepted move in a match's history.
type Move struct {
	Number  int
	Player  Player
	Color   Color
	Annexed int
}

func (m Move) String() string {
	return fmt.Sprintf("%d. %s %s +%d", m.Number, m.Player, m.Color, m.Annexed)
}
