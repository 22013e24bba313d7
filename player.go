package filler

// Player identifies a side. NoPlayer is the owner of an unclaimed cell.
type Player int

// Players are numbered from one; zero means nobody.
const (
	NoPlayer Player = iota
	PlayerOne
	PlayerTwo
)

// Other returns the opponent of p. The opponent of NoPlayer is NoPlayer.
func (p Player) Other() Player {
	switch p {
	case PlayerOne:
		return PlayerTwo
	case PlayerTwo:
		return PlayerOne
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case PlayerOne:
		return "One"
	case PlayerTwo:
		return "Two"
	}
	return "None"
}
