package filler

import "go.uber.org/zap"

// Status is the state of a match.
type Status int

// Match statuses. The winner of a Won match is reported by Match.Winner.
const (
	InProgress Status = iota
	Won
	Draw
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "InProgress"
	case Won:
		return "Won"
	case Draw:
		return "Draw"
	}
	return "Unknown"
}

// Score is the number of cells each player owns.
type Score struct {
	One int
	Two int
}

// Of returns p's count.
func (s Score) Of(p Player) int {
	switch p {
	case PlayerOne:
		return s.One
	case PlayerTwo:
		return s.Two
	}
	return 0
}

// Total returns the number of owned cells.
func (s Score) Total() int {
	return s.One + s.Two
}

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Grid          Grid
	Score         Score
	Status        Status
	Winner        Player
	CurrentPlayer Player
	Available     []Color
}

// Match is a single game between PlayerOne and PlayerTwo. PlayerOne moves
// first. A Match is not safe for concurrent use.
type Match struct {
	grid    Grid
	current Player
	score   Score
	status  Status
	winner  Player
	moves   []Move
}

// NewMatch starts a match on a freshly generated board. A nil src uses the
// process-wide generator.
func NewMatch(src Source) *Match {
	return newMatch(Generate(src))
}

func newMatch(g Grid) *Match {
	m := &Match{
		grid:    g,
		current: PlayerOne,
	}
	m.update()
	return m
}

// MakeMove plays c for the current player. On error the match is unchanged.
func (m *Match) MakeMove(c Color) error {
	if err := m.check(c); err != nil {
		log.Debugw("move rejected", "player", m.current, "color", c, zap.Error(err))
		return err
	}

	p := m.current
	annexed := capture(&m.grid, p, c)
	m.moves = append(m.moves, Move{
		Number:  len(m.moves) + 1,
		Player:  p,
		Color:   c,
		Annexed: annexed,
	})
	m.current = p.Other()
	m.update()

	if m.status != InProgress {
		log.Debugw("match over", "status", m.status, "winner", m.winner, "one", m.score.One, "two", m.score.Two)
	}

	return nil
}

// Gain returns how many cells the current player would annex by playing c,
// without playing it.
func (m *Match) Gain(c Color) (int, error) {
	if err := m.check(c); err != nil {
		return 0, err
	}

	g := m.grid
	return capture(&g, m.current, c), nil
}

func (m *Match) check(c Color) error {
	var err error
	switch {
	case !c.Valid():
		err = ErrUnknownColor
	case m.status != InProgress:
		err = ErrMatchOver
	case c == m.PlayerColor(PlayerOne) || c == m.PlayerColor(PlayerTwo):
		err = ErrColorUnavailable
	}

	if err != nil {
		return &MoveError{Player: m.current, Color: c, Err: err}
	}
	return nil
}

func (m *Match) update() {
	m.score = Score{
		One: m.grid.Count(PlayerOne),
		Two: m.grid.Count(PlayerTwo),
	}

	m.winner = NoPlayer
	switch {
	case m.score.Total() < Rows*Cols:
		m.status = InProgress
	case m.score.One > m.score.Two:
		m.status, m.winner = Won, PlayerOne
	case m.score.Two > m.score.One:
		m.status, m.winner = Won, PlayerTwo
	default:
		m.status = Draw
	}
}

// Grid returns a copy of the board.
func (m *Match) Grid() Grid {
	return m.grid
}

// Score returns the current score.
func (m *Match) Score() Score {
	return m.score
}

// Status returns the current status.
func (m *Match) Status() Status {
	return m.status
}

// Winner returns the winning player, or NoPlayer unless the status is Won.
func (m *Match) Winner() Player {
	return m.winner
}

// GameOver returns the winner and whether the match has finished. The winner
// is NoPlayer for a draw.
func (m *Match) GameOver() (Player, bool) {
	return m.winner, m.status != InProgress
}

// CurrentPlayer returns the player to move.
func (m *Match) CurrentPlayer() Player {
	return m.current
}

// PlayerColor returns the color shared by every cell p owns. A player's start
// corner never changes hands, so its color is the player's color.
func (m *Match) PlayerColor(p Player) Color {
	return m.grid.Cell(StartCoordinates(p)).Color
}

// AvailableColors returns the palette minus both players' colors.
func (m *Match) AvailableColors() []Color {
	one, two := m.PlayerColor(PlayerOne), m.PlayerColor(PlayerTwo)
	out := make([]Color, 0, len(palette)-2)
	for _, c := range palette {
		if c != one && c != two {
			out = append(out, c)
		}
	}
	return out
}

// Moves returns a copy of the accepted moves, oldest first.
func (m *Match) Moves() []Move {
	out := make([]Move, len(m.moves))
	copy(out, m.moves)
	return out
}

// Snapshot returns a read-only copy of the match state.
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Grid:          m.grid,
		Score:         m.score,
		Status:        m.status,
		Winner:        m.winner,
		CurrentPlayer: m.current,
		Available:     m.AvailableColors(),
	}
}
