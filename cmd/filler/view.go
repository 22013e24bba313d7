package main

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
	"github.com/icco/filler"
)

var (
	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2)

	textStyle = lipgloss.NewStyle().
			MarginLeft(2)

	boardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginLeft(2)

	cellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center)

	buttonStyle = lipgloss.NewStyle().
			Width(7).
			Align(lipgloss.Center).
			MarginRight(1)

	disabledStyle = buttonStyle.
			Foreground(lipgloss.Color("240")).
			Faint(true)

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")).
			MarginLeft(2)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			MarginLeft(2)
)

var swatches = map[filler.Color]lipgloss.Color{
	filler.Red:    lipgloss.Color("#D0312D"),
	filler.Yellow: lipgloss.Color("#FFFD37"),
	filler.Green:  lipgloss.Color("#3CB043"),
	filler.Blue:   lipgloss.Color("#318CE7"),
	filler.Purple: lipgloss.Color("#A32CC4"),
	filler.Black:  lipgloss.Color("#333333"),
}

func ink(c filler.Color) lipgloss.Color {
	if c == filler.Yellow || c == filler.Green {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#FFFFFF")
}

func (m model) View() string {
	s := m.match.Snapshot()

	title := titleStyle.Render("Filler")
	info := textStyle.Render(fmt.Sprintf("Match %s | One (%s): %d | Two (%s): %d | To move: %s",
		m.id,
		m.match.PlayerColor(filler.PlayerOne), s.Score.One,
		m.match.PlayerColor(filler.PlayerTwo), s.Score.Two,
		s.CurrentPlayer))

	content := []string{title, "", info, "", renderBoard(&s.Grid), ""}

	if s.Status == filler.InProgress {
		content = append(content, m.renderButtons(s.Available))
	} else {
		content = append(content, resultStyle.Render(result(s)))
	}

	if moves := m.match.Moves(); len(moves) > 0 {
		if len(moves) > 4 {
			moves = moves[len(moves)-4:]
		}
		content = append(content, "", textStyle.Render(fmt.Sprintf("Recent moves: %v", moves)))
	}

	if m.error != "" {
		content = append(content, "", errorStyle.Render(fmt.Sprintf("Error: %s", m.error)))
	}

	content = append(content, "", textStyle.Render(m.help.View(keys)))
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func renderBoard(g *filler.Grid) string {
	var rows []string
	for i := range filler.Rows {
		row := ""
		for _, cell := range g.Row(i) {
			label := ""
			if cell.Owned() {
				label = fmt.Sprint(int(cell.Owner))
			}
			row += cellStyle.
				Background(swatches[cell.Color]).
				Foreground(ink(cell.Color)).
				Render(label)
		}
		rows = append(rows, row)
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m model) renderButtons(available []filler.Color) string {
	var buttons []string
	for _, c := range filler.Colors() {
		if !slices.Contains(available, c) {
			buttons = append(buttons, disabledStyle.Render(fmt.Sprintf("(%s)", c.Key())))
			continue
		}

		label := c.Key()
		if m.hints {
			if n, err := m.match.Gain(c); err == nil {
				label = fmt.Sprintf("%s +%d", c.Key(), n)
			}
		}
		buttons = append(buttons, buttonStyle.
			Background(swatches[c]).
			Foreground(ink(c)).
			Render(label))
	}

	return textStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
}

func result(s filler.Snapshot) string {
	if s.Status == filler.Draw {
		return fmt.Sprintf("Draw, %d to %d. Press n for a new match.", s.Score.One, s.Score.Two)
	}
	return fmt.Sprintf("Player %s wins, %d to %d. Press n for a new match.",
		s.Winner, s.Score.Of(s.Winner), s.Score.Of(s.Winner.Other()))
}
