package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/icco/filler"
	"github.com/ifo/sanic"
	"go.uber.org/zap"
)

type model struct {
	src   filler.Source
	ids   *sanic.Worker
	log   *zap.SugaredLogger
	hints bool

	// Match state
	id    string
	match *filler.Match

	// UI state
	help  help.Model
	error string
}

func initialModel(src filler.Source, hints bool, log *zap.SugaredLogger) model {
	m := model{
		src:   src,
		ids:   sanic.NewWorker7(),
		log:   log,
		hints: hints,
		help:  help.New(),
	}
	return m.newMatch()
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.New):
			return m.newMatch(), nil
		case key.Matches(msg, keys.Colors, keys.Digits):
			if c, ok := colorForKey(msg.String()); ok {
				return m.play(c), nil
			}
		}
	}

	return m, nil
}

func (m model) newMatch() model {
	m.id = m.ids.IDString(m.ids.NextID())
	m.match = filler.NewMatch(m.src)
	m.error = ""

	g := m.match.Grid()
	m.log.Infow("match started", "match", m.id, "board", g.String())
	return m
}

// play forwards the chosen color to the engine. A rejected color is shown to
// the player and otherwise ignored.
func (m model) play(c filler.Color) model {
	player := m.match.CurrentPlayer()
	if err := m.match.MakeMove(c); err != nil {
		m.log.Infow("move rejected", "match", m.id, "player", player, "color", c, zap.Error(err))
		m.error = err.Error()
		return m
	}

	m.error = ""
	score := m.match.Score()
	m.log.Infow("move", "match", m.id, "player", player, "color", c, "one", score.One, "two", score.Two)

	if winner, over := m.match.GameOver(); over {
		m.log.Infow("match finished", "match", m.id, "status", m.match.Status(), "winner", winner)
	}
	return m
}
