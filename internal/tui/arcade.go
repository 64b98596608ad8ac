package tui

import (
	"strings"
	"time"

	"maddyverse/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type spinState int

const (
	spinIdle spinState = iota
	spinSpinning
	spinLocked
)

type spinTickMsg struct{ seq int }

// spinPeriod is the wheel's advance rate while spinning. Selection is a
// timing-skill mechanic: whatever index the lock lands on wins.
const spinPeriod = 100 * time.Millisecond

type arcadeModel struct {
	// inGame is false on the arcade shell (game picker) and true inside
	// the nickname game.
	inGame bool

	state spinState
	idx   int
	wheel []model.Nickname

	// spinSeq invalidates ticks from a spin that has been locked or
	// abandoned, so the fast timer stops firing on teardown.
	spinSeq int
}

func newArcadeModel() arcadeModel {
	return arcadeModel{wheel: model.NicknameWheel}
}

func (m *arcadeModel) stop() {
	m.spinSeq++
	if m.state == spinSpinning {
		m.state = spinIdle
		m.idx = 0
	}
}

// handleBack pops the game back to the shell. Reports false when the
// arcade is already at its shell and the app should go home instead.
func (m *arcadeModel) handleBack() bool {
	if !m.inGame {
		return false
	}
	m.stop()
	m.inGame = false
	m.state = spinIdle
	m.idx = 0
	return true
}

func (m arcadeModel) tick() tea.Cmd {
	seq := m.spinSeq
	return tea.Tick(spinPeriod, func(time.Time) tea.Msg { return spinTickMsg{seq: seq} })
}

// start enters Spinning from Idle (or from Locked via try-again) and
// resets the displayed index to 0.
func (m arcadeModel) start() (arcadeModel, tea.Cmd) {
	m.state = spinSpinning
	m.idx = 0
	m.spinSeq++
	return m, m.tick()
}

// lock freezes the selection. A second lock is a no-op: the state is
// already Locked.
func (m arcadeModel) lock() arcadeModel {
	if m.state != spinSpinning {
		return m
	}
	m.state = spinLocked
	m.spinSeq++
	return m
}

func (m arcadeModel) tryAgain() arcadeModel {
	if m.state != spinLocked {
		return m
	}
	m.state = spinIdle
	m.idx = 0
	return m
}

func (m arcadeModel) updateMsg(msg tea.Msg) (arcadeModel, tea.Cmd) {
	if t, ok := msg.(spinTickMsg); ok {
		if t.seq != m.spinSeq || m.state != spinSpinning {
			return m, nil
		}
		m.idx = (m.idx + 1) % len(m.wheel)
		return m, m.tick()
	}
	return m, nil
}

func (m arcadeModel) update(msg tea.KeyMsg) (arcadeModel, tea.Cmd) {
	if !m.inGame {
		if msg.String() == "enter" {
			m.inGame = true
		}
		return m, nil
	}

	switch msg.String() {
	case "enter", " ":
		switch m.state {
		case spinIdle:
			return m.start()
		case spinSpinning:
			return m.lock(), nil
		case spinLocked:
			return m.tryAgain(), nil
		}
	}
	return m, nil
}

func (m arcadeModel) view(w int) string {
	if !m.inGame {
		card := renderCard(strings.Join([]string{
			"💭 What Should I Call You Today?",
			styleMuted().Render("Spin the wheel and lock in a nickname!"),
		}, "\n"), min(w-4, 56), true)
		return strings.Join([]string{
			styleHeading(colorRose).Render("The Madness Arcade 🎮"),
			styleMuted().Render("Pick a game to play together!"),
			"",
			card,
			"",
			styleMuted().Render("More games coming soon! 💕"),
			renderFooter("enter: play  esc: back  q: quit"),
		}, "\n")
	}

	current := lipgloss.NewStyle().Bold(true).Foreground(colorRose).Render(m.wheel[m.idx].Name)

	var status string
	var help string
	switch m.state {
	case spinIdle:
		status = styleMuted().Render("Spin the wheel and discover your nickname for today!")
		help = "enter: spin the wheel 🎡  esc: back"
	case spinSpinning:
		status = styleMuted().Render("Spinning…")
		help = "enter: LOCK IT IN! 💝  esc: back"
	case spinLocked:
		status = lipgloss.NewStyle().Italic(true).Foreground(colorRose).Render(m.wheel[m.idx].Message)
		help = "enter: try again 🎡  esc: back"
	}

	rows := make([]string, 0, len(m.wheel))
	for i, n := range m.wheel {
		marker := "  "
		if i == m.idx {
			marker = "▸ "
		}
		rows = append(rows, marker+n.Name)
	}

	return strings.Join([]string{
		styleHeading(colorRose).Render("What Should I Call You Today? 💭"),
		"",
		renderCard(current+"\n"+status, min(w-4, 56), m.state == spinLocked),
		"",
		strings.Join(rows, "\n"),
		renderFooter(help),
	}, "\n")
}
