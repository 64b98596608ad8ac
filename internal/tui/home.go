package tui

import (
	"fmt"
	"strings"
	"time"

	"maddyverse/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type homeTickMsg struct{ gen int }

type heartGoneMsg struct{ seq int }

const (
	captionOdd  = "Still not enough time!"
	captionEven = "My favorite deployment, always."
)

// heartTTL is how long a counter press's heart marker stays visible.
const heartTTL = time.Second

type navItem struct {
	title  string
	target view
}

func (i navItem) FilterValue() string { return i.title }
func (i navItem) Title() string       { return i.title }

type homeModel struct {
	nav list.Model

	maddyDays int
	bubDays   int

	clickCount int
	hearts     []int
	heartSeq   int

	// tickGen invalidates hourly ticks scheduled by a previous visit so
	// the recompute timer stops once home is no longer displayed.
	tickGen int

	now func() time.Time
}

func newHomeModel() homeModel {
	items := []list.Item{
		navItem{title: "☀️  Sunshine Journal", target: viewJournal},
		navItem{title: "🎮 Madness Arcade", target: viewArcade},
		navItem{title: "📖 Lifephile Logbook", target: viewLogbook},
		navItem{title: "💜 Poems", target: viewPoems},
		navItem{title: "📝 Paragraphs", target: viewParagraphs},
	}
	m := homeModel{
		nav: newList(items),
		now: time.Now,
	}
	m.recompute()
	return m
}

func newList(items []list.Item) list.Model {
	l := list.New(items, newCompactDelegate(), 0, len(items)+1)
	// The app renders its own chrome; keep the list bare.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	// Bubble list defaults to quitting on ESC; here ESC means "back".
	l.KeyMap.Quit.SetKeys("ctrl+c")
	return l
}

func (m *homeModel) recompute() {
	now := m.now()
	m.maddyDays = wholeDaysSince(model.MaddyBirthDate, now)
	m.bubDays = wholeDaysSince(model.BubLoveDate, now)
}

// enterCmd recomputes the counters immediately and schedules the hourly
// refresh for this visit.
func (m *homeModel) enterCmd() tea.Cmd {
	m.recompute()
	m.tickGen++
	return m.tick()
}

func (m *homeModel) stop() {
	m.tickGen++
	m.hearts = nil
}

func (m homeModel) tick() tea.Cmd {
	gen := m.tickGen
	return tea.Tick(time.Hour, func(time.Time) tea.Msg { return homeTickMsg{gen: gen} })
}

func (m homeModel) updateMsg(msg tea.Msg) (homeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case homeTickMsg:
		if msg.gen != m.tickGen {
			// Stale tick from a visit that has ended; don't reschedule.
			return m, nil
		}
		m.recompute()
		return m, m.tick()

	case heartGoneMsg:
		kept := m.hearts[:0]
		for _, seq := range m.hearts {
			if seq != msg.seq {
				kept = append(kept, seq)
			}
		}
		m.hearts = kept
		return m, nil
	}
	return m, nil
}

// pressCounter spawns a transient heart marker and advances the caption
// parity. Which counter was pressed doesn't matter; both share the
// click count, like the original cards.
func (m homeModel) pressCounter() (homeModel, tea.Cmd) {
	m.heartSeq++
	seq := m.heartSeq
	m.hearts = append(m.hearts, seq)
	m.clickCount++
	return m, tea.Tick(heartTTL, func(time.Time) tea.Msg { return heartGoneMsg{seq: seq} })
}

func (m homeModel) caption() string {
	if m.clickCount == 0 {
		return ""
	}
	if m.clickCount%2 == 1 {
		return captionOdd
	}
	return captionEven
}

func (m homeModel) update(msg tea.KeyMsg) (homeModel, view, bool, tea.Cmd) {
	switch msg.String() {
	case "1", "2":
		hm, cmd := m.pressCounter()
		return hm, 0, false, cmd
	case "enter":
		if it, ok := m.nav.SelectedItem().(navItem); ok {
			return m, it.target, true, nil
		}
	}
	var cmd tea.Cmd
	m.nav, cmd = m.nav.Update(msg)
	return m, 0, false, cmd
}

func (m *homeModel) resize(w, h int) {
	if w < 40 {
		w = 40
	}
	m.nav.SetSize(w, len(m.nav.Items())+1)
}

func (m homeModel) view(w int) string {
	cardW := w - 4
	if cardW > 64 {
		cardW = 64
	}

	title := styleHeading(colorRose).Render("Welcome to the Maddyverse")
	tagline := styleMuted().Render("A Universe Built on Madness, Life, and Bouncing Angels ✨")

	hearts := strings.Repeat("💖 ", len(m.hearts))

	maddy := renderCard(strings.Join([]string{
		styleHeading(colorRose).Render("The Maddy Count"),
		styleMuted().Render("Since 24 Feb 2005"),
		lipgloss.NewStyle().Bold(true).Foreground(colorRose).Render(fmt.Sprintf("%d", m.maddyDays)),
		styleMuted().Render("Days She Has Blessed The World  [1]"),
	}, "\n"), cardW, false)

	bub := renderCard(strings.Join([]string{
		styleHeading(colorAmber).Render("The Bub Count"),
		lipgloss.NewStyle().Bold(true).Foreground(colorAmber).Render(fmt.Sprintf("%d", m.bubDays)),
		styleMuted().Render("Days Hopelessly in Love with Maddy  [2]"),
	}, "\n"), cardW, false)

	parts := []string{title, tagline, "", maddy, bub}
	if c := m.caption(); c != "" {
		line := lipgloss.NewStyle().Italic(true).Foreground(colorRose).Render(c)
		if hearts != "" {
			line += "  " + hearts
		}
		parts = append(parts, "", line)
	} else if hearts != "" {
		parts = append(parts, "", hearts)
	}

	parts = append(parts, "",
		styleHeading(colorRose).Render("The Bouncing Angel Navigation 🌙"),
		m.nav.View(),
		renderFooter("enter: open  1/2: press a counter  q: quit"),
	)
	return strings.Join(parts, "\n")
}
