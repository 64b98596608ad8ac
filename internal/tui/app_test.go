package tui

import (
	"testing"

	"maddyverse/internal/repo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

func newTestApp() appModel {
	s := &fakeStore{}
	log := zerolog.Nop()
	return newAppModel(Deps{
		Logbook:    repo.NewLogbook(s, log),
		Poems:      repo.NewPoems(s, log),
		Paragraphs: repo.NewParagraphs(s, log),
		Log:        log,
	})
}

func step(t *testing.T, m appModel, msg tea.Msg) (appModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(appModel), cmd
}

func TestAppInit_SchedulesLiveHomeTick(t *testing.T) {
	m := newTestApp()
	if m.Init() == nil {
		t.Fatal("init must schedule the hourly counter tick")
	}
	// The tick generation bumped in the constructor must match the model
	// the program keeps, otherwise the first tick looks stale.
	was := m.home.maddyDays
	m, cmd := step(t, m, homeTickMsg{gen: m.home.tickGen})
	if cmd == nil {
		t.Fatal("the first tick must be live and reschedule itself")
	}
	if m.home.maddyDays < was {
		t.Fatal("tick must recompute, not reset")
	}
}

func TestAppNavigation_HubAndSpoke(t *testing.T) {
	m := newTestApp()

	// Second nav entry is the arcade.
	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("enter"))
	if m.view != viewArcade {
		t.Fatalf("view = %v; want arcade", m.view)
	}

	// Esc from any page lands back on home, never on a sibling.
	m, _ = step(t, m, keyMsg("esc"))
	if m.view != viewHome {
		t.Fatalf("view = %v; want home after esc", m.view)
	}
}

func TestAppNavigation_LeavingHomeStopsItsTimer(t *testing.T) {
	m := newTestApp()
	gen := m.home.tickGen

	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("enter")) // to the arcade

	m, cmd := step(t, m, homeTickMsg{gen: gen})
	if cmd != nil {
		t.Fatal("home's tick must die once home is left")
	}
	_ = m
}

func TestAppArcadeEsc_PopsToShellBeforeHome(t *testing.T) {
	m := newTestApp()
	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("enter")) // arcade shell
	m, _ = step(t, m, keyMsg("enter")) // into the game
	if !m.arcade.inGame {
		t.Fatal("enter on the shell must open the game")
	}

	m, _ = step(t, m, keyMsg("esc"))
	if m.view != viewArcade || m.arcade.inGame {
		t.Fatal("first esc must pop to the arcade shell")
	}
	m, _ = step(t, m, keyMsg("esc"))
	if m.view != viewHome {
		t.Fatal("second esc must go home")
	}
}

func TestAppEnterLogbook_StartsTheOneTimeLoad(t *testing.T) {
	m := newTestApp()
	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("down"))
	m, cmd := step(t, m, keyMsg("enter"))
	if m.view != viewLogbook {
		t.Fatalf("view = %v; want logbook", m.view)
	}
	if cmd == nil {
		t.Fatal("first visit must kick off the load")
	}
	if !m.logbook.loading {
		t.Fatal("loading flag must be set on the retained model")
	}
}

func TestAppQuitKeyIsTypedWhileEditing(t *testing.T) {
	m := newTestApp()
	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("down"))
	m, _ = step(t, m, keyMsg("enter")) // logbook, input focused

	m, cmd := step(t, m, keyMsg("q"))
	if cmd != nil {
		t.Fatal("q while typing must not quit")
	}
	if m.logbook.input.Value() != "q" {
		t.Fatalf("input = %q; q must be typed into the field", m.logbook.input.Value())
	}
}

func TestAppResize_ReachesThePages(t *testing.T) {
	m := newTestApp()
	m, _ = step(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.width != 100 {
		t.Fatalf("width = %d; want 100", m.width)
	}
	if m.journal.width != 100 || m.logbook.width != 100 || m.poems.width != 100 {
		t.Fatal("resize must reach every page model")
	}
}
