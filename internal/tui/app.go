package tui

import (
	"strings"

	"maddyverse/internal/model"
	"maddyverse/internal/repo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

type view int

const (
	viewHome view = iota
	viewJournal
	viewArcade
	viewLogbook
	viewPoems
	viewParagraphs
)

// Deps is everything the TUI needs from the application root. The
// repositories are constructed and injected there; the TUI never builds
// its own record store client.
type Deps struct {
	Logbook    *repo.Repo[model.LogbookItem]
	Poems      *repo.Repo[model.Poem]
	Paragraphs *repo.Repo[model.Paragraph]
	Log        zerolog.Logger
}

type appModel struct {
	width  int
	height int

	view view

	home    homeModel
	journal journalModel
	arcade  arcadeModel
	logbook logbookModel
	poems   notesModel
	paras   notesModel

	// initCmd is the home entry command, built in the constructor so the
	// tick generation bump lands on the model the program keeps. Init has
	// a value receiver and mutations there would be lost.
	initCmd tea.Cmd
}

func newAppModel(deps Deps) appModel {
	m := appModel{
		view:    viewHome,
		home:    newHomeModel(),
		journal: newJournalModel(),
		arcade:  newArcadeModel(),
		logbook: newLogbookModel(deps.Logbook),
		poems:   newPoemsModel(deps.Poems),
		paras:   newParagraphsModel(deps.Paragraphs),
	}
	m.initCmd = m.home.enterCmd()
	return m
}

func (m appModel) Init() tea.Cmd {
	return m.initCmd
}

// typing reports whether the active page currently owns the keyboard
// for text entry, in which case navigation keys stay out of the way.
func (m appModel) typing() bool {
	switch m.view {
	case viewJournal:
		return m.journal.typing()
	case viewLogbook:
		return m.logbook.typing()
	case viewPoems:
		return m.poems.typing()
	case viewParagraphs:
		return m.paras.typing()
	}
	return false
}

// leave tears the current page down. Both recurring timers (the hourly
// counter recompute and the spin tick) stop firing once their owning
// page is no longer displayed.
func (m *appModel) leave() {
	switch m.view {
	case viewHome:
		m.home.stop()
	case viewArcade:
		m.arcade.stop()
	}
}

// enter switches to a page and returns its entry command.
func (m *appModel) enter(v view) tea.Cmd {
	m.leave()
	m.view = v
	switch v {
	case viewHome:
		return m.home.enterCmd()
	case viewLogbook:
		return m.logbook.enterCmd()
	case viewPoems:
		return m.poems.enterCmd()
	case viewParagraphs:
		return m.paras.enterCmd()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.home.resize(msg.Width, msg.Height)
		m.journal.resize(msg.Width, msg.Height)
		m.logbook.resize(msg.Width, msg.Height)
		m.poems.resize(msg.Width, msg.Height)
		m.paras.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if !m.typing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "esc", "backspace":
				// In-game back pops to the arcade shell first.
				if m.view == viewArcade && m.arcade.handleBack() {
					return m, nil
				}
				// Hub-and-spoke: every page goes back to home.
				if m.view != viewHome {
					cmd := m.enter(viewHome)
					return m, cmd
				}
				return m, nil
			}
		}
		if m.view == viewHome {
			var cmd tea.Cmd
			var nav view
			var navigate bool
			m.home, nav, navigate, cmd = m.home.update(msg)
			if navigate {
				cmd = m.enter(nav)
			}
			return m, cmd
		}
		return m.dispatch(msg)

	// Timer and repository messages are owned by exactly one page each.
	case homeTickMsg, heartGoneMsg:
		var cmd tea.Cmd
		m.home, cmd = m.home.updateMsg(msg)
		return m, cmd
	case spinTickMsg:
		var cmd tea.Cmd
		m.arcade, cmd = m.arcade.updateMsg(msg)
		return m, cmd
	case logbookLoadedMsg, logbookAddedMsg, logbookToggledMsg, logbookDeletedMsg:
		var cmd tea.Cmd
		m.logbook, cmd = m.logbook.updateMsg(msg)
		return m, cmd
	case notesLoadedMsg:
		return m.routeNotes(msg.page, msg)
	case noteAddedMsg:
		return m.routeNotes(msg.page, msg)
	case noteDeletedMsg:
		return m.routeNotes(msg.page, msg)
	}

	return m, nil
}

func (m appModel) dispatch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case viewJournal:
		m.journal, cmd = m.journal.update(msg)
	case viewArcade:
		m.arcade, cmd = m.arcade.update(msg)
	case viewLogbook:
		m.logbook, cmd = m.logbook.update(msg)
	case viewPoems:
		m.poems, cmd = m.poems.update(msg)
	case viewParagraphs:
		m.paras, cmd = m.paras.update(msg)
	}
	return m, cmd
}

func (m appModel) routeNotes(page view, msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch page {
	case viewPoems:
		m.poems, cmd = m.poems.updateMsg(msg)
	case viewParagraphs:
		m.paras, cmd = m.paras.updateMsg(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	w := m.width
	if w < 40 {
		w = 80
	}
	var body string
	switch m.view {
	case viewHome:
		body = m.home.view(w)
	case viewJournal:
		body = m.journal.view(w)
	case viewArcade:
		body = m.arcade.view(w)
	case viewLogbook:
		body = m.logbook.view(w)
	case viewPoems:
		body = m.poems.view(w)
	case viewParagraphs:
		body = m.paras.view(w)
	}
	return strings.TrimRight(body, "\n") + "\n"
}
