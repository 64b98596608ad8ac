package tui

import (
	"strings"
	"time"

	"maddyverse/internal/model"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

type formFocus int

const (
	focusTitle formFocus = iota
	focusContent
	focusSave
	focusCancel
)

// journalModel is the Sunshine Journal: entries live only in memory and
// are gone on restart. No record store call is ever made from here.
type journalModel struct {
	entries []model.JournalEntry

	// selectedID is the expanded entry; selecting it again collapses it.
	selectedID string
	cursor     int

	showForm bool
	title    textinput.Model
	content  textarea.Model
	focus    formFocus

	width int

	newID func() string
	now   func() time.Time
}

func newJournalModel() journalModel {
	title := textinput.New()
	title.Placeholder = "Memory title..."
	title.CharLimit = 200
	title.Width = 40

	content := textarea.New()
	content.Placeholder = "Tell our story..."
	content.CharLimit = 0
	content.SetWidth(60)
	content.SetHeight(4)
	content.ShowLineNumbers = false

	return journalModel{
		entries: []model.JournalEntry{model.SeedJournalEntry},
		title:   title,
		content: content,
		newID:   uuid.NewString,
		now:     time.Now,
	}
}

func (m journalModel) typing() bool {
	return m.showForm && (m.focus == focusTitle || m.focus == focusContent)
}

func (m *journalModel) resize(w, h int) {
	m.width = w
	cw := w - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 20 {
		cw = 20
	}
	m.title.Width = cw
	m.content.SetWidth(cw)
}

func (m *journalModel) openForm() {
	m.showForm = true
	m.focus = focusTitle
	m.title.Focus()
	m.content.Blur()
}

func (m *journalModel) closeForm() {
	m.showForm = false
	m.focus = focusTitle
	m.title.SetValue("")
	m.title.Blur()
	m.content.SetValue("")
	m.content.Blur()
}

func (m *journalModel) setFocus(f formFocus) {
	m.focus = f
	m.title.Blur()
	m.content.Blur()
	switch f {
	case focusTitle:
		m.title.Focus()
	case focusContent:
		m.content.Focus()
	}
}

// addEntry validates and prepends. Whitespace-only fields reject the
// submit; the form keeps its values so nothing typed is lost.
func (m journalModel) addEntry() journalModel {
	title := strings.TrimSpace(m.title.Value())
	content := strings.TrimSpace(m.content.Value())
	if title == "" || content == "" {
		return m
	}
	entry := model.JournalEntry{
		ID:      m.newID(),
		Title:   title,
		Content: content,
		Date:    m.now().Format("2006-01-02"),
	}
	m.entries = append([]model.JournalEntry{entry}, m.entries...)
	m.cursor = 0
	m.closeForm()
	return m
}

// toggleSelected expands the entry under the cursor, collapsing it if
// it was already expanded. At most one entry is expanded at a time.
func (m journalModel) toggleSelected() journalModel {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return m
	}
	id := m.entries[m.cursor].ID
	if m.selectedID == id {
		m.selectedID = ""
	} else {
		m.selectedID = id
	}
	return m
}

func (m journalModel) update(msg tea.KeyMsg) (journalModel, tea.Cmd) {
	if m.showForm {
		return m.updateForm(msg)
	}

	switch msg.String() {
	case "n":
		m.openForm()
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		return m.toggleSelected(), nil
	}
	return m, nil
}

func (m journalModel) updateForm(msg tea.KeyMsg) (journalModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "tab":
		m.setFocus((m.focus + 1) % 4)
		return m, nil
	case "shift+tab":
		m.setFocus((m.focus + 3) % 4)
		return m, nil
	case "enter":
		switch m.focus {
		case focusTitle:
			m.setFocus(focusContent)
			return m, nil
		case focusSave:
			return m.addEntry(), nil
		case focusCancel:
			m.closeForm()
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusTitle:
		m.title, cmd = m.title.Update(msg)
	case focusContent:
		m.content, cmd = m.content.Update(msg)
	}
	return m, cmd
}

func renderFormButtons(focus formFocus, saveLabel string) string {
	save := " " + saveLabel + " "
	cancel := " Cancel "
	switch focus {
	case focusSave:
		save = styleHeading(colorRose).Render("[" + saveLabel + "]")
	case focusCancel:
		cancel = styleHeading(colorRose).Render("[Cancel]")
	}
	return save + "  " + cancel
}

func (m journalModel) view(w int) string {
	cardW := w - 4
	if cardW > 72 {
		cardW = 72
	}

	parts := []string{
		styleHeading(colorAmber).Render("The Sunshine Journal ☀️"),
		styleMuted().Render("Our most cherished memories, hand-bound with love"),
		"",
	}

	if m.showForm {
		form := strings.Join([]string{
			styleHeading(colorAmber).Render("Add a New Memory ✨"),
			renderInputLine(cardW-4, m.title.View()),
			m.content.View(),
			renderFormButtons(m.focus, "Save This Memory 💝"),
		}, "\n")
		parts = append(parts, renderCard(form, cardW, true), "")
	} else {
		parts = append(parts, styleMuted().Render("n: create a memory"), "")
	}

	parts = append(parts, styleHeading(colorAmber).Render("Our Memories"))
	for i, e := range m.entries {
		expanded := e.ID == m.selectedID
		body := styleHeading(colorAmber).Render(e.Title) + "\n" + styleMuted().Render(e.Date)
		if expanded {
			body += "\n" + renderMarkdown(e.Content, cardW-6)
		} else {
			body += "\n" + padLine(e.Content, cardW-6)
		}
		parts = append(parts, renderCard(body, cardW, i == m.cursor))
	}

	parts = append(parts, renderFooter("enter: expand/collapse  n: new  esc: back  q: quit"))
	return strings.Join(parts, "\n")
}
