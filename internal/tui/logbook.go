package tui

import (
	"context"
	"strings"

	"maddyverse/internal/model"
	"maddyverse/internal/repo"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type logbookLoadedMsg struct {
	items []model.LogbookItem
	err   error
}

type logbookAddedMsg struct {
	item model.LogbookItem
	err  error
}

type logbookToggledMsg struct {
	id        string
	completed bool
	err       error
}

type logbookDeletedMsg struct {
	id  string
	err error
}

// completedPatch is the update payload for the toggle operation.
type completedPatch struct {
	Completed bool `json:"completed"`
}

type logbookModel struct {
	repo *repo.Repo[model.LogbookItem]

	loading bool
	loaded  bool

	items []model.LogbookItem

	catIdx int
	input  textinput.Model

	// focusList switches the keyboard between the add form and the
	// item list.
	focusList bool
	cursor    int

	// lastErr is the observable signal for swallowed remote failures.
	lastErr error

	width int
}

func newLogbookModel(r *repo.Repo[model.LogbookItem]) logbookModel {
	input := textinput.New()
	input.Placeholder = "What are we dreaming of?"
	input.CharLimit = 300
	input.Width = 40
	input.Focus()

	return logbookModel{repo: r, input: input}
}

func (m logbookModel) typing() bool {
	return !m.focusList
}

func (m *logbookModel) resize(w, h int) {
	m.width = w
	cw := w - 8
	if cw > 72 {
		cw = 72
	}
	if cw < 20 {
		cw = 20
	}
	m.input.Width = cw
}

func (m *logbookModel) enterCmd() tea.Cmd {
	if m.loaded || m.loading {
		return nil
	}
	m.loading = true
	r := m.repo
	return func() tea.Msg {
		items, err := r.List(context.Background())
		return logbookLoadedMsg{items: items, err: err}
	}
}

// grouped partitions items by category in the fixed category order.
// Categories with zero items are omitted entirely; items with unknown
// categories are never displayed.
func (m logbookModel) grouped() []categoryGroup {
	var out []categoryGroup
	for _, cat := range model.Categories {
		var items []model.LogbookItem
		for _, it := range m.items {
			if it.Category == cat {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		out = append(out, categoryGroup{cat: cat, items: items})
	}
	return out
}

type categoryGroup struct {
	cat   model.Category
	items []model.LogbookItem
}

// visible flattens the grouped view for cursor navigation.
func (m logbookModel) visible() []model.LogbookItem {
	var out []model.LogbookItem
	for _, g := range m.grouped() {
		out = append(out, g.items...)
	}
	return out
}

func (m logbookModel) add() (logbookModel, tea.Cmd) {
	r := m.repo
	draft := repo.LogbookDraft{
		Text:     m.input.Value(),
		Category: model.Categories[m.catIdx],
	}
	return m, func() tea.Msg {
		item, err := r.Create(context.Background(), draft)
		return logbookAddedMsg{item: item, err: err}
	}
}

func (m logbookModel) toggleAt(idx int) (logbookModel, tea.Cmd) {
	vis := m.visible()
	if idx < 0 || idx >= len(vis) {
		return m, nil
	}
	r := m.repo
	id := vis[idx].ID
	target := !vis[idx].Completed
	return m, func() tea.Msg {
		err := r.Update(context.Background(), id, completedPatch{Completed: target})
		return logbookToggledMsg{id: id, completed: target, err: err}
	}
}

func (m logbookModel) deleteAt(idx int) (logbookModel, tea.Cmd) {
	vis := m.visible()
	if idx < 0 || idx >= len(vis) {
		return m, nil
	}
	r := m.repo
	id := vis[idx].ID
	return m, func() tea.Msg {
		err := r.Delete(context.Background(), id)
		return logbookDeletedMsg{id: id, err: err}
	}
}

func (m logbookModel) updateMsg(msg tea.Msg) (logbookModel, tea.Cmd) {
	switch msg := msg.(type) {
	case logbookLoadedMsg:
		m.loading = false
		m.loaded = true
		if msg.err != nil {
			// Keep the empty list; no retry, first success wins.
			m.lastErr = msg.err
			return m, nil
		}
		m.items = msg.items
		return m, nil

	case logbookAddedMsg:
		if msg.err != nil {
			// Validation rejections and write failures both land here:
			// the form keeps its text and nothing local changes.
			m.lastErr = msg.err
			return m, nil
		}
		m.items = append([]model.LogbookItem{msg.item}, m.items...)
		m.input.SetValue("")
		return m, nil

	case logbookToggledMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		// Apply exactly what was requested; nothing is re-fetched.
		for i := range m.items {
			if m.items[i].ID == msg.id {
				m.items[i].Completed = msg.completed
			}
		}
		return m, nil

	case logbookDeletedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		kept := m.items[:0]
		for _, it := range m.items {
			if it.ID != msg.id {
				kept = append(kept, it)
			}
		}
		m.items = kept
		if vis := m.visible(); m.cursor >= len(vis) && m.cursor > 0 {
			m.cursor = len(vis) - 1
		}
		return m, nil
	}
	return m, nil
}

func (m logbookModel) update(msg tea.KeyMsg) (logbookModel, tea.Cmd) {
	if m.focusList {
		switch msg.String() {
		case "tab":
			m.focusList = false
			m.input.Focus()
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
			return m, nil
		case " ", "x", "enter":
			return m.toggleAt(m.cursor)
		case "d":
			return m.deleteAt(m.cursor)
		}
		return m, nil
	}

	switch msg.String() {
	case "esc":
		// Out of the input first; a second esc (list focus) goes home.
		m.focusList = true
		m.input.Blur()
		return m, nil
	case "tab":
		m.focusList = true
		m.input.Blur()
		return m, nil
	case "left":
		m.catIdx = (m.catIdx + len(model.Categories) - 1) % len(model.Categories)
		return m, nil
	case "right":
		m.catIdx = (m.catIdx + 1) % len(model.Categories)
		return m, nil
	case "enter":
		return m.add()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m logbookModel) view(w int) string {
	cardW := w - 4
	if cardW > 72 {
		cardW = 72
	}

	cats := make([]string, 0, len(model.Categories))
	for i, c := range model.Categories {
		label := c.Label()
		if i == m.catIdx {
			label = lipgloss.NewStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true).
				Render(" " + label + " ")
		} else {
			label = " " + label + " "
		}
		cats = append(cats, label)
	}

	form := strings.Join([]string{
		styleHeading(colorBlue).Render("Add to Our Story ✨"),
		styleMuted().Render("What adventure is calling?"),
		strings.Join(cats, " "),
		renderInputLine(cardW-4, m.input.View()),
	}, "\n")

	parts := []string{
		styleHeading(colorBlue).Render("The Lifephile Logbook 📖"),
		styleMuted().Render("Adventures, dreams, and memories we'll create together"),
		"",
		renderCard(form, cardW, !m.focusList),
		"",
	}

	switch {
	case m.loading:
		parts = append(parts, styleMuted().Render("Loading your dreams..."))
	case len(m.items) == 0:
		parts = append(parts, styleMuted().Render("No adventures yet! Start dreaming... ✨"))
	default:
		row := 0
		for _, g := range m.grouped() {
			rows := make([]string, 0, len(g.items))
			for _, it := range g.items {
				box := "[ ]"
				if it.Completed {
					box = "[x]"
				}
				line := box + " " + it.Text
				st := lipgloss.NewStyle()
				if it.Completed {
					st = st.Foreground(colorDone).Strikethrough(true)
				}
				line = st.Render(line)
				if m.focusList && row == m.cursor {
					line = "▸ " + line
				} else {
					line = "  " + line
				}
				rows = append(rows, line)
				row++
			}
			parts = append(parts, renderSection(styleHeading(colorBlue), g.cat.Label(), rows), "")
		}
	}

	help := "type + enter: add  ←/→: category  tab: items  q: quit"
	if m.focusList {
		help = "space/x: toggle  d: delete  tab: form  esc: back  q: quit"
	}
	parts = append(parts, renderFooter(help))
	return strings.Join(parts, "\n")
}
