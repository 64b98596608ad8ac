package tui

import (
	"context"
	"strings"
	"time"

	"maddyverse/internal/model"
	"maddyverse/internal/repo"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// note is the page-level shape shared by poems and paragraphs; the two
// tables are structurally identical titled text blocks.
type note struct {
	ID        string
	Title     string
	Content   string
	CreatedAt time.Time
}

// noteRepo narrows a repository to what the page needs. Function fields
// keep the two entity types out of the page model and give tests an
// obvious seam.
type noteRepo struct {
	list   func(ctx context.Context) ([]note, error)
	create func(ctx context.Context, title, content string) (note, error)
	remove func(ctx context.Context, id string) error
}

type notesLoadedMsg struct {
	page  view
	notes []note
	err   error
}

type noteAddedMsg struct {
	page view
	note note
	err  error
}

type noteDeletedMsg struct {
	page view
	id   string
	err  error
}

type notesModel struct {
	page    view
	heading string
	tagline string
	color   lipgloss.TerminalColor
	repo    noteRepo

	// Loading is entered once on first visit and never again: the first
	// call wins, success or failure, and there is no retry.
	loading bool
	loaded  bool

	notes      []note
	selectedID string
	cursor     int

	showForm bool
	title    textinput.Model
	content  textarea.Model
	focus    formFocus

	// lastErr is the observable signal for swallowed remote failures.
	lastErr error

	width int
}

func newNotesModel(page view, heading, tagline string, color lipgloss.TerminalColor, r noteRepo) notesModel {
	title := textinput.New()
	title.Placeholder = "Title..."
	title.CharLimit = 200
	title.Width = 40

	content := textarea.New()
	content.Placeholder = "Your words..."
	content.CharLimit = 0
	content.SetWidth(60)
	content.SetHeight(6)
	content.ShowLineNumbers = false

	return notesModel{
		page:    page,
		heading: heading,
		tagline: tagline,
		color:   color,
		repo:    r,
		title:   title,
		content: content,
	}
}

func newPoemsModel(r *repo.Repo[model.Poem]) notesModel {
	return newNotesModel(viewPoems, "Poems 💜", "Words from my heart to yours", colorPlum, noteRepo{
		list: func(ctx context.Context) ([]note, error) {
			poems, err := r.List(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]note, 0, len(poems))
			for _, p := range poems {
				out = append(out, note{ID: p.ID, Title: p.Title, Content: p.Content, CreatedAt: p.CreatedAt})
			}
			return out, nil
		},
		create: func(ctx context.Context, title, content string) (note, error) {
			p, err := r.Create(ctx, repo.NoteDraft{Title: title, Content: content})
			if err != nil {
				return note{}, err
			}
			return note{ID: p.ID, Title: p.Title, Content: p.Content, CreatedAt: p.CreatedAt}, nil
		},
		remove: r.Delete,
	})
}

func newParagraphsModel(r *repo.Repo[model.Paragraph]) notesModel {
	return newNotesModel(viewParagraphs, "Paragraphs 📝", "Little letters, long thoughts", colorPlum, noteRepo{
		list: func(ctx context.Context) ([]note, error) {
			paras, err := r.List(ctx)
			if err != nil {
				return nil, err
			}
			out := make([]note, 0, len(paras))
			for _, p := range paras {
				out = append(out, note{ID: p.ID, Title: p.Title, Content: p.Content, CreatedAt: p.CreatedAt})
			}
			return out, nil
		},
		create: func(ctx context.Context, title, content string) (note, error) {
			p, err := r.Create(ctx, repo.NoteDraft{Title: title, Content: content})
			if err != nil {
				return note{}, err
			}
			return note{ID: p.ID, Title: p.Title, Content: p.Content, CreatedAt: p.CreatedAt}, nil
		},
		remove: r.Delete,
	})
}

func (m notesModel) typing() bool {
	return m.showForm && (m.focus == focusTitle || m.focus == focusContent)
}

func (m *notesModel) resize(w, h int) {
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

// enterCmd kicks off the one-time load on the first visit.
func (m *notesModel) enterCmd() tea.Cmd {
	if m.loaded || m.loading {
		return nil
	}
	m.loading = true
	page := m.page
	list := m.repo.list
	return func() tea.Msg {
		notes, err := list(context.Background())
		return notesLoadedMsg{page: page, notes: notes, err: err}
	}
}

func (m *notesModel) openForm() {
	m.showForm = true
	m.focus = focusTitle
	m.title.Focus()
	m.content.Blur()
}

func (m *notesModel) closeForm() {
	m.showForm = false
	m.focus = focusTitle
	m.title.SetValue("")
	m.title.Blur()
	m.content.SetValue("")
	m.content.Blur()
}

func (m *notesModel) setFocus(f formFocus) {
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

// submit issues the create. Validation happens in the repository before
// any call goes out; a rejected draft comes back as noteAddedMsg with
// the validation error, and the form keeps its values.
func (m notesModel) submit() (notesModel, tea.Cmd) {
	page := m.page
	create := m.repo.create
	title := m.title.Value()
	content := m.content.Value()
	return m, func() tea.Msg {
		n, err := create(context.Background(), title, content)
		return noteAddedMsg{page: page, note: n, err: err}
	}
}

// deleteSelected issues the delete for the entry under the cursor. The
// local list is only patched when the call succeeds.
func (m notesModel) deleteSelected() (notesModel, tea.Cmd) {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return m, nil
	}
	page := m.page
	remove := m.repo.remove
	id := m.notes[m.cursor].ID
	return m, func() tea.Msg {
		err := remove(context.Background(), id)
		return noteDeletedMsg{page: page, id: id, err: err}
	}
}

// toggleSelected tracks expansion as "currently selected identifier":
// selecting the expanded entry collapses it, selecting another entry
// moves the expansion there.
func (m notesModel) toggleSelected() notesModel {
	if m.cursor < 0 || m.cursor >= len(m.notes) {
		return m
	}
	id := m.notes[m.cursor].ID
	if m.selectedID == id {
		m.selectedID = ""
	} else {
		m.selectedID = id
	}
	return m
}

func (m notesModel) updateMsg(msg tea.Msg) (notesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		m.loading = false
		m.loaded = true
		if msg.err != nil {
			// Keep the empty list; the page stays usable.
			m.lastErr = msg.err
			return m, nil
		}
		m.notes = msg.notes
		return m, nil

	case noteAddedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		m.notes = append([]note{msg.note}, m.notes...)
		m.cursor = 0
		m.closeForm()
		return m, nil

	case noteDeletedMsg:
		if msg.err != nil {
			m.lastErr = msg.err
			return m, nil
		}
		kept := m.notes[:0]
		for _, n := range m.notes {
			if n.ID != msg.id {
				kept = append(kept, n)
			}
		}
		m.notes = kept
		if m.selectedID == msg.id {
			m.selectedID = ""
		}
		if m.cursor >= len(m.notes) && m.cursor > 0 {
			m.cursor = len(m.notes) - 1
		}
		return m, nil
	}
	return m, nil
}

func (m notesModel) update(msg tea.KeyMsg) (notesModel, tea.Cmd) {
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
		if m.cursor < len(m.notes)-1 {
			m.cursor++
		}
		return m, nil
	case "enter", " ":
		return m.toggleSelected(), nil
	case "d":
		return m.deleteSelected()
	}
	return m, nil
}

func (m notesModel) updateForm(msg tea.KeyMsg) (notesModel, tea.Cmd) {
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
			return m.submit()
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

func (m notesModel) view(w int) string {
	cardW := w - 4
	if cardW > 72 {
		cardW = 72
	}

	parts := []string{
		styleHeading(m.color).Render(m.heading),
		styleMuted().Render(m.tagline),
		"",
	}

	switch {
	case m.showForm:
		form := strings.Join([]string{
			styleHeading(m.color).Render("Write something new 💝"),
			renderInputLine(cardW-4, m.title.View()),
			m.content.View(),
			renderFormButtons(m.focus, "Save 💕"),
		}, "\n")
		parts = append(parts, renderCard(form, cardW, true), "")
	case m.loading:
		parts = append(parts, styleMuted().Render("Loading..."), "")
	default:
		parts = append(parts, styleMuted().Render("n: write a new one"), "")
	}

	if !m.loading && len(m.notes) == 0 {
		parts = append(parts, styleMuted().Render("Nothing here yet. Start creating! 💜"))
	}
	for i, n := range m.notes {
		expanded := n.ID == m.selectedID
		body := styleHeading(m.color).Render(n.Title) + "\n" +
			styleMuted().Render(n.CreatedAt.Format("2006-01-02"))
		if expanded {
			body += "\n" + renderMarkdown(n.Content, cardW-6)
		} else {
			body += "\n" + padLine(firstLine(n.Content), cardW-6)
		}
		parts = append(parts, renderCard(body, cardW, i == m.cursor))
	}

	parts = append(parts, renderFooter("enter: expand/collapse  n: new  d: delete  esc: back  q: quit"))
	return strings.Join(parts, "\n")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
