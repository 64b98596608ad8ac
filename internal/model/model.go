package model

import "time"

// Category is the fixed logbook category set. Items carrying a category
// outside this set are never displayed (no error).
type Category string

const (
	CategoryAdventures Category = "adventures"
	CategoryHome       Category = "home"
	CategoryTrips      Category = "trips"
	CategoryMemories   Category = "memories"
	CategoryDreams     Category = "dreams"
)

// Categories lists the categories in display order. The logbook renders
// its sections in this order, not in creation order.
var Categories = []Category{
	CategoryAdventures,
	CategoryHome,
	CategoryTrips,
	CategoryMemories,
	CategoryDreams,
}

var categoryLabels = map[Category]string{
	CategoryAdventures: "🗺️  Adventures",
	CategoryHome:       "🏠 Home",
	CategoryTrips:      "✈️  Trips",
	CategoryMemories:   "💕 Memories",
	CategoryDreams:     "✨ Dreams",
}

func (c Category) Valid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// LogbookItem is a row in the remote "todos" table.
type LogbookItem struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Category  Category  `json:"category"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Poem is a row in the remote "poems" table.
type Poem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Paragraph is a row in the remote "paragraphs" table. Structurally a
// Poem, but kept as its own type so the two tables can't be mixed up.
type Paragraph struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// JournalEntry lives only in memory for the lifetime of the process.
// IDs are client-generated; nothing is written to the record store.
type JournalEntry struct {
	ID      string
	Title   string
	Content string
	// Date is a calendar date string (YYYY-MM-DD).
	Date string
}

// Nickname is one stop on the arcade's nickname wheel.
type Nickname struct {
	Name    string
	Message string
}

// NicknameWheel is the fixed, ordered wheel the arcade spins through.
// Selection is tick count modulo len(NicknameWheel); no randomness.
var NicknameWheel = []Nickname{
	{Name: "Maddy", Message: "You're madly cute, madly mine, and my favorite kind of madness."},
	{Name: "Little Angel", Message: "You light up my world in ways I never thought possible. 🌟"},
	{Name: "Lifephile", Message: "My life was grayscale until you came along. Thank you for the color. 🎨"},
	{Name: "Madness", Message: "You're my favorite kind of beautiful chaos. Forever and always. 💫"},
	{Name: "Morning Sunshine", Message: "Every morning with you feels like a new beginning. ☀️"},
}

// Home counter reference dates.
var (
	MaddyBirthDate = time.Date(2005, time.February, 24, 0, 0, 0, 0, time.UTC)
	BubLoveDate    = time.Date(2023, time.December, 18, 0, 0, 0, 0, time.UTC)
)

// SeedJournalEntry is the one entry the journal starts with.
var SeedJournalEntry = JournalEntry{
	ID:      "entry-first-moment",
	Title:   "The First Moment I Knew",
	Content: "There was something about your laugh that made everything feel right.",
	Date:    "2023-12-18",
}
