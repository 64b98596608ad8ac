package model

import (
	"encoding/json"
	"testing"
)

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		if !c.Valid() {
			t.Errorf("%s must be valid", c)
		}
	}
	for _, c := range []Category{"", "misc", "Adventures", "HOME"} {
		if c.Valid() {
			t.Errorf("%q must not be valid", c)
		}
	}
}

func TestCategoriesAreDistinctAndLabeled(t *testing.T) {
	if len(Categories) != 5 {
		t.Fatalf("categories = %d; want 5", len(Categories))
	}
	seen := map[Category]bool{}
	for _, c := range Categories {
		if seen[c] {
			t.Fatalf("duplicate category %s", c)
		}
		seen[c] = true
		if c.Label() == string(c) {
			t.Errorf("%s has no display label", c)
		}
	}
}

func TestCategoryLabel_UnknownFallsBackToRawValue(t *testing.T) {
	if got := Category("misc").Label(); got != "misc" {
		t.Fatalf("label = %q; want the raw value", got)
	}
}

func TestLogbookItemJSONFieldNames(t *testing.T) {
	// The remote table speaks snake_case; the wire names are load-bearing.
	raw := `{"id":"1","text":"x","category":"trips","completed":true,"created_at":"2026-01-02T03:04:05Z"}`
	var it LogbookItem
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.ID != "1" || it.Category != CategoryTrips || !it.Completed {
		t.Fatalf("decoded = %+v", it)
	}
	if it.CreatedAt.IsZero() {
		t.Fatal("created_at must map onto CreatedAt")
	}
}

func TestNicknameWheelShape(t *testing.T) {
	if len(NicknameWheel) != 5 {
		t.Fatalf("wheel = %d entries; want 5", len(NicknameWheel))
	}
	if NicknameWheel[0].Name != "Maddy" {
		t.Fatalf("wheel[0] = %q; the wheel order is fixed", NicknameWheel[0].Name)
	}
	for i, n := range NicknameWheel {
		if n.Name == "" || n.Message == "" {
			t.Fatalf("wheel[%d] is incomplete: %+v", i, n)
		}
	}
}

func TestSeedJournalEntry(t *testing.T) {
	if SeedJournalEntry.ID == "" || SeedJournalEntry.Title == "" {
		t.Fatal("seed entry must be fully populated")
	}
	if SeedJournalEntry.Date != "2023-12-18" {
		t.Fatalf("seed date = %q; want 2023-12-18", SeedJournalEntry.Date)
	}
}
