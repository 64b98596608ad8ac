package repo

import (
	"context"
	"errors"
	"testing"

	"maddyverse/internal/model"

	"github.com/rs/zerolog"
)

type fakeStore struct {
	selectCalls int
	insertCalls int
	updateCalls int
	deleteCalls int

	selectFn func(table string, dest any) error
	insertFn func(table string, row, dest any) error
	updateFn func(table, id string, patch any) error
	deleteFn func(table, id string) error
}

func (s *fakeStore) SelectAll(ctx context.Context, table string, dest any) error {
	s.selectCalls++
	if s.selectFn == nil {
		return nil
	}
	return s.selectFn(table, dest)
}

func (s *fakeStore) InsertReturning(ctx context.Context, table string, row, dest any) error {
	s.insertCalls++
	if s.insertFn == nil {
		return nil
	}
	return s.insertFn(table, row, dest)
}

func (s *fakeStore) UpdateByID(ctx context.Context, table, id string, patch any) error {
	s.updateCalls++
	if s.updateFn == nil {
		return nil
	}
	return s.updateFn(table, id, patch)
}

func (s *fakeStore) DeleteByID(ctx context.Context, table, id string) error {
	s.deleteCalls++
	if s.deleteFn == nil {
		return nil
	}
	return s.deleteFn(table, id)
}

func TestRepoTables(t *testing.T) {
	s := &fakeStore{}
	log := zerolog.Nop()
	if got := NewLogbook(s, log).Table(); got != "todos" {
		t.Errorf("logbook table = %q; want todos", got)
	}
	if got := NewPoems(s, log).Table(); got != "poems" {
		t.Errorf("poems table = %q; want poems", got)
	}
	if got := NewParagraphs(s, log).Table(); got != "paragraphs" {
		t.Errorf("paragraphs table = %q; want paragraphs", got)
	}
}

func TestCreate_ValidationShortCircuitsBeforeAnyCall(t *testing.T) {
	s := &fakeStore{}
	r := NewLogbook(s, zerolog.Nop())

	_, err := r.Create(context.Background(), LogbookDraft{Text: "  \t ", Category: model.CategoryHome})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v; want *ValidationError", err)
	}
	if ve.Field != "text" {
		t.Fatalf("ValidationError.Field = %q; want text", ve.Field)
	}
	if s.insertCalls != 0 {
		t.Fatalf("insert calls = %d; a rejected draft must not reach the store", s.insertCalls)
	}
}

func TestCreate_UnknownCategoryIsRejected(t *testing.T) {
	s := &fakeStore{}
	r := NewLogbook(s, zerolog.Nop())

	_, err := r.Create(context.Background(), LogbookDraft{Text: "x", Category: "misc"})
	if err == nil {
		t.Fatal("unknown category must be rejected")
	}
	if s.insertCalls != 0 {
		t.Fatal("no call may be made for a rejected draft")
	}
}

func TestNoteDraftValidate(t *testing.T) {
	cases := []struct {
		name  string
		draft NoteDraft
		field string // empty means valid
	}{
		{"both set", NoteDraft{Title: "t", Content: "c"}, ""},
		{"blank title", NoteDraft{Title: " ", Content: "c"}, "title"},
		{"blank content", NoteDraft{Title: "t", Content: "\n"}, "content"},
	}
	for _, tc := range cases {
		err := tc.draft.Validate()
		if tc.field == "" {
			if err != nil {
				t.Errorf("%s: unexpected error %v", tc.name, err)
			}
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != tc.field {
			t.Errorf("%s: err = %v; want ValidationError on %s", tc.name, err, tc.field)
		}
	}
}

func TestCreate_ReturnsServerRow(t *testing.T) {
	s := &fakeStore{
		insertFn: func(table string, row, dest any) error {
			if table != "poems" {
				t.Fatalf("table = %q; want poems", table)
			}
			d := row.(NoteDraft)
			*dest.(*model.Poem) = model.Poem{ID: "srv-1", Title: d.Title, Content: d.Content}
			return nil
		},
	}
	r := NewPoems(s, zerolog.Nop())

	p, err := r.Create(context.Background(), NoteDraft{Title: "Tide", Content: "lines"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID != "srv-1" || p.Title != "Tide" {
		t.Fatalf("created = %+v; want the row the store returned", p)
	}
}

func TestList_ErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")
	s := &fakeStore{selectFn: func(string, any) error { return boom }}
	r := NewLogbook(s, zerolog.Nop())

	items, err := r.List(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v; want the store error", err)
	}
	if items != nil {
		t.Fatal("a failed list must return no items")
	}
}

func TestUpdateAndDelete_ForwardTableAndID(t *testing.T) {
	var gotTable, gotID string
	s := &fakeStore{
		updateFn: func(table, id string, patch any) error {
			gotTable, gotID = table, id
			return nil
		},
		deleteFn: func(table, id string) error {
			gotTable, gotID = table, id
			return nil
		},
	}
	r := NewParagraphs(s, zerolog.Nop())

	if err := r.Update(context.Background(), "p-1", map[string]string{"title": "x"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if gotTable != "paragraphs" || gotID != "p-1" {
		t.Fatalf("update forwarded %s/%s", gotTable, gotID)
	}

	if err := r.Delete(context.Background(), "p-2"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotTable != "paragraphs" || gotID != "p-2" {
		t.Fatalf("delete forwarded %s/%s", gotTable, gotID)
	}
}
