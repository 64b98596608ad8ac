// Package repo adapts entities to record store calls. One generic
// repository covers the three remote tables; the entity type and table
// name are the only things that vary.
package repo

import (
	"context"
	"fmt"
	"strings"

	"maddyverse/internal/model"

	"github.com/rs/zerolog"
)

// Store is the slice of the record store client a repository needs.
// Tests substitute fakes.
type Store interface {
	SelectAll(ctx context.Context, table string, dest any) error
	InsertReturning(ctx context.Context, table string, row any, dest any) error
	UpdateByID(ctx context.Context, table, id string, patch any) error
	DeleteByID(ctx context.Context, table, id string) error
}

// ValidationError means a draft was rejected locally; no remote call
// was made and no state changed.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// Draft is a create payload that knows how to validate itself.
type Draft interface {
	Validate() error
}

// LogbookDraft is the create payload for the todos table.
type LogbookDraft struct {
	Text      string         `json:"text"`
	Category  model.Category `json:"category"`
	Completed bool           `json:"completed"`
}

func (d LogbookDraft) Validate() error {
	if strings.TrimSpace(d.Text) == "" {
		return &ValidationError{Field: "text"}
	}
	if !d.Category.Valid() {
		return fmt.Errorf("unknown category %q", d.Category)
	}
	return nil
}

// NoteDraft is the create payload for poems and paragraphs.
type NoteDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (d NoteDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return &ValidationError{Field: "title"}
	}
	if strings.TrimSpace(d.Content) == "" {
		return &ValidationError{Field: "content"}
	}
	return nil
}

// Repo is a per-table entity adapter. Failures are logged here and
// returned to the caller, which leaves its local state untouched.
type Repo[E any] struct {
	store Store
	table string
	log   zerolog.Logger
}

func NewLogbook(s Store, log zerolog.Logger) *Repo[model.LogbookItem] {
	return &Repo[model.LogbookItem]{store: s, table: "todos", log: log}
}

func NewPoems(s Store, log zerolog.Logger) *Repo[model.Poem] {
	return &Repo[model.Poem]{store: s, table: "poems", log: log}
}

func NewParagraphs(s Store, log zerolog.Logger) *Repo[model.Paragraph] {
	return &Repo[model.Paragraph]{store: s, table: "paragraphs", log: log}
}

// Table reports the remote table this repository is bound to.
func (r *Repo[E]) Table() string { return r.table }

// List fetches all rows, newest first. On failure the caller is left
// with an empty list; there is no retry.
func (r *Repo[E]) List(ctx context.Context) ([]E, error) {
	var out []E
	if err := r.store.SelectAll(ctx, r.table, &out); err != nil {
		r.log.Error().Err(err).Str("table", r.table).Msg("list failed")
		return nil, err
	}
	return out, nil
}

// Create validates the draft, and only then issues a single insert
// expecting exactly one row back. The returned entity carries the
// server-assigned id and timestamp; the caller prepends it.
func (r *Repo[E]) Create(ctx context.Context, d Draft) (E, error) {
	var out E
	if err := d.Validate(); err != nil {
		return out, err
	}
	if err := r.store.InsertReturning(ctx, r.table, d, &out); err != nil {
		r.log.Error().Err(err).Str("table", r.table).Msg("create failed")
		return out, err
	}
	return out, nil
}

// Update patches the identified row. On success the caller applies
// exactly what it requested; nothing is re-fetched.
func (r *Repo[E]) Update(ctx context.Context, id string, patch any) error {
	if err := r.store.UpdateByID(ctx, r.table, id, patch); err != nil {
		r.log.Error().Err(err).Str("table", r.table).Str("id", id).Msg("update failed")
		return err
	}
	return nil
}

// Delete removes the identified row. On success the caller drops the
// matching local entry by id.
func (r *Repo[E]) Delete(ctx context.Context, id string) error {
	if err := r.store.DeleteByID(ctx, r.table, id); err != nil {
		r.log.Error().Err(err).Str("table", r.table).Str("id", id).Msg("delete failed")
		return err
	}
	return nil
}
