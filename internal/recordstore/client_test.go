package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type row struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

func TestSelectAll_RequestShapeAndDecode(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_ = json.NewEncoder(w).Encode([]row{{ID: "2", Text: "newer"}, {ID: "1", Text: "older"}})
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "anon-key") // trailing slash must not double up
	var rows []row
	if err := c.SelectAll(context.Background(), "todos", &rows); err != nil {
		t.Fatalf("SelectAll: %v", err)
	}

	if got.Method != http.MethodGet || got.URL.Path != "/rest/v1/todos" {
		t.Fatalf("request = %s %s; want GET /rest/v1/todos", got.Method, got.URL.Path)
	}
	q := got.URL.Query()
	if q.Get("select") != "*" || q.Get("order") != "created_at.desc" {
		t.Fatalf("query = %q; want select=* and order=created_at.desc", got.URL.RawQuery)
	}
	if got.Header.Get("apikey") != "anon-key" {
		t.Fatalf("apikey header = %q", got.Header.Get("apikey"))
	}
	if got.Header.Get("Authorization") != "Bearer anon-key" {
		t.Fatalf("authorization header = %q", got.Header.Get("Authorization"))
	}
	if len(rows) != 2 || rows[0].ID != "2" {
		t.Fatalf("rows = %+v; want server order preserved", rows)
	}
}

func TestSelectAll_NonOKStatusIsFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	var rows []row
	err := New(srv.URL, "bad-key").SelectAll(context.Background(), "todos", &rows)
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v; want *FetchError", err)
	}
	if fe.Table != "todos" {
		t.Fatalf("FetchError.Table = %q", fe.Table)
	}
	if len(rows) != 0 {
		t.Fatal("a failed fetch must not populate dest")
	}
}

func TestInsertReturning_SendsPreferAndDecodesObject(t *testing.T) {
	var got *http.Request
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(row{ID: "srv-1", Text: body["text"].(string)})
	}))
	defer srv.Close()

	c := New(srv.URL, "anon-key")
	var out row
	err := c.InsertReturning(context.Background(), "poems", map[string]string{"text": "hello"}, &out)
	if err != nil {
		t.Fatalf("InsertReturning: %v", err)
	}

	if got.Method != http.MethodPost || got.URL.Path != "/rest/v1/poems" {
		t.Fatalf("request = %s %s", got.Method, got.URL.Path)
	}
	if got.Header.Get("Prefer") != "return=representation" {
		t.Fatalf("Prefer header = %q", got.Header.Get("Prefer"))
	}
	if got.Header.Get("Accept") != "application/vnd.pgrst.object+json" {
		t.Fatalf("Accept header = %q", got.Header.Get("Accept"))
	}
	if got.Header.Get("Content-Type") != "application/json" {
		t.Fatalf("Content-Type header = %q", got.Header.Get("Content-Type"))
	}
	if out.ID != "srv-1" || out.Text != "hello" {
		t.Fatalf("out = %+v; want the server's row", out)
	}
}

func TestInsertReturning_ErrorStatusIsWriteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	var out row
	err := New(srv.URL, "k").InsertReturning(context.Background(), "poems", row{}, &out)
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v; want *WriteError", err)
	}
	if we.Table != "poems" || we.Op != "insert" {
		t.Fatalf("WriteError = %+v", we)
	}
}

func TestUpdateByID_PatchesByEqualityFilter(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := New(srv.URL, "k").UpdateByID(context.Background(), "todos", "abc-123",
		map[string]bool{"completed": true})
	if err != nil {
		t.Fatalf("UpdateByID: %v", err)
	}
	if got.Method != http.MethodPatch {
		t.Fatalf("method = %s; want PATCH", got.Method)
	}
	if got.URL.RawQuery != "id=eq.abc-123" {
		t.Fatalf("query = %q; want id=eq.abc-123", got.URL.RawQuery)
	}
}

func TestDeleteByID_NoContentIsSuccess(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := New(srv.URL, "k").DeleteByID(context.Background(), "todos", "abc-123"); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if got.Method != http.MethodDelete || got.URL.RawQuery != "id=eq.abc-123" {
		t.Fatalf("request = %s ?%s", got.Method, got.URL.RawQuery)
	}
}

func TestDeleteByID_ServerErrorIsWriteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := New(srv.URL, "k").DeleteByID(context.Background(), "todos", "abc-123")
	var we *WriteError
	if !errors.As(err, &we) {
		t.Fatalf("err = %v; want *WriteError", err)
	}
	if we.Op != "delete" {
		t.Fatalf("WriteError.Op = %q; want delete", we.Op)
	}
}
