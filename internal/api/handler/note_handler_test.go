package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/notewise/notes-api/internal/core/domain"
	"github.com/notewise/notes-api/internal/core/ports"
)

type stubNoteService struct {
	listFn   func(ctx context.Context, input ports.ListNotesInput) (*ports.ListNotesResult, error)
	createFn func(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error)
	updateFn func(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error)
	deleteFn func(ctx context.Context, noteID, userID string) error
}

func (s *stubNoteService) List(ctx context.Context, input ports.ListNotesInput) (*ports.ListNotesResult, error) {
	return s.listFn(ctx, input)
}

func (s *stubNoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	return s.createFn(ctx, input)
}

func (s *stubNoteService) Update(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
	return s.updateFn(ctx, input)
}

func (s *stubNoteService) Delete(ctx context.Context, noteID, userID string) error {
	return s.deleteFn(ctx, noteID, userID)
}

func sampleNote() *domain.Note {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Note{
		NoteID:      "n-1",
		UserID:      "u-1",
		NoteTitle:   "Groceries",
		NoteContent: "Milk and eggs",
		CreatedOn:   now,
		LastUpdate:  now,
	}
}

func newNoteContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u-1")
	return c, rec
}

func TestNoteHandler_List_Success(t *testing.T) {
	stub := &stubNoteService{
		listFn: func(_ context.Context, input ports.ListNotesInput) (*ports.ListNotesResult, error) {
			if input.UserID != "u-1" {
				t.Fatalf("unexpected user id %q", input.UserID)
			}
			if input.Page != 2 || input.PerPage != 5 {
				t.Fatalf("expected page=2 per_page=5, got %d/%d", input.Page, input.PerPage)
			}
			if input.Search != "milk" {
				t.Fatalf("expected search=milk, got %q", input.Search)
			}
			return &ports.ListNotesResult{
				Notes:   []*domain.Note{sampleNote()},
				Total:   11,
				Page:    2,
				PerPage: 5,
				Pages:   3,
			}, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodGet, "/api/v1/notes?page=2&per_page=5&search=milk", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listNotesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Notes) != 1 || resp.Notes[0].NoteID != "n-1" {
		t.Fatalf("unexpected notes: %+v", resp.Notes)
	}
	if resp.Pagination.Total != 11 || resp.Pagination.Pages != 3 || resp.Pagination.Page != 2 {
		t.Fatalf("unexpected pagination: %+v", resp.Pagination)
	}
	if resp.Notes[0].CreatedOn != "2024-05-01T12:00:00Z" {
		t.Fatalf("expected RFC3339 created_on, got %q", resp.Notes[0].CreatedOn)
	}
}

func TestNoteHandler_List_DefaultsOnBadQuery(t *testing.T) {
	stub := &stubNoteService{
		listFn: func(_ context.Context, input ports.ListNotesInput) (*ports.ListNotesResult, error) {
			if input.Page != 1 || input.PerPage != 10 {
				t.Fatalf("expected defaults 1/10, got %d/%d", input.Page, input.PerPage)
			}
			return &ports.ListNotesResult{Notes: nil, Page: 1, PerPage: 10}, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodGet, "/api/v1/notes?page=abc&per_page=", "")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestNoteHandler_List_MissingUser(t *testing.T) {
	h := NewNoteHandler(&stubNoteService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestNoteHandler_Create_Success(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(_ context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
			if input.Title != "Groceries" || input.Content != "Milk and eggs" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return sampleNote(), nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodPost, "/api/v1/notes",
		`{"note_title":"Groceries","note_content":"Milk and eggs"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp noteEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Note created successfully" || resp.Note.NoteID != "n-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestNoteHandler_Create_LegacyFieldNames(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(_ context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
			if input.Title != "Groceries" || input.Content != "Milk and eggs" {
				t.Fatalf("legacy fields not normalized: %+v", input)
			}
			return sampleNote(), nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodPost, "/api/v1/notes",
		`{"title":"Groceries","content":"Milk and eggs"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestNoteHandler_Create_MissingFields(t *testing.T) {
	stub := &stubNoteService{
		createFn: func(context.Context, ports.CreateNoteInput) (*domain.Note, error) {
			return nil, domain.ErrMissingFields
		},
	}
	h := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodPost, "/api/v1/notes", `{"note_title":"only title"}`)
	if err := h.Create(c); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields to propagate, got %v", err)
	}
}

func TestNoteHandler_Update_Success(t *testing.T) {
	stub := &stubNoteService{
		updateFn: func(_ context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
			if input.NoteID != "n-1" || input.UserID != "u-1" {
				t.Fatalf("unexpected input: %+v", input)
			}
			n := sampleNote()
			n.NoteTitle = input.Title
			n.NoteContent = input.Content
			return n, nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodPut, "/api/v1/notes/n-1",
		`{"note_title":"Updated","note_content":"New content"}`)
	c.SetParamNames("note_id")
	c.SetParamValues("n-1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp noteEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Note updated successfully" || resp.Note.NoteTitle != "Updated" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestNoteHandler_Update_NotFound(t *testing.T) {
	stub := &stubNoteService{
		updateFn: func(context.Context, ports.UpdateNoteInput) (*domain.Note, error) {
			return nil, domain.ErrNoteNotFound
		},
	}
	h := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodPut, "/api/v1/notes/n-other",
		`{"note_title":"t","note_content":"c"}`)
	c.SetParamNames("note_id")
	c.SetParamValues("n-other")

	if err := h.Update(c); !errors.Is(err, domain.ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound to propagate, got %v", err)
	}
}

func TestNoteHandler_Delete_Success(t *testing.T) {
	var called bool
	stub := &stubNoteService{
		deleteFn: func(_ context.Context, noteID, userID string) error {
			called = true
			if noteID != "n-1" || userID != "u-1" {
				t.Fatalf("unexpected args: %s %s", noteID, userID)
			}
			return nil
		},
	}
	h := NewNoteHandler(stub)

	c, rec := newNoteContext(t, http.MethodDelete, "/api/v1/notes/n-1", "")
	c.SetParamNames("note_id")
	c.SetParamValues("n-1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("service was not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp messageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Note deleted successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
}

func TestNoteHandler_Delete_InvalidID(t *testing.T) {
	stub := &stubNoteService{
		deleteFn: func(context.Context, string, string) error {
			return domain.ErrInvalidNoteID
		},
	}
	h := NewNoteHandler(stub)

	c, _ := newNoteContext(t, http.MethodDelete, "/api/v1/notes/undefined", "")
	c.SetParamNames("note_id")
	c.SetParamValues("undefined")

	if err := h.Delete(c); !errors.Is(err, domain.ErrInvalidNoteID) {
		t.Fatalf("expected ErrInvalidNoteID to propagate, got %v", err)
	}
}
