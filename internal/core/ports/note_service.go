package ports

import (
	"context"

	"github.com/notewise/notes-api/internal/core/domain"
)

// ListNotesInput carries all parameters for the list endpoint.
type ListNotesInput struct {
	UserID  string
	Search  string
	Page    int
	PerPage int
}

// ListNotesResult is one page of a user's notes. Page and PerPage reflect the
// clamped values actually applied.
type ListNotesResult struct {
	Notes   []*domain.Note
	Total   int64
	Page    int
	PerPage int
	Pages   int
}

// CreateNoteInput carries the data for a new note.
type CreateNoteInput struct {
	UserID  string
	Title   string
	Content string
}

// UpdateNoteInput carries the data for rewriting an existing note.
type UpdateNoteInput struct {
	NoteID  string
	UserID  string
	Title   string
	Content string
}

// NoteService defines use-case operations for notes. All operations are
// scoped to the requesting user.
type NoteService interface {
	List(ctx context.Context, input ListNotesInput) (*ListNotesResult, error)
	Create(ctx context.Context, input CreateNoteInput) (*domain.Note, error)
	Update(ctx context.Context, input UpdateNoteInput) (*domain.Note, error)
	Delete(ctx context.Context, noteID, userID string) error
}
