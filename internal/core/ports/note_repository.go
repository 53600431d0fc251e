package ports

import (
	"context"

	"github.com/notewise/notes-api/internal/core/domain"
)

// ListNotesFilter carries the query parameters for listing notes.
// UserID is always set by the service layer (ownership scoping).
type ListNotesFilter struct {
	UserID  string
	Search  string // optional: case-insensitive substring match on title or content
	Page    int    // 1-based
	PerPage int    // rows per page
}

// NoteRepository defines persistence operations for notes. Every lookup and
// mutation is filtered by both note id and owning user id, so a non-owner's
// request is indistinguishable from a missing note.
type NoteRepository interface {
	// FindByID returns domain.ErrNoteNotFound when no note matches the
	// (noteID, userID) pair.
	FindByID(ctx context.Context, noteID, userID string) (*domain.Note, error)
	// List returns a page of notes sorted by last_update descending, plus
	// the total count matching the filter.
	List(ctx context.Context, filter ListNotesFilter) ([]*domain.Note, int64, error)
	Insert(ctx context.Context, note *domain.Note) error
	// Update rewrites title, content and last_update for the note matching
	// (note.NoteID, note.UserID) and returns the modified count.
	Update(ctx context.Context, note *domain.Note) (int64, error)
	// Delete removes the note matching (noteID, userID) and returns the
	// deleted count.
	Delete(ctx context.Context, noteID, userID string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}
