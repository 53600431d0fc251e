package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/notewise/notes-api/internal/core/domain"
	"github.com/notewise/notes-api/internal/core/ports"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// NoteService implements ownership-scoped note CRUD with pagination and
// search.
type NoteService struct {
	notes ports.NoteRepository
	log   zerolog.Logger
}

func NewNoteService(notes ports.NoteRepository, log zerolog.Logger) *NoteService {
	return &NoteService{notes: notes, log: log}
}

// List returns one page of the user's notes, newest edit first. Page values
// below 1 become 1; per-page values below 1 fall back to the default and are
// capped at maxPerPage.
func (s *NoteService) List(ctx context.Context, input ports.ListNotesInput) (*ports.ListNotesResult, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	perPage := input.PerPage
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	notes, total, err := s.notes.List(ctx, ports.ListNotesFilter{
		UserID:  input.UserID,
		Search:  input.Search,
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	pages := int((total + int64(perPage) - 1) / int64(perPage))
	return &ports.ListNotesResult{
		Notes:   notes,
		Total:   total,
		Page:    page,
		PerPage: perPage,
		Pages:   pages,
	}, nil
}

// Create inserts a new note owned by input.UserID. Both timestamps are set to
// the same instant.
func (s *NoteService) Create(ctx context.Context, input ports.CreateNoteInput) (*domain.Note, error) {
	if input.Title == "" || input.Content == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	note := &domain.Note{
		NoteID:      uuid.NewString(),
		UserID:      input.UserID,
		NoteTitle:   input.Title,
		NoteContent: input.Content,
		CreatedOn:   now,
		LastUpdate:  now,
	}

	if err := s.notes.Insert(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}

	s.log.Info().Str("note_id", note.NoteID).Str("user_id", note.UserID).Msg("note created")
	return note, nil
}

// Update rewrites title and content of the user's note and refreshes
// last_update. CreatedOn is never touched. A lookup miss reports
// ErrNoteNotFound whether the note does not exist or belongs to another user.
func (s *NoteService) Update(ctx context.Context, input ports.UpdateNoteInput) (*domain.Note, error) {
	if err := validateNoteID(input.NoteID); err != nil {
		return nil, err
	}
	if input.Title == "" || input.Content == "" {
		return nil, domain.ErrMissingFields
	}

	note, err := s.notes.FindByID(ctx, input.NoteID, input.UserID)
	if err != nil {
		return nil, err
	}

	note.NoteTitle = input.Title
	note.NoteContent = input.Content
	note.LastUpdate = time.Now().UTC()

	modified, err := s.notes.Update(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	if modified == 0 {
		return nil, domain.ErrUpdateFailed
	}

	s.log.Info().Str("note_id", note.NoteID).Str("user_id", note.UserID).Msg("note updated")
	return note, nil
}

// Delete removes the user's note. Scoping works exactly as in Update: a
// non-owner's attempt yields ErrNoteNotFound, never a permission error.
func (s *NoteService) Delete(ctx context.Context, noteID, userID string) error {
	if err := validateNoteID(noteID); err != nil {
		return err
	}

	if _, err := s.notes.FindByID(ctx, noteID, userID); err != nil {
		return err
	}

	deleted, err := s.notes.Delete(ctx, noteID, userID)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	if deleted == 0 {
		return domain.ErrDeleteFailed
	}

	s.log.Info().Str("note_id", noteID).Str("user_id", userID).Msg("note deleted")
	return nil
}

// validateNoteID rejects empty ids and the sentinel strings JavaScript
// clients are known to send for an unset id.
func validateNoteID(id string) error {
	if id == "" || id == "undefined" || id == "null" {
		return domain.ErrInvalidNoteID
	}
	return nil
}
