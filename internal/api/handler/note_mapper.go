package handler

import (
	"time"

	"github.com/notewise/notes-api/internal/core/domain"
	"github.com/notewise/notes-api/internal/core/ports"
)

// --- Service result → HTTP response ---

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		NoteID:      n.NoteID,
		UserID:      n.UserID,
		NoteTitle:   n.NoteTitle,
		NoteContent: n.NoteContent,
		CreatedOn:   n.CreatedOn.UTC().Format(time.RFC3339),
		LastUpdate:  n.LastUpdate.UTC().Format(time.RFC3339),
	}
}

func toListResponse(r *ports.ListNotesResult) listNotesResponse {
	notes := make([]noteResponse, len(r.Notes))
	for i, n := range r.Notes {
		notes[i] = toNoteResponse(n)
	}
	return listNotesResponse{
		Notes: notes,
		Pagination: paginationResponse{
			Page:    r.Page,
			PerPage: r.PerPage,
			Total:   r.Total,
			Pages:   r.Pages,
		},
	}
}
