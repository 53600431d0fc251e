package domain

import (
	"errors"
	"time"
)

var ErrMissingFields = errors.New("missing required fields")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTooManyAttempts = errors.New("too many login attempts")
var ErrInvalidNoteID = errors.New("invalid note id")
var ErrNoteNotFound = errors.New("note not found")
var ErrUpdateFailed = errors.New("note update failed")
var ErrDeleteFailed = errors.New("note delete failed")

// Note is a user-owned document. Every read and mutation is scoped by UserID;
// a note is never visible outside its owner.
type Note struct {
	NoteID      string    `json:"note_id"`
	UserID      string    `json:"user_id"`
	NoteTitle   string    `json:"note_title"`
	NoteContent string    `json:"note_content"`
	CreatedOn   time.Time `json:"created_on"`
	LastUpdate  time.Time `json:"last_update"`
}
