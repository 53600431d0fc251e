package handler

// noteRequest accepts both the canonical field names and the legacy ones
// (title/content) still sent by older clients.
type noteRequest struct {
	NoteTitle   string `json:"note_title"`
	Title       string `json:"title"`
	NoteContent string `json:"note_content"`
	Content     string `json:"content"`
}

// normalize resolves the dual field names, preferring the canonical ones.
func (r noteRequest) normalize() (title, content string) {
	title = r.NoteTitle
	if title == "" {
		title = r.Title
	}
	content = r.NoteContent
	if content == "" {
		content = r.Content
	}
	return title, content
}

type noteResponse struct {
	NoteID      string `json:"note_id"`
	UserID      string `json:"user_id"`
	NoteTitle   string `json:"note_title"`
	NoteContent string `json:"note_content"`
	CreatedOn   string `json:"created_on"`
	LastUpdate  string `json:"last_update"`
}

type noteEnvelope struct {
	Message string       `json:"message"`
	Note    noteResponse `json:"note"`
}

type paginationResponse struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int   `json:"pages"`
}

type listNotesResponse struct {
	Notes      []noteResponse     `json:"notes"`
	Pagination paginationResponse `json:"pagination"`
}
