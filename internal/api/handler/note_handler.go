package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/notewise/notes-api/internal/api/metrics"
	"github.com/notewise/notes-api/internal/core/ports"
)

// NoteHandler handles HTTP requests for note operations. Every route is
// behind the Auth middleware; the owning user id always comes from the token,
// never from the request body.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

// List handles GET /api/v1/notes.
//
// @Summary      List the authenticated user's notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        per_page  query     int     false  "Notes per page (max 100)"
// @Param        search    query     string  false  "Case-insensitive substring match on title or content"
// @Success      200       {object}  listNotesResponse
// @Failure      401       {object}  messageResponse
// @Failure      500       {object}  messageResponse
// @Router       /notes [get]
func (h *NoteHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	search := strings.TrimSpace(c.QueryParam("search"))
	start := time.Now()

	result, err := h.service.List(c.Request().Context(), ports.ListNotesInput{
		UserID:  userID,
		Search:  search,
		Page:    queryInt(c, "page", 1),
		PerPage: queryInt(c, "per_page", 10),
	})
	if err != nil {
		return err
	}

	metrics.NoteListDuration.
		WithLabelValues(strconv.FormatBool(search != "")).
		Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Create handles POST /api/v1/notes.
//
// @Summary      Create a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      noteRequest  true  "Note title and content"
// @Success      201   {object}  noteEnvelope
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      500   {object}  messageResponse
// @Router       /notes [post]
func (h *NoteHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	title, content := req.normalize()

	note, err := h.service.Create(c.Request().Context(), ports.CreateNoteInput{
		UserID:  userID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return err
	}

	metrics.NotesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, noteEnvelope{
		Message: "Note created successfully",
		Note:    toNoteResponse(note),
	})
}

// Update handles PUT /api/v1/notes/:note_id.
//
// @Summary      Update a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        note_id  path      string       true  "Note id"
// @Param        body     body      noteRequest  true  "New title and content"
// @Success      200      {object}  noteEnvelope
// @Failure      400      {object}  messageResponse
// @Failure      401      {object}  messageResponse
// @Failure      404      {object}  messageResponse
// @Failure      500      {object}  messageResponse
// @Router       /notes/{note_id} [put]
func (h *NoteHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	title, content := req.normalize()

	note, err := h.service.Update(c.Request().Context(), ports.UpdateNoteInput{
		NoteID:  c.Param("note_id"),
		UserID:  userID,
		Title:   title,
		Content: content,
	})
	if err != nil {
		return err
	}

	metrics.NotesUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, noteEnvelope{
		Message: "Note updated successfully",
		Note:    toNoteResponse(note),
	})
}

// Delete handles DELETE /api/v1/notes/:note_id.
//
// @Summary      Delete a note
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Param        note_id  path      string  true  "Note id"
// @Success      200      {object}  messageResponse
// @Failure      400      {object}  messageResponse
// @Failure      401      {object}  messageResponse
// @Failure      404      {object}  messageResponse
// @Failure      500      {object}  messageResponse
// @Router       /notes/{note_id} [delete]
func (h *NoteHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("note_id"), userID); err != nil {
		return err
	}

	metrics.NotesDeletedTotal.Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Note deleted successfully"})
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or not a number. Range clamping is the service's job.
func queryInt(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
