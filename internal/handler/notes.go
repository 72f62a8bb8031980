package handler

import (
	"log/slog"
	"net/http"

	"tulika/internal/domain/models"
	"tulika/internal/domain/services"
	"tulika/internal/httputil"
)

// NotesHandler handles the note store endpoint group. Every action runs
// behind the session middleware, which puts the authenticated user in the
// request context.
type NotesHandler struct {
	noteService services.NoteService
	logger      *slog.Logger
}

// NewNotesHandler creates a new notes handler
func NewNotesHandler(noteService services.NoteService, logger *slog.Logger) *NotesHandler {
	return &NotesHandler{
		noteService: noteService,
		logger:      logger,
	}
}

// Handle multiplexes the note store actions
// GET|POST /api/notes?action=get_all|get_tree|get_content|create|update_content|rename|move|delete
func (h *NotesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	user := httputil.GetUser(r)
	if user == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	switch action(r) {
	case "get_all":
		h.getAll(w, r, user.ID)
	case "get_tree":
		h.getTree(w, r, user.ID)
	case "get_content":
		h.getContent(w, r, user.ID)
	case "create":
		h.create(w, r, user.ID)
	case "update_content":
		h.updateContent(w, r, user.ID)
	case "rename":
		h.rename(w, r, user.ID)
	case "move":
		h.move(w, r, user.ID)
	case "delete":
		h.delete(w, r, user.ID)
	default:
		httputil.RespondFailure(w, "Invalid action.")
	}
}

func (h *NotesHandler) getAll(w http.ResponseWriter, r *http.Request, ownerID int64) {
	items, err := h.noteService.ListAll(r.Context(), ownerID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, items)
}

func (h *NotesHandler) getTree(w http.ResponseWriter, r *http.Request, ownerID int64) {
	forest, err := h.noteService.GetTree(r.Context(), ownerID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, forest)
}

func (h *NotesHandler) getContent(w http.ResponseWriter, r *http.Request, ownerID int64) {
	id, err := parseID(r.URL.Query().Get("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	content, err := h.noteService.GetContent(r.Context(), ownerID, id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"content": content})
}

func (h *NotesHandler) create(w http.ResponseWriter, r *http.Request, ownerID int64) {
	parentID, err := parseParentID(r.PostFormValue("parent_id"))
	if err != nil {
		handleError(w, err)
		return
	}

	kind := models.Kind(r.PostFormValue("kind"))
	if kind == "" {
		kind = models.KindFile
	}

	item, err := h.noteService.Create(r.Context(), ownerID, &services.CreateItemRequest{
		Name:     r.PostFormValue("name"),
		Kind:     kind,
		ParentID: parentID,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      item.ID,
	})
}

func (h *NotesHandler) updateContent(w http.ResponseWriter, r *http.Request, ownerID int64) {
	id, err := parseID(r.PostFormValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.noteService.UpdateContent(r.Context(), ownerID, id, r.PostFormValue("content")); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *NotesHandler) rename(w http.ResponseWriter, r *http.Request, ownerID int64) {
	id, err := parseID(r.PostFormValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.noteService.Rename(r.Context(), ownerID, id, r.PostFormValue("name")); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *NotesHandler) move(w http.ResponseWriter, r *http.Request, ownerID int64) {
	id, err := parseID(r.PostFormValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	parentID, err := parseParentID(r.PostFormValue("parent_id"))
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.noteService.Move(r.Context(), ownerID, id, parentID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *NotesHandler) delete(w http.ResponseWriter, r *http.Request, ownerID int64) {
	id, err := parseID(r.PostFormValue("id"))
	if err != nil {
		handleError(w, err)
		return
	}

	if err := h.noteService.Delete(r.Context(), ownerID, id); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
