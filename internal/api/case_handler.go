package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lawdept/justice-api/internal/api/shared"
	"github.com/lawdept/justice-api/internal/platform/logger"
	"github.com/lawdept/justice-api/internal/store"
)

// CaseHandler handles the case tracking endpoints. Each handler is a direct
// mapping from an HTTP verb to one store call; no validation is applied
// beyond what the storage constraints enforce.
type CaseHandler struct {
	caseStore store.CaseStore
}

// NewCaseHandler creates a new CaseHandler with the given dependencies.
func NewCaseHandler(caseStore store.CaseStore) *CaseHandler {
	return &CaseHandler{caseStore: caseStore}
}

// Create handles POST /api/cases.
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var payload CasePayload
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, CaseErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	id, err := h.caseStore.Create(r.Context(), payload.ToCase())
	if err != nil {
		log.Error("failed to add case", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, CaseErrorResponse{
			Message: "Error adding case",
			Error:   err.Error(),
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CaseCreatedResponse{
		Success: true,
		Message: "Case added successfully",
		ID:      id,
	})
}

// List handles GET /api/cases.
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	cases, err := h.caseStore.List(r.Context())
	if err != nil {
		log.Error("failed to fetch cases", slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, CaseErrorResponse{
			Message: "Error fetching cases",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CaseListResponse{Success: true, Cases: cases})
}

// Search handles GET /api/cases/search. The query parameter is required;
// matching is a case-insensitive substring match across the case number,
// customer name, and complainant name.
func (h *CaseHandler) Search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	query := r.URL.Query().Get("query")
	if query == "" {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, CaseErrorResponse{
			Message: "Search query is required",
		})
		return
	}

	cases, err := h.caseStore.Search(r.Context(), query)
	if err != nil {
		log.Error("failed to search cases",
			slog.String("query", query),
			slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, CaseErrorResponse{
			Message: "Error searching cases",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CaseListResponse{Success: true, Cases: cases})
}

// GetByID handles GET /api/cases/{id}. Any failure to resolve the identifier,
// including a malformed one, answers 404.
func (h *CaseHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondCaseNotFound(w, r)
		return
	}

	c, err := h.caseStore.GetByID(r.Context(), id)
	if err != nil {
		if !errors.Is(err, store.ErrCaseNotFound) {
			log.Error("failed to fetch case",
				slog.Int64("case_id", id),
				slog.String("error", err.Error()))
		}
		respondCaseNotFound(w, r)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CaseResponse{Success: true, Case: c})
}

// GetByCaseNo handles GET /api/cases/number/{caseNo}.
func (h *CaseHandler) GetByCaseNo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	caseNo := chi.URLParam(r, "caseNo")

	c, err := h.caseStore.GetByCaseNo(r.Context(), caseNo)
	if err != nil {
		if errors.Is(err, store.ErrCaseNotFound) {
			respondCaseNotFound(w, r)
			return
		}
		log.Error("failed to fetch case",
			slog.String("case_no", caseNo),
			slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, CaseErrorResponse{
			Message: "Error fetching case",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CaseResponse{Success: true, Case: c})
}

// Update handles PUT /api/cases/{id}. The full row is replaced with the
// supplied payload; fields the client leaves out are overwritten with empty
// values, not preserved.
func (h *CaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondCaseNotFound(w, r)
		return
	}

	var payload CasePayload
	if err := shared.DecodeJSON(r, &payload); err != nil {
		shared.RespondWithJSON(w, r, http.StatusBadRequest, CaseErrorResponse{
			Message: "Invalid request body",
		})
		return
	}

	c := payload.ToCase()
	c.ID = id

	if err := h.caseStore.Update(r.Context(), c); err != nil {
		if errors.Is(err, store.ErrCaseNotFound) {
			respondCaseNotFound(w, r)
			return
		}
		log.Error("failed to update case",
			slog.Int64("case_id", id),
			slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, CaseErrorResponse{
			Message: "Error updating case",
			Error:   err.Error(),
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CaseMessageResponse{
		Success: true,
		Message: "Case updated successfully",
	})
}

// Delete handles DELETE /api/cases/{id}.
func (h *CaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, err := pathID(r)
	if err != nil {
		respondCaseNotFound(w, r)
		return
	}

	if err := h.caseStore.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrCaseNotFound) {
			respondCaseNotFound(w, r)
			return
		}
		log.Error("failed to delete case",
			slog.Int64("case_id", id),
			slog.String("error", err.Error()))
		shared.RespondWithJSON(w, r, http.StatusInternalServerError, CaseErrorResponse{
			Message: "Error deleting case",
		})
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CaseMessageResponse{
		Success: true,
		Message: "Case deleted successfully",
	})
}

// Health handles GET /health.
func Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// pathID extracts the numeric case identifier from the URL path.
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func respondCaseNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusNotFound, CaseErrorResponse{
		Message: "Case not found",
	})
}
