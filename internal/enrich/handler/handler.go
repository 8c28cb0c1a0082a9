package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"citator/internal/citation"
	"citator/internal/enrich"
	dErrors "citator/pkg/domain-errors"
)

// Handler wires HTTP endpoints to the enrichment service.
type Handler struct {
	svc    *enrich.Service
	logger *slog.Logger
}

// New constructs an HTTP handler over the enrichment service.
func New(svc *enrich.Service, logger *slog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

// Register mounts the enrichment routes on a router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/v1/citations/enrich", h.enrich)
	r.Get("/v1/ledger/{volume}/{page}", h.ledger)
}

func (h *Handler) enrich(w http.ResponseWriter, r *http.Request) {
	var cite citation.Citation
	if err := json.NewDecoder(r.Body).Decode(&cite); err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "invalid citation payload"))
		return
	}

	result, err := h.svc.Enrich(r.Context(), &cite)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

func (h *Handler) ledger(w http.ResponseWriter, r *http.Request) {
	volume, err := strconv.Atoi(chi.URLParam(r, "volume"))
	if err != nil {
		h.writeError(w, r, dErrors.New(dErrors.CodeBadRequest, "volume must be numeric"))
		return
	}
	page := chi.URLParam(r, "page")

	result, err := h.svc.Lookup(r.Context(), volume, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, result)
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil && h.logger != nil {
		h.logger.Warn("write response failed", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case dErrors.HasCode(err, dErrors.CodeBadRequest):
		status = http.StatusBadRequest
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		status = http.StatusNotFound
	case dErrors.HasCode(err, dErrors.CodeConflict):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError && h.logger != nil {
		h.logger.ErrorContext(r.Context(), "enrichment request failed", "error", err)
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}
