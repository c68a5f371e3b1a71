package handlers

import (
	"net/http"
	"strings"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// DocumentHandler handles document browsing endpoints.
type DocumentHandler struct {
	svc ports.DocumentService
}

// NewDocumentHandler creates a new DocumentHandler with the given service port.
func NewDocumentHandler(svc ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

// ListDocuments handles GET /api/v1/documents?status=&page=&limit=.
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	filter, err := parseDocumentFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDocumentListResponse(page))
}

// GetDocument handles GET /api/v1/documents/{id}.
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	detail, err := h.svc.Get(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDocumentDetailResponse(detail))
}

func parseDocumentFilter(r *http.Request) (document.Filter, error) {
	page, err := queryInt(r, "page")
	if err != nil {
		return document.Filter{}, err
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		return document.Filter{}, err
	}

	return document.Filter{
		Status: document.Status(strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))),
		Page:   page,
		Limit:  limit,
	}, nil
}
