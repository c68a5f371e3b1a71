package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// ProfileHandler handles the signed-in user's profile endpoints.
type ProfileHandler struct {
	svc ports.ProfileService
}

// NewProfileHandler creates a new ProfileHandler with the given service port.
func NewProfileHandler(svc ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GetProfile handles GET /api/v1/profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(u))
}

// UpdateProfile handles PATCH /api/v1/profile. Omitted fields keep the
// values the backend currently holds.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	current, err := h.svc.Get(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.svc.Update(r.Context(), req.ApplyTo(current))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserResponse(updated))
}

// ChangePassword handles PUT /api/v1/profile/password.
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ChangePasswordRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.svc.ChangePassword(r.Context(), req.ToPasswordChange()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
