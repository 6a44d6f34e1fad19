package handler

import (
	"errors"
	"net/http"

	"jobpilot/internal/auth"
	"jobpilot/internal/employer"
	"jobpilot/internal/http/respond"
)

// multipart framing allowance on top of the file itself
const formOverhead = 64 << 10

type EmployerHandler struct {
	Svc      *employer.Service
	MaxBytes int64
}

func (h *EmployerHandler) Profile(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	u, err := h.Svc.Profile(r.Context(), uid)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"user": u})
}

func (h *EmployerHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req employer.ProfileInput
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.Svc.UpdateProfile(r.Context(), uid, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"user": u})
}

// UploadLogo takes a multipart form with the image in field "logo".
func (h *EmployerHandler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes+formOverhead)
	if err := r.ParseMultipartForm(h.MaxBytes + formOverhead); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, r, employer.ErrTooLarge)
			return
		}
		writeError(w, r, employer.ErrNoFile)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("logo")
	if err != nil {
		writeError(w, r, employer.ErrNoFile)
		return
	}
	defer file.Close()

	u, err := h.Svc.UploadLogo(r.Context(), uid, header.Filename, file)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{
		"user":    u,
		"logoUrl": u.LogoURL,
	})
}
