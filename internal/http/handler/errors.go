package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"jobpilot/internal/auth"
	"jobpilot/internal/employer"
	"jobpilot/internal/http/respond"
	"jobpilot/internal/job"
	"jobpilot/internal/validate"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// writeError maps service errors onto status codes. Unexpected errors are
// logged and hidden from the caller.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var fe *validate.FieldError
	switch {
	case errors.As(err, &fe):
		respond.Error(w, http.StatusBadRequest, fe.Message)
	case errors.Is(err, job.ErrNotFound):
		respond.Error(w, http.StatusNotFound, "Job not found.")
	case errors.Is(err, auth.ErrUserNotFound):
		respond.Error(w, http.StatusNotFound, "User not found.")
	case errors.Is(err, auth.ErrDuplicate):
		respond.Error(w, http.StatusBadRequest, "User with this email or username already exists.")
	case errors.Is(err, auth.ErrInvalidCredentials):
		respond.Error(w, http.StatusBadRequest, "Invalid credentials.")
	case errors.Is(err, employer.ErrNoFile):
		respond.Error(w, http.StatusBadRequest, "No file uploaded.")
	case errors.Is(err, employer.ErrNotImage):
		respond.Error(w, http.StatusBadRequest, "Only image files are allowed.")
	case errors.Is(err, employer.ErrTooLarge):
		respond.Error(w, http.StatusBadRequest, "File exceeds the upload size limit.")
	default:
		log.Printf("[%s] %s %s: %v", chimw.GetReqID(r.Context()), r.Method, r.URL.Path, err)
		respond.Error(w, http.StatusInternalServerError, "Server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var fe *validate.FieldError
		if errors.As(err, &fe) {
			respond.Error(w, http.StatusBadRequest, fe.Message)
			return false
		}
		respond.Error(w, http.StatusBadRequest, "bad json")
		return false
	}
	return true
}
