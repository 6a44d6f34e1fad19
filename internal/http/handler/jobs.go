package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"jobpilot/internal/auth"
	"jobpilot/internal/http/respond"
	"jobpilot/internal/job"
	"jobpilot/internal/validate"

	"github.com/go-chi/chi/v5"
)

type JobHandler struct {
	Svc *job.Service
}

type jobReq struct {
	Title        *string    `json:"title"`
	Tags         *tagList   `json:"tags"`
	JobRole      *string    `json:"jobRole"`
	Type         *string    `json:"type"`
	Description  *string    `json:"description"`
	Requirements *string    `json:"requirements"`
	Salary       *salaryReq `json:"salary"`

	EducationLevel  *string `json:"educationLevel"`
	ExperienceLevel *string `json:"experienceLevel"`
	JobLevel        *string `json:"jobLevel"`

	Country  *string `json:"country"`
	City     *string `json:"city"`
	IsRemote *bool   `json:"isRemote"`

	Deadline *string `json:"deadline"` // RFC3339 or YYYY-MM-DD
}

type salaryReq struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency *string  `json:"currency"`
	Type     *string  `json:"type"`
}

// tagList accepts either a JSON array or the comma separated string the
// web client's form produces.
type tagList []string

func (t *tagList) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*t = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return validate.Invalid("tags", "must be a list or a comma separated string")
	}
	*t = job.SplitTags(s)
	return nil
}

func (req jobReq) input() (job.Input, error) {
	in := job.Input{
		Title:           req.Title,
		JobRole:         req.JobRole,
		Type:            req.Type,
		Description:     req.Description,
		Requirements:    req.Requirements,
		EducationLevel:  req.EducationLevel,
		ExperienceLevel: req.ExperienceLevel,
		JobLevel:        req.JobLevel,
		Country:         req.Country,
		City:            req.City,
		IsRemote:        req.IsRemote,
	}
	if req.Tags != nil {
		tags := []string(*req.Tags)
		in.Tags = &tags
	}
	if s := req.Salary; s != nil {
		in.Salary = &job.SalaryInput{Min: s.Min, Max: s.Max, Currency: s.Currency, Type: s.Type}
	}
	if req.Deadline != nil {
		d, err := parseDeadline(*req.Deadline)
		if err != nil {
			return job.Input{}, err
		}
		in.Deadline = &d
	}
	return in, nil
}

func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Time{}, validate.Invalid("deadline", "must be an RFC3339 time or a YYYY-MM-DD date")
}

func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	q := r.URL.Query()
	page, _ := strconv.Atoi(strings.TrimSpace(q.Get("page")))
	limit, _ := strconv.Atoi(strings.TrimSpace(q.Get("limit")))

	out, err := h.Svc.List(r.Context(), uid, job.ListParams{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, out)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	j, err := h.Svc.Get(r.Context(), uid, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"job": j})
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req jobReq
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, r, err)
		return
	}

	j, err := h.Svc.Create(r.Context(), uid, in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusCreated, map[string]any{"job": j})
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req jobReq
	if !decodeJSON(w, r, &req) {
		return
	}
	in, err := req.input()
	if err != nil {
		writeError(w, r, err)
		return
	}

	j, err := h.Svc.Update(r.Context(), uid, chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"job": j})
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	if err := h.Svc.Delete(r.Context(), uid, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, map[string]any{"message": "Job deleted successfully."})
}
