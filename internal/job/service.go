package job

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"jobpilot/internal/validate"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

type Service struct {
	Store     Store
	Validator *validate.Validator
	// Now defaults to time.Now.
	Now func() time.Time
}

func NewService(store Store) *Service {
	return &Service{Store: store, Validator: NewValidator()}
}

// NewValidator knows the job type and salary period enumerations.
func NewValidator() *validate.Validator {
	v := validate.New()
	if err := v.RegisterEnum("jobtype", Types...); err != nil {
		panic(err)
	}
	if err := v.RegisterEnum("salaryperiod", SalaryPeriods...); err != nil {
		panic(err)
	}
	return v
}

type ListParams struct {
	Page   int
	Limit  int
	Search string
}

type Page struct {
	Jobs       []View `json:"jobs"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

func (s *Service) List(ctx context.Context, employerID string, p ListParams) (Page, error) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	rows, total, err := s.Store.List(ctx, Query{
		EmployerID: employerID,
		Search:     strings.TrimSpace(p.Search),
		Offset:     pageOffset(p.Page, p.Limit),
		Limit:      p.Limit,
	})
	if err != nil {
		return Page{}, fmt.Errorf("list jobs: %w", err)
	}

	now := s.now()
	out := Page{
		Jobs:       make([]View, 0, len(rows)),
		Total:      total,
		Page:       p.Page,
		TotalPages: int((total + int64(p.Limit) - 1) / int64(p.Limit)),
	}
	for _, j := range rows {
		out.Jobs = append(out.Jobs, Project(j, now))
	}
	return out, nil
}

// pageOffset saturates at math.MaxInt, which lies past any result set,
// instead of wrapping negative for huge pages.
func pageOffset(page, limit int) int {
	if page-1 > math.MaxInt/limit {
		return math.MaxInt
	}
	return (page - 1) * limit
}

func (s *Service) Get(ctx context.Context, employerID, id string) (View, error) {
	j, err := s.find(ctx, employerID, id)
	if err != nil {
		return View{}, err
	}
	return Project(*j, s.now()), nil
}

func (s *Service) Create(ctx context.Context, employerID string, in Input) (View, error) {
	now := s.now()
	j := Job{
		ID:         uuid.NewString(),
		EmployerID: employerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	in.apply(&j)
	if err := s.Validator.Struct(j); err != nil {
		return View{}, err
	}
	j.Status, _ = Derive(j.Deadline, now)

	if err := s.Store.Create(ctx, &j); err != nil {
		return View{}, fmt.Errorf("create job: %w", err)
	}
	return Project(j, now), nil
}

// Update applies the supplied fields to an owned posting, re-validates the
// merged record and stores it. Concurrent updates are last-write-wins.
func (s *Service) Update(ctx context.Context, employerID, id string, in Input) (View, error) {
	j, err := s.find(ctx, employerID, id)
	if err != nil {
		return View{}, err
	}

	in.apply(j)
	if err := s.Validator.Struct(*j); err != nil {
		return View{}, err
	}
	now := s.now()
	j.UpdatedAt = now
	j.Status, _ = Derive(j.Deadline, now)

	if err := s.Store.Update(ctx, j); err != nil {
		return View{}, fmt.Errorf("update job: %w", err)
	}
	return Project(*j, now), nil
}

func (s *Service) Delete(ctx context.Context, employerID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	if err := s.Store.Delete(ctx, employerID, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

func (s *Service) find(ctx context.Context, employerID, id string) (*Job, error) {
	// a malformed id cannot exist, and must look the same as a foreign one
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}
	j, err := s.Store.Find(ctx, employerID, id)
	if err != nil {
		return nil, fmt.Errorf("find job: %w", err)
	}
	return j, nil
}

func (s *Service) now() time.Time {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	return now().UTC().Truncate(time.Microsecond)
}
