package job

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("job not found")
	ErrOffset   = errors.New("job: negative list offset")
)

// Query selects one page of an employer's postings. Offset must not be
// negative; an offset past the end yields no rows.
type Query struct {
	EmployerID string
	Search     string
	Offset     int
	Limit      int
}

// Store persists jobs. Every lookup is scoped to an employer; a record owned
// by someone else is reported as ErrNotFound.
type Store interface {
	Create(ctx context.Context, j *Job) error
	Find(ctx context.Context, employerID, id string) (*Job, error)
	List(ctx context.Context, q Query) ([]Job, int64, error)
	Update(ctx context.Context, j *Job) error
	Delete(ctx context.Context, employerID, id string) error
}
