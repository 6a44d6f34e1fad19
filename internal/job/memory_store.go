package job

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryStore is a process-local Store used by DB_DRIVER=memory and tests.
// Records are copied on the way in and out.
type MemoryStore struct {
	mu   sync.RWMutex
	rows map[string]memRow
	seq  uint64
}

type memRow struct {
	job Job
	seq uint64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: map[string]memRow{}}
}

func (s *MemoryStore) Create(ctx context.Context, j *Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.rows[j.ID] = memRow{job: j.clone(), seq: s.seq}
	return nil
}

func (s *MemoryStore) Find(ctx context.Context, employerID, id string) (*Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rows[id]
	if !ok || r.job.EmployerID != employerID {
		return nil, ErrNotFound
	}
	j := r.job.clone()
	return &j, nil
}

func (s *MemoryStore) List(ctx context.Context, q Query) ([]Job, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	if q.Offset < 0 {
		return nil, 0, ErrOffset
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(q.Search)
	var hits []memRow
	for _, r := range s.rows {
		if r.job.EmployerID != q.EmployerID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.job.Title), needle) {
			continue
		}
		hits = append(hits, r)
	}

	// newest first; insertion order breaks ties
	sort.Slice(hits, func(a, b int) bool {
		ca, cb := hits[a].job.CreatedAt, hits[b].job.CreatedAt
		if !ca.Equal(cb) {
			return ca.After(cb)
		}
		return hits[a].seq > hits[b].seq
	})

	total := int64(len(hits))
	out := []Job{}
	for i := q.Offset; i < len(hits) && len(out) < q.Limit; i++ {
		out = append(out, hits[i].job.clone())
	}
	return out, total, nil
}

func (s *MemoryStore) Update(ctx context.Context, j *Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[j.ID]
	if !ok || r.job.EmployerID != j.EmployerID {
		return ErrNotFound
	}
	next := j.clone()
	next.Applications = r.job.Applications
	next.CreatedAt = r.job.CreatedAt
	s.rows[j.ID] = memRow{job: next, seq: r.seq}
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, employerID, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rows[id]
	if !ok || r.job.EmployerID != employerID {
		return ErrNotFound
	}
	delete(s.rows, id)
	return nil
}
