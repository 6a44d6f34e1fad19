package job

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) Create(ctx context.Context, j *Job) error {
	return s.DB.WithContext(ctx).Create(j).Error
}

func (s *GormStore) Find(ctx context.Context, employerID, id string) (*Job, error) {
	var j Job
	if err := s.DB.WithContext(ctx).
		Where("id = ? AND employer_id = ?", id, employerID).
		First(&j).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &j, nil
}

func (s *GormStore) List(ctx context.Context, q Query) ([]Job, int64, error) {
	if q.Offset < 0 {
		return nil, 0, ErrOffset
	}
	scope := func(tx *gorm.DB) *gorm.DB {
		tx = tx.Model(&Job{}).Where("employer_id = ?", q.EmployerID)
		if q.Search != "" {
			tx = tx.Where("title ILIKE ?", "%"+escapeLike(q.Search)+"%")
		}
		return tx
	}

	var total int64
	if err := s.DB.WithContext(ctx).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	rows := []Job{}
	if int64(q.Offset) >= total {
		return rows, total, nil
	}
	if err := s.DB.WithContext(ctx).Scopes(scope).
		Order("created_at desc, id desc").
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Update overwrites every mutable column of the owned row. Columns tagged
// create-only (employer, applications) are left alone.
func (s *GormStore) Update(ctx context.Context, j *Job) error {
	res := s.DB.WithContext(ctx).
		Model(&Job{}).
		Where("id = ? AND employer_id = ?", j.ID, j.EmployerID).
		Select("*").
		Omit("id", "created_at").
		Updates(j)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, employerID, id string) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND employer_id = ?", id, employerID).
		Delete(&Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
