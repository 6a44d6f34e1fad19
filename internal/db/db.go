package db

import (
	"fmt"

	"jobpilot/internal/auth"
	"jobpilot/internal/job"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// unique violations surface as gorm.ErrDuplicatedKey
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&auth.User{},
		&job.Job{},
	); err != nil {
		return err
	}

	stmts := []string{
		// owner-scoped listing, newest first
		`create index if not exists idx_jobs_employer_created on jobs(employer_id, created_at desc, id desc);`,
		`create index if not exists idx_jobs_employer_deadline on jobs(employer_id, deadline);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
