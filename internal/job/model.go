package job

import (
	"time"

	"github.com/lib/pq"
)

type Type string

const (
	TypeFullTime   Type = "Full Time"
	TypePartTime   Type = "Part Time"
	TypeContract   Type = "Contract"
	TypeInternship Type = "Internship"
)

var Types = []string{string(TypeFullTime), string(TypePartTime), string(TypeContract), string(TypeInternship)}

type SalaryPeriod string

const (
	PeriodYearly  SalaryPeriod = "Yearly"
	PeriodMonthly SalaryPeriod = "Monthly"
	PeriodHourly  SalaryPeriod = "Hourly"
)

var SalaryPeriods = []string{string(PeriodYearly), string(PeriodMonthly), string(PeriodHourly)}

type Status string

const (
	StatusActive  Status = "Active"
	StatusExpired Status = "Expired"
)

type Salary struct {
	Min      float64      `gorm:"not null;default:0" json:"min" validate:"gte=0"`
	Max      float64      `gorm:"not null;default:0" json:"max" validate:"omitempty,gtefield=Min"`
	Currency string       `gorm:"type:text;not null;default:'USD'" json:"currency"`
	Type     SalaryPeriod `gorm:"type:text;not null;default:'Yearly'" json:"type" validate:"salaryperiod"`
}

// Job is one posting. Status is written on every save but reads always go
// through Project, so the column is never trusted.
type Job struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	EmployerID string `gorm:"type:uuid;index;not null;<-:create" json:"employer"`

	Title        string         `gorm:"type:text;not null" json:"title" validate:"required"`
	Tags         pq.StringArray `gorm:"type:text[];not null;default:'{}'" json:"tags"`
	JobRole      string         `gorm:"type:text;not null;default:''" json:"jobRole"`
	Type         Type           `gorm:"type:text;not null" json:"type" validate:"jobtype"`
	Description  string         `gorm:"type:text;not null" json:"description" validate:"required"`
	Requirements string         `gorm:"type:text;not null;default:''" json:"requirements"`
	Salary       Salary         `gorm:"embedded;embeddedPrefix:salary_" json:"salary"`

	EducationLevel  string `gorm:"type:text;not null;default:''" json:"educationLevel"`
	ExperienceLevel string `gorm:"type:text;not null;default:''" json:"experienceLevel"`
	JobLevel        string `gorm:"type:text;not null;default:''" json:"jobLevel"`

	Country  string `gorm:"type:text;not null;default:''" json:"country"`
	City     string `gorm:"type:text;not null;default:''" json:"city"`
	IsRemote bool   `gorm:"not null;default:false" json:"isRemote"`

	Deadline time.Time `gorm:"type:timestamptz;not null" json:"deadline" validate:"required"`
	Status   Status    `gorm:"type:text;not null;default:'Active'" json:"status"`

	Applications int `gorm:"not null;default:0;<-:create" json:"applications"`

	CreatedAt time.Time `gorm:"not null;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (j Job) clone() Job {
	out := j
	if j.Tags != nil {
		out.Tags = append(pq.StringArray{}, j.Tags...)
	}
	return out
}
