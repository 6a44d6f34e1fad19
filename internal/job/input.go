package job

import (
	"strings"
	"time"
)

// Input carries the caller-supplied fields of a posting. A nil field is
// left untouched: Create applies Input over defaults, Update over the stored
// record.
type Input struct {
	Title        *string
	Tags         *[]string
	JobRole      *string
	Type         *string
	Description  *string
	Requirements *string
	Salary       *SalaryInput

	EducationLevel  *string
	ExperienceLevel *string
	JobLevel        *string

	Country  *string
	City     *string
	IsRemote *bool

	Deadline *time.Time
}

type SalaryInput struct {
	Min      *float64
	Max      *float64
	Currency *string
	Type     *string
}

func (in Input) apply(j *Job) {
	setString(&j.Title, in.Title)
	if in.Tags != nil {
		j.Tags = NormalizeTags(*in.Tags)
	}
	setString(&j.JobRole, in.JobRole)
	if in.Type != nil {
		j.Type = Type(*in.Type)
	}
	setString(&j.Description, in.Description)
	setString(&j.Requirements, in.Requirements)

	if sal := in.Salary; sal != nil {
		if sal.Min != nil {
			j.Salary.Min = *sal.Min
		}
		if sal.Max != nil {
			j.Salary.Max = *sal.Max
		}
		setString(&j.Salary.Currency, sal.Currency)
		if sal.Type != nil {
			j.Salary.Type = SalaryPeriod(*sal.Type)
		}
	}

	setString(&j.EducationLevel, in.EducationLevel)
	setString(&j.ExperienceLevel, in.ExperienceLevel)
	setString(&j.JobLevel, in.JobLevel)
	setString(&j.Country, in.Country)
	setString(&j.City, in.City)
	if in.IsRemote != nil {
		j.IsRemote = *in.IsRemote
	}
	if in.Deadline != nil {
		j.Deadline = in.Deadline.UTC().Truncate(time.Microsecond)
	}

	normalize(j)
}

func normalize(j *Job) {
	j.Title = strings.TrimSpace(j.Title)
	j.Description = strings.TrimSpace(j.Description)
	if j.Tags == nil {
		j.Tags = NormalizeTags(nil)
	}
	if strings.TrimSpace(j.Salary.Currency) == "" {
		j.Salary.Currency = "USD"
	}
	if j.Salary.Type == "" {
		j.Salary.Type = PeriodYearly
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
