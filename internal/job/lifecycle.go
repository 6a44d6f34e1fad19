package job

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Derive reports the status of a posting with the given deadline at now,
// and how many whole days (rounded up) remain before it expires.
func Derive(deadline, now time.Time) (Status, int) {
	left := deadline.Sub(now)
	if left <= 0 {
		return StatusExpired, 0
	}
	return StatusActive, int(math.Ceil(float64(left) / float64(day)))
}

// Location joins city and country, falling back to whichever is set.
func Location(city, country string) string {
	switch {
	case city != "" && country != "":
		return city + ", " + country
	case city != "":
		return city
	default:
		return country
	}
}

// View is a Job as seen by a caller at a given instant.
type View struct {
	Job
	DaysRemaining int    `json:"daysRemaining"`
	Location      string `json:"location"`
}

// Project computes the derived fields of j at now. It never mutates j.
func Project(j Job, now time.Time) View {
	v := View{Job: j.clone()}
	v.Status, v.DaysRemaining = Derive(j.Deadline, now)
	v.Location = Location(j.City, j.Country)
	return v
}
