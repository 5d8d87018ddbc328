package models

import (
	"time"
)

// Property represents a structure under inspection as presented on the
// dashboard. Records are assembled by a store (Postgres or the remote
// inspection API) and are immutable for the duration of a detail view.
// TourDate is a pointer so an unscheduled tour ("TBD") is distinguishable
// from a zero time.
type Property struct {
	TourDate       *time.Time `json:"tourDate,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
	ID             string     `json:"id"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	ZipCode        string     `json:"zipCode"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	Grade          string     `json:"grade"`
	EstimatedPrice float64    `json:"estimatedPrice"`
	ListPrice      float64    `json:"listPrice"`
	OurEstimate    float64    `json:"ourEstimate"`
	IssueCount     int        `json:"issueCount"`
	CriticalIssues int        `json:"criticalIssues"`
}

// GradeBand returns the letter band A-F a grade falls in, dropping any
// +/- qualifier. Grades that do not start with a recognized letter are
// treated as F.
func GradeBand(grade string) byte {
	if grade == "" {
		return 'F'
	}
	switch grade[0] {
	case 'A', 'B', 'C', 'D', 'F':
		return grade[0]
	}
	return 'F'
}
