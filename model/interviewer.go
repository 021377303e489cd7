// Package model defines the interviewer marketplace records exchanged
// between the pool store, the ranking engine, and the API layer.
package model

import "time"

// ApplicationStatus is the review state of an interviewer application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusApproved ApplicationStatus = "approved"
	StatusRejected ApplicationStatus = "rejected"
)

// Application is an interviewer application record. Only approved
// applications are eligible for matching.
type Application struct {
	ID            string            `json:"_id"`
	Position      string            `json:"position"`      // free-text role, e.g. "Backend Developer"
	Company       string            `json:"company"`       // free-text employer name
	Qualification string            `json:"qualification"` // secondary descriptor, related to position
	Status        ApplicationStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt,omitempty"`
}

// UserProfile is the profile of the user who owns an application.
type UserProfile struct {
	ID      string `json:"_id"`
	Name    string `json:"name,omitempty"`
	College string `json:"college,omitempty"` // secondary descriptor, related to company
}

// InterviewerStats holds aggregate counters shown alongside a match.
// They are pass-through display data and take no part in ranking.
type InterviewerStats struct {
	ConductedInterviews int     `json:"conductedInterviews"`
	AverageRating       float64 `json:"averageRating"`
	TotalRatings        int     `json:"totalRatings"`
}

// Interviewer pairs an application with its owning user profile and stats.
// This is the candidate shape the ranking engine consumes.
type Interviewer struct {
	Application Application      `json:"application"`
	User        UserProfile      `json:"user"`
	Stats       InterviewerStats `json:"stats"`
}

// IsApproved reports whether the interviewer is eligible for matching.
func (iv Interviewer) IsApproved() bool {
	return iv.Application.Status == StatusApproved
}
