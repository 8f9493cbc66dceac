package model

import (
	"strings"
	"time"
)

// Timeframe selects the aggregation granularity for revenue reporting.
// Aggregation is computed by the LMS backend; changing the timeframe issues a
// new fetch rather than a local recompute.
type Timeframe string

const (
	TimeframeDay   Timeframe = "day"
	TimeframeMonth Timeframe = "month"
	TimeframeYear  Timeframe = "year"
)

// ParseTimeframe normalizes a timeframe string, defaulting to day.
func ParseTimeframe(value string) Timeframe {
	switch Timeframe(strings.ToLower(strings.TrimSpace(value))) {
	case TimeframeMonth:
		return TimeframeMonth
	case TimeframeYear:
		return TimeframeYear
	default:
		return TimeframeDay
	}
}

// RevenuePoint is one bucket of the server-aggregated revenue series.
type RevenuePoint struct {
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// RevenueReport is the payload of /admin/analytics/revenue.
type RevenueReport struct {
	Total  float64        `json:"total"`
	Points []RevenuePoint `json:"points"`
}

// EnrollmentStudent is the embedded student summary on an enrollment row.
type EnrollmentStudent struct {
	ID        string `json:"_id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Enrollment is one membership row from /admin/analytics/enrollments.
type Enrollment struct {
	ID          string             `json:"_id"`
	Student     *EnrollmentStudent `json:"student,omitempty"`
	CourseTitle string             `json:"courseTitle"`
	Status      string             `json:"status"`
	EnrolledAt  time.Time          `json:"enrolledAt"`
}

// StudentName renders the enrollment's student display name, tolerating a
// missing embedded student record.
func (e *Enrollment) StudentName() string {
	if e.Student == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimSpace(e.Student.FirstName) + " " + strings.TrimSpace(e.Student.LastName))
}

// ActivityEntry is one row of the instructor/student activity logs.
type ActivityEntry struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Action    string    `json:"action"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EnrollmentTotals is the payload of /admin/analytics/total-enrollments.
type EnrollmentTotals struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}
