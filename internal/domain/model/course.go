package model

import (
	"strings"
	"time"
)

// CourseStatus is the publication lifecycle flag of a course.
type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"
)

// Course mirrors the LMS backend course document. The instructor is a
// reference by identifier; the backend is the source of truth for
// referential integrity.
type Course struct {
	ID               string       `json:"_id"`
	Title            string       `json:"title"`
	Subtitle         string       `json:"subtitle,omitempty"`
	Description      string       `json:"description,omitempty"`
	InstructorID     string       `json:"instructorId"`
	Category         string       `json:"category"`
	SubCategory      string       `json:"subCategory,omitempty"`
	Language         string       `json:"language"`
	Level            string       `json:"level,omitempty"`
	Duration         float64      `json:"duration"`
	Price            float64      `json:"price"`
	DiscountPrice    float64      `json:"discountPrice"`
	Prerequisites    []string     `json:"prerequisites,omitempty"`
	LearningOutcomes []string     `json:"learningOutcomes,omitempty"`
	Thumbnail        string       `json:"thumbnail,omitempty"`
	PromoVideo       string       `json:"promoVideo,omitempty"`
	Status           CourseStatus `json:"status"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

// CourseRequest carries the create/update payload for a course. The same
// shape serves POST and PUT; the upstream ignores absent optional fields.
type CourseRequest struct {
	Title            string   `json:"title"`
	Subtitle         string   `json:"subtitle,omitempty"`
	Description      string   `json:"description,omitempty"`
	InstructorID     string   `json:"instructorId"`
	Category         string   `json:"category"`
	SubCategory      string   `json:"subCategory,omitempty"`
	Language         string   `json:"language"`
	Level            string   `json:"level,omitempty"`
	Duration         float64  `json:"duration"`
	Price            float64  `json:"price"`
	DiscountPrice    float64  `json:"discountPrice"`
	Prerequisites    []string `json:"prerequisites"`
	LearningOutcomes []string `json:"learningOutcomes"`
}

// Normalize trims scalar fields and drops blank list rows before submission.
func (r *CourseRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Subtitle = strings.TrimSpace(r.Subtitle)
	r.Category = strings.TrimSpace(r.Category)
	r.SubCategory = strings.TrimSpace(r.SubCategory)
	r.Language = strings.TrimSpace(r.Language)
	r.Level = strings.TrimSpace(r.Level)
	r.InstructorID = strings.TrimSpace(r.InstructorID)
	r.Prerequisites = CompactList(r.Prerequisites)
	r.LearningOutcomes = CompactList(r.LearningOutcomes)
}

// FieldErrors validates the request client-side before any upstream call.
func (r *CourseRequest) FieldErrors() map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "Title is required"
	}
	if strings.TrimSpace(r.Category) == "" {
		errs["category"] = "Category is required"
	}
	if strings.TrimSpace(r.Language) == "" {
		errs["language"] = "Language is required"
	}
	if r.Price < 0 {
		errs["price"] = "Price cannot be negative"
	}
	if r.DiscountPrice < 0 {
		errs["discountPrice"] = "Discount price cannot be negative"
	}
	if r.Duration < 0 {
		errs["duration"] = "Duration cannot be negative"
	}
	switch {
	case strings.TrimSpace(r.InstructorID) == "":
		errs["instructorId"] = "Instructor is required"
	case !IsObjectID(r.InstructorID):
		errs["instructorId"] = "Selected Instructor ID must be a valid 24-character hex string."
	}
	return errs
}
