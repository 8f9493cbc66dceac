package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

// CourseServiceOptions groups dependencies for CourseService.
type CourseServiceOptions struct {
	API ports.CourseAPI
}

// CourseService manages course CRUD and media uploads against the upstream.
type CourseService struct {
	api ports.CourseAPI
}

// NewCourseService constructs a new CourseService.
func NewCourseService(opts CourseServiceOptions) *CourseService {
	return &CourseService{api: opts.API}
}

// List fetches the full course snapshot for listing and local filtering.
func (s *CourseService) List(ctx context.Context, token string) ([]model.Course, error) {
	courses, err := s.api.ListCourses(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Get fetches one course.
func (s *CourseService) Get(ctx context.Context, token, id string) (model.Course, error) {
	if !model.IsObjectID(id) {
		return model.Course{}, fmt.Errorf("get course: invalid id %q", id)
	}
	course, err := s.api.GetCourse(ctx, token, id)
	if err != nil {
		return model.Course{}, fmt.Errorf("get course: %w", err)
	}
	return course, nil
}

// Create stores a new course upstream.
func (s *CourseService) Create(ctx context.Context, token string, req model.CourseRequest) (model.Course, error) {
	req.Normalize()
	course, err := s.api.CreateCourse(ctx, token, req)
	if err != nil {
		return model.Course{}, fmt.Errorf("create course: %w", err)
	}
	return course, nil
}

// Update replaces a course's editable fields upstream.
func (s *CourseService) Update(ctx context.Context, token, id string, req model.CourseRequest) (model.Course, error) {
	if !model.IsObjectID(id) {
		return model.Course{}, fmt.Errorf("update course: invalid id %q", id)
	}
	req.Normalize()
	course, err := s.api.UpdateCourse(ctx, token, id, req)
	if err != nil {
		return model.Course{}, fmt.Errorf("update course: %w", err)
	}
	return course, nil
}

// Delete removes a course.
func (s *CourseService) Delete(ctx context.Context, token, id string) error {
	if !model.IsObjectID(id) {
		return fmt.Errorf("delete course: invalid id %q", id)
	}
	if err := s.api.DeleteCourse(ctx, token, id); err != nil {
		return fmt.Errorf("delete course: %w", err)
	}
	return nil
}

// UploadThumbnail forwards a thumbnail image upstream and returns the stored
// media URL.
func (s *CourseService) UploadThumbnail(ctx context.Context, token, id string, media ports.Upload) (string, error) {
	if media.Reader == nil {
		return "", errors.New("upload thumbnail: empty payload")
	}
	url, err := s.api.UploadThumbnail(ctx, token, id, media)
	if err != nil {
		return "", fmt.Errorf("upload thumbnail: %w", err)
	}
	return url, nil
}

// UploadPromoVideo forwards a promo video upstream and returns the stored
// media URL.
func (s *CourseService) UploadPromoVideo(ctx context.Context, token, id string, media ports.Upload) (string, error) {
	if media.Reader == nil {
		return "", errors.New("upload promo video: empty payload")
	}
	url, err := s.api.UploadPromoVideo(ctx, token, id, media)
	if err != nil {
		return "", fmt.Errorf("upload promo video: %w", err)
	}
	return url, nil
}
