package lmsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

var _ ports.CourseAPI = (*Client)(nil)

const coursesPath = "/admin/courses"

// ListCourses fetches every course visible to the admin dashboard.
func (c *Client) ListCourses(ctx context.Context, token string) ([]model.Course, error) {
	var out []model.Course
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   coursesPath,
		token:  token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetCourse fetches one course by id.
func (c *Client) GetCourse(ctx context.Context, token, id string) (model.Course, error) {
	var out model.Course
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   coursesPath + "/" + id,
		token:  token,
	}, &out)
	if err != nil {
		return model.Course{}, err
	}
	return out, nil
}

// CreateCourse creates a course and returns the stored record.
func (c *Client) CreateCourse(ctx context.Context, token string, req model.CourseRequest) (model.Course, error) {
	var out model.Course
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   coursesPath,
		token:  token,
		body:   req,
	}, &out)
	if err != nil {
		return model.Course{}, err
	}
	return out, nil
}

// UpdateCourse updates a course and returns the stored record.
func (c *Client) UpdateCourse(ctx context.Context, token, id string, req model.CourseRequest) (model.Course, error) {
	var out model.Course
	err := c.do(ctx, call{
		method: http.MethodPut,
		path:   coursesPath + "/" + id,
		token:  token,
		body:   req,
	}, &out)
	if err != nil {
		return model.Course{}, err
	}
	return out, nil
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, token, id string) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		path:   coursesPath + "/" + id,
		token:  token,
	}, nil)
}

// UploadThumbnail replaces a course's thumbnail image and returns the stored
// media URL.
func (c *Client) UploadThumbnail(ctx context.Context, token, id string, media ports.Upload) (string, error) {
	return c.uploadCourseMedia(ctx, token, coursesPath+"/"+id+"/thumbnail", "thumbnail", media)
}

// UploadPromoVideo replaces a course's promo video and returns the stored
// media URL.
func (c *Client) UploadPromoVideo(ctx context.Context, token, id string, media ports.Upload) (string, error) {
	return c.uploadCourseMedia(ctx, token, coursesPath+"/"+id+"/promo-video", "promoVideo", media)
}

// uploadCourseMedia issues a multipart POST. Multipart bodies bypass the JSON
// call helper; the response still uses the standard envelope with the media
// URL in data.url.
func (c *Client) uploadCourseMedia(ctx context.Context, token, path, field string, media ports.Upload) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, media.Filename)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "build multipart body")
	}
	if _, err := io.Copy(part, media.Reader); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "read upload")
	}
	if err := mw.Close(); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "finish multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+apiPrefix+path, &buf)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "build upstream request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", classifyTransportErr(ctx, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeUnavailable, NetworkErrorMessage)
	}

	var env envelope
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &env)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", classifyStatus(resp.StatusCode, env.Message)
	}
	if !env.Success {
		return "", apperrors.Validation(fallback(env.Message, "Upload failed"))
	}

	var data struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode upload response")
	}
	return data.URL, nil
}
