package lmsapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

var _ ports.AnalyticsAPI = (*Client)(nil)

const analyticsPath = "/admin/analytics"

// Revenue fetches the server-aggregated revenue series for a timeframe.
func (c *Client) Revenue(ctx context.Context, token string, tf model.Timeframe) (model.RevenueReport, error) {
	var out model.RevenueReport
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   analyticsPath + "/revenue",
		token:  token,
		query:  url.Values{"timeframe": {string(tf)}},
	}, &out)
	if err != nil {
		return model.RevenueReport{}, err
	}
	return out, nil
}

// TotalEnrollments fetches the enrollment headline counters.
func (c *Client) TotalEnrollments(ctx context.Context, token string) (model.EnrollmentTotals, error) {
	var out model.EnrollmentTotals
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   analyticsPath + "/total-enrollments",
		token:  token,
	}, &out)
	if err != nil {
		return model.EnrollmentTotals{}, err
	}
	return out, nil
}

// Enrollments fetches the full membership listing.
func (c *Client) Enrollments(ctx context.Context, token string) ([]model.Enrollment, error) {
	var out []model.Enrollment
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   analyticsPath + "/enrollments",
		token:  token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// InstructorActivity fetches the instructor activity log.
func (c *Client) InstructorActivity(ctx context.Context, token string) ([]model.ActivityEntry, error) {
	return c.activity(ctx, token, "/instructor-activity")
}

// StudentActivity fetches the student activity log.
func (c *Client) StudentActivity(ctx context.Context, token string) ([]model.ActivityEntry, error) {
	return c.activity(ctx, token, "/student-activity")
}

func (c *Client) activity(ctx context.Context, token, suffix string) ([]model.ActivityEntry, error) {
	var out []model.ActivityEntry
	err := c.do(ctx, call{
		method: http.MethodGet,
		path:   analyticsPath + suffix,
		token:  token,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}
