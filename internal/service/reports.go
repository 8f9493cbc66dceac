package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	"github.com/lmsdesk/admin-ui/internal/ports"
)

// ReportsServiceOptions groups dependencies for ReportsService.
type ReportsServiceOptions struct {
	API ports.AnalyticsAPI
}

// ReportsService fetches server-aggregated analytics. All views here are
// read-only; the upstream computes every aggregate.
type ReportsService struct {
	api ports.AnalyticsAPI
}

// NewReportsService constructs a new ReportsService.
func NewReportsService(opts ReportsServiceOptions) *ReportsService {
	return &ReportsService{api: opts.API}
}

// DashboardSummary is the landing-page headline data.
type DashboardSummary struct {
	Revenue     model.RevenueReport
	Enrollments model.EnrollmentTotals
}

// Dashboard fetches the landing-page aggregates concurrently. Either
// failure fails the whole summary; the page renders its error state and the
// user reloads.
func (s *ReportsService) Dashboard(ctx context.Context, token string, tf model.Timeframe) (DashboardSummary, error) {
	var summary DashboardSummary

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rev, err := s.api.Revenue(ctx, token, tf)
		if err != nil {
			return fmt.Errorf("fetch revenue: %w", err)
		}
		summary.Revenue = rev
		return nil
	})
	g.Go(func() error {
		totals, err := s.api.TotalEnrollments(ctx, token)
		if err != nil {
			return fmt.Errorf("fetch enrollment totals: %w", err)
		}
		summary.Enrollments = totals
		return nil
	})

	if err := g.Wait(); err != nil {
		return DashboardSummary{}, err
	}
	return summary, nil
}

// Revenue fetches the revenue series for one timeframe. A timeframe change
// is a new fetch, never a local recompute.
func (s *ReportsService) Revenue(ctx context.Context, token string, tf model.Timeframe) (model.RevenueReport, error) {
	rev, err := s.api.Revenue(ctx, token, tf)
	if err != nil {
		return model.RevenueReport{}, fmt.Errorf("fetch revenue: %w", err)
	}
	return rev, nil
}

// Enrollments fetches the membership listing.
func (s *ReportsService) Enrollments(ctx context.Context, token string) ([]model.Enrollment, error) {
	rows, err := s.api.Enrollments(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch enrollments: %w", err)
	}
	return rows, nil
}

// InstructorActivity fetches the instructor activity log.
func (s *ReportsService) InstructorActivity(ctx context.Context, token string) ([]model.ActivityEntry, error) {
	rows, err := s.api.InstructorActivity(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch instructor activity: %w", err)
	}
	return rows, nil
}

// StudentActivity fetches the student activity log.
func (s *ReportsService) StudentActivity(ctx context.Context, token string) ([]model.ActivityEntry, error) {
	rows, err := s.api.StudentActivity(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch student activity: %w", err)
	}
	return rows, nil
}
