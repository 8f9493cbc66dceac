package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lmsdesk/admin-ui/internal/domain/model"
	apperrors "github.com/lmsdesk/admin-ui/internal/errors"
	"github.com/lmsdesk/admin-ui/internal/ports/portsmock"
)

func TestDashboardFetchesConcurrently(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := portsmock.NewMockAnalyticsAPI(ctrl)
	svc := NewReportsService(ReportsServiceOptions{API: api})

	api.EXPECT().Revenue(gomock.Any(), "tok", model.TimeframeDay).Return(model.RevenueReport{
		Total:  1250.50,
		Points: []model.RevenuePoint{{Period: "2026-08-31", Amount: 1250.50, Count: 3}},
	}, nil)
	api.EXPECT().TotalEnrollments(gomock.Any(), "tok").Return(model.EnrollmentTotals{
		Total:  42,
		Active: 40,
	}, nil)

	summary, err := svc.Dashboard(context.Background(), "tok", model.TimeframeDay)
	require.NoError(t, err)
	assert.Equal(t, 1250.50, summary.Revenue.Total)
	assert.Equal(t, 42, summary.Enrollments.Total)
}

func TestDashboardFailsWhenAnyFetchFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := portsmock.NewMockAnalyticsAPI(ctrl)
	svc := NewReportsService(ReportsServiceOptions{API: api})

	api.EXPECT().Revenue(gomock.Any(), "tok", model.TimeframeMonth).
		Return(model.RevenueReport{}, apperrors.Unavailable("Network error: Unable to connect to the server"))
	api.EXPECT().TotalEnrollments(gomock.Any(), "tok").
		Return(model.EnrollmentTotals{Total: 42}, nil).
		AnyTimes()

	_, err := svc.Dashboard(context.Background(), "tok", model.TimeframeMonth)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnavailable(err))
}

func TestRevenueWrapsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := portsmock.NewMockAnalyticsAPI(ctrl)
	svc := NewReportsService(ReportsServiceOptions{API: api})

	api.EXPECT().Revenue(gomock.Any(), "tok", model.TimeframeYear).
		Return(model.RevenueReport{}, apperrors.Unauthorized("session expired"))

	_, err := svc.Revenue(context.Background(), "tok", model.TimeframeYear)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}
