package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killyross/barbershop-booking/internal/models"
)

func TestGetStatistics(t *testing.T) {
	repo := newFakeRepository()
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	cut := &models.Service{ID: uuid.New(), Name: "Corte", Price: 15}

	add := func(start time.Time, service *models.Service) {
		r := models.Reservation{
			ID:         uuid.New(),
			CustomerID: uuid.New(),
			StartTime:  start,
			EndTime:    start.Add(30 * time.Minute),
			Status:     "confirmed",
			Service:    service,
		}
		repo.reservations = append(repo.reservations, r)
	}

	add(now.Add(-2*time.Hour), cut)         // today, 15
	add(now.AddDate(0, 0, -3), nil)         // this week, default 12
	add(now.AddDate(0, 0, -20), cut)        // last month, 15
	add(now.AddDate(0, -11, 0), nil)        // previous year, excluded from monthly
	add(now.AddDate(0, 0, 10), cut)         // future, never counted in totals

	uc := NewGetStatistics(repo)

	t.Run("daily", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), PeriodDaily, now)
		require.NoError(t, err)

		assert.Equal(t, 1, got.Appointments)
		assert.Equal(t, 15.0, got.Revenue)
	})

	t.Run("weekly", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), PeriodWeekly, now)
		require.NoError(t, err)

		assert.Equal(t, 2, got.Appointments)
		assert.Equal(t, 27.0, got.Revenue)
	})

	t.Run("monthly", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), PeriodMonthly, now)
		require.NoError(t, err)

		assert.Equal(t, 3, got.Appointments)
		assert.Equal(t, 42.0, got.Revenue)
	})

	t.Run("yearly monthly breakdown", func(t *testing.T) {
		got, err := uc.Execute(context.Background(), PeriodYearly, now)
		require.NoError(t, err)

		require.Len(t, got.Monthly, 12)
		require.Len(t, got.MonthLabels, 12)

		// February carries the late-February cut, March the rest of the
		// current year including the future booking.
		assert.Equal(t, 15.0, got.Monthly[1])
		assert.Equal(t, 42.0, got.Monthly[2])

		// The previous-year row never leaks into the chart.
		assert.Equal(t, 0.0, got.Monthly[3])
	})
}

func TestGetStatistics_Empty(t *testing.T) {
	repo := newFakeRepository()
	now := time.Date(2026, 3, 15, 18, 0, 0, 0, time.UTC)

	got, err := NewGetStatistics(repo).Execute(context.Background(), PeriodMonthly, now)
	require.NoError(t, err)

	assert.Zero(t, got.Appointments)
	assert.Zero(t, got.Revenue)
	assert.Equal(t, make([]float64, 12), got.Monthly)
}
