package booking

import (
	"context"
	"time"

	domain "github.com/killyross/barbershop-booking/internal/domain/booking"
	"github.com/killyross/barbershop-booking/internal/models"
)

// ======================================================
// DASHBOARD STATISTICS
// ======================================================

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Preço de referência por corte quando a reserva não tem serviço.
const defaultCutPrice = 12.0

type Statistics struct {
	Period       Period    `json:"period"`
	Appointments int       `json:"appointments"`
	Revenue      float64   `json:"revenue"`
	Monthly      []float64 `json:"monthly_revenue"`
	MonthLabels  []string  `json:"month_labels"`
}

var monthLabels = []string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

type GetStatistics struct {
	repo domain.Repository
}

func NewGetStatistics(repo domain.Repository) *GetStatistics {
	return &GetStatistics{repo: repo}
}

func (uc *GetStatistics) Execute(
	ctx context.Context,
	period Period,
	now time.Time,
) (*Statistics, error) {

	reservations, err := uc.repo.ListReservations(ctx)
	if err != nil {
		return nil, err
	}

	since := periodStart(period, now)

	appointments := 0
	revenue := 0.0
	monthly := make([]float64, 12)

	for i := range reservations {
		r := &reservations[i]
		price := reservationPrice(r)

		if !r.StartTime.Before(since) && !r.StartTime.After(now) {
			appointments++
			revenue += price
		}

		if r.StartTime.Year() == now.Year() {
			monthly[int(r.StartTime.Month())-1] += price
		}
	}

	return &Statistics{
		Period:       period,
		Appointments: appointments,
		Revenue:      revenue,
		Monthly:      monthly,
		MonthLabels:  monthLabels,
	}, nil
}

func periodStart(period Period, now time.Time) time.Time {
	switch period {
	case PeriodWeekly:
		return now.AddDate(0, 0, -7)
	case PeriodMonthly:
		return now.AddDate(0, -1, 0)
	case PeriodYearly:
		return now.AddDate(-1, 0, 0)
	default: // daily
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

func reservationPrice(r *models.Reservation) float64 {
	if r.Service != nil && r.Service.Price > 0 {
		return r.Service.Price
	}
	return defaultCutPrice
}
