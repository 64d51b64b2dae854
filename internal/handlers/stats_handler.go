package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/killyross/barbershop-booking/internal/httperr"
	"github.com/killyross/barbershop-booking/internal/httpresp"
	"github.com/killyross/barbershop-booking/internal/timezone"
	usecase "github.com/killyross/barbershop-booking/internal/usecase/booking"
)

type StatsHandler struct {
	timezone string
	statsUC  *usecase.GetStatistics
}

func NewStatsHandler(tz string, statsUC *usecase.GetStatistics) *StatsHandler {
	return &StatsHandler{timezone: tz, statsUC: statsUC}
}

func (h *StatsHandler) Get(c *gin.Context) {
	period := usecase.Period(c.DefaultQuery("period", "monthly"))

	switch period {
	case usecase.PeriodDaily, usecase.PeriodWeekly, usecase.PeriodMonthly, usecase.PeriodYearly:
	default:
		httperr.BadRequest(c, "invalid_period", "Período inválido.")
		return
	}

	stats, err := h.statsUC.Execute(c.Request.Context(), period, timezone.NowIn(h.timezone))
	if err != nil {
		httperr.Internal(c, "statistics_failed", "Erro ao calcular estatísticas.")
		return
	}

	httpresp.OK(c, stats)
}
