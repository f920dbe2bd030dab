package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/metrics"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

// GetDashboard monta os cards e gráficos do canal.
// Ano, mês e semana ausentes assumem o período corrente.
func GetDashboard(service dashboarding.Dashboarder, now func() time.Time) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := companyFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		channel, ok := domain.ParseChannel(query.Get("channel"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidChannel, "Canal inválido. Valores aceitos: google, instagram, facebook", nil)
			return
		}

		periodType := domain.PeriodType(query.Get("filter_type"))
		if periodType == "" {
			periodType = domain.PeriodMonth
		}
		if !periodType.IsValid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "filter_type inválido. Valores aceitos: semana, mes, ano", nil)
			return
		}

		today := now().UTC()
		filters := domain.DashboardFilters{Channel: channel, PeriodType: periodType}

		var err error
		if filters.Year, err = intParam(query, "year", today.Year()); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Ano inválido", nil)
			return
		}
		if filters.Month, err = intParam(query, "month", int(today.Month())); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Mês inválido", nil)
			return
		}
		if filters.Week, err = intParam(query, "week", metrics.WeekOfYear(today)); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Semana inválida", nil)
			return
		}

		switch periodType {
		case domain.PeriodYear:
			filters.Month, filters.Week = 0, 0
		case domain.PeriodMonth:
			filters.Week = 0
		case domain.PeriodWeek:
			filters.Month = 0
		}

		aggregate, err := service.GetDashboard(r.Context(), claims.CompanyID, filters)
		if err != nil {
			logger.WithError(err).Warn("dashboard: falha ao montar dashboard")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, aggregate)
	})
}

// GetBaselines lista os snapshots mensais, opcionalmente de um canal e período mm-yyyy
func GetBaselines(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := companyFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()

		var channel *domain.Channel
		if raw := query.Get("channel"); raw != "" {
			parsed, ok := domain.ParseChannel(raw)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidChannel, "Canal inválido. Valores aceitos: google, instagram, facebook", nil)
				return
			}
			channel = &parsed
		}

		period := query.Get("period")
		if period != "" {
			if _, err := utils.ParsePeriod(period); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidPeriod, "Período inválido. Use o formato mm-yyyy", nil)
				return
			}
		}

		snapshots, err := service.GetBaselines(r.Context(), claims.CompanyID, channel, period)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, snapshots)
	})
}

func intParam(query url.Values, name string, fallback int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
