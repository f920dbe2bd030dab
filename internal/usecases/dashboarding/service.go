package dashboarding

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vfg2006/campaign-metrics-api/infrastructure/cache"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/metrics"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

type Dashboarder interface {
	GetDashboard(ctx context.Context, companyID string, filters domain.DashboardFilters) (*domain.DashboardAggregate, error)
	GetBaselines(ctx context.Context, companyID string, channel *domain.Channel, period string) ([]*domain.BaselineSnapshot, error)
}

type Service struct {
	recordRepository   repository.CampaignRecordRepository
	baselineRepository repository.BaselineRepository
	dashboardCache     cache.DashboardCache
	baselineYears      int
}

func NewService(
	recordRepository repository.CampaignRecordRepository,
	baselineRepository repository.BaselineRepository,
	dashboardCache cache.DashboardCache,
	baselineYears int,
) *Service {
	if baselineYears <= 0 {
		baselineYears = 1
	}

	return &Service{
		recordRepository:   recordRepository,
		baselineRepository: baselineRepository,
		dashboardCache:     dashboardCache,
		baselineYears:      baselineYears,
	}
}

type window struct {
	start time.Time
	end   time.Time
}

// plan descreve como um filtro vira labels, janelas de consulta e buckets
type plan struct {
	labels      []string
	current     window
	currentKey  func(time.Time) int
	history     window
	historySize int
	historyKey  func(time.Time) int
}

func (s *Service) GetDashboard(ctx context.Context, companyID string, filters domain.DashboardFilters) (*domain.DashboardAggregate, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"channel":     filters.Channel,
		"filter_type": filters.PeriodType,
	})

	if companyID == "" {
		return nil, NewDashboardError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if !filters.Channel.IsValid() {
		return nil, NewDashboardError(ErrInvalidChannel, apiErrors.ErrInvalidChannel, string(filters.Channel))
	}

	p, err := s.buildPlan(filters)
	if err != nil {
		return nil, err
	}

	if cached, ok := s.dashboardCache.Get(ctx, companyID, filters); ok {
		logger.Debug("dashboard: cache hit")
		return cached, nil
	}

	currentRecords, historyRecords, err := s.load(ctx, companyID, filters.Channel, p)
	if err != nil {
		logger.WithError(err).Error("dashboard: erro ao carregar registros")
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao carregar registros do dashboard")
	}

	aggregate := domain.NewDashboardAggregate(filters)
	aggregate.Labels = p.labels
	aggregate.Series = metricSeries(series(currentRecords, len(p.labels), p.currentKey))
	aggregate.Values = total(currentRecords).values()

	baseline := metricSeries(series(historyRecords, p.historySize, p.historyKey))
	for _, metric := range domain.DashboardMetrics {
		aggregate.Averages[metric] = metrics.ComputeAverage(baseline[metric])
		aggregate.Above[metric] = metrics.AboveBaseline(aggregate.Values[metric], aggregate.Averages[metric])
	}

	if err := s.dashboardCache.Set(ctx, companyID, aggregate); err != nil {
		logger.WithError(err).Warn("dashboard: erro ao gravar cache")
	}

	logger.WithField("records", len(currentRecords)).Info("dashboard: agregado calculado")

	return aggregate, nil
}

// load busca o período selecionado e o histórico em paralelo
func (s *Service) load(ctx context.Context, companyID string, channel domain.Channel, p plan) ([]*domain.CampaignRecord, []*domain.CampaignRecord, error) {
	var (
		wg                             sync.WaitGroup
		currentRecords, historyRecords []*domain.CampaignRecord
		currentErr, historyErr         error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		currentRecords, currentErr = s.recordRepository.List(ctx, companyID, filtersFor(channel, p.current))
	}()
	go func() {
		defer wg.Done()
		historyRecords, historyErr = s.recordRepository.List(ctx, companyID, filtersFor(channel, p.history))
	}()
	wg.Wait()

	if currentErr != nil {
		return nil, nil, currentErr
	}
	if historyErr != nil {
		return nil, nil, historyErr
	}

	return currentRecords, historyRecords, nil
}

func filtersFor(channel domain.Channel, w window) domain.CampaignFilters {
	start, end := w.start, w.end
	return domain.CampaignFilters{
		Channel:   &channel,
		StartDate: &start,
		EndDate:   &end,
	}
}

func (s *Service) buildPlan(filters domain.DashboardFilters) (plan, error) {
	year := filters.Year
	if year < 1 {
		return plan{}, NewDashboardError(ErrInvalidFilters, apiErrors.ErrInvalidPeriod, "ano obrigatório")
	}

	yearWindow := window{
		start: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		end:   time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	byMonth := func(date time.Time) int { return int(date.Month()) - 1 }

	switch filters.PeriodType {
	case domain.PeriodYear:
		firstYear := year - s.baselineYears + 1
		labels := make([]string, 0, 12)
		for month := time.January; month <= time.December; month++ {
			labels = append(labels, metrics.MonthName(month))
		}

		return plan{
			labels:      labels,
			current:     yearWindow,
			currentKey:  byMonth,
			history:     window{start: time.Date(firstYear, time.January, 1, 0, 0, 0, 0, time.UTC), end: yearWindow.end},
			historySize: s.baselineYears,
			historyKey:  func(date time.Time) int { return date.Year() - firstYear },
		}, nil

	case domain.PeriodMonth:
		if filters.Month < 1 || filters.Month > 12 {
			return plan{}, NewDashboardError(ErrInvalidFilters, apiErrors.ErrInvalidPeriod, "mês deve estar entre 1 e 12")
		}

		weeks := metrics.WeeksInMonth(year, time.Month(filters.Month))
		labels := make([]string, 0, len(weeks))
		for _, week := range weeks {
			labels = append(labels, fmt.Sprintf("Semana %d", week.Number))
		}
		firstWeek := weeks[0].Number

		return plan{
			labels:      labels,
			current:     window{start: weeks[0].Start, end: weeks[len(weeks)-1].End},
			currentKey:  func(date time.Time) int { return metrics.WeekOfYear(date) - firstWeek },
			history:     yearWindow,
			historySize: 12,
			historyKey:  byMonth,
		}, nil

	case domain.PeriodWeek:
		days := metrics.DaysOfWeek(year, filters.Week)
		if len(days) == 0 {
			return plan{}, NewDashboardError(ErrInvalidFilters, apiErrors.ErrInvalidPeriod, fmt.Sprintf("semana %d não existe em %d", filters.Week, year))
		}

		labels := make([]string, 0, len(days))
		for _, day := range days {
			labels = append(labels, day.Format("02/01"))
		}
		firstDay := days[0].YearDay()

		return plan{
			labels:      labels,
			current:     window{start: days[0], end: days[len(days)-1]},
			currentKey:  func(date time.Time) int { return date.YearDay() - firstDay },
			history:     yearWindow,
			historySize: metrics.WeekOfYear(yearWindow.end),
			historyKey:  func(date time.Time) int { return metrics.WeekOfYear(date) - 1 },
		}, nil
	}

	return plan{}, NewDashboardError(ErrInvalidFilters, apiErrors.ErrInvalidPeriod, fmt.Sprintf("filter_type %q", filters.PeriodType))
}

// GetBaselines lista os snapshots mensais da empresa, opcionalmente de um canal e período mm-yyyy
func (s *Service) GetBaselines(ctx context.Context, companyID string, channel *domain.Channel, period string) ([]*domain.BaselineSnapshot, error) {
	if companyID == "" {
		return nil, NewDashboardError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if channel != nil && !channel.IsValid() {
		return nil, NewDashboardError(ErrInvalidChannel, apiErrors.ErrInvalidChannel, string(*channel))
	}

	if channel != nil && period != "" {
		snapshot, err := s.baselineRepository.GetByPeriod(ctx, companyID, *channel, period)
		if err != nil {
			log.ForContext(ctx).WithError(err).Error("baselines: erro ao buscar snapshot")
			return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
		}
		if snapshot == nil {
			return nil, NewDashboardError(ErrBaselineNotFound, apiErrors.ErrBaselineNotFound, period)
		}
		return []*domain.BaselineSnapshot{snapshot}, nil
	}

	snapshots, err := s.baselineRepository.ListByCompany(ctx, companyID, channel)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("baselines: erro ao listar snapshots")
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	if period == "" {
		return snapshots, nil
	}

	filtered := make([]*domain.BaselineSnapshot, 0, len(snapshots))
	for _, snapshot := range snapshots {
		if snapshot.Period == period {
			filtered = append(filtered, snapshot)
		}
	}
	return filtered, nil
}
