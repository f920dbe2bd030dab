package campaigning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/campaign-metrics-api/infrastructure/cache"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/repository"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/metrics"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

// WarningRevenueNotAboveInvestment é o aviso exibido quando a campanha não se paga
const WarningRevenueNotAboveInvestment = "O faturamento da campanha deve ser maior que o investimento realizado"

type Campaigner interface {
	NewDraft(channel domain.Channel) *domain.CampaignView
	Preview(record domain.CampaignRecord) *domain.CampaignView
	Create(ctx context.Context, companyID string, record domain.CampaignRecord) (*domain.CampaignView, error)
	Update(ctx context.Context, companyID, id string, record domain.CampaignRecord) (*domain.CampaignView, error)
	Get(ctx context.Context, companyID, id string) (*domain.CampaignView, error)
	List(ctx context.Context, companyID string, filters domain.CampaignFilters) ([]*domain.CampaignView, error)
	Delete(ctx context.Context, companyID, id string) error
}

type Service struct {
	recordRepository repository.CampaignRecordRepository
	dashboardCache   cache.DashboardCache
	generateID       func() (string, error)
}

func NewService(
	recordRepository repository.CampaignRecordRepository,
	dashboardCache cache.DashboardCache,
) *Service {
	return &Service{
		recordRepository: recordRepository,
		dashboardCache:   dashboardCache,
		generateID:       utils.GenerateID,
	}
}

// NewDraft devolve um registro zerado com os campos derivados já calculados
func (s *Service) NewDraft(channel domain.Channel) *domain.CampaignView {
	return metrics.Recompute(domain.CampaignRecord{Channel: channel})
}

// Preview recalcula os campos derivados sem persistir nada
func (s *Service) Preview(record domain.CampaignRecord) *domain.CampaignView {
	return withWarnings(metrics.Recompute(record))
}

func (s *Service) Create(ctx context.Context, companyID string, record domain.CampaignRecord) (*domain.CampaignView, error) {
	logger := log.ForContext(ctx)

	if err := validate(companyID, &record); err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		logger.WithError(err).Error("campaigns: erro ao gerar ID")
		return nil, NewCampaignError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	record.ID = id
	record.CompanyID = companyID

	if err := s.recordRepository.Create(ctx, &record); err != nil {
		logger.WithError(err).Error("campaigns: erro ao salvar registro")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao salvar registro de campanha")
	}

	s.invalidateDashboards(ctx, companyID)

	logger.WithFields(log.Fields{"record_id": id, "channel": record.Channel}).Info("campaigns: registro criado")

	return withWarnings(metrics.Recompute(record)), nil
}

func (s *Service) Update(ctx context.Context, companyID, id string, record domain.CampaignRecord) (*domain.CampaignView, error) {
	logger := log.ForContext(ctx)

	if err := validate(companyID, &record); err != nil {
		return nil, err
	}

	record.ID = id
	record.CompanyID = companyID

	if err := s.recordRepository.Update(ctx, &record); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return nil, NewCampaignErrorWithID(ErrRecordNotFound, apiErrors.ErrCampaignNotFound, id, "")
		}
		logger.WithError(err).Error("campaigns: erro ao atualizar registro")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao atualizar registro de campanha")
	}

	s.invalidateDashboards(ctx, companyID)

	return withWarnings(metrics.Recompute(record)), nil
}

// Get carrega os campos brutos e recalcula os derivados, nunca confiando no armazenamento
func (s *Service) Get(ctx context.Context, companyID, id string) (*domain.CampaignView, error) {
	if companyID == "" {
		return nil, NewCampaignError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, "")
	}

	record, err := s.recordRepository.GetByID(ctx, companyID, id)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("campaigns: erro ao buscar registro")
		return nil, NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao buscar registro de campanha")
	}
	if record == nil {
		return nil, NewCampaignErrorWithID(ErrRecordNotFound, apiErrors.ErrCampaignNotFound, id, "")
	}

	return withWarnings(metrics.Recompute(*record)), nil
}

// List lista os registros da empresa. Com filtro de canal, só entram registros com vendas no canal.
func (s *Service) List(ctx context.Context, companyID string, filters domain.CampaignFilters) ([]*domain.CampaignView, error) {
	if companyID == "" {
		return nil, NewCampaignError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if filters.Channel != nil && !filters.Channel.IsValid() {
		return nil, NewCampaignError(ErrInvalidChannel, apiErrors.ErrInvalidChannel, string(*filters.Channel))
	}
	if filters.StartDate != nil && filters.EndDate != nil && filters.EndDate.Before(*filters.StartDate) {
		return nil, NewCampaignError(ErrInvalidDate, apiErrors.ErrInvalidDate, "data final anterior à data inicial")
	}

	records, err := s.recordRepository.List(ctx, companyID, filters)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("campaigns: erro ao listar registros")
		return nil, NewCampaignError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar registros de campanha")
	}

	views := make([]*domain.CampaignView, 0, len(records))
	for _, record := range records {
		if filters.Channel != nil && record.ChannelSales.Float() <= 0 {
			continue
		}
		views = append(views, withWarnings(metrics.Recompute(*record)))
	}

	return views, nil
}

func (s *Service) Delete(ctx context.Context, companyID, id string) error {
	if companyID == "" {
		return NewCampaignError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if err := s.recordRepository.Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, repository.ErrNoRowsAffected) {
			return NewCampaignErrorWithID(ErrRecordNotFound, apiErrors.ErrCampaignNotFound, id, "")
		}
		log.ForContext(ctx).WithError(err).Error("campaigns: erro ao excluir registro")
		return NewCampaignErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, "Falha ao excluir registro de campanha")
	}

	s.invalidateDashboards(ctx, companyID)

	log.ForContext(ctx).WithField("record_id", id).Info("campaigns: registro excluído")
	return nil
}

// Falha no cache não impede a escrita; o TTL limita o tempo de dado desatualizado
func (s *Service) invalidateDashboards(ctx context.Context, companyID string) {
	if err := s.dashboardCache.InvalidateCompany(ctx, companyID); err != nil {
		log.ForContext(ctx).WithError(err).Warn("campaigns: erro ao invalidar cache do dashboard")
	}
}

// validate normaliza canal e data (yyyy-mm-dd) antes da gravação
func validate(companyID string, record *domain.CampaignRecord) error {
	if companyID == "" {
		return NewCampaignError(ErrCompanyRequired, apiErrors.ErrMissingRequiredData, "")
	}

	channel, ok := domain.ParseChannel(string(record.Channel))
	if !ok {
		return NewCampaignError(ErrInvalidChannel, apiErrors.ErrInvalidChannel, fmt.Sprintf("canal %q", record.Channel))
	}
	record.Channel = channel

	date, ok := metrics.ParseDate(record.Date)
	if !ok {
		return NewCampaignError(ErrInvalidDate, apiErrors.ErrInvalidDate, fmt.Sprintf("data %q", record.Date))
	}
	record.Date = date.Format(time.DateOnly)
	roundMoney(record)

	return nil
}

// roundMoney grava os valores monetários com duas casas, mesma precisão usada nos cálculos
func roundMoney(record *domain.CampaignRecord) {
	for _, field := range []*domain.Decimal{
		&record.InvestedActual,
		&record.InvestedPlanned,
		&record.ChannelSales,
		&record.RevenuePlanned,
		&record.CampaignRevenueActual,
		&record.OverallRevenueActual,
		&record.AverageTicketActual,
	} {
		*field = domain.Decimal(utils.RoundWithTwoDecimalPlace(field.Float()))
	}
}

// Warnings lista os avisos de negócio do registro. Não bloqueiam gravação nem cálculo.
func Warnings(record domain.CampaignRecord) []string {
	invested := record.InvestedActual.Float()
	revenue := record.CampaignRevenueActual.Float()

	if (invested != 0 || revenue != 0) && revenue <= invested {
		return []string{WarningRevenueNotAboveInvestment}
	}
	return nil
}

func withWarnings(view *domain.CampaignView) *domain.CampaignView {
	view.Warnings = Warnings(view.CampaignRecord)
	return view
}
