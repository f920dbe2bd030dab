package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

//go:generate mockgen -source=campaign_record.go -destination=mocks/campaign_record_mock.go -package=mocks

const (
	campaignRecordsTable = "campaign_records"
)

// ErrNoRowsAffected indica que o registro não existe para a empresa informada
var ErrNoRowsAffected = errors.New("nenhum registro afetado")

// Apenas colunas brutas: os campos derivados são recalculados a cada leitura
var campaignRecordColumns = []string{
	"id",
	"company_id",
	"channel",
	"date",
	"invested_actual",
	"invested_planned",
	"channel_sales",
	"revenue_planned",
	"campaign_revenue_actual",
	"overall_revenue_actual",
	"average_ticket_actual",
	"leads",
	"new_customers",
	"returning_customers",
	"conversions",
	"created_at",
	"updated_at",
}

type CampaignRecordRepository interface {
	Create(ctx context.Context, record *domain.CampaignRecord) error
	Update(ctx context.Context, record *domain.CampaignRecord) error
	GetByID(ctx context.Context, companyID, id string) (*domain.CampaignRecord, error)
	List(ctx context.Context, companyID string, filters domain.CampaignFilters) ([]*domain.CampaignRecord, error)
	Delete(ctx context.Context, companyID, id string) error
	ListCompanyChannels(ctx context.Context) ([]domain.CompanyChannel, error)
}

type campaignRecordRepository struct {
	conn postgres.Queryer
}

func NewCampaignRecordRepository(conn postgres.Queryer) CampaignRecordRepository {
	return &campaignRecordRepository{
		conn: conn,
	}
}

func (r *campaignRecordRepository) Create(ctx context.Context, record *domain.CampaignRecord) error {
	query, args, err := buildInsertCampaignRecord(record)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var createdAt, updatedAt time.Time
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return wrapPQError(err)
	}

	record.CreatedAt = &createdAt
	record.UpdatedAt = &updatedAt
	return nil
}

func (r *campaignRecordRepository) Update(ctx context.Context, record *domain.CampaignRecord) error {
	query, args, err := buildUpdateCampaignRecord(record)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var createdAt, updatedAt time.Time
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoRowsAffected
		}
		return wrapPQError(err)
	}

	record.CreatedAt = &createdAt
	record.UpdatedAt = &updatedAt
	return nil
}

// GetByID retorna nil, nil quando o registro não existe para a empresa
func (r *campaignRecordRepository) GetByID(ctx context.Context, companyID, id string) (*domain.CampaignRecord, error) {
	query, args, err := squirrel.
		Select(campaignRecordColumns...).
		From(campaignRecordsTable).
		Where(squirrel.Eq{"company_id": companyID, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	record, err := scanCampaignRecord(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro de campanha: %w", err)
	}

	return record, nil
}

func (r *campaignRecordRepository) List(ctx context.Context, companyID string, filters domain.CampaignFilters) ([]*domain.CampaignRecord, error) {
	query, args, err := buildListCampaignRecords(companyID, filters)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError(err)
	}
	defer rows.Close()

	records := make([]*domain.CampaignRecord, 0)
	for rows.Next() {
		record, err := scanCampaignRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de campanha: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *campaignRecordRepository) Delete(ctx context.Context, companyID, id string) error {
	query, args, err := squirrel.
		Delete(campaignRecordsTable).
		Where(squirrel.Eq{"company_id": companyID, "id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapPQError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNoRowsAffected
	}

	return nil
}

// ListCompanyChannels lista os pares empresa x canal que possuem registros
func (r *campaignRecordRepository) ListCompanyChannels(ctx context.Context) ([]domain.CompanyChannel, error) {
	query, args, err := squirrel.
		Select("company_id", "channel").
		Distinct().
		From(campaignRecordsTable).
		OrderBy("company_id", "channel").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError(err)
	}
	defer rows.Close()

	pairs := make([]domain.CompanyChannel, 0)
	for rows.Next() {
		var pair domain.CompanyChannel
		if err := rows.Scan(&pair.CompanyID, &pair.Channel); err != nil {
			return nil, fmt.Errorf("erro ao escanear empresa/canal: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return pairs, nil
}

func buildInsertCampaignRecord(record *domain.CampaignRecord) (string, []any, error) {
	return squirrel.
		Insert(campaignRecordsTable).
		Columns(campaignRecordColumns[:15]...).
		Values(
			record.ID,
			record.CompanyID,
			string(record.Channel),
			record.Date,
			record.InvestedActual.Float(),
			record.InvestedPlanned.Float(),
			record.ChannelSales.Float(),
			record.RevenuePlanned.Float(),
			record.CampaignRevenueActual.Float(),
			record.OverallRevenueActual.Float(),
			record.AverageTicketActual.Float(),
			record.Leads.Int(),
			record.NewCustomers.Int(),
			record.ReturningCustomers.Int(),
			record.Conversions.Int(),
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildUpdateCampaignRecord(record *domain.CampaignRecord) (string, []any, error) {
	return squirrel.
		Update(campaignRecordsTable).
		SetMap(map[string]any{
			"channel":                 string(record.Channel),
			"date":                    record.Date,
			"invested_actual":         record.InvestedActual.Float(),
			"invested_planned":        record.InvestedPlanned.Float(),
			"channel_sales":           record.ChannelSales.Float(),
			"revenue_planned":         record.RevenuePlanned.Float(),
			"campaign_revenue_actual": record.CampaignRevenueActual.Float(),
			"overall_revenue_actual":  record.OverallRevenueActual.Float(),
			"average_ticket_actual":   record.AverageTicketActual.Float(),
			"leads":                   record.Leads.Int(),
			"new_customers":           record.NewCustomers.Int(),
			"returning_customers":     record.ReturningCustomers.Int(),
			"conversions":             record.Conversions.Int(),
			"updated_at":              squirrel.Expr("NOW()"),
		}).
		Where(squirrel.Eq{"company_id": record.CompanyID, "id": record.ID}).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListCampaignRecords(companyID string, filters domain.CampaignFilters) (string, []any, error) {
	query := squirrel.
		Select(campaignRecordColumns...).
		From(campaignRecordsTable).
		Where(squirrel.Eq{"company_id": companyID})

	if filters.Channel != nil {
		query = query.Where(squirrel.Eq{"channel": string(*filters.Channel)})
	}
	if filters.StartDate != nil {
		query = query.Where(squirrel.GtOrEq{"date": filters.StartDate.Format(time.DateOnly)})
	}
	if filters.EndDate != nil {
		query = query.Where(squirrel.LtOrEq{"date": filters.EndDate.Format(time.DateOnly)})
	}

	return query.
		OrderBy("date DESC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaignRecord(row rowScanner) (*domain.CampaignRecord, error) {
	var (
		record    domain.CampaignRecord
		channel   string
		date      time.Time
		createdAt time.Time
		updatedAt time.Time
		decimals  [7]float64
		counts    [4]int
	)

	err := row.Scan(
		&record.ID,
		&record.CompanyID,
		&channel,
		&date,
		&decimals[0],
		&decimals[1],
		&decimals[2],
		&decimals[3],
		&decimals[4],
		&decimals[5],
		&decimals[6],
		&counts[0],
		&counts[1],
		&counts[2],
		&counts[3],
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Channel = domain.Channel(channel)
	record.Date = date.Format(time.DateOnly)
	record.InvestedActual = domain.Decimal(decimals[0])
	record.InvestedPlanned = domain.Decimal(decimals[1])
	record.ChannelSales = domain.Decimal(decimals[2])
	record.RevenuePlanned = domain.Decimal(decimals[3])
	record.CampaignRevenueActual = domain.Decimal(decimals[4])
	record.OverallRevenueActual = domain.Decimal(decimals[5])
	record.AverageTicketActual = domain.Decimal(decimals[6])
	record.Leads = domain.Count(counts[0])
	record.NewCustomers = domain.Count(counts[1])
	record.ReturningCustomers = domain.Count(counts[2])
	record.Conversions = domain.Count(counts[3])
	record.CreatedAt = &createdAt
	record.UpdatedAt = &updatedAt

	return &record, nil
}

func wrapPQError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
	}
	return fmt.Errorf("erro ao executar a query: %w", err)
}
