package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

//go:generate mockgen -source=baseline.go -destination=mocks/baseline_mock.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	baselineSnapshotsTable = "baseline_snapshots"
	baselineColumns        = "id, company_id, channel, period, averages, period_values, created_at, updated_at"
)

type BaselineRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.BaselineSnapshot) error
	GetByPeriod(ctx context.Context, companyID string, channel domain.Channel, period string) (*domain.BaselineSnapshot, error)
	ListByCompany(ctx context.Context, companyID string, channel *domain.Channel) ([]*domain.BaselineSnapshot, error)
}

type baselineRepository struct {
	conn postgres.Queryer
}

func NewBaselineRepository(conn postgres.Queryer) BaselineRepository {
	return &baselineRepository{
		conn: conn,
	}
}

func (r *baselineRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.BaselineSnapshot) error {
	query, args, err := buildUpsertBaseline(snapshot)
	if err != nil {
		return err
	}

	row := r.conn.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&snapshot.ID, &snapshot.CreatedAt, &snapshot.UpdatedAt); err != nil {
		return wrapPQError(err)
	}

	return nil
}

// GetByPeriod retorna nil, nil quando não há snapshot para o período mm-yyyy
func (r *baselineRepository) GetByPeriod(ctx context.Context, companyID string, channel domain.Channel, period string) (*domain.BaselineSnapshot, error) {
	query, args, err := squirrel.
		Select(baselineColumns).
		From(baselineSnapshotsTable).
		Where(squirrel.Eq{"company_id": companyID, "channel": string(channel), "period": period}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanBaseline(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

func (r *baselineRepository) ListByCompany(ctx context.Context, companyID string, channel *domain.Channel) ([]*domain.BaselineSnapshot, error) {
	query, args, err := buildListBaselines(companyID, channel)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapPQError(err)
	}
	defer rows.Close()

	snapshots := make([]*domain.BaselineSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanBaseline(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func buildUpsertBaseline(snapshot *domain.BaselineSnapshot) (string, []any, error) {
	averagesJSON, err := json.Marshal(snapshot.Averages)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar médias para JSON: %w", err)
	}

	valuesJSON, err := json.Marshal(snapshot.Values)
	if err != nil {
		return "", nil, fmt.Errorf("erro ao serializar valores para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(baselineSnapshotsTable).
		Columns("company_id", "channel", "period", "averages", "period_values").
		Values(snapshot.CompanyID, string(snapshot.Channel), snapshot.Period, averagesJSON, valuesJSON).
		Suffix(`
			ON CONFLICT (company_id, channel, period) DO UPDATE SET
				averages = EXCLUDED.averages,
				period_values = EXCLUDED.period_values,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return query, args, nil
}

// Períodos mm-yyyy não ordenam como texto, por isso a ordenação usa to_date
func buildListBaselines(companyID string, channel *domain.Channel) (string, []any, error) {
	query := squirrel.
		Select(baselineColumns).
		From(baselineSnapshotsTable).
		Where(squirrel.Eq{"company_id": companyID})

	if channel != nil {
		query = query.Where(squirrel.Eq{"channel": string(*channel)})
	}

	return query.
		OrderBy("to_date(period, 'MM-YYYY') DESC", "channel").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanBaseline(row rowScanner) (*domain.BaselineSnapshot, error) {
	var (
		snapshot     domain.BaselineSnapshot
		channel      string
		averagesJSON []byte
		valuesJSON   []byte
	)

	err := row.Scan(
		&snapshot.ID,
		&snapshot.CompanyID,
		&channel,
		&snapshot.Period,
		&averagesJSON,
		&valuesJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Channel = domain.Channel(channel)

	if err := decodeMetricMap(averagesJSON, &snapshot.Averages); err != nil {
		return nil, fmt.Errorf("erro ao deserializar médias: %w", err)
	}
	if err := decodeMetricMap(valuesJSON, &snapshot.Values); err != nil {
		return nil, fmt.Errorf("erro ao deserializar valores: %w", err)
	}

	return &snapshot, nil
}

func decodeMetricMap(data []byte, target *map[string]float64) error {
	*target = map[string]float64{}
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, target)
}
