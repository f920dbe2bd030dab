package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

type fakeRow struct {
	values []any
	err    error
}

func (f fakeRow) Scan(dest ...any) error {
	if f.err != nil {
		return f.err
	}
	for i, d := range dest {
		switch target := d.(type) {
		case *string:
			*target = f.values[i].(string)
		case *int:
			*target = f.values[i].(int)
		case *int64:
			*target = f.values[i].(int64)
		case *float64:
			*target = f.values[i].(float64)
		case *time.Time:
			*target = f.values[i].(time.Time)
		case *[]byte:
			*target = f.values[i].([]byte)
		}
	}
	return nil
}

func TestBuildInsertCampaignRecord(t *testing.T) {
	record := &domain.CampaignRecord{
		ID:                    "abc123",
		CompanyID:             "empresa-1",
		Channel:               domain.ChannelGoogle,
		Date:                  "2024-03-15",
		InvestedActual:        1000,
		CampaignRevenueActual: 2500,
		Leads:                 50,
	}

	query, args, err := buildInsertCampaignRecord(record)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO campaign_records (id,company_id,channel,date,invested_actual")
	assert.Contains(t, query, "$15")
	assert.NotContains(t, query, "$16")
	assert.Contains(t, query, "RETURNING created_at, updated_at")
	require.Len(t, args, 15)
	assert.Equal(t, "abc123", args[0])
	assert.Equal(t, "google", args[2])
	assert.Equal(t, 1000.0, args[4])
	assert.Equal(t, 50, args[11])
}

func TestBuildUpdateCampaignRecord(t *testing.T) {
	query, args, err := buildUpdateCampaignRecord(&domain.CampaignRecord{ID: "abc123", CompanyID: "empresa-1", Channel: domain.ChannelFacebook})
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE campaign_records SET")
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "WHERE company_id = $")
	assert.NotContains(t, query, "roi")
	assert.Contains(t, args, "empresa-1")
	assert.Contains(t, args, "abc123")
}

func TestBuildListCampaignRecords(t *testing.T) {
	channel := domain.ChannelInstagram
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filters   domain.CampaignFilters
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "somente empresa",
			wantWhere: "WHERE company_id = $1 ORDER BY",
			wantArgs:  []any{"empresa-1"},
		},
		{
			name:      "canal e intervalo",
			filters:   domain.CampaignFilters{Channel: &channel, StartDate: &start, EndDate: &end},
			wantWhere: "WHERE company_id = $1 AND channel = $2 AND date >= $3 AND date <= $4",
			wantArgs:  []any{"empresa-1", "instagram", "2024-01-01", "2024-01-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListCampaignRecords("empresa-1", tt.filters)
			require.NoError(t, err)

			assert.Contains(t, query, tt.wantWhere)
			assert.Contains(t, query, "ORDER BY date DESC, created_at DESC")
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestScanCampaignRecord(t *testing.T) {
	now := time.Date(2024, time.March, 16, 10, 0, 0, 0, time.UTC)
	row := fakeRow{values: []any{
		"abc123", "empresa-1", "google", time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
		1000.0, 1200.0, 3000.0, 4000.0, 2500.0, 5000.0, 150.0,
		50, 3, 2, 4,
		now, now,
	}}

	record, err := scanCampaignRecord(row)
	require.NoError(t, err)

	assert.Equal(t, domain.ChannelGoogle, record.Channel)
	assert.Equal(t, "2024-03-15", record.Date)
	assert.Equal(t, domain.Decimal(2500), record.CampaignRevenueActual)
	assert.Equal(t, domain.Decimal(150), record.AverageTicketActual)
	assert.Equal(t, domain.Count(3), record.NewCustomers)
	assert.Equal(t, 5, record.TotalCustomers())
	assert.Equal(t, now, *record.UpdatedAt)
}

func TestBuildUpsertBaseline(t *testing.T) {
	query, args, err := buildUpsertBaseline(&domain.BaselineSnapshot{
		CompanyID: "empresa-1",
		Channel:   domain.ChannelGoogle,
		Period:    "02-2024",
		Averages:  map[string]float64{domain.MetricROI: 12.5},
	})
	require.NoError(t, err)

	assert.Contains(t, query, "ON CONFLICT (company_id, channel, period) DO UPDATE SET")
	assert.Contains(t, query, "RETURNING id, created_at, updated_at")
	require.Len(t, args, 5)
	assert.JSONEq(t, `{"roi":12.5}`, string(args[3].([]byte)))
	assert.Equal(t, "null", string(args[4].([]byte)))
}

func TestBuildListBaselines(t *testing.T) {
	channel := domain.ChannelFacebook

	query, args, err := buildListBaselines("empresa-1", &channel)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE company_id = $1 AND channel = $2")
	assert.Contains(t, query, "ORDER BY to_date(period, 'MM-YYYY') DESC, channel")
	assert.Equal(t, []any{"empresa-1", "facebook"}, args)
}

func TestScanBaseline(t *testing.T) {
	now := time.Now().UTC()
	row := fakeRow{values: []any{
		int64(7), "empresa-1", "instagram", "01-2024",
		[]byte(`{"roi":10,"cac":25.5}`), []byte(nil),
		now, now,
	}}

	snapshot, err := scanBaseline(row)
	require.NoError(t, err)

	assert.Equal(t, int64(7), snapshot.ID)
	assert.Equal(t, domain.ChannelInstagram, snapshot.Channel)
	assert.Equal(t, 25.5, snapshot.Averages[domain.MetricCAC])
	assert.Empty(t, snapshot.Values)
}

func TestWrapPQError(t *testing.T) {
	err := wrapPQError(&pq.Error{Code: "23505", Message: "duplicate key"})
	assert.Contains(t, err.Error(), "código: 23505")

	var pqErr *pq.Error
	assert.True(t, errors.As(err, &pqErr))

	plain := wrapPQError(errors.New("conexão recusada"))
	assert.Contains(t, plain.Error(), "erro ao executar a query")
}
