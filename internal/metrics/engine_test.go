package metrics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
)

func TestRecomputeDerived_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.CampaignRecord
		expected domain.DerivedFields
	}{
		{
			name: "campanha lucrativa",
			record: domain.CampaignRecord{
				Date:                  "2024-03-15",
				InvestedActual:        1000,
				CampaignRevenueActual: 2500,
				NewCustomers:          3,
				ReturningCustomers:    2,
				Leads:                 50,
			},
			expected: domain.DerivedFields{
				Month:                 "março",
				Year:                  2024,
				WeekOfMonth:           3,
				InvestmentBalance:     -1000,
				RevenueBalance:        -2500,
				ROIPercent:            150,
				ROAS:                  2.5,
				TotalCustomers:        5,
				CAC:                   200,
				ARPU:                  500,
				ConversionRatePercent: 10,
				Climate:               domain.ClimateExcellent,
			},
		},
		{
			name: "sem investimento, clientes ou leads",
			record: domain.CampaignRecord{
				Date:                  "2024-01-01",
				CampaignRevenueActual: 500,
			},
			expected: domain.DerivedFields{
				Month:          "janeiro",
				Year:           2024,
				WeekOfMonth:    1,
				RevenueBalance: -500,
				Climate:        domain.ClimateRegular,
			},
		},
		{
			name: "prejuízo",
			record: domain.CampaignRecord{
				Date:                  "2024-12-31",
				InvestedActual:        1000,
				InvestedPlanned:       800,
				RevenuePlanned:        3000,
				CampaignRevenueActual: 400,
				NewCustomers:          1,
				Leads:                 3,
			},
			expected: domain.DerivedFields{
				Month:                 "dezembro",
				Year:                  2024,
				WeekOfMonth:           5,
				InvestmentBalance:     -200,
				RevenueBalance:        2600,
				ROIPercent:            -60,
				ROAS:                  0.4,
				TotalCustomers:        1,
				CAC:                   1000,
				ARPU:                  400,
				ConversionRatePercent: 33.33,
				Climate:               domain.ClimatePoor,
			},
		},
		{
			name: "data inválida não impede os demais cálculos",
			record: domain.CampaignRecord{
				Date:                  "31/31/2024",
				InvestedActual:        200,
				CampaignRevenueActual: 300,
			},
			expected: domain.DerivedFields{
				InvestmentBalance: -200,
				RevenueBalance:    -300,
				ROIPercent:        50,
				ROAS:              1.5,
				Climate:           domain.ClimateGood,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RecomputeDerived(tt.record))
		})
	}
}

func TestRecomputeDerived_ZeroDenominatorPolicy(t *testing.T) {
	records := []domain.CampaignRecord{
		{InvestedActual: 0, CampaignRevenueActual: 1000, Leads: 0},
		{InvestedActual: 0, CampaignRevenueActual: 0, NewCustomers: 0, ReturningCustomers: 0},
		{InvestedActual: domain.Decimal(math.NaN()), CampaignRevenueActual: domain.Decimal(math.Inf(1))},
		{InvestedActual: -10, CampaignRevenueActual: 50, Leads: -3, NewCustomers: 2, ReturningCustomers: -2},
	}

	for _, record := range records {
		derived := RecomputeDerived(record)

		assert.Zero(t, derived.ROIPercent)
		assert.Zero(t, derived.ROAS)
		assert.Zero(t, derived.CAC)
		assert.Zero(t, derived.ARPU)
		assert.Zero(t, derived.ConversionRatePercent)
		assert.False(t, math.IsNaN(derived.InvestmentBalance))
		assert.False(t, math.IsInf(derived.RevenueBalance, 0))
		assert.Equal(t, domain.ClimateRegular, derived.Climate)
	}
}

func TestRecomputeDerived_NegativeBalanceIsValid(t *testing.T) {
	derived := RecomputeDerived(domain.CampaignRecord{InvestedActual: 1500, InvestedPlanned: 1000})

	assert.Equal(t, -500.0, derived.InvestmentBalance)
}

func TestRecompute_Idempotent(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	dates := []string{"2024-02-29", "2023-07-01", "", "lixo", "2025-11-30T10:00:00Z"}

	for i := 0; i < 200; i++ {
		record := domain.CampaignRecord{
			Channel:               domain.Channels[i%len(domain.Channels)],
			Date:                  dates[i%len(dates)],
			InvestedActual:        domain.Decimal(rnd.Float64() * 5000),
			InvestedPlanned:       domain.Decimal(rnd.Float64() * 5000),
			ChannelSales:          domain.Decimal(rnd.Float64() * 9000),
			RevenuePlanned:        domain.Decimal(rnd.Float64() * 9000),
			CampaignRevenueActual: domain.Decimal(rnd.Float64() * 9000),
			Leads:                 domain.Count(rnd.Intn(300)),
			NewCustomers:          domain.Count(rnd.Intn(20)),
			ReturningCustomers:    domain.Count(rnd.Intn(20)),
		}

		first := Recompute(record)
		second := Recompute(first.RawFieldsOnly())

		assert.Equal(t, first, second)
	}
}

func TestRecompute_DisplayMatchesNumbers(t *testing.T) {
	view := Recompute(domain.CampaignRecord{
		InvestedActual:        1000,
		CampaignRevenueActual: 2500,
		NewCustomers:          3,
		ReturningCustomers:    2,
		Leads:                 50,
	})

	assert.Equal(t, "150.00", view.Display.ROIPercent)
	assert.Equal(t, "2.50", view.Display.ROAS)
	assert.Equal(t, "200.00", view.Display.CAC)
	assert.Equal(t, "500.00", view.Display.ARPU)
	assert.Equal(t, "10.00", view.Display.ConversionRatePercent)
	assert.Equal(t, "Excelente", view.Display.Climate)
}

func TestClassifyClimate_Boundaries(t *testing.T) {
	assert.Equal(t, domain.ClimatePoor, ClassifyClimate(-0.01))
	assert.Equal(t, domain.ClimateRegular, ClassifyClimate(0))
	assert.Equal(t, domain.ClimateRegular, ClassifyClimate(49.99))
	assert.Equal(t, domain.ClimateGood, ClassifyClimate(50))
	assert.Equal(t, domain.ClimateGood, ClassifyClimate(99.99))
	assert.Equal(t, domain.ClimateExcellent, ClassifyClimate(100))
	assert.Equal(t, domain.ClimateRegular, ClassifyClimate(math.NaN()))
}

func TestClassifyClimate_Monotonic(t *testing.T) {
	previous := ClassifyClimate(-500).Rank()

	for roi := -500.0; roi <= 500; roi += 0.25 {
		rank := ClassifyClimate(roi).Rank()
		assert.GreaterOrEqual(t, rank, previous, "roi=%v", roi)
		previous = rank
	}
}
