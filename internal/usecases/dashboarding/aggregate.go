package dashboarding

import (
	"time"

	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/metrics"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

// bucket acumula os campos brutos de um slot do gráfico
type bucket struct {
	totals  domain.CampaignRecord
	tickets []float64
}

func (b *bucket) add(record *domain.CampaignRecord) {
	b.totals.InvestedActual += domain.Decimal(record.InvestedActual.Float())
	b.totals.InvestedPlanned += domain.Decimal(record.InvestedPlanned.Float())
	b.totals.ChannelSales += domain.Decimal(record.ChannelSales.Float())
	b.totals.RevenuePlanned += domain.Decimal(record.RevenuePlanned.Float())
	b.totals.CampaignRevenueActual += domain.Decimal(record.CampaignRevenueActual.Float())
	b.totals.OverallRevenueActual += domain.Decimal(record.OverallRevenueActual.Float())
	b.totals.Leads += record.Leads
	b.totals.NewCustomers += record.NewCustomers
	b.totals.ReturningCustomers += record.ReturningCustomers
	b.totals.Conversions += record.Conversions

	b.tickets = append(b.tickets, record.AverageTicketActual.Float())
}

// values aplica o motor aos totais: as razões nunca são somadas, sempre recalculadas
func (b *bucket) values() map[string]float64 {
	derived := metrics.RecomputeDerived(b.totals)

	return map[string]float64{
		domain.MetricInvestedActual:     utils.RoundWithTwoDecimalPlace(b.totals.InvestedActual.Float()),
		domain.MetricInvestedPlanned:    utils.RoundWithTwoDecimalPlace(b.totals.InvestedPlanned.Float()),
		domain.MetricCampaignRevenue:    utils.RoundWithTwoDecimalPlace(b.totals.CampaignRevenueActual.Float()),
		domain.MetricOverallRevenue:     utils.RoundWithTwoDecimalPlace(b.totals.OverallRevenueActual.Float()),
		domain.MetricChannelSales:       utils.RoundWithTwoDecimalPlace(b.totals.ChannelSales.Float()),
		domain.MetricLeads:              float64(b.totals.Leads.Int()),
		domain.MetricNewCustomers:       float64(b.totals.NewCustomers.Int()),
		domain.MetricReturningCustomers: float64(b.totals.ReturningCustomers.Int()),
		domain.MetricConversions:        float64(b.totals.Conversions.Int()),
		domain.MetricAverageTicket:      utils.RoundWithTwoDecimalPlace(metrics.ComputeAverage(b.tickets)),
		domain.MetricROI:                derived.ROIPercent,
		domain.MetricROAS:               derived.ROAS,
		domain.MetricCAC:                derived.CAC,
		domain.MetricARPU:               derived.ARPU,
		domain.MetricConversionRate:     derived.ConversionRatePercent,
	}
}

// series agrupa os registros em buckets ordenados. keyOf devolve o índice do bucket ou -1.
func series(records []*domain.CampaignRecord, size int, keyOf func(time.Time) int) []*bucket {
	buckets := make([]*bucket, size)
	for i := range buckets {
		buckets[i] = &bucket{}
	}

	for _, record := range records {
		date, ok := metrics.ParseDate(record.Date)
		if !ok {
			continue
		}

		index := keyOf(date)
		if index < 0 || index >= size {
			continue
		}
		buckets[index].add(record)
	}

	return buckets
}

// metricSeries transpõe os buckets em uma série por métrica
func metricSeries(buckets []*bucket) map[string][]float64 {
	out := make(map[string][]float64, len(domain.DashboardMetrics))
	for _, metric := range domain.DashboardMetrics {
		out[metric] = make([]float64, len(buckets))
	}

	for i, b := range buckets {
		for metric, value := range b.values() {
			out[metric][i] = value
		}
	}

	return out
}

func total(records []*domain.CampaignRecord) *bucket {
	b := &bucket{}
	for _, record := range records {
		if _, ok := metrics.ParseDate(record.Date); ok {
			b.add(record)
		}
	}
	return b
}
