package metrics

import (
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

// Limites do clima, em pontos percentuais de ROI
const (
	excellentROIThreshold = 100.0
	goodROIThreshold      = 50.0
	regularROIThreshold   = 0.0
)

// RecomputeDerived calcula todos os campos derivados a partir dos campos brutos do registro.
// Chamar duas vezes com a mesma entrada produz exatamente o mesmo resultado.
func RecomputeDerived(record domain.CampaignRecord) domain.DerivedFields {
	investedActual := record.InvestedActual.Float()
	investedPlanned := record.InvestedPlanned.Float()
	revenuePlanned := record.RevenuePlanned.Float()
	campaignRevenue := record.CampaignRevenueActual.Float()
	totalCustomers := record.TotalCustomers()
	leads := record.Leads.Int()

	derived := domain.DerivedFields{
		InvestmentBalance: utils.RoundWithTwoDecimalPlace(investedPlanned - investedActual),
		RevenueBalance:    utils.RoundWithTwoDecimalPlace(revenuePlanned - campaignRevenue),
		TotalCustomers:    totalCustomers,
	}

	if date, ok := ParseDate(record.Date); ok {
		derived.Month = MonthName(date.Month())
		derived.Year = date.Year()
		derived.WeekOfMonth = WeekOfMonth(date)
	}

	if investedActual > 0 {
		derived.ROIPercent = utils.RoundWithTwoDecimalPlace((campaignRevenue - investedActual) / investedActual * 100)
		derived.ROAS = utils.RoundWithTwoDecimalPlace(campaignRevenue / investedActual)
	}

	if totalCustomers > 0 {
		derived.CAC = utils.RoundWithTwoDecimalPlace(investedActual / float64(totalCustomers))
		derived.ARPU = utils.RoundWithTwoDecimalPlace(campaignRevenue / float64(totalCustomers))
	}

	if leads > 0 {
		derived.ConversionRatePercent = utils.RoundWithTwoDecimalPlace(float64(totalCustomers) / float64(leads) * 100)
	}

	derived.Climate = ClassifyClimate(derived.ROIPercent)

	return derived
}

// ClassifyClimate classifica o ROI (%) em Excellent (>=100), Good (>=50), Regular (>=0) ou Poor
func ClassifyClimate(roiPercent float64) domain.Climate {
	roi := utils.Finite(roiPercent)

	switch {
	case roi >= excellentROIThreshold:
		return domain.ClimateExcellent
	case roi >= goodROIThreshold:
		return domain.ClimateGood
	case roi >= regularROIThreshold:
		return domain.ClimateRegular
	default:
		return domain.ClimatePoor
	}
}

// Recompute monta a visão completa do registro (campos brutos + derivados + texto formatado)
func Recompute(record domain.CampaignRecord) *domain.CampaignView {
	derived := RecomputeDerived(record)

	return &domain.CampaignView{
		CampaignRecord: record,
		Derived:        derived,
		Display:        derived.Display(),
	}
}
