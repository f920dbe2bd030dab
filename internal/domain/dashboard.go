package domain

import stdjson "encoding/json"

// PeriodType é a granularidade do filtro do dashboard
type PeriodType string

const (
	PeriodWeek  PeriodType = "semana"
	PeriodMonth PeriodType = "mes"
	PeriodYear  PeriodType = "ano"
)

func (p PeriodType) IsValid() bool {
	return p == PeriodWeek || p == PeriodMonth || p == PeriodYear
}

// Métricas expostas pelo dashboard. Cada uma gera as chaves <metric>, <metric>_data e <metric>_avg.
const (
	MetricInvestedActual     = "invested_actual"
	MetricInvestedPlanned    = "invested_planned"
	MetricCampaignRevenue    = "campaign_revenue"
	MetricOverallRevenue     = "overall_revenue"
	MetricChannelSales       = "channel_sales"
	MetricLeads              = "leads"
	MetricNewCustomers       = "new_customers"
	MetricReturningCustomers = "returning_customers"
	MetricConversions        = "conversions"
	MetricAverageTicket      = "average_ticket"
	MetricROI                = "roi"
	MetricROAS               = "roas"
	MetricCAC                = "cac"
	MetricARPU               = "arpu"
	MetricConversionRate     = "conversion_rate"
)

// DashboardMetrics lista as métricas na ordem em que são serializadas
var DashboardMetrics = []string{
	MetricInvestedActual,
	MetricInvestedPlanned,
	MetricCampaignRevenue,
	MetricOverallRevenue,
	MetricChannelSales,
	MetricLeads,
	MetricNewCustomers,
	MetricReturningCustomers,
	MetricConversions,
	MetricAverageTicket,
	MetricROI,
	MetricROAS,
	MetricCAC,
	MetricARPU,
	MetricConversionRate,
}

type DashboardFilters struct {
	Channel    Channel    `json:"channel"`
	PeriodType PeriodType `json:"filter_type"`
	Year       int        `json:"year"`
	Month      int        `json:"month,omitempty"`
	Week       int        `json:"week,omitempty"`
}

// DashboardAggregate agrega os registros de um período para os cards e gráficos
type DashboardAggregate struct {
	Filters  DashboardFilters
	Labels   []string
	Values   map[string]float64
	Series   map[string][]float64
	Averages map[string]float64
	Above    map[string]bool
}

func NewDashboardAggregate(filters DashboardFilters) *DashboardAggregate {
	return &DashboardAggregate{
		Filters:  filters,
		Labels:   []string{},
		Values:   make(map[string]float64, len(DashboardMetrics)),
		Series:   make(map[string][]float64, len(DashboardMetrics)),
		Averages: make(map[string]float64, len(DashboardMetrics)),
		Above:    make(map[string]bool, len(DashboardMetrics)),
	}
}

// MarshalJSON achata o agregado no formato consumido pelos gráficos:
// {"labels": [...], "roi": 10, "roi_data": [...], "roi_avg": 8, "roi_above": true, ...}
func (a DashboardAggregate) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(DashboardMetrics)*4+2)
	out["filters"] = a.Filters
	out["labels"] = a.Labels

	for _, metric := range DashboardMetrics {
		out[metric] = a.Values[metric]
		out[metric+"_avg"] = a.Averages[metric]
		out[metric+"_above"] = a.Above[metric]

		series := a.Series[metric]
		if series == nil {
			series = []float64{}
		}
		out[metric+"_data"] = series
	}

	return json.Marshal(out)
}

// UnmarshalJSON reconstrói o agregado a partir do formato achatado (usado pelo cache)
func (a *DashboardAggregate) UnmarshalJSON(data []byte) error {
	var raw map[string]stdjson.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*a = *NewDashboardAggregate(DashboardFilters{})

	if v, ok := raw["filters"]; ok {
		if err := json.Unmarshal(v, &a.Filters); err != nil {
			return err
		}
	}
	if v, ok := raw["labels"]; ok {
		if err := json.Unmarshal(v, &a.Labels); err != nil {
			return err
		}
	}

	for _, metric := range DashboardMetrics {
		var value float64
		if v, ok := raw[metric]; ok {
			if err := json.Unmarshal(v, &value); err != nil {
				return err
			}
		}
		a.Values[metric] = value

		var avg float64
		if v, ok := raw[metric+"_avg"]; ok {
			if err := json.Unmarshal(v, &avg); err != nil {
				return err
			}
		}
		a.Averages[metric] = avg

		var above bool
		if v, ok := raw[metric+"_above"]; ok {
			if err := json.Unmarshal(v, &above); err != nil {
				return err
			}
		}
		a.Above[metric] = above

		series := []float64{}
		if v, ok := raw[metric+"_data"]; ok {
			if err := json.Unmarshal(v, &series); err != nil {
				return err
			}
		}
		a.Series[metric] = series
	}

	return nil
}
