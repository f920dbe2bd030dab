package domain

import "github.com/vfg2006/campaign-metrics-api/pkg/utils"

// Climate classifica o ROI de forma qualitativa
type Climate string

const (
	ClimatePoor      Climate = "Poor"
	ClimateRegular   Climate = "Regular"
	ClimateGood      Climate = "Good"
	ClimateExcellent Climate = "Excellent"
)

// Rank ordena os climas: Poor < Regular < Good < Excellent. Valores desconhecidos retornam -1.
func (c Climate) Rank() int {
	switch c {
	case ClimatePoor:
		return 0
	case ClimateRegular:
		return 1
	case ClimateGood:
		return 2
	case ClimateExcellent:
		return 3
	}
	return -1
}

// Label retorna o rótulo exibido no painel
func (c Climate) Label() string {
	switch c {
	case ClimateExcellent:
		return "Excelente"
	case ClimateGood:
		return "Bom"
	case ClimateRegular:
		return "Regular"
	case ClimatePoor:
		return "Ruim"
	}
	return ""
}

// DerivedFields são os campos calculados de um CampaignRecord, sempre com precisão de 2 casas
type DerivedFields struct {
	Month                 string  `json:"month"`
	Year                  int     `json:"year"`
	WeekOfMonth           int     `json:"week_of_month"`
	InvestmentBalance     float64 `json:"investment_balance"`
	RevenueBalance        float64 `json:"revenue_balance"`
	ROIPercent            float64 `json:"roi_percent"`
	ROAS                  float64 `json:"roas"`
	TotalCustomers        int     `json:"total_customers"`
	CAC                   float64 `json:"cac"`
	ARPU                  float64 `json:"arpu"`
	ConversionRatePercent float64 `json:"conversion_rate_percent"`
	Climate               Climate `json:"climate"`
}

// DerivedDisplay é a representação textual (2 casas decimais) dos mesmos valores de DerivedFields
type DerivedDisplay struct {
	InvestmentBalance     string `json:"investment_balance"`
	RevenueBalance        string `json:"revenue_balance"`
	ROIPercent            string `json:"roi_percent"`
	ROAS                  string `json:"roas"`
	CAC                   string `json:"cac"`
	ARPU                  string `json:"arpu"`
	ConversionRatePercent string `json:"conversion_rate_percent"`
	Climate               string `json:"climate"`
}

func (d DerivedFields) Display() DerivedDisplay {
	return DerivedDisplay{
		InvestmentBalance:     utils.FormatTwoDecimals(d.InvestmentBalance),
		RevenueBalance:        utils.FormatTwoDecimals(d.RevenueBalance),
		ROIPercent:            utils.FormatTwoDecimals(d.ROIPercent),
		ROAS:                  utils.FormatTwoDecimals(d.ROAS),
		CAC:                   utils.FormatTwoDecimals(d.CAC),
		ARPU:                  utils.FormatTwoDecimals(d.ARPU),
		ConversionRatePercent: utils.FormatTwoDecimals(d.ConversionRatePercent),
		Climate:               d.Climate.Label(),
	}
}

// CampaignView é o registro bruto acrescido dos campos derivados, pronto para renderização
type CampaignView struct {
	CampaignRecord
	Derived  DerivedFields  `json:"derived"`
	Display  DerivedDisplay `json:"display"`
	Warnings []string       `json:"warnings,omitempty"`
}

// RawFieldsOnly descarta os campos derivados antes do envio ao armazenamento
func (v CampaignView) RawFieldsOnly() CampaignRecord {
	return v.CampaignRecord
}
