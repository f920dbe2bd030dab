// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Channel string

const (
	ChannelGoogle    Channel = "google"
	ChannelInstagram Channel = "instagram"
	ChannelFacebook  Channel = "facebook"
)

// Channels lista os canais suportados, na ordem exibida no dashboard
var Channels = []Channel{ChannelGoogle, ChannelInstagram, ChannelFacebook}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelGoogle, ChannelInstagram, ChannelFacebook:
		return true
	}
	return false
}

// ParseChannel normaliza o nome do canal ("Google " -> google)
func ParseChannel(value string) (Channel, bool) {
	channel := Channel(strings.ToLower(strings.TrimSpace(value)))
	return channel, channel.IsValid()
}

// Decimal é um valor monetário que aceita número ou string no JSON.
// Qualquer valor ausente ou inválido é convertido para 0.
type Decimal float64

func (d *Decimal) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*d = 0
		return nil
	}

	*d = Decimal(utils.ToFloat(numericOnly(raw)))
	return nil
}

func (d Decimal) Float() float64 {
	return utils.Finite(float64(d))
}

// Count é um contador inteiro não negativo (leads, clientes) com a mesma regra de conversão do Decimal
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*c = 0
		return nil
	}

	*c = Count(utils.ToInt(numericOnly(raw)))
	return nil
}

// numericOnly descarta booleanos, objetos e arrays antes da conversão numérica
func numericOnly(raw any) any {
	switch raw.(type) {
	case float64, string:
		return raw
	default:
		return nil
	}
}

func (c Count) Int() int {
	return int(c)
}

// CampaignRecord representa uma observação de campanha para uma data e um canal.
// Contém apenas os campos brutos; os campos derivados nunca são persistidos.
type CampaignRecord struct {
	ID                    string     `json:"id,omitempty"`
	CompanyID             string     `json:"company_id,omitempty"`
	Channel               Channel    `json:"channel"`
	Date                  string     `json:"date"`
	InvestedActual        Decimal    `json:"invested_actual"`
	InvestedPlanned       Decimal    `json:"invested_planned"`
	ChannelSales          Decimal    `json:"channel_sales"`
	RevenuePlanned        Decimal    `json:"revenue_planned"`
	CampaignRevenueActual Decimal    `json:"campaign_revenue_actual"`
	OverallRevenueActual  Decimal    `json:"overall_revenue_actual"`
	AverageTicketActual   Decimal    `json:"average_ticket_actual"`
	Leads                 Count      `json:"leads"`
	NewCustomers          Count      `json:"new_customers"`
	ReturningCustomers    Count      `json:"returning_customers"`
	Conversions           Count      `json:"conversions"`
	CreatedAt             *time.Time `json:"created_at,omitempty"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
}

// TotalCustomers é a base de clientes usada por CAC, ARPU e taxa de conversão
func (r CampaignRecord) TotalCustomers() int {
	return r.NewCustomers.Int() + r.ReturningCustomers.Int()
}

// CampaignFilters filtra a listagem de registros de uma empresa
type CampaignFilters struct {
	Channel   *Channel
	StartDate *time.Time
	EndDate   *time.Time
}

// CompanyChannel identifica um par empresa x canal com registros
type CompanyChannel struct {
	CompanyID string  `json:"company_id"`
	Channel   Channel `json:"channel"`
}
