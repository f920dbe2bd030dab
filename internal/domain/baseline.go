package domain

import "time"

// BaselineSnapshot guarda as médias mensais de uma empresa e canal, no formato mm-yyyy
type BaselineSnapshot struct {
	ID        int64              `json:"id"`
	CompanyID string             `json:"company_id"`
	Channel   Channel            `json:"channel"`
	Period    string             `json:"period"`
	Averages  map[string]float64 `json:"averages"`
	Values    map[string]float64 `json:"values"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}
