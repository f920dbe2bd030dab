package campaigning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de registros de campanha
var (
	// Erros de validação
	ErrCompanyRequired = errors.New("company ID is required")
	ErrInvalidChannel  = errors.New("invalid channel")
	ErrInvalidDate     = errors.New("invalid date")

	ErrRecordNotFound = errors.New("campaign record not found")

	// Erros de infraestrutura
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating record ID")
)

// CampaignError é um erro com contexto adicional para registros de campanha
type CampaignError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	RecordID string // ID do registro envolvido (quando aplicável)
	Details  string
}

func (e *CampaignError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

func NewCampaignError(err error, code string, details string) *CampaignError {
	return &CampaignError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewCampaignErrorWithID(err error, code string, recordID string, details string) *CampaignError {
	return &CampaignError{
		Err:      err,
		Code:     code,
		RecordID: recordID,
		Details:  details,
	}
}
