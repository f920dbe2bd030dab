package dashboarding

import (
	"errors"
	"fmt"
)

var (
	ErrCompanyRequired   = errors.New("company ID is required")
	ErrInvalidChannel    = errors.New("invalid channel")
	ErrInvalidFilters    = errors.New("invalid dashboard filters")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrBaselineNotFound  = errors.New("baseline snapshot not found")
)

// DashboardError carrega o código de API junto do erro base
type DashboardError struct {
	Err     error
	Code    string
	Details string
}

func (e *DashboardError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *DashboardError) Unwrap() error {
	return e.Err
}

func NewDashboardError(err error, code string, details string) *DashboardError {
	return &DashboardError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
