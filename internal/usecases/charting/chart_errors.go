package charting

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownQuery  = errors.New("unknown query for platform")
	ErrInvalidActors = errors.New("invalid actors list")
	ErrEmptyDataset  = errors.New("no data points to render")
	ErrFetchAccounts = errors.New("error fetching accounts from database")
	ErrAccountAbsent = errors.New("account not found")
	ErrRender        = errors.New("error rendering chart")
)

// ChartError carrega o código da API junto ao erro de gráfico
type ChartError struct {
	Err     error
	Code    string
	Details string
}

func (e *ChartError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ChartError) Unwrap() error {
	return e.Err
}

func NewChartError(err error, code string, details string) *ChartError {
	return &ChartError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
