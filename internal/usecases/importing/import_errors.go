package importing

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState     = errors.New("invalid oauth state")
	ErrStateSigning     = errors.New("error signing oauth state")
	ErrSpreadsheetFetch = errors.New("error fetching spreadsheet")
	ErrLoadExisting     = errors.New("error loading existing accounts")
	ErrPersist          = errors.New("error persisting imported accounts")
	ErrMissingLayout    = errors.New("spreadsheet layout not configured")
)

// ImportError carrega o código da API e a plataforma envolvida
type ImportError struct {
	Err      error
	Code     string
	Platform string
	Details  string
}

func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func NewImportError(err error, code string, platform string, details string) *ImportError {
	return &ImportError{
		Err:      err,
		Code:     code,
		Platform: platform,
		Details:  details,
	}
}
