package updating

import (
	"errors"
	"fmt"
)

var (
	ErrNotUpdatable = errors.New("platform has no data monitor")
	ErrMonitorFetch = errors.New("error fetching data from monitor")
	ErrLoadAccounts = errors.New("error loading stored accounts")
	ErrPersist      = errors.New("error persisting updated accounts")
	ErrCanceled     = errors.New("update canceled before all samples were fetched")
)

// UpdateError carrega o código da API e a plataforma envolvida
type UpdateError struct {
	Err      error
	Code     string
	Platform string
	Details  string
}

func (e *UpdateError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *UpdateError) Unwrap() error {
	return e.Err
}

func NewUpdateError(err error, code string, platform string, details string) *UpdateError {
	return &UpdateError{
		Err:      err,
		Code:     code,
		Platform: platform,
		Details:  details,
	}
}
