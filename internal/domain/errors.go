package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrTransport         = errors.New("transport error")
	ErrMalformedResponse = errors.New("malformed response")
)

// ProviderError describe un fallo de un proveedor externo. Kind es uno de
// ErrNotFound, ErrTransport o ErrMalformedResponse y se compara con errors.Is.
type ProviderError struct {
	Provider   string
	Kind       error
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("%s: %v (status %d): %v", e.Provider, e.Kind, e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: %v (status %d)", e.Provider, e.Kind, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v: %v", e.Provider, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Provider, e.Kind)
	}
}

func (e *ProviderError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NewNotFoundError(provider string, statusCode int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ErrNotFound, StatusCode: statusCode, Err: err}
}

func NewTransportError(provider string, statusCode int, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ErrTransport, StatusCode: statusCode, Err: err}
}

func NewMalformedError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Kind: ErrMalformedResponse, Err: err}
}

// StatusCodeOf devuelve el status HTTP guardado en un ProviderError, o 0.
func StatusCodeOf(err error) int {
	var perr *ProviderError
	if errors.As(err, &perr) {
		return perr.StatusCode
	}
	return 0
}
