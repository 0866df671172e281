package newsapi

import "fmt"

// APIError is a query the provider rejected (bad filter combination, bad
// credentials, exceeded quota). It is not retryable.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("newsapi: %s (%s)", e.Message, e.Code)
}
