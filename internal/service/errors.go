package service

import "errors"

var ErrNotFound = errors.New("not found")

// InvalidRequestError carries the client-facing message for a rejected
// request, already phrased for the frontend.
type InvalidRequestError struct {
	Message string
}

func (e *InvalidRequestError) Error() string {
	return e.Message
}

func invalidRequest(msg string) error {
	return &InvalidRequestError{Message: msg}
}
