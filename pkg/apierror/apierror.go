package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Rejection is a deliberate application-level refusal of a request. The
// status code passes through to the client unchanged.
type Rejection struct {
	Status int
	Detail string
}

func (e *Rejection) Error() string {
	return e.Detail
}

// NewRejection creates a rejection with an explicit status code and detail
func NewRejection(status int, detail string) *Rejection {
	return &Rejection{Status: status, Detail: detail}
}

// BadRequest is a 400 rejection
func BadRequest(detail string) *Rejection {
	return NewRejection(http.StatusBadRequest, detail)
}

// ValidationError carries the structured field failures of an inbound
// payload that did not satisfy its declared schema.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return FriendlyMessage(e.Fields)
}

// Classify maps any failure to a (status code, client message) pair.
// Nothing may propagate unformatted: unrecognized errors become a 500
// with the error text embedded in the message.
func Classify(err error) (int, string) {
	var rejection *Rejection
	if errors.As(err, &rejection) {
		message := rejection.Detail
		if message == "" {
			message = "HTTP error occurred"
		}
		return rejection.Status, message
	}

	var validation *ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest, FriendlyMessage(validation.Fields)
	}

	return http.StatusInternalServerError, fmt.Sprintf("Internal server error: %v", err)
}
