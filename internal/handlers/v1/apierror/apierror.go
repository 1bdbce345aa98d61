// Package apierror renders every failure of the HTTP API as {"error": message}.
package apierror

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/domainerr"
	"github.com/carson-networks/finance-server/internal/logging"
)

// Error is the body of every non-2xx response.
type Error struct {
	Status  int    `json:"-"`
	Message string `json:"error" doc:"Human readable error message"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.Status
}

func init() {
	huma.NewError = New
}

// New builds an Error. Request validation failures are reported as 400.
func New(status int, message string, errs ...error) huma.StatusError {
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 && status < http.StatusInternalServerError {
		message = message + ": " + strings.Join(details, "; ")
	}
	return &Error{Status: status, Message: message}
}

// FromDomain maps a service error to its response and records the cause on
// the request's LogData.
func FromDomain(ctx context.Context, err error) error {
	status := domainerr.StatusCode(err)
	logData := logging.GetLogData(ctx)
	logData.AddData("errorStatus", status)
	logData.AddData("error", err.Error())
	return &Error{Status: status, Message: domainerr.Message(err)}
}
