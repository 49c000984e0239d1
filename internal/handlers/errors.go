package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofiber/fiber/v2"

	"github.com/trentd187/fiber-starter/internal/apperr"
)

// internalErrorTitle is the fixed "error" field for every 500 response.
const internalErrorTitle = "Internal server error"

// ErrorResponse is the JSON body of every error the API returns:
//
//	{"error": "Internal server error", "message": "<details>"}
//
// It implements huma.StatusError, so handlers can return it directly.
type ErrorResponse struct {
	status int

	Title   string `json:"error" example:"Internal server error" doc:"Short, fixed description of the failure class"`
	Message string `json:"message" example:"failed to insert demo record: database is locked" doc:"Details of the underlying error"`
}

// Error returns the detail message.
func (e *ErrorResponse) Error() string { return e.Message }

// GetStatus returns the HTTP status the response is written with.
func (e *ErrorResponse) GetStatus() int { return e.status }

// StatusFor maps an error kind to its HTTP status.
// Every kind is a server-side failure today; keep the switch exhaustive so adding a
// kind forces a decision here.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindConfiguration:
		return http.StatusInternalServerError
	case apperr.KindInfrastructure:
		return http.StatusInternalServerError
	case apperr.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// Respond converts any error into the uniform error response. It is total: a nil or
// unclassified error still yields a 500. Nothing is logged here; the request logger
// middleware records the status.
func Respond(err error) *ErrorResponse {
	var resp *ErrorResponse
	if errors.As(err, &resp) {
		return resp
	}

	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	status := StatusFor(apperr.KindOf(err))
	return &ErrorResponse{status: status, Title: titleFor(status), Message: msg}
}

// NewError is installed as huma.NewError so that errors huma produces itself
// (validation, content negotiation) share the ErrorResponse shape.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	details := make([]string, 0, len(errs)+1)
	if msg != "" {
		details = append(details, msg)
	}
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	return &ErrorResponse{status: status, Title: titleFor(status), Message: strings.Join(details, ": ")}
}

// ErrorHandler is the fiber.Config ErrorHandler. It renders errors returned by plain
// fiber handlers (favicon, static files, unknown routes, recovered panics).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var resp *ErrorResponse
	var fe *fiber.Error
	switch {
	case errors.As(err, &resp):
	case errors.As(err, &fe):
		resp = &ErrorResponse{status: fe.Code, Title: titleFor(fe.Code), Message: fe.Message}
	default:
		resp = Respond(err)
	}
	return c.Status(resp.status).JSON(resp)
}

func titleFor(status int) string {
	if status == http.StatusInternalServerError {
		return internalErrorTitle
	}
	return http.StatusText(status)
}
