package response

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"eventPlanner/internal/lib/logger/sl"
	"eventPlanner/internal/models"
	"eventPlanner/internal/rules"
)

type Response struct {
	Status     string      `json:"status"`
	Error      string      `json:"error,omitempty"`
	Violations []Violation `json:"violations,omitempty"`
}

// Violation is a client-facing rule failure bound to a request field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

const (
	StatusOK    = "OK"
	StatusError = "Error"
)

func OK() Response {
	return Response{
		Status: StatusOK,
	}
}

func Error(msg string) Response {
	return Response{
		Status: StatusError,
		Error:  msg,
	}
}

func ValidationError(errs validator.ValidationErrors) Response {
	var errMsgs []string

	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is a required field", err.Field()))
		case "min", "max", "gte", "lte":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is out of range", err.Field()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field %s must be one of [%s]", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field %s is not valid", err.Field()))
		}
	}

	return Response{
		Status: StatusError,
		Error:  strings.Join(errMsgs, ", "),
	}
}

// RuleViolations renders every *rules.Violation found in err.
// The error message is the first violation's message.
func RuleViolations(err error) Response {
	list := rules.Violations(err)

	resp := Response{Status: StatusError}
	if len(list) == 0 {
		resp.Error = err.Error()
		return resp
	}

	resp.Error = list[0].Message
	for _, v := range list {
		resp.Violations = append(resp.Violations, Violation{Field: v.Field, Message: v.Message})
	}

	return resp
}

// IsRuleViolation reports whether err carries at least one domain violation.
func IsRuleViolation(err error) bool {
	var v *rules.Violation
	return errors.As(err, &v)
}

// RuleStatus is 404 when a referenced entity is missing and 422 for any other violation.
func RuleStatus(err error) int {
	if errors.Is(err, rules.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusUnprocessableEntity
}

// Fail renders an error returned by storage. Rule violations are sent back to the
// client as they are; anything else is logged and hidden behind msg.
func Fail(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	if IsRuleViolation(err) {
		log.Info("request rejected", sl.Err(err))
		render.Status(r, RuleStatus(err))
		render.JSON(w, r, RuleViolations(err))
		return
	}

	log.Error(msg, sl.Err(err))
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, Error(msg))
}

type Pagination struct {
	Page         int `json:"page"`
	ItemsPerPage int `json:"items_per_page"`
	Total        int `json:"total"`
	TotalPages   int `json:"total_pages"`
}

func NewPagination(page models.Page, total int) Pagination {
	p := Pagination{
		Page:         page.Number,
		ItemsPerPage: page.ItemsPerPage,
		Total:        total,
	}

	if page.ItemsPerPage > 0 {
		p.TotalPages = (total + page.ItemsPerPage - 1) / page.ItemsPerPage
	}

	return p
}
