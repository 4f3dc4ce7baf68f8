package response

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/shopity/internal/errors"
	"github.com/go-playground/validator/v10"
)

type APIResponse struct {
	Success bool           `json:"success"`
	Data    any            `json:"data,omitempty"`
	Error   *ErrorResponse `json:"error,omitempty"`
}

type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// fieldRules maps a validator tag to its message; %[1]s is the field and %[2]s the tag parameter.
var fieldRules = map[string]string{
	"required":       "Field %[1]s is required",
	"email":          "Field %[1]s must be a valid email address",
	"min":            "Field %[1]s must be at least %[2]s",
	"gte":            "Field %[1]s must be at least %[2]s",
	"max":            "Field %[1]s must be at most %[2]s",
	"gt":             "Field %[1]s must be greater than %[2]s",
	"lt":             "Field %[1]s must be less than %[2]s",
	"strongpassword": "Field %[1]s must be at least 8 characters with an upper-case letter, a lower-case letter and a digit",
}

func WriteJson(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", slog.Int("status", statusCode), slog.String("error", err.Error()))
		return err
	}

	return nil
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	WriteJson(w, statusCode, APIResponse{Success: true, Data: data})
}

// Error writes err as an error envelope. Errors that are not AppErrors are
// reported as a bare 500 so their text never reaches the client.
func Error(w http.ResponseWriter, err error) {
	appErr, ok := errors.IsAppError(err)
	if !ok {
		fail(w, http.StatusInternalServerError, &ErrorResponse{
			Code:    errors.ErrCodeInternal,
			Message: "An unexpected error occurred",
		})
		return
	}

	body := &ErrorResponse{Code: appErr.Code, Message: appErr.Message}
	if appErr.Detail != "" {
		body.Details = []string{appErr.Detail}
	}

	fail(w, appErr.StatusCode, body)
}

// ValidationError writes one detail line per failed field.
func ValidationError(w http.ResponseWriter, errs validator.ValidationErrors) {
	details := make([]string, 0, len(errs))
	for _, fe := range errs {
		details = append(details, fieldMessage(fe))
	}

	fail(w, http.StatusBadRequest, &ErrorResponse{
		Code:    errors.ErrCodeValidation,
		Message: "Validation failed",
		Details: details,
	})
}

func fieldMessage(fe validator.FieldError) string {
	if format, ok := fieldRules[fe.Tag()]; ok {
		return fmt.Sprintf(format, fe.Field(), fe.Param())
	}

	return fmt.Sprintf("Field %s is invalid: %s=%s", fe.Field(), fe.Tag(), fe.Param())
}

func fail(w http.ResponseWriter, statusCode int, body *ErrorResponse) {
	WriteJson(w, statusCode, APIResponse{Error: body})
}
