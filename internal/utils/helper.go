package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// maxBodyBytes caps every JSON request body; cart and order payloads are small.
const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body cannot be empty")

// DecodeJSONBody reads one JSON value from the request body into dest.
func DecodeJSONBody(r *http.Request, dest any) error {
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))

	err := dec.Decode(dest)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		slog.Warn("Empty request body", slog.String("endpoint", r.URL.Path))
		return errEmptyBody
	default:
		slog.Warn("Malformed request JSON", slog.String("endpoint", r.URL.Path), slog.String("error", err.Error()))
		return fmt.Errorf("invalid JSON format: %w", err)
	}
}

// ValidateStruct wraps validator.ValidationErrors so callers can still reach them with errors.As.
func ValidateStruct(validate *validator.Validate, data any) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	slog.Warn("User input validation failed", slog.Int("fields", len(fieldErrs)))

	return fmt.Errorf("validation error: %w", fieldErrs)
}
