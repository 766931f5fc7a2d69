package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/spacesedan/tweetverse/internal/records"
	"github.com/spacesedan/tweetverse/internal/session"
)

var (
	errMethodNotAllowed = errors.New("method not allowed")
	errNoFile           = errors.New("no file provided")
	errNoBounds         = errors.New("start or end is required")
	errDisabledDate     = errors.New("date outside dataset")
)

type apiError struct {
	Code    string
	Message string
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, err error) {
	apiErr := toAPIError(code, err)
	writeJSON(w, code, map[string]any{
		"error": map[string]any{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

// statusFor picks the response status for errors returned by the core
// packages. Anything unknown is a server error.
func statusFor(err error) int {
	var (
		invalid *records.InvalidFileTypeError
		empty   *records.EmptyOrMalformedError
		missing *records.MissingColumnsError
		parse   *records.ParseError
		tooBig  *http.MaxBytesError
	)
	switch {
	case errors.As(err, &tooBig):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &invalid), errors.As(err, &empty),
		errors.As(err, &missing), errors.As(err, &parse):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrNoDataset):
		return http.StatusNotFound
	case errors.Is(err, errNoFile), errors.Is(err, errNoBounds), errors.Is(err, errDisabledDate):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toAPIError(status int, err error) apiError {
	var (
		invalid *records.InvalidFileTypeError
		empty   *records.EmptyOrMalformedError
		missing *records.MissingColumnsError
		parse   *records.ParseError
		tooBig  *http.MaxBytesError
	)

	switch {
	case status >= 500:
		return apiError{
			Code:    "TV-API-5000",
			Message: "Internal server error. Please retry or check service logs.",
		}
	case errors.As(err, &invalid), errors.Is(err, errNoFile):
		return apiError{Code: "TV-UPL-4001", Message: "Please upload a CSV file."}
	case errors.As(err, &empty):
		return apiError{Code: "TV-UPL-4002", Message: "The CSV file is empty or has invalid format."}
	case errors.As(err, &missing):
		return apiError{
			Code:    "TV-UPL-4003",
			Message: "Missing required columns: " + strings.Join(missing.Columns, ", "),
		}
	case errors.As(err, &parse):
		return apiError{Code: "TV-UPL-4004", Message: "Failed to parse CSV file. Please check the format."}
	case errors.As(err, &tooBig):
		return apiError{Code: "TV-UPL-4130", Message: "The CSV file is too large."}
	case errors.Is(err, session.ErrNoDataset):
		return apiError{Code: "TV-DS-4040", Message: "No dataset loaded. Upload a CSV file first."}
	case errors.Is(err, errNoBounds):
		return apiError{Code: "TV-RNG-4001", Message: "Provide a start or end date."}
	case errors.Is(err, errDisabledDate):
		return apiError{Code: "TV-RNG-4002", Message: "Selected date is outside the dataset."}
	case status == http.StatusMethodNotAllowed:
		return apiError{Code: "TV-API-4005", Message: "This endpoint does not support the requested method."}
	case status == http.StatusNotFound:
		return apiError{Code: "TV-API-4004", Message: "Requested resource was not found."}
	default:
		return apiError{Code: "TV-API-4000", Message: "Invalid request. Check inputs and retry."}
	}
}
