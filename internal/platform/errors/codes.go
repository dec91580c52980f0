// Package errors provides structured errors shared by chartlab services.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Control validation
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeOutOfRange      Code = "OUT_OF_RANGE"

	// Dataset columns
	CodeUnknownColumn    Code = "UNKNOWN_COLUMN"
	CodeNotNumericColumn Code = "NOT_NUMERIC_COLUMN"

	// Orbital catalog
	CodeUnknownOrbital Code = "UNKNOWN_ORBITAL"

	// Dataset loading
	CodeDatasetUnavailable Code = "DATASET_UNAVAILABLE"

	// Storage
	CodeNotFound Code = "NOT_FOUND"
)

// HTTPStatus maps domain codes to HTTP status codes.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeInvalidArgument,
		CodeOutOfRange,
		CodeUnknownColumn,
		CodeNotNumericColumn,
		CodeUnknownOrbital:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeDatasetUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// LocalizationKey returns the message catalog key for the code.
func (c Code) LocalizationKey() string {
	if c == "" {
		c = CodeUnknown
	}
	return "error." + string(c)
}
