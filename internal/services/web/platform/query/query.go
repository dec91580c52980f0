// Package query parses HTMX control state from request query strings.
package query

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/chartlab/internal/platform/errors"
)

// String returns the trimmed value of name, or def when blank.
func String(values url.Values, name, def string) string {
	if v := strings.TrimSpace(values.Get(name)); v != "" {
		return v
	}
	return def
}

// Strings returns every non-blank value of name in order.
func Strings(values url.Values, name string) []string {
	var out []string
	for _, v := range values[name] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Int parses an integer control. Blank values return def.
func Int(values url.Values, name string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, invalid(name, err)
	}
	return v, nil
}

// Float parses a finite float control. Blank values return def.
func Float(values url.Values, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, invalid(name, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(name, nil)
	}
	return v, nil
}

// Bool parses a toggle. "on", "true", "1" and "yes" are true; "off",
// "false", "0" and "no" are false; anything else returns def.
func Bool(values url.Values, name string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(values.Get(name))) {
	case "on", "true", "1", "yes":
		return true
	case "off", "false", "0", "no":
		return false
	default:
		return def
	}
}

func invalid(name string, cause error) error {
	err := apperrors.WithMetadata(apperrors.CodeInvalidArgument, "invalid "+name, map[string]string{"Field": name})
	err.Cause = cause
	return err
}
