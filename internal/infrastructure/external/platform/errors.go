package platform

import (
	"fmt"
)

// APIError is a non-2xx response from the backend that did not carry
// structured field detail.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("platform api: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("platform api: status %d", e.StatusCode)
}

// ValidationError is a 422 response whose detail list mapped onto request
// fields. Callers surface Fields on the corresponding form inputs.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("platform api: validation failed on %d field(s)", len(e.Fields))
}

// fieldsFromDetail flattens a 422 detail list into field → message. The last
// element of each loc path is the field name; malformed entries are skipped
// so a partially recognizable detail still degrades gracefully.
func fieldsFromDetail(detail []FieldErrorDTO) map[string]string {
	fields := make(map[string]string)
	for _, d := range detail {
		if len(d.Loc) == 0 || d.Msg == "" {
			continue
		}
		name, ok := d.Loc[len(d.Loc)-1].(string)
		if !ok || name == "" {
			continue
		}
		fields[name] = d.Msg
	}
	return fields
}
