package validation

import "fmt"

// FieldErrors is a field-keyed validation error map.
//
// Flat sections use bare field names ("date_of_birth"). Array sections use
// index-qualified keys so the client can route each error to the right
// repeated sub-form entry: "family[2].title".
type FieldErrors map[string]string

// Add records an error for a field, keeping the first message per key.
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; !exists {
		e[field] = message
	}
}

// AddIndexed records an error for one entry of an array section.
func (e FieldErrors) AddIndexed(section string, index int, field, message string) {
	e.Add(fmt.Sprintf("%s[%d].%s", section, index, field), message)
}

// Empty reports whether no errors were recorded.
func (e FieldErrors) Empty() bool { return len(e) == 0 }

// Or returns nil when empty, so callers can do `return errs.Or()`.
func (e FieldErrors) Or() FieldErrors {
	if len(e) == 0 {
		return nil
	}
	return e
}
