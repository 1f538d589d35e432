// Package render provides helpers for formatting records and input
// errors as terminal text.
//
// Every user-facing line in this application passes through here.
// Rather than repeating the same Sprintf shapes in the menu and the
// registry, we centralise them — the listing produced by the registry
// and the record echoed by the menu always look the same.
package render

import (
	"fmt"
	"strings"

	"github.com/aanand-mishra/student-registry/internal/types"
	"github.com/go-playground/validator/v10"
)

// Student renders one record as a single display line:
//
//	ID: 1 | Name: Alice | Age: 20 | Major: CS
func Student(s types.Student) string {
	return fmt.Sprintf("ID: %d | Name: %s | Age: %d | Major: %s",
		s.ID, s.Name, s.Age, s.Major)
}

// ValidationError converts a slice of validator.FieldError values into
// a single human-readable line.
//
// The go-playground/validator package returns one FieldError per
// failing struct field. We convert each to a plain English sentence
// and join them with ", " so the user sees one descriptive message.
//
// Example output:
//
//	field Name is required, field Age is required
func ValidationError(errs validator.ValidationErrors) string {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		// "required" tag — field was missing or zero-valued
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		// Catch-all for any other validation tag (min, max, len, etc.)
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return strings.Join(errMessages, ", ")
}
