package apierror

import (
	"fmt"
	"strings"
)

// FieldError is a single field-level validation failure: where it occurred,
// what kind of failure it was, and any limits involved.
type FieldError struct {
	Loc  []string
	Kind string
	Ctx  map[string]interface{}
	Msg  string
}

type kindTemplate struct {
	kind     string
	template string
}

// messageTemplates maps failure kinds to message templates. Both the
// current and the legacy kind naming conventions are supported because
// the tags emitted by schema validation vary by library version. Kept as
// an ordered slice so the substring fallback is deterministic.
var messageTemplates = []kindTemplate{
	{"missing", "is required"},
	{"string_type", "should be a valid string"},
	{"int_parsing", "should be a valid integer, unable to parse string as an integer"},
	{"string_too_short", "should have at least {min_length} characters"},
	{"string_too_long", "should have at most {max_length} characters"},
	{"bool_parsing", "should be true or false"},
	{"value_error", "invalid value"},
	{"type_error", "invalid type"},
	// Legacy kinds
	{"value_error.missing", "is required"},
	{"type_error.integer", "should be a valid integer"},
	{"type_error.string", "should be a valid string"},
	{"value_error.any_str.min_length", "should have at least {limit_value} characters"},
	{"value_error.any_str.max_length", "should have at most {limit_value} characters"},
	{"type_error.bool", "should be true or false"},
}

func lookupTemplate(kind string) (string, bool) {
	for _, entry := range messageTemplates {
		if entry.kind == kind {
			return entry.template, true
		}
	}
	for _, entry := range messageTemplates {
		if strings.Contains(kind, entry.kind) {
			return entry.template, true
		}
	}
	return "", false
}

// FriendlyMessage converts field-level validation failures to a single
// human-readable message, one "field message" fragment per failure joined
// with ", ". Input order is preserved. It never fails: unknown kinds fall
// back to the failure's own raw message and unformattable templates are
// emitted as-is.
func FriendlyMessage(fields []FieldError) string {
	messages := make([]string, 0, len(fields))

	for _, fe := range fields {
		field := fieldName(fe.Loc)

		template, ok := lookupTemplate(fe.Kind)
		if !ok {
			template = fe.Msg
			if template == "" {
				template = "validation error"
			}
		}

		messages = append(messages, field+" "+formatTemplate(template, fe.Ctx))
	}

	return strings.Join(messages, ", ")
}

// fieldName extracts the field name from a location path. A leading "body"
// segment is a marker for the request body, not a field.
func fieldName(loc []string) string {
	if len(loc) == 0 {
		return "field"
	}
	return loc[len(loc)-1]
}

// formatTemplate substitutes {placeholder} tokens against the context
// mapping. Alternate key names for the same semantic limit are aliased
// before formatting. On any failure the unformatted template is returned.
func formatTemplate(template string, ctx map[string]interface{}) string {
	if !strings.Contains(template, "{") {
		return template
	}

	values := make(map[string]interface{}, len(ctx)+1)
	for k, v := range ctx {
		values[k] = v
	}
	if _, ok := values["limit_value"]; !ok {
		if v, ok := values["min_length"]; ok {
			values["limit_value"] = v
		} else if v, ok := values["max_length"]; ok {
			values["limit_value"] = v
		}
	}

	formatted := template
	for key, value := range values {
		formatted = strings.ReplaceAll(formatted, "{"+key+"}", fmt.Sprintf("%v", value))
	}
	if strings.Contains(formatted, "{") {
		// Unresolved placeholder, degrade to the raw template
		return template
	}
	return formatted
}
