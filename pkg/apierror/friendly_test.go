package apierror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFriendlyMessageKnownKinds(t *testing.T) {
	tests := []struct {
		name     string
		field    FieldError
		expected string
	}{
		{
			name:     "missing",
			field:    FieldError{Loc: []string{"body", "name"}, Kind: "missing"},
			expected: "name is required",
		},
		{
			name:     "string type",
			field:    FieldError{Loc: []string{"body", "description"}, Kind: "string_type"},
			expected: "description should be a valid string",
		},
		{
			name:     "int parsing",
			field:    FieldError{Loc: []string{"body", "created_by"}, Kind: "int_parsing"},
			expected: "created_by should be a valid integer, unable to parse string as an integer",
		},
		{
			name: "min length with context",
			field: FieldError{
				Loc:  []string{"body", "name"},
				Kind: "string_too_short",
				Ctx:  map[string]interface{}{"min_length": 3},
			},
			expected: "name should have at least 3 characters",
		},
		{
			name: "max length with context",
			field: FieldError{
				Loc:  []string{"body", "description"},
				Kind: "string_too_long",
				Ctx:  map[string]interface{}{"max_length": 255},
			},
			expected: "description should have at most 255 characters",
		},
		{
			name:     "bool parsing",
			field:    FieldError{Loc: []string{"body", "is_active"}, Kind: "bool_parsing"},
			expected: "is_active should be true or false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FriendlyMessage([]FieldError{tt.field}))
		})
	}
}

func TestFriendlyMessageLegacyKinds(t *testing.T) {
	// Older validation library versions tag the same failures differently;
	// the limit context key is aliased to the legacy placeholder.
	fields := []FieldError{
		{Loc: []string{"body", "name"}, Kind: "value_error.missing"},
		{
			Loc:  []string{"body", "name"},
			Kind: "value_error.any_str.min_length",
			Ctx:  map[string]interface{}{"min_length": 3},
		},
	}

	assert.Equal(t, "name is required, name should have at least 3 characters", FriendlyMessage(fields))
}

func TestFriendlyMessageSubstringFallback(t *testing.T) {
	field := FieldError{Loc: []string{"body", "created_by"}, Kind: "value_error.number.not_ge"}

	assert.Equal(t, "created_by invalid value", FriendlyMessage([]FieldError{field}))
}

func TestFriendlyMessageRawMessageFallback(t *testing.T) {
	field := FieldError{
		Loc:  []string{"body", "name"},
		Kind: "something_nobody_has_seen",
		Msg:  "looks wrong",
	}

	assert.Equal(t, "name looks wrong", FriendlyMessage([]FieldError{field}))
}

func TestFriendlyMessageNoKindNoMsg(t *testing.T) {
	field := FieldError{Loc: []string{"body", "name"}, Kind: "something_nobody_has_seen"}

	assert.Equal(t, "name validation error", FriendlyMessage([]FieldError{field}))
}

func TestFriendlyMessageEmptyLocation(t *testing.T) {
	field := FieldError{Kind: "missing"}

	assert.Equal(t, "field is required", FriendlyMessage([]FieldError{field}))
}

func TestFriendlyMessageNestedLocation(t *testing.T) {
	// The last path segment is the field name even for nested paths
	field := FieldError{Loc: []string{"body", "profile", "age"}, Kind: "int_parsing"}

	assert.Equal(t, "age should be a valid integer, unable to parse string as an integer", FriendlyMessage([]FieldError{field}))
}

func TestFriendlyMessageUnresolvedPlaceholder(t *testing.T) {
	// No context to substitute, the raw template is emitted rather than failing
	field := FieldError{Loc: []string{"body", "name"}, Kind: "string_too_short"}

	assert.Equal(t, "name should have at least {min_length} characters", FriendlyMessage([]FieldError{field}))
}

func TestFriendlyMessagePreservesOrder(t *testing.T) {
	fields := []FieldError{
		{Loc: []string{"body", "description"}, Kind: "string_type"},
		{Loc: []string{"body", "name"}, Kind: "missing"},
	}

	assert.Equal(t, "description should be a valid string, name is required", FriendlyMessage(fields))
}

func TestFriendlyMessageEmptyInput(t *testing.T) {
	assert.Equal(t, "", FriendlyMessage(nil))
}
