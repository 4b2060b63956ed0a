package validator

import (
	"encoding/json"
	"net/http"
	"testing"

	"healthcare-saas-backend/pkg/apierror"

	"github.com/stretchr/testify/assert"
)

type createRolePayload struct {
	Name        string  `json:"name" validate:"required,min=3,max=50"`
	Description *string `json:"description" validate:"omitempty,max=255"`
	CreatedBy   *int    `json:"created_by" validate:"omitempty,gte=1"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	assert.NoError(t, cv.Validate(&createRolePayload{Name: "Admin"}))
}

func TestValidateRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&createRolePayload{})

	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "name is required", apierror.FriendlyMessage(validation.Fields))
}

func TestValidateMinLength(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&createRolePayload{Name: "ab"})

	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "name should have at least 3 characters", apierror.FriendlyMessage(validation.Fields))
}

func TestValidateMaxLength(t *testing.T) {
	cv := NewValidator()
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'x'
	}

	err := cv.Validate(&createRolePayload{Name: string(long)})

	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "name should have at most 50 characters", apierror.FriendlyMessage(validation.Fields))
}

func TestValidateUsesJSONFieldNames(t *testing.T) {
	cv := NewValidator()
	zero := 0

	err := cv.Validate(&createRolePayload{Name: "Admin", CreatedBy: &zero})

	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
	// Reported as created_by, not CreatedBy
	assert.Equal(t, []string{"body", "created_by"}, validation.Fields[0].Loc)
}

func TestDecodeErrorTypeMismatch(t *testing.T) {
	var payload createRolePayload
	decodeErr := json.Unmarshal([]byte(`{"name": 123}`), &payload)
	assert.Error(t, decodeErr)

	err := DecodeError(decodeErr)

	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "name should be a valid string", apierror.FriendlyMessage(validation.Fields))
}

func TestDecodeErrorIntMismatch(t *testing.T) {
	var payload createRolePayload
	decodeErr := json.Unmarshal([]byte(`{"created_by": "one"}`), &payload)
	assert.Error(t, decodeErr)

	err := DecodeError(decodeErr)

	var validation *apierror.ValidationError
	assert.ErrorAs(t, err, &validation)
	assert.Equal(t, "created_by should be a valid integer, unable to parse string as an integer", apierror.FriendlyMessage(validation.Fields))
}

func TestDecodeErrorMalformedJSON(t *testing.T) {
	var payload createRolePayload
	decodeErr := json.Unmarshal([]byte(`{`), &payload)
	assert.Error(t, decodeErr)

	err := DecodeError(decodeErr)

	var rejection *apierror.Rejection
	assert.ErrorAs(t, err, &rejection)
	assert.Equal(t, http.StatusBadRequest, rejection.Status)
	assert.Equal(t, "Invalid request body", rejection.Detail)
}
