package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteSetsStatusAndBody(t *testing.T) {
	rec := httptest.NewRecorder()

	Write(rec, 400, "name is required", nil)

	assert.Equal(t, 400, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, float64(400), envelope["code"])
	assert.Equal(t, "name is required", envelope["message"])
}

func TestWriteNullDataIsEmitted(t *testing.T) {
	// data must be present as JSON null, never omitted
	rec := httptest.NewRecorder()

	Write(rec, 200, "Role fetched successfully", nil)

	var envelope map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	raw, ok := envelope["data"]
	assert.True(t, ok)
	assert.Equal(t, "null", string(raw))
}

func TestWriteTypedNilDataIsNull(t *testing.T) {
	type payload struct{}
	rec := httptest.NewRecorder()

	Write(rec, 200, "Role fetched successfully", (*payload)(nil))

	var envelope map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "null", string(envelope["data"]))
}

func TestOKWrapsPayload(t *testing.T) {
	rec := httptest.NewRecorder()

	OK(rec, "Roles fetched successfully", []string{"Admin"})

	assert.Equal(t, 200, rec.Code)

	var envelope struct {
		Code    int      `json:"code"`
		Message string   `json:"message"`
		Data    []string `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 200, envelope.Code)
	assert.Equal(t, "Roles fetched successfully", envelope.Message)
	assert.Equal(t, []string{"Admin"}, envelope.Data)
}
