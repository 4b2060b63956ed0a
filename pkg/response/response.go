package response

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// Envelope is the fixed shape of every response from this API, success or
// failure. Data is always present in the serialized form, as JSON null when
// there is no payload.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Write serializes an envelope with the status line set to code.
func Write(w http.ResponseWriter, code int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(Envelope{Code: code, Message: message, Data: data}); err != nil {
		logrus.Warnf("Failed to encode response envelope: %+v", err)
	}
}

// OK writes a 200 envelope with the given message and payload.
func OK(w http.ResponseWriter, message string, data interface{}) {
	Write(w, http.StatusOK, message, data)
}
