package handler

import (
	"net/http"

	"healthcare-saas-backend/pkg/apierror"
	"healthcare-saas-backend/pkg/response"
)

// endpoint is a request handler that yields a payload or a failure instead
// of writing to the ResponseWriter itself.
type endpoint func(r *http.Request) (interface{}, error)

// wrap adapts an endpoint into an http.HandlerFunc. A normal completion is
// enveloped with code 200 and the per-route success message; a nil payload
// becomes data null under the same 200, callers cannot distinguish "not
// found" from success by status code. Failures take the single error path:
// classify, then envelope. Success and error responses are therefore
// structurally identical JSON.
func wrap(message string, fn endpoint) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fn(r)
		if err != nil {
			code, msg := apierror.Classify(err)
			response.Write(w, code, msg, nil)
			return
		}
		response.OK(w, message, data)
	}
}
