package middleware

import (
	"fmt"
	"net/http"

	"healthcare-saas-backend/pkg/apierror"
	"healthcare-saas-backend/pkg/response"

	"github.com/sirupsen/logrus"
)

// RecoveryMiddleware converts panics into the standard error envelope so no
// request ever ends without a well-formed JSON body.
type RecoveryMiddleware struct {
	log *logrus.Logger
}

func NewRecoveryMiddleware(log *logrus.Logger) *RecoveryMiddleware {
	return &RecoveryMiddleware{log: log}
}

func (m *RecoveryMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.log.Errorf("Panic while handling %s %s: %+v", r.Method, r.URL.Path, rec)
				code, message := apierror.Classify(fmt.Errorf("%v", rec))
				response.Write(w, code, message, nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
