package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const ActorIDKey contextKey = "actor_id"

// DefaultActorID is the hardcoded acting user until authentication lands.
const DefaultActorID = 1

// ActorMiddleware attaches the acting user's id to the request context so
// usecases can stamp created_by/updated_by.
type ActorMiddleware struct {
}

func NewActorMiddleware() *ActorMiddleware {
	return &ActorMiddleware{}
}

func (m *ActorMiddleware) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), ActorIDKey, DefaultActorID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetActorIDFromContext extracts the acting user id from context
func GetActorIDFromContext(ctx context.Context) (int, bool) {
	actorID, ok := ctx.Value(ActorIDKey).(int)
	return actorID, ok
}
