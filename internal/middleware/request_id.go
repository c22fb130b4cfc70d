package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

const (
	ContextKeyRequestID contextKey = "requestID"
	requestIDHeader                = "X-Request-ID"
)

// RequestID tags every request with an id for log correlation. An id
// supplied by the client is kept; otherwise one is generated.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)

		ctx := context.WithValue(r.Context(), ContextKeyRequestID, id)
		utils.Logger.WithField("requestId", id).Debugf("%s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
