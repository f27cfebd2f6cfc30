package middlewarex

import (
	"net/http"

	"github.com/sanjanb/k-tech-nain/pkg/contextx"
)

const headerNameUserID = "X-User-Id"

// UserID lifts the authenticated user identity set by the gateway into the
// request context. Requests without the header stay anonymous; handlers that
// need an identity reject them.
func UserID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := r.Header.Get(headerNameUserID); userID != "" {
			ctx := contextx.WithUserID(r.Context(), contextx.UserID(userID))
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}
