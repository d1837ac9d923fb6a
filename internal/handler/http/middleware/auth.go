package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdesk/hr-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a valid access token.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			response.Unauthorized(w, "Authentication required")
			return
		}

		tokenType, _ := claims["type"].(string)
		if tokenType != "access" {
			response.Unauthorized(w, "Access token required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
