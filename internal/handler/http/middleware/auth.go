package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/ponpes-albadr/pesantren-backend-go/internal/domain/auth"
	"github.com/ponpes-albadr/pesantren-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a valid access token. Refresh
// tokens carry type "refresh" and are only honoured by the refresh
// endpoint, never here.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if tokenType, _ := claims["type"].(string); tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
