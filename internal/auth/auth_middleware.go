package auth

import (
	"net/http"
	"strings"

	appErrors "github.com/sebuszqo/FinanceTracker/internal/errors"
)

type TokenValidator interface {
	ValidateAccessToken(tokenString string) (int64, error)
}

// JWTAccessTokenMiddleware rejects requests without a bearer token with 401
// and requests whose token is malformed or expired with 403. Accepted
// requests carry the user id in their context.
func JWTAccessTokenMiddleware(validator TokenValidator, respondError func(w http.ResponseWriter, r *http.Request, err error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
			if authHeader == "" {
				respondError(w, r, appErrors.NewUnauthorizedError("Access token required"))
				return
			}

			scheme, tokenString, found := strings.Cut(authHeader, " ")
			tokenString = strings.TrimSpace(tokenString)
			if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
				respondError(w, r, appErrors.NewUnauthorizedError("Access token required"))
				return
			}

			userID, err := validator.ValidateAccessToken(tokenString)
			if err != nil {
				respondError(w, r, appErrors.NewForbiddenError("Invalid or expired token"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}
