package middlewares

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/hivemind/internal/jwt"
	"github.com/sbilibin2017/hivemind/internal/logger"
)

//go:generate mockgen -source=policy.go -destination=policy_mock_test.go -package=middlewares

// ClaimsTokener extracts the caller identity from a request.
type ClaimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PolicyCheck decides whether username may act on the resource with the given id.
type PolicyCheck func(ctx context.Context, username string, id int64) (bool, error)

const forbiddenMessage = "Forbidden! You do not have permissions to view or modify this resource"

// PolicyMiddleware gates a route on check, applied to the caller and the
// numeric URL parameter named param. It must run after AuthMiddleware.
func PolicyMiddleware(tokener ClaimsTokener, param string, check PolicyCheck) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid "+param)
				return
			}

			allowed, err := check(ctx, claims.Username, id)
			if err != nil {
				logger.Log.Errorw("policy check failed", "username", claims.Username, param, id, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if !allowed {
				logger.Log.Warnw("access denied", "username", claims.Username, "path", r.URL.Path)
				writeError(w, http.StatusForbidden, forbiddenMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
