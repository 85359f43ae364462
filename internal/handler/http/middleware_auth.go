package http

import (
	"context"
	"net/http"

	"github.com/bkdev/go-blog-api/internal/logger"
	"github.com/bkdev/go-blog-api/internal/utils"
)

// authHeader is the request and response header carrying the raw session
// token.
const authHeader = "x-auth"

// auth is an HTTP middleware that enforces session-token authentication.
//
// It reads the raw token from the x-auth header, resolves it via
// [service.AuthService.Authenticate], and on success stores the
// authenticated user under [utils.UserCtxKey] and the raw token string under
// [utils.TokenCtxKey] before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The x-auth header is absent ([ErrEmptyAuthHeader]).
//   - The token fails signature, issuer, or expiry verification.
//   - The token verifies but no matching session row exists anymore, which
//     is how a logged-out token presents.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString := r.Header.Get(authHeader)
		if tokenString == "" {
			log.Err(ErrEmptyAuthHeader).Send()
			http.Error(w, ErrEmptyAuthHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, _, err := h.services.AuthService.Authenticate(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("token authentication failed")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the authenticated user and the raw token in the context so
		// that downstream handlers can retrieve them without re-parsing.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.TokenCtxKey, tokenString)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
