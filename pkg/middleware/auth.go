package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"

	"tripora/internal/auth/token"
	apperrors "tripora/pkg/errors"
	httputil "tripora/pkg/http"
	"tripora/pkg/logger"
	"tripora/pkg/model"
)

const IdentityKey contextKey = "identity"

// TokenVerifier is satisfied by the token service.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}

// Authenticator gates individual routes: missing/malformed credentials map
// to AUTHENTICATION_REQUIRED, failed verification to
// INVALID_OR_EXPIRED_TOKEN. Any valid token passes, roles are not
// distinguished.
type Authenticator struct {
	verifier TokenVerifier
	log      *logger.Logger
}

func NewAuthenticator(verifier TokenVerifier, log *logger.Logger) *Authenticator {
	return &Authenticator{
		verifier: verifier,
		log:      log,
	}
}

func (a *Authenticator) Wrap(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			a.reject(w, r, apperrors.AuthRequired("Authorization header required"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			a.reject(w, r, apperrors.AuthRequired("Authorization header must be 'Bearer <token>'"))
			return
		}

		claims, err := a.verifier.Verify(parts[1])
		if err != nil {
			a.reject(w, r, apperrors.InvalidToken())
			return
		}

		identity := &model.Identity{UserID: claims.UserID, Email: claims.Email}
		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next(w, r.WithContext(ctx), ps)
	}
}

func (a *Authenticator) reject(w http.ResponseWriter, r *http.Request, err *apperrors.AppError) {
	a.log.Warn("Request rejected by authentication",
		"path", r.URL.Path,
		"method", r.Method,
		"code", err.Code,
	)
	if writeErr := httputil.WriteError(w, err); writeErr != nil {
		a.log.Error("failed to write auth error response", "error", writeErr)
	}
}

// IdentityFromContext returns the verified caller, if any.
func IdentityFromContext(ctx context.Context) (*model.Identity, bool) {
	identity, ok := ctx.Value(IdentityKey).(*model.Identity)
	return identity, ok
}
