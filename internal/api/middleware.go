package api

import (
	"context"
	"net/http"
	"strings"

	"jobunyacar-backend/internal/domain"
	"jobunyacar-backend/internal/repository"
	"jobunyacar-backend/internal/security"
)

type contextKey string

const principalKey contextKey = "principal"

// principalFrom returns the authenticated user attached to the request
// context, or nil for anonymous requests.
func principalFrom(ctx context.Context) *domain.User {
	user, _ := ctx.Value(principalKey).(*domain.User)
	return user
}

// Authenticator resolves bearer tokens to users. It loads the user row
// on every request so deactivated accounts lose access as soon as their
// row flips, not when their token expires.
type Authenticator struct {
	tokens security.TokenManager
	store  repository.Store
}

func NewAuthenticator(tokens security.TokenManager, store repository.Store) *Authenticator {
	return &Authenticator{tokens: tokens, store: store}
}

// Attach decodes an Authorization header if one is present and stores
// the principal on the context. Requests without a valid token pass
// through anonymous; the route-level guards decide whether that is
// acceptable.
func (a *Authenticator) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := a.tokens.ValidateToken(token)
		if err != nil || claims.Type != security.TokenTypeAccess {
			next.ServeHTTP(w, r)
			return
		}

		user, err := a.store.Users().GetByID(r.Context(), claims.UserID)
		if err != nil || !user.Active {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth rejects anonymous requests with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if principalFrom(r.Context()) == nil {
			respondError(w, domain.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with
// 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := principalFrom(r.Context())
		if principal == nil {
			respondError(w, domain.ErrUnauthenticated)
			return
		}
		if !principal.IsAdmin() {
			respondError(w, domain.ErrForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
