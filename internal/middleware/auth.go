package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

// rolePrefix is prepended to each role claim when building the
// principal's authority strings.
const rolePrefix = "ROLE_"

type tokenVerifier interface {
	ExtractSubject(token string) (string, error)
	ExtractClaims(token string) (jwt.MapClaims, error)
	IsValid(token, email string) bool
}

type userLoader interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
}

type contextKey string

const principalContextKey contextKey = "principal"

// AuthMiddleware establishes (or declines to establish) the
// authenticated principal for each request. It is the sole writer of
// the principal context key.
type AuthMiddleware struct {
	tokens tokenVerifier
	users  userLoader
}

func NewAuthMiddleware(tokens tokenVerifier, users userLoader) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users}
}

// Authenticate runs once per request. Requests without a bearer header
// pass through anonymous; downstream role gates reject them. An expired
// token also passes through anonymous so the gate can answer with a
// uniform 401 instead of a 500. An unverifiable token or a subject
// whose user record no longer exists is refused outright.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			next.ServeHTTP(w, r)
			return
		}

		// A stale principal from a previous attempt is discarded, not
		// merged; at most one authentication attempt per request.
		ctx := context.WithValue(r.Context(), principalContextKey, (*model.Principal)(nil))

		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		subject, err := m.tokens.ExtractSubject(token)
		if err != nil {
			if apierror.KindOf(err) == apierror.KindExpired {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}
			writeAuthFailure(w, http.StatusUnauthorized, "invalid token")
			return
		}

		user, err := m.users.FindByEmail(r.Context(), subject)
		if err != nil {
			writeAuthFailure(w, http.StatusUnauthorized, "user no longer exists")
			return
		}

		if !m.tokens.IsValid(token, user.Email) {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		claims, err := m.tokens.ExtractClaims(token)
		if err != nil {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		principal := &model.Principal{
			UserID:      user.ID,
			Email:       user.Email,
			Role:        user.Role,
			Authorities: authoritiesFromClaims(claims),
		}

		ctx = context.WithValue(r.Context(), principalContextKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth rejects requests that carry no authenticated principal.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := PrincipalFromContext(r.Context()); !ok {
			writeAuthFailure(w, http.StatusUnauthorized, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRoles gates a route on the principal holding one of the given
// roles.
func (m *AuthMiddleware) RequireRoles(allowed ...model.Role) func(http.Handler) http.Handler {
	roleSet := map[model.Role]struct{}{}
	for _, role := range allowed {
		roleSet[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := PrincipalFromContext(r.Context())
			if !ok {
				writeAuthFailure(w, http.StatusUnauthorized, "authentication required")
				return
			}

			if _, permitted := roleSet[principal.Role]; !permitted {
				writeAuthFailure(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func PrincipalFromContext(ctx context.Context) (*model.Principal, bool) {
	principal, ok := ctx.Value(principalContextKey).(*model.Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}

func authoritiesFromClaims(claims jwt.MapClaims) []string {
	raw, ok := claims["role"].([]any)
	if !ok {
		return nil
	}

	authorities := make([]string, 0, len(raw))
	for _, entry := range raw {
		if role, ok := entry.(string); ok {
			authorities = append(authorities, rolePrefix+role)
		}
	}
	return authorities
}

func writeAuthFailure(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.Failure(status, message))
}
