package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

type stubVerifier struct {
	subject string
	err     error
	valid   bool
	claims  jwt.MapClaims
}

func (s *stubVerifier) ExtractSubject(string) (string, error) {
	return s.subject, s.err
}

func (s *stubVerifier) ExtractClaims(string) (jwt.MapClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func (s *stubVerifier) IsValid(string, string) bool {
	return s.valid
}

type stubUsers struct {
	user model.User
	err  error
}

func (s *stubUsers) FindByEmail(context.Context, string) (model.User, error) {
	return s.user, s.err
}

// capture records whether the next handler ran and what principal it saw.
type capture struct {
	called    bool
	principal *model.Principal
	hasAuth   bool
}

func (p *capture) handler() http.Handler {
	return http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		p.called = true
		p.principal, p.hasAuth = PrincipalFromContext(r.Context())
	})
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	knownUser := model.User{ID: 7, Email: "asha@example.com", Role: model.RoleArtistManager}

	t.Run("no header passes through anonymous", func(t *testing.T) {
		m := NewAuthMiddleware(&stubVerifier{}, &stubUsers{})
		p := &capture{}

		req := httptest.NewRequest(http.MethodGet, "/api/artists", nil)
		rec := httptest.NewRecorder()
		m.Authenticate(p.handler()).ServeHTTP(rec, req)

		require.True(t, p.called)
		require.False(t, p.hasAuth)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("non-bearer scheme passes through anonymous", func(t *testing.T) {
		m := NewAuthMiddleware(&stubVerifier{}, &stubUsers{})
		p := &capture{}

		req := httptest.NewRequest(http.MethodGet, "/api/artists", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		m.Authenticate(p.handler()).ServeHTTP(rec, req)

		require.True(t, p.called)
		require.False(t, p.hasAuth)
	})

	t.Run("expired token passes through anonymous", func(t *testing.T) {
		m := NewAuthMiddleware(&stubVerifier{err: apierror.Expired("token has expired")}, &stubUsers{})
		p := &capture{}

		req := httptest.NewRequest(http.MethodGet, "/api/artists", nil)
		req.Header.Set("Authorization", "Bearer stale")
		rec := httptest.NewRecorder()
		m.Authenticate(p.handler()).ServeHTTP(rec, req)

		require.True(t, p.called)
		require.False(t, p.hasAuth)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unverifiable token is refused", func(t *testing.T) {
		m := NewAuthMiddleware(&stubVerifier{err: apierror.Unauthorized("invalid token")}, &stubUsers{})
		p := &capture{}

		req := httptest.NewRequest(http.MethodGet, "/api/artists", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		m.Authenticate(p.handler()).ServeHTTP(rec, req)

		require.False(t, p.called)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("vanished user is refused", func(t *testing.T) {
		m := NewAuthMiddleware(
			&stubVerifier{subject: "asha@example.com"},
			&stubUsers{err: apierror.NotFound("user not found")},
		)
		p := &capture{}

		req := httptest.NewRequest(http.MethodGet, "/api/artists", nil)
		req.Header.Set("Authorization", "Bearer orphaned")
		rec := httptest.NewRecorder()
		m.Authenticate(p.handler()).ServeHTTP(rec, req)

		require.False(t, p.called)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token attaches the principal", func(t *testing.T) {
		m := NewAuthMiddleware(
			&stubVerifier{
				subject: "asha@example.com",
				valid:   true,
				claims:  jwt.MapClaims{"role": []any{"ARTIST_MANAGER"}},
			},
			&stubUsers{user: knownUser},
		)
		p := &capture{}

		req := httptest.NewRequest(http.MethodGet, "/api/artists", nil)
		req.Header.Set("Authorization", "Bearer good")
		rec := httptest.NewRecorder()
		m.Authenticate(p.handler()).ServeHTTP(rec, req)

		require.True(t, p.called)
		require.True(t, p.hasAuth)
		require.Equal(t, int64(7), p.principal.UserID)
		require.Equal(t, model.RoleArtistManager, p.principal.Role)
		require.Equal(t, []string{"ROLE_ARTIST_MANAGER"}, p.principal.Authorities)
		require.True(t, p.principal.HasAuthority("ROLE_ARTIST_MANAGER"))
	})

	t.Run("subject mismatch passes through anonymous", func(t *testing.T) {
		m := NewAuthMiddleware(
			&stubVerifier{subject: "asha@example.com", valid: false},
			&stubUsers{user: knownUser},
		)
		p := &capture{}

		req := httptest.NewRequest(http.MethodGet, "/api/artists", nil)
		req.Header.Set("Authorization", "Bearer mismatched")
		rec := httptest.NewRecorder()
		m.Authenticate(p.handler()).ServeHTTP(rec, req)

		require.True(t, p.called)
		require.False(t, p.hasAuth)
	})
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(&stubVerifier{}, &stubUsers{})

	t.Run("rejects anonymous requests", func(t *testing.T) {
		p := &capture{}
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		rec := httptest.NewRecorder()
		m.RequireAuth(p.handler()).ServeHTTP(rec, req)

		require.False(t, p.called)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("passes authenticated requests", func(t *testing.T) {
		p := &capture{}
		principal := &model.Principal{UserID: 1, Role: model.RoleArtist}
		req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
		req = req.WithContext(context.WithValue(req.Context(), principalContextKey, principal))
		rec := httptest.NewRecorder()
		m.RequireAuth(p.handler()).ServeHTTP(rec, req)

		require.True(t, p.called)
	})
}

func TestRequireRoles(t *testing.T) {
	t.Parallel()

	m := NewAuthMiddleware(&stubVerifier{}, &stubUsers{})
	gate := m.RequireRoles(model.RoleSuperAdmin, model.RoleArtistManager)

	withRole := func(role model.Role) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/api/artists", nil)
		principal := &model.Principal{UserID: 1, Role: role}
		return req.WithContext(context.WithValue(req.Context(), principalContextKey, principal))
	}

	t.Run("permits a listed role", func(t *testing.T) {
		p := &capture{}
		rec := httptest.NewRecorder()
		gate(p.handler()).ServeHTTP(rec, withRole(model.RoleArtistManager))

		require.True(t, p.called)
	})

	t.Run("forbids an unlisted role", func(t *testing.T) {
		p := &capture{}
		rec := httptest.NewRecorder()
		gate(p.handler()).ServeHTTP(rec, withRole(model.RoleArtist))

		require.False(t, p.called)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("rejects anonymous requests", func(t *testing.T) {
		p := &capture{}
		rec := httptest.NewRecorder()
		gate(p.handler()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/artists", nil))

		require.False(t, p.called)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
