package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

func authFixture(t *testing.T) (*fakeUserStore, *AuthService) {
	t.Helper()

	store := newFakeUserStore()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	_, err = store.Create(context.Background(), model.User{
		FirstName:    "Asha",
		LastName:     "Rai",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
		Role:         model.RoleArtistManager,
	})
	require.NoError(t, err)

	privPath, pubPath := writeTestKeys(t)
	tokens, err := NewTokenService(privPath, pubPath, time.Hour, store)
	require.NoError(t, err)

	return store, NewAuthService(store, tokens)
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("returns a token for valid credentials", func(t *testing.T) {
		_, svc := authFixture(t)

		resp, err := svc.Login(context.Background(), model.LoginRequest{
			Email:    "asha@example.com",
			Password: "correct-horse",
		})
		require.NoError(t, err)

		out := resp.DataResponse.(model.LoginResponse)
		require.Equal(t, int64(1), out.UserID)
		require.NotEmpty(t, out.Token)
		require.Equal(t, model.RoleArtistManager, out.Role)
	})

	t.Run("wrong password is not allowed", func(t *testing.T) {
		_, svc := authFixture(t)

		_, err := svc.Login(context.Background(), model.LoginRequest{
			Email:    "asha@example.com",
			Password: "wrong",
		})
		require.Equal(t, apierror.KindNotAllowed, apierror.KindOf(err))
	})

	t.Run("unknown email is not found", func(t *testing.T) {
		_, svc := authFixture(t)

		_, err := svc.Login(context.Background(), model.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever",
		})
		require.Equal(t, apierror.KindNotFound, apierror.KindOf(err))
	})

	t.Run("missing fields are rejected before any lookup", func(t *testing.T) {
		_, svc := authFixture(t)

		_, err := svc.Login(context.Background(), model.LoginRequest{Email: "asha@example.com"})
		require.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	})
}

func TestRegister(t *testing.T) {
	t.Parallel()

	validReq := func() model.RegisterRequest {
		return model.RegisterRequest{
			FirstName: "Bibek",
			LastName:  "Shrestha",
			Email:     "bibek@example.com",
			Password:  "longenough",
			Phone:     "9800000002",
			Gender:    "MALE",
			Address:   "Bhaktapur",
		}
	}

	t.Run("self registration always gets the artist role", func(t *testing.T) {
		store, svc := authFixture(t)

		resp, err := svc.Register(context.Background(), validReq())
		require.NoError(t, err)
		require.Equal(t, 201, resp.StatusCode)

		out := resp.DataResponse.(model.UserResponse)
		require.Equal(t, model.RoleArtist, out.Role)
		require.Equal(t, model.RoleArtist, store.users[out.ID].Role)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, svc := authFixture(t)

		req := validReq()
		req.Email = "asha@example.com"
		_, err := svc.Register(context.Background(), req)
		require.Equal(t, apierror.KindConflict, apierror.KindOf(err))
	})

	t.Run("short password is rejected", func(t *testing.T) {
		_, svc := authFixture(t)

		req := validReq()
		req.Password = "short"
		_, err := svc.Register(context.Background(), req)
		require.Equal(t, apierror.KindValidation, apierror.KindOf(err))
	})
}
