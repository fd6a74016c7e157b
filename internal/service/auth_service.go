package service

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

const bcryptCost = 12

type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the submitted credentials against the credential store
// and mints a session token. An unknown email surfaces as NotFound, a
// wrong password as NotAllowed, matching how the callers distinguish
// the two.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.BaseResponse, error) {
	if err := validateStruct(req); err != nil {
		return model.BaseResponse{}, err
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return model.BaseResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return model.BaseResponse{}, apierror.NotAllowed("invalid credentials")
	}

	extra := map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	}
	token, err := s.tokens.IssueToken(ctx, user.Email, extra)
	if err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return model.OK(model.LoginResponse{
		UserID:    user.ID,
		Token:     token,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	}), nil
}

// Register creates a self-service account with the ARTIST role.
// Accounts with elevated roles are created through the user management
// endpoints by a SUPER_ADMIN.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (model.BaseResponse, error) {
	if err := validateStruct(req); err != nil {
		return model.BaseResponse{}, err
	}

	email := strings.TrimSpace(req.Email)
	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.BaseResponse{}, err
	}
	if taken {
		return model.BaseResponse{}, apierror.Conflict("email " + email + " already taken")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return model.BaseResponse{}, err
	}

	dob, err := parseDOB(req.DOB)
	if err != nil {
		return model.BaseResponse{}, err
	}

	user := model.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(req.Phone),
		DOB:          dob,
		Gender:       model.ParseGender(req.Gender),
		Address:      strings.TrimSpace(req.Address),
		Role:         model.RoleArtist,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("user registered", "user_id", created.ID)
	resp := model.OK(model.ToUserResponse(created))
	resp.StatusCode = 201
	return resp, nil
}
