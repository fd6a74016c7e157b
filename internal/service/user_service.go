package service

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"artist-mgmt/internal/model"
	"artist-mgmt/pkg/apierror"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// Create registers a user with an explicit role. The caller is already
// role-gated at the router; the password is hashed here and never
// stored or returned in the clear.
func (s *UserService) Create(ctx context.Context, req model.UserRequest) (model.BaseResponse, error) {
	if err := validateStruct(req); err != nil {
		return model.BaseResponse{}, err
	}
	if strings.TrimSpace(req.Password) == "" {
		return model.BaseResponse{}, apierror.Validation("password cannot be empty")
	}

	email := strings.TrimSpace(req.Email)
	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.BaseResponse{}, err
	}
	if taken {
		return model.BaseResponse{}, apierror.Conflict("email " + email + " already taken")
	}

	user, err := s.toEntity(req)
	if err != nil {
		return model.BaseResponse{}, err
	}
	user.Email = email

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("user created", "user_id", created.ID, "role", created.Role)
	resp := model.OK(model.ToUserResponse(created))
	resp.StatusCode = 201
	return resp, nil
}

// Update applies the request to an existing user. A role change is only
// allowed when the acting principal is a SUPER_ADMIN; every other field
// is ungated. An empty password keeps the current hash.
func (s *UserService) Update(ctx context.Context, actor *model.Principal, id int64, req model.UserRequest) (model.BaseResponse, error) {
	if err := validateID(id); err != nil {
		return model.BaseResponse{}, err
	}
	if err := validateStruct(req); err != nil {
		return model.BaseResponse{}, err
	}

	existing, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.BaseResponse{}, err
	}

	email := strings.TrimSpace(req.Email)
	if !strings.EqualFold(email, existing.Email) {
		taken, err := s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return model.BaseResponse{}, err
		}
		if taken {
			return model.BaseResponse{}, apierror.Conflict("email " + email + " already taken")
		}
	}

	updated, err := s.toEntity(req)
	if err != nil {
		return model.BaseResponse{}, err
	}

	newRole, _ := model.ParseRole(req.Role)
	if newRole != existing.Role && !actor.IsSuperAdmin() {
		return model.BaseResponse{}, apierror.NotAllowed("only super admin can update the role")
	}

	if strings.TrimSpace(req.Password) == "" {
		updated.PasswordHash = existing.PasswordHash
	}

	if err := s.users.Update(ctx, id, updated); err != nil {
		return model.BaseResponse{}, err
	}

	fresh, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("user updated", "user_id", id, "actor_id", actor.UserID)
	return model.OK(model.ToUserResponse(fresh)), nil
}

func (s *UserService) Delete(ctx context.Context, id int64) (model.BaseResponse, error) {
	if err := validateID(id); err != nil {
		return model.BaseResponse{}, err
	}

	exists, err := s.users.ExistsByID(ctx, id)
	if err != nil {
		return model.BaseResponse{}, err
	}
	if !exists {
		return model.BaseResponse{}, apierror.NotFound("user not found")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return model.BaseResponse{}, err
	}

	slog.Info("user deleted", "user_id", id)
	return model.OK(id), nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (model.BaseResponse, error) {
	if err := validateID(id); err != nil {
		return model.BaseResponse{}, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return model.BaseResponse{}, err
	}
	return model.OK(model.ToUserResponse(user)), nil
}

func (s *UserService) List(ctx context.Context, pageNo, pageSize int) (model.BaseResponse, error) {
	if err := validatePage(pageNo, pageSize); err != nil {
		return model.BaseResponse{}, err
	}

	offset := pageNo * pageSize
	users, err := s.users.List(ctx, pageSize, offset)
	if err != nil {
		return model.BaseResponse{}, err
	}

	totalCount, err := s.users.Count(ctx)
	if err != nil {
		return model.BaseResponse{}, err
	}

	return model.Paginated(model.ToUserResponses(users), pageNo, pageSize, totalCount, "Users fetched successfully"), nil
}

func (s *UserService) toEntity(req model.UserRequest) (model.User, error) {
	dob, err := parseDOB(req.DOB)
	if err != nil {
		return model.User{}, err
	}

	role, ok := model.ParseRole(req.Role)
	if !ok {
		return model.User{}, apierror.Validation("invalid role")
	}

	user := model.User{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		DOB:       dob,
		Gender:    model.ParseGender(req.Gender),
		Address:   strings.TrimSpace(req.Address),
		Role:      role,
	}

	if pw := strings.TrimSpace(req.Password); pw != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(pw), bcryptCost)
		if err != nil {
			return model.User{}, err
		}
		user.PasswordHash = string(hash)
	}

	return user, nil
}
