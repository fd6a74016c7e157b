package model

import "time"

// User is the canonical account entity. PasswordHash never leaves the
// service layer; transport uses the UserResponse projection.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	DOB          *time.Time
	Gender       Gender
	Address      string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal is the authenticated identity the auth middleware attaches
// to a request. Services that gate mutations on role receive it as an
// explicit argument; it is never stored in package-level state.
type Principal struct {
	UserID      int64
	Email       string
	Role        Role
	Authorities []string
}

func (p *Principal) IsSuperAdmin() bool {
	return p != nil && p.Role == RoleSuperAdmin
}

// HasAuthority reports whether the principal carries the given
// prefixed authority string (e.g. "ROLE_SUPER_ADMIN").
func (p *Principal) HasAuthority(authority string) bool {
	if p == nil {
		return false
	}
	for _, a := range p.Authorities {
		if a == authority {
			return true
		}
	}
	return false
}

type UserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"omitempty,min=8"`
	Phone     string `json:"phone" validate:"required,len=10,numeric"`
	DOB       string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender    string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER male female other"`
	Address   string `json:"address"`
	Role      string `json:"role" validate:"required,oneof=SUPER_ADMIN ARTIST_MANAGER ARTIST super_admin artist_manager artist"`
}

type UserResponse struct {
	ID        int64   `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	DOB       *string `json:"dob,omitempty"`
	Gender    Gender  `json:"gender"`
	Address   string  `json:"address,omitempty"`
	Role      Role    `json:"role"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	UserID    int64  `json:"user_id"`
	Token     string `json:"token"`
	Role      Role   `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	Phone     string `json:"phone" validate:"required,len=10,numeric"`
	DOB       string `json:"dob" validate:"omitempty,datetime=2006-01-02"`
	Gender    string `json:"gender" validate:"required,oneof=MALE FEMALE OTHER male female other"`
	Address   string `json:"address"`
}

// ToUserResponse projects the entity for the API boundary. The password
// hash is deliberately absent.
func ToUserResponse(u User) UserResponse {
	resp := UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     u.Phone,
		Gender:    u.Gender,
		Address:   u.Address,
		Role:      u.Role,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
	if u.DOB != nil {
		dob := u.DOB.Format(DateLayout)
		resp.DOB = &dob
	}
	return resp
}

func ToUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}
