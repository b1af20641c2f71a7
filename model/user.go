package model

import (
	"database/sql"
	"time"
)

// UserEntity represents the users table
type UserEntity struct {
	ID               uint64         `db:"id"`
	Name             string         `db:"name"`
	Email            string         `db:"email"`
	PasswordHash     string         `db:"password_hash"`
	ResetToken       sql.NullString `db:"reset_token"`
	ResetTokenExpire sql.NullTime   `db:"reset_token_expire"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
}

// UserFilter for querying users. Zero values are skipped; ResetToken
// lookups additionally require the expiry to be after ExpireAfter.
type UserFilter struct {
	ID          uint64
	Email       string
	ResetToken  string
	ExpireAfter time.Time
}

// UserUpdate carries a partial update. A nil pointer means "leave the
// column alone"; for nullable columns a present-but-invalid Null value
// writes NULL explicitly.
type UserUpdate struct {
	Name             *string
	Email            *string
	PasswordHash     *string
	ResetToken       *sql.NullString
	ResetTokenExpire *sql.NullTime
}

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

// AuthResponse is returned on login and register.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}

type UserSummary struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TokenIdentity is the authenticated caller extracted from a verified
// token. Admin tokens carry a zero UserID.
type TokenIdentity struct {
	UserID uint64
	Email  string
	Role   string
}

// UserResponse is the wire shape of a user, password excluded. The
// identifier is duplicated under the legacy "_id" alias.
type UserResponse struct {
	LegacyID  uint64     `json:"_id"`
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// ToResponse maps a stored user to its wire shape. A nil entity maps to nil.
func (u *UserEntity) ToResponse() *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		LegacyID:  u.ID,
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: nullTimePtr(u.UpdatedAt),
	}
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
