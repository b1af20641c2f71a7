package model

import (
	"database/sql"
	"time"
)

// ApplicationEntity represents the applications table. There is no
// persisted status column; the admin panel keeps status client-side.
type ApplicationEntity struct {
	ID           uint64          `db:"id"`
	Name         string          `db:"name"`
	Email        string          `db:"email"`
	Phone        string          `db:"phone"`
	InterestType string          `db:"interest_type"`
	Budget       sql.NullFloat64 `db:"budget"`
	Message      sql.NullString  `db:"message"`
	CreatedAt    time.Time       `db:"created_at"`
}

// ApplicationCreateRequest accepts the legacy "interested_in" and
// "budget_max" aliases the frontend still sends.
type ApplicationCreateRequest struct {
	Name         string   `json:"name" validate:"required"`
	Email        string   `json:"email" validate:"required,email"`
	Phone        string   `json:"phone" validate:"required,phone"`
	InterestType string   `json:"interest_type" validate:"omitempty,oneof=buy rent sell"`
	InterestedIn string   `json:"interested_in" validate:"omitempty,oneof=buy rent sell"`
	Budget       *float64 `json:"budget"`
	BudgetMax    *float64 `json:"budget_max"`
	Message      string   `json:"message"`
}

// Interest resolves the interest type, preferring the modern field.
func (r *ApplicationCreateRequest) Interest() string {
	if r.InterestType != "" {
		return r.InterestType
	}
	return r.InterestedIn
}

// BudgetValue resolves the budget, preferring the modern field.
func (r *ApplicationCreateRequest) BudgetValue() *float64 {
	if r.Budget != nil {
		return r.Budget
	}
	return r.BudgetMax
}

type ApplicationResponse struct {
	LegacyID     uint64    `json:"_id"`
	ID           uint64    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	InterestType string    `json:"interestType"`
	Budget       *float64  `json:"budget"`
	Message      *string   `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToResponse maps a stored application to its wire shape. A nil entity
// maps to nil.
func (a *ApplicationEntity) ToResponse() *ApplicationResponse {
	if a == nil {
		return nil
	}
	resp := &ApplicationResponse{
		LegacyID:     a.ID,
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		Phone:        a.Phone,
		InterestType: a.InterestType,
		Message:      nullStringPtr(a.Message),
		CreatedAt:    a.CreatedAt,
	}
	if a.Budget.Valid {
		v := a.Budget.Float64
		resp.Budget = &v
	}
	return resp
}

// ContactFormEntity represents the contact_forms table
type ContactFormEntity struct {
	ID        uint64         `db:"id"`
	Name      string         `db:"name"`
	Email     string         `db:"email"`
	Phone     sql.NullString `db:"phone"`
	Message   string         `db:"message"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt sql.NullTime   `db:"updated_at"`
}

type ContactCreateRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,phone"`
	Message string `json:"message" validate:"required"`
}

type ContactFormResponse struct {
	LegacyID  uint64     `json:"_id"`
	ID        uint64     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     *string    `json:"phone"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// ToResponse maps a stored contact form to its wire shape. A nil entity
// maps to nil.
func (c *ContactFormEntity) ToResponse() *ContactFormResponse {
	if c == nil {
		return nil
	}
	return &ContactFormResponse{
		LegacyID:  c.ID,
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     nullStringPtr(c.Phone),
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
		UpdatedAt: nullTimePtr(c.UpdatedAt),
	}
}

// NewsletterEntity represents the newsletters table. Emails are stored
// lower-cased and trimmed.
type NewsletterEntity struct {
	ID        uint64       `db:"id"`
	Email     string       `db:"email"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt sql.NullTime `db:"updated_at"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type NewsletterResponse struct {
	LegacyID  uint64     `json:"_id"`
	ID        uint64     `json:"id"`
	Email     string     `json:"email"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// ToResponse maps a stored subscription to its wire shape. A nil entity
// maps to nil.
func (n *NewsletterEntity) ToResponse() *NewsletterResponse {
	if n == nil {
		return nil
	}
	return &NewsletterResponse{
		LegacyID:  n.ID,
		ID:        n.ID,
		Email:     n.Email,
		CreatedAt: n.CreatedAt,
		UpdatedAt: nullTimePtr(n.UpdatedAt),
	}
}
