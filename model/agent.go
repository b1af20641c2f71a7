package model

import (
	"database/sql"
	"time"
)

// AgentEntity represents the agents table. Agents carry no update
// timestamp.
type AgentEntity struct {
	ID          uint64         `db:"id"`
	Name        string         `db:"name"`
	Email       string         `db:"email"`
	Phone       string         `db:"phone"`
	About       sql.NullString `db:"about"`
	Specialties StringList     `db:"specialties"`
	Photo       sql.NullString `db:"photo"`
	CreatedAt   time.Time      `db:"created_at"`
}

// AgentUpdate carries a partial update; nil pointers leave columns alone.
type AgentUpdate struct {
	Name        *string
	Email       *string
	Phone       *string
	About       *sql.NullString
	Specialties *StringList
	Photo       *sql.NullString
}

type AgentCreateRequest struct {
	Name        string   `json:"name" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"required,phone"`
	About       string   `json:"about"`
	Specialties []string `json:"specialties"`
	Photo       string   `json:"photo"`
}

type AgentUpdateRequest struct {
	Name        *string   `json:"name"`
	Email       *string   `json:"email" validate:"omitempty,email"`
	Phone       *string   `json:"phone" validate:"omitempty,phone"`
	About       *string   `json:"about"`
	Specialties *[]string `json:"specialties"`
	Photo       *string   `json:"photo"`
}

type AgentResponse struct {
	LegacyID    uint64    `json:"_id"`
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	About       *string   `json:"about"`
	Specialties []string  `json:"specialties"`
	Photo       *string   `json:"photo"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToResponse maps a stored agent to its wire shape. A nil entity maps to nil.
func (a *AgentEntity) ToResponse() *AgentResponse {
	if a == nil {
		return nil
	}
	return &AgentResponse{
		LegacyID:    a.ID,
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		Phone:       a.Phone,
		About:       nullStringPtr(a.About),
		Specialties: a.Specialties,
		Photo:       nullStringPtr(a.Photo),
		CreatedAt:   a.CreatedAt,
	}
}
