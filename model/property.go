package model

import (
	"database/sql"
	"time"

	"github.com/buildestate/backend/constant"
)

// PropertyEntity represents the properties table
type PropertyEntity struct {
	ID           uint64                  `db:"id"`
	Title        string                  `db:"title"`
	Location     string                  `db:"location"`
	Price        float64                 `db:"price"`
	Image        sql.NullString          `db:"image"`
	Beds         int                     `db:"beds"`
	Baths        float64                 `db:"baths"`
	Sqft         int                     `db:"sqft"`
	Type         string                  `db:"type"`
	Availability sql.NullString          `db:"availability"`
	Description  sql.NullString          `db:"description"`
	Amenities    StringList              `db:"amenities"`
	Phone        sql.NullString          `db:"phone"`
	Status       constant.PropertyStatus `db:"status"`
	CreatedAt    time.Time               `db:"created_at"`
	UpdatedAt    sql.NullTime            `db:"updated_at"`
}

// PropertyFilter for list/count queries
type PropertyFilter struct {
	Status constant.PropertyStatus
	Type   string
}

// PropertyUpdate carries a partial update; nil pointers leave columns alone.
type PropertyUpdate struct {
	Title        *string
	Location     *string
	Price        *float64
	Image        *sql.NullString
	Beds         *int
	Baths        *float64
	Sqft         *int
	Type         *string
	Availability *sql.NullString
	Description  *sql.NullString
	Amenities    *StringList
	Phone        *sql.NullString
	Status       *constant.PropertyStatus
}

type PropertyCreateRequest struct {
	Title        string   `json:"title" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	Price        float64  `json:"price" validate:"required,gte=0"`
	Image        string   `json:"image"`
	Beds         int      `json:"beds" validate:"gte=0"`
	Baths        float64  `json:"baths" validate:"gte=0"`
	Sqft         int      `json:"sqft" validate:"gte=0"`
	Type         string   `json:"type" validate:"required"`
	Availability string   `json:"availability"`
	Description  string   `json:"description"`
	Amenities    []string `json:"amenities"`
	Phone        string   `json:"phone" validate:"omitempty,phone"`
	Status       string   `json:"status"`
}

type PropertyUpdateRequest struct {
	Title        *string   `json:"title"`
	Location     *string   `json:"location"`
	Price        *float64  `json:"price" validate:"omitempty,gte=0"`
	Image        *string   `json:"image"`
	Beds         *int      `json:"beds" validate:"omitempty,gte=0"`
	Baths        *float64  `json:"baths" validate:"omitempty,gte=0"`
	Sqft         *int      `json:"sqft" validate:"omitempty,gte=0"`
	Type         *string   `json:"type"`
	Availability *string   `json:"availability"`
	Description  *string   `json:"description"`
	Amenities    *[]string `json:"amenities"`
	Phone        *string   `json:"phone" validate:"omitempty,phone"`
	Status       *string   `json:"status"`
}

type PropertyResponse struct {
	LegacyID     uint64     `json:"_id"`
	ID           uint64     `json:"id"`
	Title        string     `json:"title"`
	Location     string     `json:"location"`
	Price        float64    `json:"price"`
	Image        *string    `json:"image"`
	Beds         int        `json:"beds"`
	Baths        float64    `json:"baths"`
	Sqft         int        `json:"sqft"`
	Type         string     `json:"type"`
	Availability *string    `json:"availability"`
	Description  *string    `json:"description"`
	Amenities    []string   `json:"amenities"`
	Phone        *string    `json:"phone"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

// ToResponse maps a stored property to its wire shape. A nil entity maps to nil.
func (p *PropertyEntity) ToResponse() *PropertyResponse {
	if p == nil {
		return nil
	}
	return &PropertyResponse{
		LegacyID:     p.ID,
		ID:           p.ID,
		Title:        p.Title,
		Location:     p.Location,
		Price:        p.Price,
		Image:        nullStringPtr(p.Image),
		Beds:         p.Beds,
		Baths:        p.Baths,
		Sqft:         p.Sqft,
		Type:         p.Type,
		Availability: nullStringPtr(p.Availability),
		Description:  nullStringPtr(p.Description),
		Amenities:    p.Amenities,
		Phone:        nullStringPtr(p.Phone),
		Status:       string(p.Status),
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    nullTimePtr(p.UpdatedAt),
	}
}
