package model

import (
	"database/sql"
	"time"
)

// SavedPropertyEntity represents the saved_properties join table. The
// store enforces one row per (user_id, property_id).
type SavedPropertyEntity struct {
	ID         uint64    `db:"id"`
	UserID     uint64    `db:"user_id"`
	PropertyID uint64    `db:"property_id"`
	SavedAt    time.Time `db:"saved_at"`
}

// SavedPropertyRow joins a saved row with the listing fields shown in the
// saved list. Listing columns are nullable because the property may have
// been deleted after being saved.
type SavedPropertyRow struct {
	SavedPropertyEntity
	Title    sql.NullString  `db:"p_title"`
	Location sql.NullString  `db:"p_location"`
	Price    sql.NullFloat64 `db:"p_price"`
	Type     sql.NullString  `db:"p_type"`
	Image    sql.NullString  `db:"p_image"`
	Beds     sql.NullInt64   `db:"p_beds"`
	Baths    sql.NullFloat64 `db:"p_baths"`
}

type SavePropertyRequest struct {
	PropertyID uint64 `json:"propertyId" validate:"required"`
}

type SavedPropertyResponse struct {
	LegacyID   uint64    `json:"_id"`
	ID         uint64    `json:"id"`
	PropertyID uint64    `json:"propertyId"`
	Title      *string   `json:"title"`
	Location   *string   `json:"location"`
	Price      *float64  `json:"price"`
	Type       *string   `json:"type"`
	Image      *string   `json:"image"`
	Beds       *int      `json:"beds"`
	Baths      *float64  `json:"baths"`
	SavedAt    time.Time `json:"savedAt"`
}

// ToResponse maps a joined saved-property row to its wire shape. A nil
// row maps to nil.
func (s *SavedPropertyRow) ToResponse() *SavedPropertyResponse {
	if s == nil {
		return nil
	}
	resp := &SavedPropertyResponse{
		LegacyID:   s.ID,
		ID:         s.ID,
		PropertyID: s.PropertyID,
		Title:      nullStringPtr(s.Title),
		Location:   nullStringPtr(s.Location),
		Type:       nullStringPtr(s.Type),
		Image:      nullStringPtr(s.Image),
		SavedAt:    s.SavedAt,
	}
	if s.Price.Valid {
		v := s.Price.Float64
		resp.Price = &v
	}
	if s.Beds.Valid {
		v := int(s.Beds.Int64)
		resp.Beds = &v
	}
	if s.Baths.Valid {
		v := s.Baths.Float64
		resp.Baths = &v
	}
	return resp
}
