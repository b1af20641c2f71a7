package property

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/buildestate/backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type PropertyRepository interface {
	Create(ctx context.Context, req *model.PropertyEntity) (*model.PropertyEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.PropertyEntity, error)
	List(ctx context.Context, filter *model.PropertyFilter) ([]model.PropertyEntity, error)
	FindRecent(ctx context.Context, limit int) ([]model.PropertyEntity, error)
	Update(ctx context.Context, id uint64, upd *model.PropertyUpdate) error
	Delete(ctx context.Context, id uint64) (bool, error)
	Count(ctx context.Context, filter *model.PropertyFilter) (int64, error)
	SumPrices(ctx context.Context) (float64, error)
}

func NewPropertyRepository(conn *sqlx.DB) PropertyRepository {
	return &SQL{conn: conn}
}

const (
	insertPropertyQuery = `INSERT INTO properties
(title, location, price, image, beds, baths, sqft, type, availability, description, amenities, phone, status, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	getPropertyBase = `SELECT id, title, location, price, image, beds, baths, sqft, type, availability, description, amenities, phone, status, created_at, updated_at
FROM properties WHERE true`

	countPropertiesBase = `SELECT COUNT(*) FROM properties WHERE true`

	sumPropertyPrices = `SELECT COALESCE(SUM(price), 0) FROM properties`
)

func (s *SQL) Create(ctx context.Context, data *model.PropertyEntity) (*model.PropertyEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertPropertyQuery,
		data.Title, data.Location, data.Price, data.Image, data.Beds, data.Baths,
		data.Sqft, data.Type, data.Availability, data.Description, data.Amenities,
		data.Phone, data.Status,
	)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, uint64(lastID))
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.PropertyEntity, error) {
	var entity model.PropertyEntity
	if err := s.conn.QueryRowxContext(ctx, getPropertyBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context, filter *model.PropertyFilter) ([]model.PropertyEntity, error) {
	query, args := applyPropertyFilter(getPropertyBase, filter)
	query += " ORDER BY created_at DESC"

	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PropertyEntity, 0)
	for rows.Next() {
		var it model.PropertyEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) FindRecent(ctx context.Context, limit int) ([]model.PropertyEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getPropertyBase+" ORDER BY created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PropertyEntity, 0, limit)
	for rows.Next() {
		var it model.PropertyEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Update(ctx context.Context, id uint64, upd *model.PropertyUpdate) error {
	set, args := buildPropertySet(upd)
	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE properties SET "+set+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (s *SQL) Count(ctx context.Context, filter *model.PropertyFilter) (int64, error) {
	query, args := applyPropertyFilter(countPropertiesBase, filter)
	var total int64
	if err := s.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) SumPrices(ctx context.Context) (float64, error) {
	var total float64
	if err := s.conn.GetContext(ctx, &total, sumPropertyPrices); err != nil {
		return 0, err
	}
	return total, nil
}

func applyPropertyFilter(base string, filter *model.PropertyFilter) (string, []any) {
	args := make([]any, 0, 2)
	if filter == nil {
		return base, args
	}
	if filter.Status != "" {
		base += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Type != "" {
		base += " AND type = ?"
		args = append(args, filter.Type)
	}
	return base, args
}

// buildPropertySet assembles the SET clause for a partial update; only
// explicitly present fields are written, updated_at is always stamped.
func buildPropertySet(upd *model.PropertyUpdate) (string, []any) {
	sets := make([]string, 0, 14)
	args := make([]any, 0, 14)

	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Price != nil {
		add("price", *upd.Price)
	}
	if upd.Image != nil {
		add("image", *upd.Image)
	}
	if upd.Beds != nil {
		add("beds", *upd.Beds)
	}
	if upd.Baths != nil {
		add("baths", *upd.Baths)
	}
	if upd.Sqft != nil {
		add("sqft", *upd.Sqft)
	}
	if upd.Type != nil {
		add("type", *upd.Type)
	}
	if upd.Availability != nil {
		add("availability", *upd.Availability)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Amenities != nil {
		add("amenities", *upd.Amenities)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	sets = append(sets, "updated_at = NOW()")

	return strings.Join(sets, ", "), args
}
