package savedproperty

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	cerr "github.com/buildestate/backend/utils/errors"
)

const mysqlDupEntry = 1062

type SQL struct {
	conn *sqlx.DB
}

type SavedPropertyRepository interface {
	ListByUser(ctx context.Context, userID uint64) ([]model.SavedPropertyRow, error)
	Save(ctx context.Context, userID, propertyID uint64) (*model.SavedPropertyRow, error)
	Remove(ctx context.Context, userID, savedID uint64) (bool, error)
}

func NewSavedPropertyRepository(conn *sqlx.DB) SavedPropertyRepository {
	return &SQL{conn: conn}
}

const (
	insertSavedQuery = `INSERT INTO saved_properties (user_id, property_id, saved_at) VALUES (?, ?, NOW())`

	getSavedBase = `SELECT sp.id, sp.user_id, sp.property_id, sp.saved_at,
p.title AS p_title, p.location AS p_location, p.price AS p_price, p.type AS p_type,
p.image AS p_image, p.beds AS p_beds, p.baths AS p_baths
FROM saved_properties sp
LEFT JOIN properties p ON p.id = sp.property_id
WHERE true`
)

func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.SavedPropertyRow, error) {
	rows, err := s.conn.QueryxContext(ctx, getSavedBase+" AND sp.user_id = ? ORDER BY sp.saved_at DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SavedPropertyRow, 0)
	for rows.Next() {
		var it model.SavedPropertyRow
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Save inserts one row per (user, property); the unique key maps a
// duplicate to ErrAlreadySaved.
func (s *SQL) Save(ctx context.Context, userID, propertyID uint64) (*model.SavedPropertyRow, error) {
	result, err := s.conn.ExecContext(ctx, insertSavedQuery, userID, propertyID)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return nil, cerr.SetCustomError(constant.ErrAlreadySaved)
		}
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var row model.SavedPropertyRow
	if err := s.conn.QueryRowxContext(ctx, getSavedBase+" AND sp.id = ?", lastID).StructScan(&row); err != nil {
		return nil, err
	}
	return &row, nil
}

// Remove deletes by saved-row ID or by property ID, whichever matches,
// scoped to the owning user.
func (s *SQL) Remove(ctx context.Context, userID, savedID uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx,
		"DELETE FROM saved_properties WHERE user_id = ? AND (id = ? OR property_id = ?)",
		userID, savedID, savedID,
	)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
