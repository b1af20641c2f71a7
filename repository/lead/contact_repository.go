package lead

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/buildestate/backend/model"
)

type ContactSQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	Create(ctx context.Context, req *model.ContactFormEntity) (*model.ContactFormEntity, error)
	List(ctx context.Context) ([]model.ContactFormEntity, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &ContactSQL{conn: conn}
}

const (
	insertContactQuery = `INSERT INTO contact_forms (name, email, phone, message, created_at) VALUES (?, ?, ?, ?, NOW())`
	getContactBase     = `SELECT id, name, email, phone, message, created_at, updated_at FROM contact_forms`
)

func (s *ContactSQL) Create(ctx context.Context, data *model.ContactFormEntity) (*model.ContactFormEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertContactQuery,
		data.Name, data.Email, data.Phone, data.Message,
	)
	if err != nil {
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var entity model.ContactFormEntity
	if err := s.conn.QueryRowxContext(ctx, getContactBase+" WHERE id = ?", lastID).StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *ContactSQL) List(ctx context.Context) ([]model.ContactFormEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getContactBase+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ContactFormEntity, 0)
	for rows.Next() {
		var it model.ContactFormEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
