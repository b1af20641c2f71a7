package lead

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/buildestate/backend/model"
)

type ApplicationSQL struct {
	conn *sqlx.DB
}

type ApplicationRepository interface {
	Create(ctx context.Context, req *model.ApplicationEntity) (*model.ApplicationEntity, error)
	List(ctx context.Context) ([]model.ApplicationEntity, error)
}

func NewApplicationRepository(conn *sqlx.DB) ApplicationRepository {
	return &ApplicationSQL{conn: conn}
}

const (
	insertApplicationQuery = `INSERT INTO applications (name, email, phone, interest_type, budget, message, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	getApplicationBase     = `SELECT id, name, email, phone, interest_type, budget, message, created_at FROM applications`
)

func (s *ApplicationSQL) Create(ctx context.Context, data *model.ApplicationEntity) (*model.ApplicationEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertApplicationQuery,
		data.Name, data.Email, data.Phone, data.InterestType, data.Budget, data.Message,
	)
	if err != nil {
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var entity model.ApplicationEntity
	if err := s.conn.QueryRowxContext(ctx, getApplicationBase+" WHERE id = ?", lastID).StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *ApplicationSQL) List(ctx context.Context) ([]model.ApplicationEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getApplicationBase+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ApplicationEntity, 0)
	for rows.Next() {
		var it model.ApplicationEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
