package agent

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

type AgentRepository interface {
	Create(ctx context.Context, req *model.AgentEntity) (*model.AgentEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.AgentEntity, error)
	List(ctx context.Context) ([]model.AgentEntity, error)
	Update(ctx context.Context, id uint64, upd *model.AgentUpdate) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

func NewAgentRepository(conn *sqlx.DB) AgentRepository {
	return &SQL{conn: conn}
}

const (
	insertAgentQuery = `INSERT INTO agents (name, email, phone, about, specialties, photo, created_at) VALUES (?, ?, ?, ?, ?, ?, NOW())`
	getAgentBase     = `SELECT id, name, email, phone, about, specialties, photo, created_at FROM agents WHERE true`
)

func (s *SQL) Create(ctx context.Context, data *model.AgentEntity) (*model.AgentEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAgentQuery,
		data.Name, data.Email, data.Phone, data.About, data.Specialties, data.Photo,
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

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.AgentEntity, error) {
	var entity model.AgentEntity
	if err := s.conn.QueryRowxContext(ctx, getAgentBase+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) List(ctx context.Context) ([]model.AgentEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, getAgentBase+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AgentEntity, 0)
	for rows.Next() {
		var it model.AgentEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) Update(ctx context.Context, id uint64, upd *model.AgentUpdate) error {
	set, args := buildAgentSet(upd)
	if set == "" {
		return nil
	}
	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE agents SET "+set+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) (bool, error) {
	result, err := s.conn.ExecContext(ctx, "DELETE FROM agents WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// buildAgentSet assembles the SET clause for a partial update. Agents
// carry no update timestamp, so an empty update is a no-op.
func buildAgentSet(upd *model.AgentUpdate) (string, []any) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 6)

	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.Email != nil {
		add("email", *upd.Email)
	}
	if upd.Phone != nil {
		add("phone", *upd.Phone)
	}
	if upd.About != nil {
		add("about", *upd.About)
	}
	if upd.Specialties != nil {
		add("specialties", *upd.Specialties)
	}
	if upd.Photo != nil {
		add("photo", *upd.Photo)
	}

	return strings.Join(sets, ", "), args
}
