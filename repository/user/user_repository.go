package user

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

type UserRepository interface {
	Create(ctx context.Context, req *model.UserEntity) (*model.UserEntity, error)
	Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error)
	Update(ctx context.Context, id uint64, upd *model.UserUpdate) error
	Count(ctx context.Context) (int64, error)
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	insertUserQuery = `INSERT INTO users (name, email, password_hash, reset_token, reset_token_expire, created_at) VALUES (?, ?, ?, ?, ?, NOW())`
	getUserBase     = `SELECT id, name, email, password_hash, reset_token, reset_token_expire, created_at, updated_at FROM users WHERE true`
	countUsersQuery = `SELECT COUNT(*) FROM users`
)

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertUserQuery, data.Name, data.Email, data.PasswordHash, data.ResetToken, data.ResetTokenExpire)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, &model.UserFilter{ID: uint64(lastID)})
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := getUserBase
	args := make([]any, 0, 3)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}
	if filter.ResetToken != "" {
		query += " AND reset_token = ? AND reset_token_expire > ?"
		args = append(args, filter.ResetToken, filter.ExpireAfter)
	}

	var entity model.UserEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, id uint64, upd *model.UserUpdate) error {
	set, args := buildUserSet(upd)
	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE users SET "+set+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, countUsersQuery); err != nil {
		return 0, err
	}
	return total, nil
}

// buildUserSet assembles the SET clause for a partial update. Only fields
// explicitly present in the update are written; updated_at is always
// stamped.
func buildUserSet(upd *model.UserUpdate) (string, []any) {
	sets := make([]string, 0, 6)
	args := make([]any, 0, 6)

	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *upd.Email)
	}
	if upd.PasswordHash != nil {
		sets = append(sets, "password_hash = ?")
		args = append(args, *upd.PasswordHash)
	}
	if upd.ResetToken != nil {
		sets = append(sets, "reset_token = ?")
		args = append(args, *upd.ResetToken)
	}
	if upd.ResetTokenExpire != nil {
		sets = append(sets, "reset_token_expire = ?")
		args = append(args, *upd.ResetTokenExpire)
	}
	sets = append(sets, "updated_at = NOW()")

	return strings.Join(sets, ", "), args
}
