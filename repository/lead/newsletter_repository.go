package lead

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	cerr "github.com/buildestate/backend/utils/errors"
)

const mysqlDupEntry = 1062

type NewsletterSQL struct {
	conn *sqlx.DB
}

type NewsletterRepository interface {
	Create(ctx context.Context, email string) (*model.NewsletterEntity, error)
	FindByEmail(ctx context.Context, email string) (*model.NewsletterEntity, error)
}

func NewNewsletterRepository(conn *sqlx.DB) NewsletterRepository {
	return &NewsletterSQL{conn: conn}
}

const (
	insertNewsletterQuery = `INSERT INTO newsletters (email, created_at) VALUES (?, NOW())`
	getNewsletterBase     = `SELECT id, email, created_at, updated_at FROM newsletters`
)

// Create inserts a subscription. The caller normalizes the email; the
// unique key on email maps a concurrent duplicate to ErrAlreadySubscribed.
func (s *NewsletterSQL) Create(ctx context.Context, email string) (*model.NewsletterEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertNewsletterQuery, email)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return nil, cerr.SetCustomError(constant.ErrAlreadySubscribed)
		}
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	var entity model.NewsletterEntity
	if err := s.conn.QueryRowxContext(ctx, getNewsletterBase+" WHERE id = ?", lastID).StructScan(&entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *NewsletterSQL) FindByEmail(ctx context.Context, email string) (*model.NewsletterEntity, error) {
	var entity model.NewsletterEntity
	if err := s.conn.QueryRowxContext(ctx, getNewsletterBase+" WHERE email = ?", email).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}
