package appointment

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	cerr "github.com/buildestate/backend/utils/errors"
)

// mysqlDupEntry is the MySQL error number for a unique-key violation.
const mysqlDupEntry = 1062

type SQL struct {
	conn *sqlx.DB
}

type AppointmentRepository interface {
	GetAll(ctx context.Context) ([]model.AppointmentRow, error)
	GetByID(ctx context.Context, id uint64) (*model.AppointmentRow, error)
	ListByUser(ctx context.Context, userID uint64) ([]model.AppointmentRow, error)
	FindRecent(ctx context.Context, limit int) ([]model.AppointmentRow, error)
	FindActiveSlotTx(ctx context.Context, tx *sqlx.Tx, propertyID uint64, date, timeSlot string) (*model.AppointmentEntity, error)
	CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AppointmentEntity) (uint64, error)
	Update(ctx context.Context, id uint64, upd *model.AppointmentUpdate) error
	Count(ctx context.Context, filter *model.AppointmentFilter) (int64, error)
}

func NewAppointmentRepository(conn *sqlx.DB) AppointmentRepository {
	return &SQL{conn: conn}
}

// getAppointmentBase joins the property and user columns embedded in
// responses. LEFT JOINs keep appointments visible after the referenced
// row is deleted.
const (
	getAppointmentBase = `SELECT a.id, a.property_id, a.user_id, a.date, a.time, a.status,
a.meeting_link, a.meeting_platform, a.notes, a.cancel_reason, a.reminder_sent,
a.feedback_rating, a.feedback_comment, a.created_at, a.updated_at,
p.id AS p_id, p.title AS p_title, p.location AS p_location, p.image AS p_image,
u.id AS u_id, u.name AS u_name, u.email AS u_email
FROM appointments a
LEFT JOIN properties p ON p.id = a.property_id
LEFT JOIN users u ON u.id = a.user_id
WHERE true`

	insertAppointmentQuery = `INSERT INTO appointments
(property_id, user_id, date, time, status, meeting_link, meeting_platform, notes, cancel_reason, reminder_sent, feedback_rating, feedback_comment, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	findActiveSlotQuery = `SELECT id, property_id, user_id, date, time, status,
meeting_link, meeting_platform, notes, cancel_reason, reminder_sent,
feedback_rating, feedback_comment, created_at, updated_at
FROM appointments
WHERE property_id = ? AND date = ? AND time = ? AND status <> ?
LIMIT 1`

	countAppointmentsBase = `SELECT COUNT(*) FROM appointments WHERE true`
)

func (s *SQL) GetAll(ctx context.Context) ([]model.AppointmentRow, error) {
	return s.queryRows(ctx, getAppointmentBase+" ORDER BY a.created_at DESC")
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.AppointmentRow, error) {
	var row model.AppointmentRow
	if err := s.conn.QueryRowxContext(ctx, getAppointmentBase+" AND a.id = ?", id).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListByUser sorts by appointment date ascending: the upcoming-first view
// is the one users care about.
func (s *SQL) ListByUser(ctx context.Context, userID uint64) ([]model.AppointmentRow, error) {
	return s.queryRows(ctx, getAppointmentBase+" AND a.user_id = ? ORDER BY a.date ASC, a.time ASC", userID)
}

func (s *SQL) FindRecent(ctx context.Context, limit int) ([]model.AppointmentRow, error) {
	return s.queryRows(ctx, getAppointmentBase+" ORDER BY a.created_at DESC LIMIT ?", limit)
}

// FindActiveSlotTx looks for a non-cancelled appointment occupying the
// slot, inside the caller's transaction. Used as a pre-filter; the unique
// index on (property_id, date, time, active) is the real guard.
func (s *SQL) FindActiveSlotTx(ctx context.Context, tx *sqlx.Tx, propertyID uint64, date, timeSlot string) (*model.AppointmentEntity, error) {
	var entity model.AppointmentEntity
	err := tx.QueryRowxContext(ctx, findActiveSlotQuery, propertyID, date, timeSlot, constant.AppointmentStatusCancelled).StructScan(&entity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, data *model.AppointmentEntity) (uint64, error) {
	result, err := tx.ExecContext(ctx, insertAppointmentQuery,
		data.PropertyID, data.UserID, data.Date, data.Time, data.Status,
		data.MeetingLink, data.MeetingPlatform, data.Notes, data.CancelReason,
		data.ReminderSent, data.FeedbackRating, data.FeedbackComment,
	)
	if err != nil {
		var me *mysql.MySQLError
		if errors.As(err, &me) && me.Number == mysqlDupEntry {
			return 0, cerr.SetCustomError(constant.ErrSlotTaken)
		}
		return 0, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, id uint64, upd *model.AppointmentUpdate) error {
	set, args := buildAppointmentSet(upd)
	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, "UPDATE appointments SET "+set+" WHERE id = ?", args...)
	return err
}

func (s *SQL) Count(ctx context.Context, filter *model.AppointmentFilter) (int64, error) {
	query := countAppointmentsBase
	args := make([]any, 0, 3)
	if filter != nil {
		if filter.UserID != 0 {
			query += " AND user_id = ?"
			args = append(args, filter.UserID)
		}
		if filter.PropertyID != 0 {
			query += " AND property_id = ?"
			args = append(args, filter.PropertyID)
		}
		if filter.Status != "" {
			query += " AND status = ?"
			args = append(args, filter.Status)
		}
	}
	var total int64
	if err := s.conn.GetContext(ctx, &total, query, args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) queryRows(ctx context.Context, query string, args ...any) ([]model.AppointmentRow, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.AppointmentRow, 0)
	for rows.Next() {
		var it model.AppointmentRow
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// buildAppointmentSet assembles the SET clause for a partial update; only
// explicitly present fields are written, updated_at is always stamped.
func buildAppointmentSet(upd *model.AppointmentUpdate) (string, []any) {
	sets := make([]string, 0, 9)
	args := make([]any, 0, 9)

	add := func(col string, v any) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.MeetingLink != nil {
		add("meeting_link", *upd.MeetingLink)
	}
	if upd.MeetingPlatform != nil {
		add("meeting_platform", *upd.MeetingPlatform)
	}
	if upd.Notes != nil {
		add("notes", *upd.Notes)
	}
	if upd.CancelReason != nil {
		add("cancel_reason", *upd.CancelReason)
	}
	if upd.ReminderSent != nil {
		add("reminder_sent", *upd.ReminderSent)
	}
	if upd.FeedbackRating != nil {
		add("feedback_rating", *upd.FeedbackRating)
	}
	if upd.FeedbackComment != nil {
		add("feedback_comment", *upd.FeedbackComment)
	}
	sets = append(sets, "updated_at = NOW()")

	return strings.Join(sets, ", "), args
}
