package stats

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/buildestate/backend/model"
)

type SQL struct {
	conn *sqlx.DB
}

type StatsRepository interface {
	Create(ctx context.Context, req *model.StatsEntity) error
	ViewTimestampsSince(ctx context.Context, endpointPrefix string, since time.Time) ([]time.Time, error)
}

func NewStatsRepository(conn *sqlx.DB) StatsRepository {
	return &SQL{conn: conn}
}

const (
	insertStatsQuery = `INSERT INTO api_stats (endpoint, method, response_time, status_code, timestamp, created_at) VALUES (?, ?, ?, ?, ?, NOW())`

	viewTimestampsQuery = `SELECT timestamp FROM api_stats WHERE endpoint LIKE ? AND method = 'GET' AND timestamp >= ?`
)

// Create appends one telemetry row. api_stats is append-only; there is
// no update path.
func (s *SQL) Create(ctx context.Context, data *model.StatsEntity) error {
	ts := data.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := s.conn.ExecContext(ctx, insertStatsQuery,
		data.Endpoint, data.Method, data.ResponseTime, data.StatusCode, ts,
	)
	return err
}

// ViewTimestampsSince returns the raw timestamps of GET hits under the
// given endpoint prefix; the application layer buckets them per day.
func (s *SQL) ViewTimestampsSince(ctx context.Context, endpointPrefix string, since time.Time) ([]time.Time, error) {
	rows, err := s.conn.QueryxContext(ctx, viewTimestampsQuery, endpointPrefix+"%", since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stamps := make([]time.Time, 0)
	for rows.Next() {
		var ts time.Time
		if err := rows.Scan(&ts); err != nil {
			return nil, err
		}
		stamps = append(stamps, ts)
	}
	return stamps, rows.Err()
}
