package model

import "time"

// StatsEntity represents the append-only api_stats table. Rows are never
// updated.
type StatsEntity struct {
	ID           uint64    `db:"id"`
	Endpoint     string    `db:"endpoint"`
	Method       string    `db:"method"`
	ResponseTime int64     `db:"response_time"`
	StatusCode   int       `db:"status_code"`
	Timestamp    time.Time `db:"timestamp"`
	CreatedAt    time.Time `db:"created_at"`
}

type StatsResponse struct {
	LegacyID     uint64    `json:"_id"`
	ID           uint64    `json:"id"`
	Endpoint     string    `json:"endpoint"`
	Method       string    `json:"method"`
	ResponseTime int64     `json:"responseTime"`
	StatusCode   int       `json:"statusCode"`
	Timestamp    time.Time `json:"timestamp"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ToResponse maps a stored stat to its wire shape. A nil entity maps to nil.
func (s *StatsEntity) ToResponse() *StatsResponse {
	if s == nil {
		return nil
	}
	return &StatsResponse{
		LegacyID:     s.ID,
		ID:           s.ID,
		Endpoint:     s.Endpoint,
		Method:       s.Method,
		ResponseTime: s.ResponseTime,
		StatusCode:   s.StatusCode,
		Timestamp:    s.Timestamp,
		CreatedAt:    s.CreatedAt,
	}
}

// ActivityItem is one entry in the admin dashboard's recent activity feed.
type ActivityItem struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// ViewsDataset mirrors the chart.js dataset shape the admin panel renders.
type ViewsDataset struct {
	Label           string  `json:"label"`
	Data            []int64 `json:"data"`
	BorderColor     string  `json:"borderColor"`
	BackgroundColor string  `json:"backgroundColor"`
	Tension         float64 `json:"tension"`
	Fill            bool    `json:"fill"`
}

type ViewsData struct {
	Labels   []string       `json:"labels"`
	Datasets []ViewsDataset `json:"datasets"`
}

// AdminStats aggregates the dashboard numbers.
type AdminStats struct {
	TotalProperties     int64          `json:"totalProperties"`
	ActiveListings      int64          `json:"activeListings"`
	TotalUsers          int64          `json:"totalUsers"`
	PendingAppointments int64          `json:"pendingAppointments"`
	RecentActivity      []ActivityItem `json:"recentActivity"`
	ViewsData           ViewsData      `json:"viewsData"`
	Revenue             float64        `json:"revenue"`
}
