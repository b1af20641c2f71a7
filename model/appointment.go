package model

import (
	"database/sql"
	"time"

	"github.com/buildestate/backend/constant"
)

// AppointmentEntity represents the appointments table
type AppointmentEntity struct {
	ID              uint64                      `db:"id"`
	PropertyID      uint64                      `db:"property_id"`
	UserID          uint64                      `db:"user_id"`
	Date            string                      `db:"date"`
	Time            string                      `db:"time"`
	Status          constant.AppointmentStatus  `db:"status"`
	MeetingLink     sql.NullString              `db:"meeting_link"`
	MeetingPlatform constant.MeetingPlatform    `db:"meeting_platform"`
	Notes           sql.NullString              `db:"notes"`
	CancelReason    sql.NullString              `db:"cancel_reason"`
	ReminderSent    bool                        `db:"reminder_sent"`
	FeedbackRating  sql.NullInt64               `db:"feedback_rating"`
	FeedbackComment sql.NullString              `db:"feedback_comment"`
	CreatedAt       time.Time                   `db:"created_at"`
	UpdatedAt       sql.NullTime                `db:"updated_at"`
}

// AppointmentRow is an appointment joined with the subset of property and
// user columns embedded in responses. Joined columns are nullable because
// the referenced rows may have been deleted.
type AppointmentRow struct {
	AppointmentEntity
	PropertyRowID    sql.NullInt64  `db:"p_id"`
	PropertyTitle    sql.NullString `db:"p_title"`
	PropertyLocation sql.NullString `db:"p_location"`
	PropertyImage    sql.NullString `db:"p_image"`
	UserRowID        sql.NullInt64  `db:"u_id"`
	UserName         sql.NullString `db:"u_name"`
	UserEmail        sql.NullString `db:"u_email"`
}

// AppointmentFilter for list/count queries
type AppointmentFilter struct {
	UserID     uint64
	PropertyID uint64
	Status     constant.AppointmentStatus
}

// AppointmentUpdate carries a partial update; nil pointers leave columns
// alone. Feedback fields travel together.
type AppointmentUpdate struct {
	Status          *constant.AppointmentStatus
	MeetingLink     *sql.NullString
	MeetingPlatform *constant.MeetingPlatform
	Notes           *sql.NullString
	CancelReason    *sql.NullString
	ReminderSent    *bool
	FeedbackRating  *int
	FeedbackComment *string
}

type ScheduleViewingRequest struct {
	PropertyID uint64 `json:"propertyId" validate:"required"`
	Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string `json:"time" validate:"required,datetime=15:04"`
	Notes      string `json:"notes"`
}

type UpdateAppointmentStatusRequest struct {
	AppointmentID uint64 `json:"appointmentId" validate:"required"`
	Status        string `json:"status" validate:"required"`
}

type UpdateMeetingLinkRequest struct {
	AppointmentID uint64 `json:"appointmentId" validate:"required"`
	MeetingLink   string `json:"meetingLink" validate:"required,url"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

type AppointmentFeedbackRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// AppointmentPropertyRef is the expanded property relation on an
// appointment response.
type AppointmentPropertyRef struct {
	LegacyID uint64  `json:"_id"`
	ID       uint64  `json:"id"`
	Title    string  `json:"title"`
	Location string  `json:"location"`
	Image    *string `json:"image"`
}

// AppointmentUserRef is the expanded user relation on an appointment
// response.
type AppointmentUserRef struct {
	LegacyID uint64 `json:"_id"`
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type AppointmentFeedback struct {
	Rating  int     `json:"rating"`
	Comment *string `json:"comment"`
}

// AppointmentResponse always carries the scalar foreign keys plus the
// expanded relation objects; a relation is null only when the referenced
// row no longer exists.
type AppointmentResponse struct {
	LegacyID        uint64                  `json:"_id"`
	ID              uint64                  `json:"id"`
	PropertyID      uint64                  `json:"propertyId"`
	Property        *AppointmentPropertyRef `json:"property"`
	UserID          uint64                  `json:"userId"`
	User            *AppointmentUserRef     `json:"user"`
	Date            string                  `json:"date"`
	Time            string                  `json:"time"`
	Status          string                  `json:"status"`
	MeetingLink     *string                 `json:"meetingLink"`
	MeetingPlatform string                  `json:"meetingPlatform"`
	Notes           *string                 `json:"notes"`
	CancelReason    *string                 `json:"cancelReason"`
	ReminderSent    bool                    `json:"reminderSent"`
	Feedback        *AppointmentFeedback    `json:"feedback"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       *time.Time              `json:"updatedAt"`
}

// ToResponse maps a joined appointment row to its wire shape. A nil row
// maps to nil. The feedback object exists only when a rating was stored.
func (a *AppointmentRow) ToResponse() *AppointmentResponse {
	if a == nil {
		return nil
	}
	resp := &AppointmentResponse{
		LegacyID:        a.ID,
		ID:              a.ID,
		PropertyID:      a.PropertyID,
		UserID:          a.UserID,
		Date:            a.Date,
		Time:            a.Time,
		Status:          string(a.Status),
		MeetingLink:     nullStringPtr(a.MeetingLink),
		MeetingPlatform: string(a.MeetingPlatform),
		Notes:           nullStringPtr(a.Notes),
		CancelReason:    nullStringPtr(a.CancelReason),
		ReminderSent:    a.ReminderSent,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       nullTimePtr(a.UpdatedAt),
	}
	if a.PropertyRowID.Valid {
		id := uint64(a.PropertyRowID.Int64)
		resp.Property = &AppointmentPropertyRef{
			LegacyID: id,
			ID:       id,
			Title:    a.PropertyTitle.String,
			Location: a.PropertyLocation.String,
			Image:    nullStringPtr(a.PropertyImage),
		}
	}
	if a.UserRowID.Valid {
		id := uint64(a.UserRowID.Int64)
		resp.User = &AppointmentUserRef{
			LegacyID: id,
			ID:       id,
			Name:     a.UserName.String,
			Email:    a.UserEmail.String,
		}
	}
	if a.FeedbackRating.Valid {
		resp.Feedback = &AppointmentFeedback{
			Rating:  int(a.FeedbackRating.Int64),
			Comment: nullStringPtr(a.FeedbackComment),
		}
	}
	return resp
}

// AppointmentStats summarizes appointment counts per status.
type AppointmentStats struct {
	Total      int64         `json:"total"`
	Pending    int64         `json:"pending"`
	Confirmed  int64         `json:"confirmed"`
	Cancelled  int64         `json:"cancelled"`
	Completed  int64         `json:"completed"`
	DailyStats []interface{} `json:"dailyStats"`
}
