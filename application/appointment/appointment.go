package appointment

import (
	"context"
	"database/sql"
	"strings"

	"go.uber.org/zap"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	appointmentrepo "github.com/buildestate/backend/repository/appointment"
	propertyrepo "github.com/buildestate/backend/repository/property"
	txrepo "github.com/buildestate/backend/repository/tx"
	"github.com/buildestate/backend/thirdparty/rabbitmq"
	"github.com/buildestate/backend/utils/errors"
	"github.com/buildestate/backend/utils/logger"
)

type AppointmentApp interface {
	Schedule(ctx context.Context, userID uint64, req *model.ScheduleViewingRequest) (*model.AppointmentResponse, error)
	GetAll(ctx context.Context) ([]*model.AppointmentResponse, error)
	ListByUser(ctx context.Context, userID uint64) ([]*model.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, req *model.UpdateAppointmentStatusRequest) (*model.AppointmentResponse, error)
	UpdateMeetingLink(ctx context.Context, req *model.UpdateMeetingLinkRequest) (*model.AppointmentResponse, error)
	Cancel(ctx context.Context, userID uint64, isAdmin bool, id uint64, req *model.CancelAppointmentRequest) (*model.AppointmentResponse, error)
	SubmitFeedback(ctx context.Context, userID uint64, id uint64, req *model.AppointmentFeedbackRequest) (*model.AppointmentResponse, error)
	Stats(ctx context.Context) (*model.AppointmentStats, error)
}

type appointmentAppImpl struct {
	txRepo          txrepo.TxRepository
	appointmentRepo appointmentrepo.AppointmentRepository
	propertyRepo    propertyrepo.PropertyRepository
	publisher       *rabbitmq.Publisher
}

func NewAppointmentApp(txRepo txrepo.TxRepository, appointmentRepo appointmentrepo.AppointmentRepository, propertyRepo propertyrepo.PropertyRepository, publisher *rabbitmq.Publisher) AppointmentApp {
	return &appointmentAppImpl{
		txRepo:          txRepo,
		appointmentRepo: appointmentRepo,
		propertyRepo:    propertyRepo,
		publisher:       publisher,
	}
}

// Schedule books a viewing slot. The slot check and insert run in one
// transaction; the unique index on the slot makes the booking safe under
// concurrent requests for the same slot.
func (s *appointmentAppImpl) Schedule(ctx context.Context, userID uint64, req *model.ScheduleViewingRequest) (*model.AppointmentResponse, error) {
	property, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		logger.Error("[Schedule] err propertyRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if property == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[Schedule] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	existing, err := s.appointmentRepo.FindActiveSlotTx(ctx, tx, req.PropertyID, req.Date, req.Time)
	if err != nil {
		logger.Error("[Schedule] err FindActiveSlotTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrSlotTaken)
	}

	entity := &model.AppointmentEntity{
		PropertyID:      req.PropertyID,
		UserID:          userID,
		Date:            req.Date,
		Time:            req.Time,
		Status:          constant.AppointmentStatusPending,
		MeetingPlatform: constant.DefaultMeetingPlatform,
		Notes:           sql.NullString{String: req.Notes, Valid: req.Notes != ""},
	}

	id, err := s.appointmentRepo.CreateTx(ctx, tx, entity)
	if err != nil {
		if err.Error() == errors.SetCustomError(constant.ErrSlotTaken).Error() {
			return nil, errors.SetCustomError(constant.ErrSlotTaken)
		}
		logger.Error("[Schedule] err CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[Schedule] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	row, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Schedule] err GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Confirmation mail is non-critical; booking stands even when the
	// queue is down.
	if s.publisher != nil && row != nil && row.UserEmail.Valid {
		msg := rabbitmq.MailMessage{
			Kind:          rabbitmq.MailKindAppointment,
			To:            row.UserEmail.String,
			Name:          row.UserName.String,
			PropertyTitle: property.Title,
			Date:          req.Date,
			TimeSlot:      req.Time,
		}
		if err := s.publisher.PublishMail(msg); err != nil {
			logger.Error("[Schedule] err publish confirmation mail", zap.String("error", err.Error()))
		}
	}

	return row.ToResponse(), nil
}

func (s *appointmentAppImpl) GetAll(ctx context.Context) ([]*model.AppointmentResponse, error) {
	rows, err := s.appointmentRepo.GetAll(ctx)
	if err != nil {
		logger.Error("[GetAllAppointments] err GetAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toResponses(rows), nil
}

func (s *appointmentAppImpl) ListByUser(ctx context.Context, userID uint64) ([]*model.AppointmentResponse, error) {
	rows, err := s.appointmentRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListAppointments] err ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return toResponses(rows), nil
}

func (s *appointmentAppImpl) UpdateStatus(ctx context.Context, req *model.UpdateAppointmentStatusRequest) (*model.AppointmentResponse, error) {
	newStatus := constant.AppointmentStatus(req.Status)
	if !constant.ValidAppointmentStatus(newStatus) {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	row, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		logger.Error("[UpdateAppointmentStatus] err GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if !constant.CanTransitionAppointment(row.Status, newStatus) {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	upd := &model.AppointmentUpdate{Status: &newStatus}
	if err := s.appointmentRepo.Update(ctx, req.AppointmentID, upd); err != nil {
		logger.Error("[UpdateAppointmentStatus] err Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res, err := s.reload(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	s.publishMail(rabbitmq.MailKindStatusUpdate, res, func(m *rabbitmq.MailMessage) {
		m.Status = string(newStatus)
	})
	return res, nil
}

func (s *appointmentAppImpl) UpdateMeetingLink(ctx context.Context, req *model.UpdateMeetingLinkRequest) (*model.AppointmentResponse, error) {
	row, err := s.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		logger.Error("[UpdateMeetingLink] err GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	link := sql.NullString{String: req.MeetingLink, Valid: true}
	platform := detectPlatform(req.MeetingLink)
	upd := &model.AppointmentUpdate{
		MeetingLink:     &link,
		MeetingPlatform: &platform,
	}
	if err := s.appointmentRepo.Update(ctx, req.AppointmentID, upd); err != nil {
		logger.Error("[UpdateMeetingLink] err Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res, err := s.reload(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	s.publishMail(rabbitmq.MailKindMeetingLink, res, func(m *rabbitmq.MailMessage) {
		m.MeetingLink = req.MeetingLink
	})
	return res, nil
}

func (s *appointmentAppImpl) Cancel(ctx context.Context, userID uint64, isAdmin bool, id uint64, req *model.CancelAppointmentRequest) (*model.AppointmentResponse, error) {
	row, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[CancelAppointment] err GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !isAdmin && row.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	if !constant.CanTransitionAppointment(row.Status, constant.AppointmentStatusCancelled) {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	cancelled := constant.AppointmentStatusCancelled
	reason := sql.NullString{String: req.Reason, Valid: req.Reason != ""}
	upd := &model.AppointmentUpdate{
		Status:       &cancelled,
		CancelReason: &reason,
	}
	if err := s.appointmentRepo.Update(ctx, id, upd); err != nil {
		logger.Error("[CancelAppointment] err Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res, err := s.reload(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publishMail(rabbitmq.MailKindCancellation, res, func(m *rabbitmq.MailMessage) {
		m.Reason = req.Reason
	})
	return res, nil
}

// SubmitFeedback stores the visitor's rating and marks the appointment
// completed.
func (s *appointmentAppImpl) SubmitFeedback(ctx context.Context, userID uint64, id uint64, req *model.AppointmentFeedbackRequest) (*model.AppointmentResponse, error) {
	row, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[SubmitFeedback] err GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if row == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if row.UserID != userID {
		return nil, errors.SetCustomError(constant.ErrForbidden)
	}
	// A cancelled appointment is terminal; feedback must not resurrect it
	// as completed, which would also re-occupy the slot.
	if row.Status == constant.AppointmentStatusCancelled {
		return nil, errors.SetCustomError(constant.ErrInvalidTransition)
	}

	completed := constant.AppointmentStatusCompleted
	upd := &model.AppointmentUpdate{
		Status:          &completed,
		FeedbackRating:  &req.Rating,
		FeedbackComment: &req.Comment,
	}
	if err := s.appointmentRepo.Update(ctx, id, upd); err != nil {
		logger.Error("[SubmitFeedback] err Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.reload(ctx, id)
}

func (s *appointmentAppImpl) Stats(ctx context.Context) (*model.AppointmentStats, error) {
	stats := &model.AppointmentStats{DailyStats: []interface{}{}}

	counts := []struct {
		status constant.AppointmentStatus
		dest   *int64
	}{
		{"", &stats.Total},
		{constant.AppointmentStatusPending, &stats.Pending},
		{constant.AppointmentStatusConfirmed, &stats.Confirmed},
		{constant.AppointmentStatusCancelled, &stats.Cancelled},
		{constant.AppointmentStatusCompleted, &stats.Completed},
	}
	for _, c := range counts {
		total, err := s.appointmentRepo.Count(ctx, &model.AppointmentFilter{Status: c.status})
		if err != nil {
			logger.Error("[AppointmentStats] err Count", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		*c.dest = total
	}
	return stats, nil
}

// publishMail enqueues a non-critical notification for the appointment's
// owner. Missing publisher or a deleted user means nothing to send.
func (s *appointmentAppImpl) publishMail(kind string, res *model.AppointmentResponse, fill func(*rabbitmq.MailMessage)) {
	if s.publisher == nil || res == nil || res.User == nil {
		return
	}
	msg := rabbitmq.MailMessage{
		Kind:     kind,
		To:       res.User.Email,
		Name:     res.User.Name,
		Date:     res.Date,
		TimeSlot: res.Time,
	}
	if res.Property != nil {
		msg.PropertyTitle = res.Property.Title
	}
	if fill != nil {
		fill(&msg)
	}
	if err := s.publisher.PublishMail(msg); err != nil {
		logger.Error("[Appointment] err publish mail", zap.String("kind", kind), zap.String("error", err.Error()))
	}
}

func (s *appointmentAppImpl) reload(ctx context.Context, id uint64) (*model.AppointmentResponse, error) {
	row, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[Appointment] err GetByID reload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return row.ToResponse(), nil
}

func toResponses(rows []model.AppointmentRow) []*model.AppointmentResponse {
	resp := make([]*model.AppointmentResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, rows[i].ToResponse())
	}
	return resp
}

// detectPlatform guesses the conferencing platform from the link host.
func detectPlatform(link string) constant.MeetingPlatform {
	lower := strings.ToLower(link)
	switch {
	case strings.Contains(lower, "zoom.us"):
		return constant.MeetingPlatformZoom
	case strings.Contains(lower, "meet.google"):
		return constant.MeetingPlatformMeet
	case strings.Contains(lower, "teams.microsoft"):
		return constant.MeetingPlatformTeams
	default:
		return constant.MeetingPlatformOther
	}
}
