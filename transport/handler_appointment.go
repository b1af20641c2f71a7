package transport

import (
	"encoding/json"
	"net/http"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	utilsContext "github.com/buildestate/backend/utils/context"
	"github.com/buildestate/backend/utils/errors"
	validatorx "github.com/buildestate/backend/utils/validator"
)

// ScheduleViewing handler
// @Summary Schedule a viewing
// @Description Book a property viewing slot
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.ScheduleViewingRequest true "Viewing Request"
// @Success 201 {object} model.AppointmentResponse
// @Failure 400 {object} Response
// @Router /api/appointments/schedule [post]
func (s *RestHandler) ScheduleViewing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.ScheduleViewingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AppointmentApp.Schedule(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListMyAppointments handler
// @Summary My appointments
// @Description List the caller's appointments, soonest first
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AppointmentResponse
// @Router /api/appointments/user [get]
func (s *RestHandler) ListMyAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.AppointmentApp.ListByUser(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAllAppointments handler
// @Summary All appointments
// @Description List every appointment, newest first
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.AppointmentResponse
// @Router /api/appointments [get]
func (s *RestHandler) GetAllAppointments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.AppointmentApp.GetAll(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateAppointmentStatus handler
// @Summary Update appointment status
// @Description Move an appointment to another status
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateAppointmentStatusRequest true "Status Update"
// @Success 200 {object} model.AppointmentResponse
// @Failure 400 {object} Response
// @Router /api/appointments/status [put]
func (s *RestHandler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AppointmentApp.UpdateStatus(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateMeetingLink handler
// @Summary Set meeting link
// @Description Attach a conferencing link to an appointment
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateMeetingLinkRequest true "Meeting Link"
// @Success 200 {object} model.AppointmentResponse
// @Failure 404 {object} Response
// @Router /api/appointments/meeting-link [put]
func (s *RestHandler) UpdateMeetingLink(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.UpdateMeetingLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AppointmentApp.UpdateMeetingLink(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CancelAppointment handler
// @Summary Cancel appointment
// @Description Cancel an appointment; users can only cancel their own
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body model.CancelAppointmentRequest false "Cancellation"
// @Success 200 {object} model.AppointmentResponse
// @Failure 403 {object} Response
// @Router /api/appointments/{id}/cancel [put]
func (s *RestHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	// The body is optional; an empty cancel reason is fine.
	var req model.CancelAppointmentRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	res, err := s.AppointmentApp.Cancel(ctx, userID, utilsContext.IsAdmin(ctx), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubmitAppointmentFeedback handler
// @Summary Submit feedback
// @Description Rate a completed viewing; marks the appointment completed
// @Tags Appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment ID"
// @Param request body model.AppointmentFeedbackRequest true "Feedback"
// @Success 200 {object} model.AppointmentResponse
// @Failure 403 {object} Response
// @Router /api/appointments/{id}/feedback [post]
func (s *RestHandler) SubmitAppointmentFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AppointmentFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AppointmentApp.SubmitFeedback(ctx, userID, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AppointmentStats handler
// @Summary Appointment stats
// @Description Appointment counts per status
// @Tags Appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.AppointmentStats
// @Router /api/appointments/stats [get]
func (s *RestHandler) AppointmentStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.AppointmentApp.Stats(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
