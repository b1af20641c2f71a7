package transport

import (
	"encoding/json"
	"net/http"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	"github.com/buildestate/backend/utils/errors"
	validatorx "github.com/buildestate/backend/utils/validator"
)

// SubmitApplication handler
// @Summary Submit application
// @Description Submit a buy/rent/sell application
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body model.ApplicationCreateRequest true "Application"
// @Success 201 {object} model.ApplicationResponse
// @Failure 400 {object} Response
// @Router /api/applications [post]
func (s *RestHandler) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ApplicationCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LeadApp.SubmitApplication(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListApplications handler
// @Summary List applications
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ApplicationResponse
// @Router /api/applications [get]
func (s *RestHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.LeadApp.ListApplications(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubmitContact handler
// @Summary Submit contact form
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body model.ContactCreateRequest true "Contact Form"
// @Success 201 {object} model.ContactFormResponse
// @Failure 400 {object} Response
// @Router /api/contact [post]
func (s *RestHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.ContactCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LeadApp.SubmitContact(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// ListContacts handler
// @Summary List contact submissions
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.ContactFormResponse
// @Router /api/contact [get]
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.LeadApp.ListContacts(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Subscribe handler
// @Summary Subscribe to newsletter
// @Description Subscribe an email address; duplicates are rejected
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body model.NewsletterRequest true "Subscription"
// @Success 201 {object} model.NewsletterResponse
// @Failure 400 {object} Response
// @Router /api/newsletter [post]
func (s *RestHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.LeadApp.Subscribe(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}
