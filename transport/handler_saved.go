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

// ListSavedProperties handler
// @Summary List saved properties
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.SavedPropertyResponse
// @Router /api/users/saved-properties [get]
func (s *RestHandler) ListSavedProperties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.SavedApp.List(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SaveProperty handler
// @Summary Save a property
// @Description Add a property to the caller's saved list
// @Tags Saved
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.SavePropertyRequest true "Property to save"
// @Success 201 {object} model.SavedPropertyResponse
// @Failure 400 {object} Response
// @Router /api/users/saved-properties [post]
func (s *RestHandler) SaveProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	var req model.SavePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SavedApp.Save(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// RemoveSavedProperty handler
// @Summary Remove a saved property
// @Tags Saved
// @Produce json
// @Security BearerAuth
// @Param id path int true "Saved row or property ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/users/saved-properties/{id} [delete]
func (s *RestHandler) RemoveSavedProperty(w http.ResponseWriter, r *http.Request) {
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

	if err := s.SavedApp.Remove(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
