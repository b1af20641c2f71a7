package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	"github.com/buildestate/backend/utils/errors"
	validatorx "github.com/buildestate/backend/utils/validator"
)

// ListProperties handler
// @Summary List properties
// @Description List properties, optionally filtered by status and type
// @Tags Properties
// @Produce json
// @Param status query string false "Property status"
// @Param type query string false "Property type"
// @Success 200 {array} model.PropertyResponse
// @Router /api/properties [get]
func (s *RestHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := &model.PropertyFilter{
		Status: constant.PropertyStatus(r.URL.Query().Get("status")),
		Type:   r.URL.Query().Get("type"),
	}

	res, err := s.PropertyApp.List(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetProperty handler
// @Summary Get property
// @Description Fetch a single property listing
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} model.PropertyResponse
// @Failure 404 {object} Response
// @Router /api/properties/single/{id} [get]
func (s *RestHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PropertyApp.GetByID(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateProperty handler
// @Summary Create property
// @Description Create a property listing
// @Tags Properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PropertyCreateRequest true "Property"
// @Success 201 {object} model.PropertyResponse
// @Failure 400 {object} Response
// @Router /api/properties [post]
func (s *RestHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.PropertyCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PropertyApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateProperty handler
// @Summary Update property
// @Description Partially update a property listing
// @Tags Properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param request body model.PropertyUpdateRequest true "Fields to update"
// @Success 200 {object} model.PropertyResponse
// @Failure 404 {object} Response
// @Router /api/properties/{id} [put]
func (s *RestHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.PropertyUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.PropertyApp.Update(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProperty handler
// @Summary Delete property
// @Description Remove a property listing
// @Tags Properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/properties/{id} [delete]
func (s *RestHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.PropertyApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// pathID parses the {id} path variable.
func pathID(r *http.Request) (uint64, error) {
	return strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
}
