package transport

import (
	"encoding/json"
	"net/http"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	"github.com/buildestate/backend/utils/errors"
	validatorx "github.com/buildestate/backend/utils/validator"
)

// ListAgents handler
// @Summary List agents
// @Tags Agents
// @Produce json
// @Success 200 {array} model.AgentResponse
// @Router /api/agents [get]
func (s *RestHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.AgentApp.List(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetAgent handler
// @Summary Get agent
// @Tags Agents
// @Produce json
// @Param id path int true "Agent ID"
// @Success 200 {object} model.AgentResponse
// @Failure 404 {object} Response
// @Router /api/agents/{id} [get]
func (s *RestHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AgentApp.GetByID(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateAgent handler
// @Summary Create agent
// @Tags Agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AgentCreateRequest true "Agent"
// @Success 201 {object} model.AgentResponse
// @Failure 400 {object} Response
// @Router /api/agents [post]
func (s *RestHandler) CreateAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.AgentCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AgentApp.Create(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// UpdateAgent handler
// @Summary Update agent
// @Tags Agents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Agent ID"
// @Param request body model.AgentUpdateRequest true "Fields to update"
// @Success 200 {object} model.AgentResponse
// @Failure 404 {object} Response
// @Router /api/agents/{id} [put]
func (s *RestHandler) UpdateAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.AgentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AgentApp.Update(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteAgent handler
// @Summary Delete agent
// @Tags Agents
// @Produce json
// @Security BearerAuth
// @Param id path int true "Agent ID"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/agents/{id} [delete]
func (s *RestHandler) DeleteAgent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AgentApp.Delete(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
