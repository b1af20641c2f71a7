package agent

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	agentrepo "github.com/buildestate/backend/repository/agent"
	"github.com/buildestate/backend/utils/errors"
	"github.com/buildestate/backend/utils/logger"
)

type AgentApp interface {
	List(ctx context.Context) ([]*model.AgentResponse, error)
	GetByID(ctx context.Context, id uint64) (*model.AgentResponse, error)
	Create(ctx context.Context, req *model.AgentCreateRequest) (*model.AgentResponse, error)
	Update(ctx context.Context, id uint64, req *model.AgentUpdateRequest) (*model.AgentResponse, error)
	Delete(ctx context.Context, id uint64) error
}

type agentAppImpl struct {
	agentRepo agentrepo.AgentRepository
}

func NewAgentApp(agentRepo agentrepo.AgentRepository) AgentApp {
	return &agentAppImpl{agentRepo: agentRepo}
}

func (s *agentAppImpl) List(ctx context.Context) ([]*model.AgentResponse, error) {
	items, err := s.agentRepo.List(ctx)
	if err != nil {
		logger.Error("[ListAgents] err agentRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	resp := make([]*model.AgentResponse, 0, len(items))
	for i := range items {
		resp = append(resp, items[i].ToResponse())
	}
	return resp, nil
}

func (s *agentAppImpl) GetByID(ctx context.Context, id uint64) (*model.AgentResponse, error) {
	entity, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetAgent] err agentRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity.ToResponse(), nil
}

func (s *agentAppImpl) Create(ctx context.Context, req *model.AgentCreateRequest) (*model.AgentResponse, error) {
	entity := &model.AgentEntity{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		About:       sql.NullString{String: req.About, Valid: req.About != ""},
		Specialties: model.StringList(req.Specialties),
		Photo:       sql.NullString{String: req.Photo, Valid: req.Photo != ""},
	}

	entity, err := s.agentRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateAgent] err agentRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity.ToResponse(), nil
}

func (s *agentAppImpl) Update(ctx context.Context, id uint64, req *model.AgentUpdateRequest) (*model.AgentResponse, error) {
	existing, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateAgent] err agentRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	upd := &model.AgentUpdate{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}
	if req.About != nil {
		v := sql.NullString{String: *req.About, Valid: *req.About != ""}
		upd.About = &v
	}
	if req.Specialties != nil {
		v := model.StringList(*req.Specialties)
		upd.Specialties = &v
	}
	if req.Photo != nil {
		v := sql.NullString{String: *req.Photo, Valid: *req.Photo != ""}
		upd.Photo = &v
	}

	if err := s.agentRepo.Update(ctx, id, upd); err != nil {
		logger.Error("[UpdateAgent] err agentRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateAgent] err agentRepo.GetByID reload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated.ToResponse(), nil
}

func (s *agentAppImpl) Delete(ctx context.Context, id uint64) error {
	deleted, err := s.agentRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteAgent] err agentRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
