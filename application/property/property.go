package property

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	propertyrepo "github.com/buildestate/backend/repository/property"
	"github.com/buildestate/backend/utils/errors"
	"github.com/buildestate/backend/utils/logger"
)

type PropertyApp interface {
	List(ctx context.Context, filter *model.PropertyFilter) ([]*model.PropertyResponse, error)
	GetByID(ctx context.Context, id uint64) (*model.PropertyResponse, error)
	Create(ctx context.Context, req *model.PropertyCreateRequest) (*model.PropertyResponse, error)
	Update(ctx context.Context, id uint64, req *model.PropertyUpdateRequest) (*model.PropertyResponse, error)
	Delete(ctx context.Context, id uint64) error
}

type propertyAppImpl struct {
	propertyRepo propertyrepo.PropertyRepository
}

func NewPropertyApp(propertyRepo propertyrepo.PropertyRepository) PropertyApp {
	return &propertyAppImpl{propertyRepo: propertyRepo}
}

func (s *propertyAppImpl) List(ctx context.Context, filter *model.PropertyFilter) ([]*model.PropertyResponse, error) {
	items, err := s.propertyRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProperties] err propertyRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := make([]*model.PropertyResponse, 0, len(items))
	for i := range items {
		resp = append(resp, items[i].ToResponse())
	}
	return resp, nil
}

func (s *propertyAppImpl) GetByID(ctx context.Context, id uint64) (*model.PropertyResponse, error) {
	entity, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProperty] err propertyRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return entity.ToResponse(), nil
}

func (s *propertyAppImpl) Create(ctx context.Context, req *model.PropertyCreateRequest) (*model.PropertyResponse, error) {
	status := constant.PropertyStatus(req.Status)
	if status == "" {
		status = constant.PropertyStatusActive
	}

	entity := &model.PropertyEntity{
		Title:        req.Title,
		Location:     req.Location,
		Price:        req.Price,
		Image:        toNullString(req.Image),
		Beds:         req.Beds,
		Baths:        req.Baths,
		Sqft:         req.Sqft,
		Type:         req.Type,
		Availability: toNullString(req.Availability),
		Description:  toNullString(req.Description),
		Amenities:    model.StringList(req.Amenities),
		Phone:        toNullString(req.Phone),
		Status:       status,
	}

	entity, err := s.propertyRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateProperty] err propertyRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity.ToResponse(), nil
}

func (s *propertyAppImpl) Update(ctx context.Context, id uint64, req *model.PropertyUpdateRequest) (*model.PropertyResponse, error) {
	existing, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProperty] err propertyRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	upd := buildPropertyUpdate(req)
	if err := s.propertyRepo.Update(ctx, id, upd); err != nil {
		logger.Error("[UpdateProperty] err propertyRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProperty] err propertyRepo.GetByID reload", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated.ToResponse(), nil
}

func (s *propertyAppImpl) Delete(ctx context.Context, id uint64) error {
	deleted, err := s.propertyRepo.Delete(ctx, id)
	if err != nil {
		logger.Error("[DeleteProperty] err propertyRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

// buildPropertyUpdate maps a request onto the update struct. Only fields
// present in the request body are carried over.
func buildPropertyUpdate(req *model.PropertyUpdateRequest) *model.PropertyUpdate {
	upd := &model.PropertyUpdate{
		Title:    req.Title,
		Location: req.Location,
		Price:    req.Price,
		Beds:     req.Beds,
		Baths:    req.Baths,
		Sqft:     req.Sqft,
		Type:     req.Type,
	}
	if req.Image != nil {
		v := toNullString(*req.Image)
		upd.Image = &v
	}
	if req.Availability != nil {
		v := toNullString(*req.Availability)
		upd.Availability = &v
	}
	if req.Description != nil {
		v := toNullString(*req.Description)
		upd.Description = &v
	}
	if req.Amenities != nil {
		v := model.StringList(*req.Amenities)
		upd.Amenities = &v
	}
	if req.Phone != nil {
		v := toNullString(*req.Phone)
		upd.Phone = &v
	}
	if req.Status != nil {
		v := constant.PropertyStatus(*req.Status)
		upd.Status = &v
	}
	return upd
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
