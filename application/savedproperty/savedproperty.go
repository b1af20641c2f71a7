package savedproperty

import (
	"context"

	"go.uber.org/zap"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	propertyrepo "github.com/buildestate/backend/repository/property"
	savedrepo "github.com/buildestate/backend/repository/savedproperty"
	"github.com/buildestate/backend/utils/errors"
	"github.com/buildestate/backend/utils/logger"
)

type SavedPropertyApp interface {
	List(ctx context.Context, userID uint64) ([]*model.SavedPropertyResponse, error)
	Save(ctx context.Context, userID uint64, req *model.SavePropertyRequest) (*model.SavedPropertyResponse, error)
	Remove(ctx context.Context, userID, savedID uint64) error
}

type savedPropertyAppImpl struct {
	savedRepo    savedrepo.SavedPropertyRepository
	propertyRepo propertyrepo.PropertyRepository
}

func NewSavedPropertyApp(savedRepo savedrepo.SavedPropertyRepository, propertyRepo propertyrepo.PropertyRepository) SavedPropertyApp {
	return &savedPropertyAppImpl{savedRepo: savedRepo, propertyRepo: propertyRepo}
}

func (s *savedPropertyAppImpl) List(ctx context.Context, userID uint64) ([]*model.SavedPropertyResponse, error) {
	rows, err := s.savedRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.Error("[ListSaved] err savedRepo.ListByUser", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	resp := make([]*model.SavedPropertyResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, rows[i].ToResponse())
	}
	return resp, nil
}

func (s *savedPropertyAppImpl) Save(ctx context.Context, userID uint64, req *model.SavePropertyRequest) (*model.SavedPropertyResponse, error) {
	property, err := s.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		logger.Error("[SaveProperty] err propertyRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if property == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	row, err := s.savedRepo.Save(ctx, userID, req.PropertyID)
	if err != nil {
		if err.Error() == errors.SetCustomError(constant.ErrAlreadySaved).Error() {
			return nil, errors.SetCustomError(constant.ErrAlreadySaved)
		}
		logger.Error("[SaveProperty] err savedRepo.Save", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return row.ToResponse(), nil
}

func (s *savedPropertyAppImpl) Remove(ctx context.Context, userID, savedID uint64) error {
	removed, err := s.savedRepo.Remove(ctx, userID, savedID)
	if err != nil {
		logger.Error("[RemoveSaved] err savedRepo.Remove", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !removed {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
