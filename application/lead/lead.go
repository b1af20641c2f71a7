package lead

import (
	"context"
	"database/sql"
	"strings"

	"go.uber.org/zap"

	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	leadrepo "github.com/buildestate/backend/repository/lead"
	"github.com/buildestate/backend/thirdparty/rabbitmq"
	"github.com/buildestate/backend/utils/errors"
	"github.com/buildestate/backend/utils/logger"
)

type LeadApp interface {
	SubmitApplication(ctx context.Context, req *model.ApplicationCreateRequest) (*model.ApplicationResponse, error)
	ListApplications(ctx context.Context) ([]*model.ApplicationResponse, error)
	SubmitContact(ctx context.Context, req *model.ContactCreateRequest) (*model.ContactFormResponse, error)
	ListContacts(ctx context.Context) ([]*model.ContactFormResponse, error)
	Subscribe(ctx context.Context, req *model.NewsletterRequest) (*model.NewsletterResponse, error)
}

type leadAppImpl struct {
	applicationRepo leadrepo.ApplicationRepository
	contactRepo     leadrepo.ContactRepository
	newsletterRepo  leadrepo.NewsletterRepository
	publisher       *rabbitmq.Publisher
}

func NewLeadApp(applicationRepo leadrepo.ApplicationRepository, contactRepo leadrepo.ContactRepository, newsletterRepo leadrepo.NewsletterRepository, publisher *rabbitmq.Publisher) LeadApp {
	return &leadAppImpl{
		applicationRepo: applicationRepo,
		contactRepo:     contactRepo,
		newsletterRepo:  newsletterRepo,
		publisher:       publisher,
	}
}

func (s *leadAppImpl) SubmitApplication(ctx context.Context, req *model.ApplicationCreateRequest) (*model.ApplicationResponse, error) {
	interest := req.Interest()
	if interest == "" {
		interest = constant.InterestBuy
	}

	entity := &model.ApplicationEntity{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		InterestType: interest,
		Message:      sql.NullString{String: req.Message, Valid: req.Message != ""},
	}
	if budget := req.BudgetValue(); budget != nil {
		entity.Budget = sql.NullFloat64{Float64: *budget, Valid: true}
	}

	entity, err := s.applicationRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[SubmitApplication] err applicationRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity.ToResponse(), nil
}

func (s *leadAppImpl) ListApplications(ctx context.Context) ([]*model.ApplicationResponse, error) {
	items, err := s.applicationRepo.List(ctx)
	if err != nil {
		logger.Error("[ListApplications] err applicationRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	resp := make([]*model.ApplicationResponse, 0, len(items))
	for i := range items {
		resp = append(resp, items[i].ToResponse())
	}
	return resp, nil
}

func (s *leadAppImpl) SubmitContact(ctx context.Context, req *model.ContactCreateRequest) (*model.ContactFormResponse, error) {
	entity := &model.ContactFormEntity{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   sql.NullString{String: req.Phone, Valid: req.Phone != ""},
		Message: req.Message,
	}

	entity, err := s.contactRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[SubmitContact] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity.ToResponse(), nil
}

func (s *leadAppImpl) ListContacts(ctx context.Context) ([]*model.ContactFormResponse, error) {
	items, err := s.contactRepo.List(ctx)
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	resp := make([]*model.ContactFormResponse, 0, len(items))
	for i := range items {
		resp = append(resp, items[i].ToResponse())
	}
	return resp, nil
}

// Subscribe normalizes the email before storing it, so the same address
// with different casing or stray whitespace counts as one subscription.
func (s *leadAppImpl) Subscribe(ctx context.Context, req *model.NewsletterRequest) (*model.NewsletterResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.newsletterRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("[Subscribe] err newsletterRepo.FindByEmail", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrAlreadySubscribed)
	}

	entity, err := s.newsletterRepo.Create(ctx, email)
	if err != nil {
		if err.Error() == errors.SetCustomError(constant.ErrAlreadySubscribed).Error() {
			return nil, errors.SetCustomError(constant.ErrAlreadySubscribed)
		}
		logger.Error("[Subscribe] err newsletterRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Welcome mail is non-critical; the subscription stands without it.
	if s.publisher != nil {
		msg := rabbitmq.MailMessage{Kind: rabbitmq.MailKindNewsletter, To: email}
		if err := s.publisher.PublishMail(msg); err != nil {
			logger.Error("[Subscribe] err publish welcome mail", zap.String("error", err.Error()))
		}
	}
	return entity.ToResponse(), nil
}
