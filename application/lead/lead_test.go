package lead_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	applead "github.com/buildestate/backend/application/lead"
	"github.com/buildestate/backend/constant"
	leadmocks "github.com/buildestate/backend/mocks/repository/lead"
	"github.com/buildestate/backend/model"
	cerr "github.com/buildestate/backend/utils/errors"
)

func TestLeadApp_SubmitApplication(t *testing.T) {
	type fields struct {
		applicationRepo *leadmocks.ApplicationRepository
	}
	type args struct {
		ctx context.Context
		req *model.ApplicationCreateRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: modern field names",
			fields: fields{
				applicationRepo: leadmocks.NewApplicationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApplicationCreateRequest{
					Name:         "Test Lead",
					Email:        "lead@example.com",
					Phone:        "+15551234567",
					InterestType: constant.InterestRent,
					Budget:       floatPtr(2500),
					Message:      "looking for a two bedroom",
				},
			},
			mockCall: func(f fields) {
				f.applicationRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ApplicationEntity) bool {
						return ent.InterestType == constant.InterestRent &&
							ent.Budget.Valid && ent.Budget.Float64 == 2500 &&
							ent.Message.Valid
					})).
					Return(&model.ApplicationEntity{
						ID:           1,
						Name:         "Test Lead",
						Email:        "lead@example.com",
						Phone:        "+15551234567",
						InterestType: constant.InterestRent,
						CreatedAt:    time.Now(),
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: legacy aliases resolve",
			fields: fields{
				applicationRepo: leadmocks.NewApplicationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApplicationCreateRequest{
					Name:         "Test Lead",
					Email:        "lead@example.com",
					Phone:        "+15551234567",
					InterestedIn: constant.InterestSell,
					BudgetMax:    floatPtr(900000),
				},
			},
			mockCall: func(f fields) {
				f.applicationRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ApplicationEntity) bool {
						return ent.InterestType == constant.InterestSell &&
							ent.Budget.Valid && ent.Budget.Float64 == 900000 &&
							!ent.Message.Valid
					})).
					Return(&model.ApplicationEntity{
						ID:           2,
						InterestType: constant.InterestSell,
						CreatedAt:    time.Now(),
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: missing interest defaults to buy",
			fields: fields{
				applicationRepo: leadmocks.NewApplicationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApplicationCreateRequest{
					Name:  "Test Lead",
					Email: "lead@example.com",
					Phone: "+15551234567",
				},
			},
			mockCall: func(f fields) {
				f.applicationRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ApplicationEntity) bool {
						return ent.InterestType == constant.InterestBuy && !ent.Budget.Valid
					})).
					Return(&model.ApplicationEntity{
						ID:           3,
						InterestType: constant.InterestBuy,
						CreatedAt:    time.Now(),
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				applicationRepo: leadmocks.NewApplicationRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ApplicationCreateRequest{
					Name:  "Test Lead",
					Email: "lead@example.com",
					Phone: "+15551234567",
				},
			},
			mockCall: func(f fields) {
				f.applicationRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.ApplicationEntity")).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := applead.NewLeadApp(tt.fields.applicationRepo, leadmocks.NewContactRepository(t), leadmocks.NewNewsletterRepository(t), nil)

			got, err := app.SubmitApplication(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubmitApplication() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got == nil || got.ID == 0 {
				t.Fatalf("SubmitApplication() = %+v, want stored application", got)
			}
		})
	}
}

func TestLeadApp_SubmitContact(t *testing.T) {
	type fields struct {
		contactRepo *leadmocks.ContactRepository
	}
	type args struct {
		ctx context.Context
		req *model.ContactCreateRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: contact stored",
			fields: fields{
				contactRepo: leadmocks.NewContactRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ContactCreateRequest{
					Name:    "Visitor",
					Email:   "visitor@example.com",
					Message: "is the villa still available?",
				},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ContactFormEntity) bool {
						return ent.Name == "Visitor" && !ent.Phone.Valid
					})).
					Return(&model.ContactFormEntity{
						ID:        1,
						Name:      "Visitor",
						Email:     "visitor@example.com",
						Message:   "is the villa still available?",
						CreatedAt: time.Now(),
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: repository Create returns error",
			fields: fields{
				contactRepo: leadmocks.NewContactRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.ContactCreateRequest{
					Name:    "Visitor",
					Email:   "visitor@example.com",
					Message: "hello",
				},
			},
			mockCall: func(f fields) {
				f.contactRepo.
					On("Create", mock.Anything, mock.AnythingOfType("*model.ContactFormEntity")).
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := applead.NewLeadApp(leadmocks.NewApplicationRepository(t), tt.fields.contactRepo, leadmocks.NewNewsletterRepository(t), nil)

			got, err := app.SubmitContact(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubmitContact() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got == nil || got.ID == 0 {
				t.Fatalf("SubmitContact() = %+v, want stored contact", got)
			}
		})
	}
}

func TestLeadApp_Subscribe(t *testing.T) {
	type fields struct {
		newsletterRepo *leadmocks.NewsletterRepository
	}
	type args struct {
		ctx context.Context
		req *model.NewsletterRequest
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: email normalized before storing",
			fields: fields{
				newsletterRepo: leadmocks.NewNewsletterRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.NewsletterRequest{Email: "  Reader@Example.COM "},
			},
			mockCall: func(f fields) {
				f.newsletterRepo.
					On("FindByEmail", mock.Anything, "reader@example.com").
					Return(nil, nil).
					Once()

				f.newsletterRepo.
					On("Create", mock.Anything, "reader@example.com").
					Return(&model.NewsletterEntity{
						ID:        1,
						Email:     "reader@example.com",
						CreatedAt: time.Now(),
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: already subscribed",
			fields: fields{
				newsletterRepo: leadmocks.NewNewsletterRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.NewsletterRequest{Email: "reader@example.com"},
			},
			mockCall: func(f fields) {
				f.newsletterRepo.
					On("FindByEmail", mock.Anything, "reader@example.com").
					Return(&model.NewsletterEntity{
						ID:    1,
						Email: "reader@example.com",
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadySubscribed,
		},
		{
			name: "error: duplicate caught by unique index on insert",
			fields: fields{
				newsletterRepo: leadmocks.NewNewsletterRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.NewsletterRequest{Email: "reader@example.com"},
			},
			mockCall: func(f fields) {
				f.newsletterRepo.
					On("FindByEmail", mock.Anything, "reader@example.com").
					Return(nil, nil).
					Once()

				f.newsletterRepo.
					On("Create", mock.Anything, "reader@example.com").
					Return(nil, cerr.SetCustomError(constant.ErrAlreadySubscribed)).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrAlreadySubscribed,
		},
		{
			name: "error: repository FindByEmail returns error",
			fields: fields{
				newsletterRepo: leadmocks.NewNewsletterRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.NewsletterRequest{Email: "reader@example.com"},
			},
			mockCall: func(f fields) {
				f.newsletterRepo.
					On("FindByEmail", mock.Anything, "reader@example.com").
					Return(nil, errors.New("db error")).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := applead.NewLeadApp(leadmocks.NewApplicationRepository(t), leadmocks.NewContactRepository(t), tt.fields.newsletterRepo, nil)

			got, err := app.Subscribe(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Subscribe() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Email != "reader@example.com" {
				t.Fatalf("Subscribe() email = %s, want reader@example.com", got.Email)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }
