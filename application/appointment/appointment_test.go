package appointment_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	appappointment "github.com/buildestate/backend/application/appointment"
	"github.com/buildestate/backend/constant"
	appointmentmocks "github.com/buildestate/backend/mocks/repository/appointment"
	propertymocks "github.com/buildestate/backend/mocks/repository/property"
	txmocks "github.com/buildestate/backend/mocks/repository/tx"
	"github.com/buildestate/backend/model"
	cerr "github.com/buildestate/backend/utils/errors"
)

func TestAppointmentApp_Schedule(t *testing.T) {
	type fields struct {
		txRepo          *txmocks.TxRepository
		appointmentRepo *appointmentmocks.AppointmentRepository
		propertyRepo    *propertymocks.PropertyRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		req    *model.ScheduleViewingRequest
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
			name: "success: slot booked",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
				propertyRepo:    propertymocks.NewPropertyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.ScheduleViewingRequest{
					PropertyID: 3,
					Date:       "2025-06-15",
					Time:       "14:00",
					Notes:      "prefer afternoon",
				},
			},
			mockCall: func(f fields) {
				f.propertyRepo.
					On("GetByID", mock.Anything, uint64(3)).
					Return(&model.PropertyEntity{ID: 3, Title: "Sunset Villa"}, nil).
					Once()

				f.txRepo.
					On("BeginTx", mock.Anything).
					Return(nil, nil).
					Once()

				f.appointmentRepo.
					On("FindActiveSlotTx", mock.Anything, mock.Anything, uint64(3), "2025-06-15", "14:00").
					Return(nil, nil).
					Once()

				f.appointmentRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.MatchedBy(func(ent *model.AppointmentEntity) bool {
						return ent.PropertyID == 3 &&
							ent.UserID == 7 &&
							ent.Status == constant.AppointmentStatusPending &&
							ent.Notes.Valid
					})).
					Return(uint64(11), nil).
					Once()

				f.txRepo.
					On("CommitTx", mock.Anything).
					Return(nil).
					Once()

				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(11)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:         11,
							PropertyID: 3,
							UserID:     7,
							Date:       "2025-06-15",
							Time:       "14:00",
							Status:     constant.AppointmentStatusPending,
							CreatedAt:  time.Now(),
						},
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: property not found",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
				propertyRepo:    propertymocks.NewPropertyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.ScheduleViewingRequest{
					PropertyID: 99,
					Date:       "2025-06-15",
					Time:       "14:00",
				},
			},
			mockCall: func(f fields) {
				f.propertyRepo.
					On("GetByID", mock.Anything, uint64(99)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: slot already taken",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
				propertyRepo:    propertymocks.NewPropertyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.ScheduleViewingRequest{
					PropertyID: 3,
					Date:       "2025-06-15",
					Time:       "14:00",
				},
			},
			mockCall: func(f fields) {
				f.propertyRepo.
					On("GetByID", mock.Anything, uint64(3)).
					Return(&model.PropertyEntity{ID: 3, Title: "Sunset Villa"}, nil).
					Once()

				f.txRepo.
					On("BeginTx", mock.Anything).
					Return(nil, nil).
					Once()

				f.appointmentRepo.
					On("FindActiveSlotTx", mock.Anything, mock.Anything, uint64(3), "2025-06-15", "14:00").
					Return(&model.AppointmentEntity{
						ID:         8,
						PropertyID: 3,
						Date:       "2025-06-15",
						Time:       "14:00",
						Status:     constant.AppointmentStatusConfirmed,
					}, nil).
					Once()

				f.txRepo.
					On("RollbackTx", mock.Anything).
					Return(nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrSlotTaken,
		},
		{
			name: "error: insert races into the slot index",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
				propertyRepo:    propertymocks.NewPropertyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.ScheduleViewingRequest{
					PropertyID: 3,
					Date:       "2025-06-15",
					Time:       "14:00",
				},
			},
			mockCall: func(f fields) {
				f.propertyRepo.
					On("GetByID", mock.Anything, uint64(3)).
					Return(&model.PropertyEntity{ID: 3, Title: "Sunset Villa"}, nil).
					Once()

				f.txRepo.
					On("BeginTx", mock.Anything).
					Return(nil, nil).
					Once()

				f.appointmentRepo.
					On("FindActiveSlotTx", mock.Anything, mock.Anything, uint64(3), "2025-06-15", "14:00").
					Return(nil, nil).
					Once()

				f.appointmentRepo.
					On("CreateTx", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AppointmentEntity")).
					Return(uint64(0), cerr.SetCustomError(constant.ErrSlotTaken)).
					Once()

				f.txRepo.
					On("RollbackTx", mock.Anything).
					Return(nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrSlotTaken,
		},
		{
			name: "error: begin tx fails",
			fields: fields{
				txRepo:          txmocks.NewTxRepository(t),
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
				propertyRepo:    propertymocks.NewPropertyRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				req: &model.ScheduleViewingRequest{
					PropertyID: 3,
					Date:       "2025-06-15",
					Time:       "14:00",
				},
			},
			mockCall: func(f fields) {
				f.propertyRepo.
					On("GetByID", mock.Anything, uint64(3)).
					Return(&model.PropertyEntity{ID: 3}, nil).
					Once()

				f.txRepo.
					On("BeginTx", mock.Anything).
					Return(nil, errors.New("db down")).
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
			// publisher is nil; the app skips the confirmation mail when no queue is wired
			app := appappointment.NewAppointmentApp(tt.fields.txRepo, tt.fields.appointmentRepo, tt.fields.propertyRepo, nil)

			got, err := app.Schedule(tt.args.ctx, tt.args.userID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Schedule() error = %v, wantErr %v", err, tt.wantErr)
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
				t.Fatalf("Schedule() = %+v, want booked appointment", got)
			}
			if got.Status != string(constant.AppointmentStatusPending) {
				t.Fatalf("Schedule() status = %s, want %s", got.Status, constant.AppointmentStatusPending)
			}
		})
	}
}

func TestAppointmentApp_UpdateStatus(t *testing.T) {
	type fields struct {
		appointmentRepo *appointmentmocks.AppointmentRepository
	}
	type args struct {
		ctx context.Context
		req *model.UpdateAppointmentStatusRequest
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
			name: "success: pending to confirmed",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.UpdateAppointmentStatusRequest{AppointmentID: 5, Status: "confirmed"},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							Status: constant.AppointmentStatusPending,
						},
					}, nil).
					Once()

				confirmed := constant.AppointmentStatusConfirmed
				f.appointmentRepo.
					On("Update", mock.Anything, uint64(5), &model.AppointmentUpdate{Status: &confirmed}).
					Return(nil).
					Once()

				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							Status: constant.AppointmentStatusConfirmed,
						},
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown status value",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.UpdateAppointmentStatusRequest{AppointmentID: 5, Status: "approved"},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: cancelled is terminal",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.UpdateAppointmentStatusRequest{AppointmentID: 5, Status: "confirmed"},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							Status: constant.AppointmentStatusCancelled,
						},
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
		{
			name: "error: appointment not found",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.UpdateAppointmentStatusRequest{AppointmentID: 404, Status: "confirmed"},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(404)).
					Return(nil, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appappointment.NewAppointmentApp(txmocks.NewTxRepository(t), tt.fields.appointmentRepo, propertymocks.NewPropertyRepository(t), nil)

			got, err := app.UpdateStatus(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStatus() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Status != tt.args.req.Status {
				t.Fatalf("UpdateStatus() status = %s, want %s", got.Status, tt.args.req.Status)
			}
		})
	}
}

func TestAppointmentApp_Cancel(t *testing.T) {
	type fields struct {
		appointmentRepo *appointmentmocks.AppointmentRepository
	}
	type args struct {
		ctx     context.Context
		userID  uint64
		isAdmin bool
		id      uint64
		req     *model.CancelAppointmentRequest
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
			name: "success: owner cancels with reason",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				id:     5,
				req:    &model.CancelAppointmentRequest{Reason: "schedule conflict"},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							UserID: 7,
							Status: constant.AppointmentStatusPending,
						},
					}, nil).
					Once()

				f.appointmentRepo.
					On("Update", mock.Anything, uint64(5), mock.MatchedBy(func(upd *model.AppointmentUpdate) bool {
						return upd.Status != nil && *upd.Status == constant.AppointmentStatusCancelled &&
							upd.CancelReason != nil && upd.CancelReason.String == "schedule conflict"
					})).
					Return(nil).
					Once()

				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:           5,
							UserID:       7,
							Status:       constant.AppointmentStatusCancelled,
							CancelReason: sql.NullString{String: "schedule conflict", Valid: true},
						},
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "success: admin cancels someone else's appointment",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx:     context.Background(),
				userID:  0,
				isAdmin: true,
				id:      5,
				req:     &model.CancelAppointmentRequest{},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							UserID: 7,
							Status: constant.AppointmentStatusConfirmed,
						},
					}, nil).
					Once()

				f.appointmentRepo.
					On("Update", mock.Anything, uint64(5), mock.AnythingOfType("*model.AppointmentUpdate")).
					Return(nil).
					Once()

				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							UserID: 7,
							Status: constant.AppointmentStatusCancelled,
						},
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: not the owner",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 9,
				id:     5,
				req:    &model.CancelAppointmentRequest{},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							UserID: 7,
							Status: constant.AppointmentStatusPending,
						},
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: already completed",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				id:     5,
				req:    &model.CancelAppointmentRequest{},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							UserID: 7,
							Status: constant.AppointmentStatusCompleted,
						},
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appappointment.NewAppointmentApp(txmocks.NewTxRepository(t), tt.fields.appointmentRepo, propertymocks.NewPropertyRepository(t), nil)

			got, err := app.Cancel(tt.args.ctx, tt.args.userID, tt.args.isAdmin, tt.args.id, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Cancel() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Status != string(constant.AppointmentStatusCancelled) {
				t.Fatalf("Cancel() status = %s, want %s", got.Status, constant.AppointmentStatusCancelled)
			}
		})
	}
}

func TestAppointmentApp_SubmitFeedback(t *testing.T) {
	type fields struct {
		appointmentRepo *appointmentmocks.AppointmentRepository
	}
	type args struct {
		ctx    context.Context
		userID uint64
		id     uint64
		req    *model.AppointmentFeedbackRequest
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
			name: "success: rating stored and appointment completed",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				id:     5,
				req:    &model.AppointmentFeedbackRequest{Rating: 4, Comment: "great tour"},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							UserID: 7,
							Status: constant.AppointmentStatusConfirmed,
						},
					}, nil).
					Once()

				f.appointmentRepo.
					On("Update", mock.Anything, uint64(5), mock.MatchedBy(func(upd *model.AppointmentUpdate) bool {
						return upd.Status != nil && *upd.Status == constant.AppointmentStatusCompleted &&
							upd.FeedbackRating != nil && *upd.FeedbackRating == 4 &&
							upd.FeedbackComment != nil && *upd.FeedbackComment == "great tour"
					})).
					Return(nil).
					Once()

				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:              5,
							UserID:          7,
							Status:          constant.AppointmentStatusCompleted,
							FeedbackRating:  sql.NullInt64{Int64: 4, Valid: true},
							FeedbackComment: sql.NullString{String: "great tour", Valid: true},
						},
					}, nil).
					Once()
			},
			wantErr: false,
		},
		{
			name: "error: not the owner",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 9,
				id:     5,
				req:    &model.AppointmentFeedbackRequest{Rating: 4},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							UserID: 7,
							Status: constant.AppointmentStatusConfirmed,
						},
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrForbidden,
		},
		{
			name: "error: feedback on a cancelled appointment stays rejected",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx:    context.Background(),
				userID: 7,
				id:     5,
				req:    &model.AppointmentFeedbackRequest{Rating: 3},
			},
			mockCall: func(f fields) {
				f.appointmentRepo.
					On("GetByID", mock.Anything, uint64(5)).
					Return(&model.AppointmentRow{
						AppointmentEntity: model.AppointmentEntity{
							ID:     5,
							UserID: 7,
							Status: constant.AppointmentStatusCancelled,
						},
					}, nil).
					Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidTransition,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				ttFields := tt.fields
				tt.mockCall(ttFields)
			}
			app := appappointment.NewAppointmentApp(txmocks.NewTxRepository(t), tt.fields.appointmentRepo, propertymocks.NewPropertyRepository(t), nil)

			got, err := app.SubmitFeedback(tt.args.ctx, tt.args.userID, tt.args.id, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SubmitFeedback() error = %v, wantErr %v", err, tt.wantErr)
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

			if got.Feedback == nil || got.Feedback.Rating != 4 {
				t.Fatalf("SubmitFeedback() feedback = %+v, want rating 4", got.Feedback)
			}
		})
	}
}

func TestAppointmentApp_UpdateMeetingLink(t *testing.T) {
	type fields struct {
		appointmentRepo *appointmentmocks.AppointmentRepository
	}
	type args struct {
		ctx context.Context
		req *model.UpdateMeetingLinkRequest
	}
	tests := []struct {
		name         string
		fields       fields
		args         args
		mockCall     func(f fields)
		wantPlatform constant.MeetingPlatform
		wantErr      bool
	}{
		{
			name: "success: zoom link detected",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.UpdateMeetingLinkRequest{AppointmentID: 5, MeetingLink: "https://us02web.zoom.us/j/123"},
			},
			wantPlatform: constant.MeetingPlatformZoom,
		},
		{
			name: "success: google meet link detected",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.UpdateMeetingLinkRequest{AppointmentID: 5, MeetingLink: "https://meet.google.com/abc-defg-hij"},
			},
			wantPlatform: constant.MeetingPlatformMeet,
		},
		{
			name: "success: unknown host falls back to other",
			fields: fields{
				appointmentRepo: appointmentmocks.NewAppointmentRepository(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.UpdateMeetingLinkRequest{AppointmentID: 5, MeetingLink: "https://example.com/call"},
			},
			wantPlatform: constant.MeetingPlatformOther,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			wantPlatform := tt.wantPlatform
			tt.fields.appointmentRepo.
				On("GetByID", mock.Anything, uint64(5)).
				Return(&model.AppointmentRow{
					AppointmentEntity: model.AppointmentEntity{
						ID:     5,
						Status: constant.AppointmentStatusConfirmed,
					},
				}, nil).
				Once()

			tt.fields.appointmentRepo.
				On("Update", mock.Anything, uint64(5), mock.MatchedBy(func(upd *model.AppointmentUpdate) bool {
					return upd.MeetingLink != nil && upd.MeetingLink.String == tt.args.req.MeetingLink &&
						upd.MeetingPlatform != nil && *upd.MeetingPlatform == wantPlatform
				})).
				Return(nil).
				Once()

			tt.fields.appointmentRepo.
				On("GetByID", mock.Anything, uint64(5)).
				Return(&model.AppointmentRow{
					AppointmentEntity: model.AppointmentEntity{
						ID:              5,
						Status:          constant.AppointmentStatusConfirmed,
						MeetingLink:     sql.NullString{String: tt.args.req.MeetingLink, Valid: true},
						MeetingPlatform: wantPlatform,
					},
				}, nil).
				Once()

			app := appappointment.NewAppointmentApp(txmocks.NewTxRepository(t), tt.fields.appointmentRepo, propertymocks.NewPropertyRepository(t), nil)

			got, err := app.UpdateMeetingLink(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateMeetingLink() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got.MeetingPlatform != string(wantPlatform) {
				t.Fatalf("UpdateMeetingLink() platform = %s, want %s", got.MeetingPlatform, wantPlatform)
			}
		})
	}
}

func TestAppointmentApp_Stats(t *testing.T) {
	appointmentRepo := appointmentmocks.NewAppointmentRepository(t)

	counts := map[constant.AppointmentStatus]int64{
		"":                                  10,
		constant.AppointmentStatusPending:   4,
		constant.AppointmentStatusConfirmed: 3,
		constant.AppointmentStatusCancelled: 2,
		constant.AppointmentStatusCompleted: 1,
	}
	for status, total := range counts {
		status, total := status, total
		appointmentRepo.
			On("Count", mock.Anything, &model.AppointmentFilter{Status: status}).
			Return(total, nil).
			Once()
	}

	app := appappointment.NewAppointmentApp(txmocks.NewTxRepository(t), appointmentRepo, propertymocks.NewPropertyRepository(t), nil)

	got, err := app.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if got.Total != 10 || got.Pending != 4 || got.Confirmed != 3 || got.Cancelled != 2 || got.Completed != 1 {
		t.Fatalf("Stats() = %+v, want totals 10/4/3/2/1", got)
	}
	if got.DailyStats == nil {
		t.Fatal("Stats() dailyStats should be an empty slice, not nil")
	}
}
