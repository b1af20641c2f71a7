package user

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/buildestate/backend/cmd/config"
	"github.com/buildestate/backend/constant"
	"github.com/buildestate/backend/model"
	redisrepo "github.com/buildestate/backend/repository/redis"
	userrepo "github.com/buildestate/backend/repository/user"
	"github.com/buildestate/backend/thirdparty/mail"
	"github.com/buildestate/backend/thirdparty/rabbitmq"
	"github.com/buildestate/backend/utils/errors"
	"github.com/buildestate/backend/utils/logger"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	AdminLogin(ctx context.Context, req *model.AdminLoginRequest) (*model.AuthResponse, error)
	Logout(ctx context.Context, tokenString string) error
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, token string, req *model.ResetPasswordRequest) error
	GetMe(ctx context.Context, userID uint64) (*model.UserResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.TokenIdentity, error)
}

type UserAppImpl struct {
	config     *config.Config
	userRepo   userrepo.UserRepository
	redisRepo  redisrepo.Repository
	dispatcher mail.Dispatcher
	publisher  *rabbitmq.Publisher
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, dispatcher mail.Dispatcher, publisher *rabbitmq.Publisher) UserApp {
	return &UserAppImpl{
		config:     config,
		userRepo:   userRepo,
		redisRepo:  redisRepo,
		dispatcher: dispatcher,
		publisher:  publisher,
	}
}

// authClaims extends the registered claims with the caller's role.
type authClaims struct {
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrEmailRegistered)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	userEntity := &model.UserEntity{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, jti, err := s.generateJWT(userEntity.ID, userEntity.Email, constant.RoleUser)
	if err != nil {
		logger.Error("[Register] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, userEntity.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Register] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Welcome mail is non-critical; registration succeeds even when the
	// queue is down.
	if s.publisher != nil {
		msg := rabbitmq.MailMessage{
			Kind: rabbitmq.MailKindWelcome,
			To:   userEntity.Email,
			Name: userEntity.Name,
		}
		if err := s.publisher.PublishMail(msg); err != nil {
			logger.Error("[Register] err publish welcome mail", zap.String("error", err.Error()))
		}
	}

	return &model.AuthResponse{
		Token: token,
		User:  model.UserSummary{Name: userEntity.Name, Email: userEntity.Email},
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrEmailNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(user.ID, user.Email, constant.RoleUser)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, user.ID, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		Token: token,
		User:  model.UserSummary{Name: user.Name, Email: user.Email},
	}, nil
}

// AdminLogin checks the configured admin credentials. Admin identity is
// not a row in the users table; the subject of the issued token is zero.
func (s *UserAppImpl) AdminLogin(ctx context.Context, req *model.AdminLoginRequest) (*model.AuthResponse, error) {
	if s.config.Auth.AdminEmail == "" ||
		req.Email != s.config.Auth.AdminEmail ||
		req.Password != s.config.Auth.AdminPassword {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	token, jti, err := s.generateJWT(0, req.Email, constant.RoleAdmin)
	if err != nil {
		logger.Error("[AdminLogin] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetSession(ctx, jti, 0, s.config.Auth.SessionExpTime); err != nil {
		logger.Error("[AdminLogin] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{
		Token: token,
		User:  model.UserSummary{Name: "Admin", Email: req.Email},
	}, nil
}

// Logout revokes the session behind the token. An already invalid token
// is not an error; logout is idempotent.
func (s *UserAppImpl) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil
	}
	if claims.ID == "" {
		return nil
	}
	if err := s.redisRepo.DeleteSession(ctx, claims.ID); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *UserAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrEmailNotFound)
	}

	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		logger.Error("[ForgotPassword] err rand.Read", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	resetToken := hex.EncodeToString(buf)
	expire := time.Now().Add(s.config.Auth.ResetTokenTTL)

	upd := &model.UserUpdate{
		ResetToken:       &sql.NullString{String: resetToken, Valid: true},
		ResetTokenExpire: &sql.NullTime{Time: expire, Valid: true},
	}
	if err := s.userRepo.Update(ctx, user.ID, upd); err != nil {
		logger.Error("[ForgotPassword] err userRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// The reset mail is the whole point of this operation, so the send is
	// awaited and its failure surfaces to the caller.
	resetURL := s.config.FrontendURL + "/reset/" + resetToken
	if err := s.dispatcher.SendPasswordReset(ctx, user.Email, user.Name, resetURL); err != nil {
		logger.Error("[ForgotPassword] err SendPasswordReset", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrMailDelivery)
	}

	return nil
}

func (s *UserAppImpl) ResetPassword(ctx context.Context, token string, req *model.ResetPasswordRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ResetToken: token, ExpireAfter: time.Now()})
	if err != nil {
		logger.Error("[ResetPassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrInvalidResetToken)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[ResetPassword] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// The token is single use: the same update that writes the new
	// password clears it.
	hash := string(hashedPassword)
	upd := &model.UserUpdate{
		PasswordHash:     &hash,
		ResetToken:       &sql.NullString{},
		ResetTokenExpire: &sql.NullTime{},
	}
	if err := s.userRepo.Update(ctx, user.ID, upd); err != nil {
		logger.Error("[ResetPassword] err userRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *UserAppImpl) GetMe(ctx context.Context, userID uint64) (*model.UserResponse, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[GetMe] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return user.ToResponse(), nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.TokenIdentity, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil, err
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session")
	}
	if redisUserID != userID {
		return nil, fmt.Errorf("token does not match user session")
	}

	role := claims.Role
	if role == "" {
		role = constant.RoleUser
	}

	return &model.TokenIdentity{
		UserID: userID,
		Email:  claims.Email,
		Role:   role,
	}, nil
}

func (s *UserAppImpl) parseClaims(tokenString string) (*authClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &authClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	claims, ok := token.Claims.(*authClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}
	return claims, nil
}

// generateJWT creates a JWT token carrying the role and email claims
func (s *UserAppImpl) generateJWT(userID uint64, email, role string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := authClaims{
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        newUUID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
