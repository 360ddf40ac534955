package usecase

import (
	"context"
	"crypto/subtle"

	"github.com/heritage-archive/content-service/internal/config"
	"github.com/heritage-archive/content-service/internal/pkg/auth"
	apperrors "github.com/heritage-archive/content-service/internal/pkg/errors"
	"github.com/heritage-archive/content-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// AuthUseCase - вход администратора и проверка сессий
type AuthUseCase struct {
	username string
	password string
	jwt      *auth.JWTManager
	logger   *zap.Logger
}

// NewAuthUseCase создает новый экземпляр AuthUseCase
func NewAuthUseCase(cfg *config.AuthConfig, jwt *auth.JWTManager, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		username: cfg.AdminUsername,
		password: cfg.AdminPassword,
		jwt:      jwt,
		logger:   logger,
	}
}

// Login проверяет учётные данные и выпускает токен сессии
func (uc *AuthUseCase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(uc.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(uc.password)) == 1
	if !userOK || !passOK {
		uc.logger.Warn("Rejected admin login", zap.String("username", req.Username))
		return nil, apperrors.ErrInvalidCredentials
	}

	token, claims, err := uc.jwt.GenerateToken(req.Username, auth.RoleAdmin)
	if err != nil {
		uc.logger.Error("Failed to issue session token", zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Admin logged in", zap.String("username", req.Username))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ValidateSession возвращает данные сессии администратора; ErrUnauthorized для любого
// отсутствующего, просроченного или чужого токена
func (uc *AuthUseCase) ValidateSession(token string) (*auth.Claims, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthorized
	}

	claims, err := uc.jwt.ValidateToken(token)
	if err != nil {
		uc.logger.Debug("Invalid session token", zap.Error(err))
		return nil, apperrors.ErrUnauthorized
	}
	if claims.Role != auth.RoleAdmin {
		return nil, apperrors.ErrUnauthorized
	}
	return claims, nil
}
