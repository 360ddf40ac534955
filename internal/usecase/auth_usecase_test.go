package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/heritage-archive/content-service/internal/config"
	"github.com/heritage-archive/content-service/internal/pkg/auth"
	apperrors "github.com/heritage-archive/content-service/internal/pkg/errors"
	"github.com/heritage-archive/content-service/internal/usecase"
	"github.com/heritage-archive/content-service/internal/usecase/dto"
)

func newAuthUseCase(t *testing.T) (*usecase.AuthUseCase, *auth.JWTManager) {
	t.Helper()
	jwtManager, err := auth.NewJWTManager("test-secret", time.Hour)
	require.NoError(t, err)

	cfg := &config.AuthConfig{AdminUsername: "admin", AdminPassword: "s3cret"}
	return usecase.NewAuthUseCase(cfg, jwtManager, zap.NewNop()), jwtManager
}

func TestAuthUseCase_Login(t *testing.T) {
	ctx := context.Background()
	uc, _ := newAuthUseCase(t)

	t.Run("valid credentials issue a session", func(t *testing.T) {
		resp, err := uc.Login(ctx, &dto.LoginRequest{Username: "admin", Password: "s3cret"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

		claims, err := uc.ValidateSession(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Name)
		assert.Equal(t, auth.RoleAdmin, claims.Role)
	})

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "root", "s3cret"},
		{"prefix of password", "admin", "s3c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Login(ctx, &dto.LoginRequest{Username: tt.username, Password: tt.password})
			assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		})
	}
}

func TestAuthUseCase_ValidateSession(t *testing.T) {
	uc, jwtManager := newAuthUseCase(t)

	t.Run("empty token", func(t *testing.T) {
		_, err := uc.ValidateSession("")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := uc.ValidateSession("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := auth.NewJWTManager("other-secret", time.Hour)
		require.NoError(t, err)
		token, _, err := other.GenerateToken("admin", auth.RoleAdmin)
		require.NoError(t, err)

		_, err = uc.ValidateSession(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("non-admin role", func(t *testing.T) {
		token, _, err := jwtManager.GenerateToken("viewer", "viewer")
		require.NoError(t, err)

		_, err = uc.ValidateSession(token)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
