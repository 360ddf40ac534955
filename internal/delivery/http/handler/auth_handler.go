package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/heritage-archive/content-service/internal/delivery/http/middleware"
	apperrors "github.com/heritage-archive/content-service/internal/pkg/errors"
	"github.com/heritage-archive/content-service/internal/pkg/utils"
	"github.com/heritage-archive/content-service/internal/usecase"
	"github.com/heritage-archive/content-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// AuthHandler - вход и выход администратора
type AuthHandler struct {
	authUC       *usecase.AuthUseCase
	cookieSecure bool
	logger       *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, cookieSecure bool, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:       authUC,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// Login godoc
// @Summary Вход администратора
// @Description Выдаёт токен сессии и устанавливает HTTP-only cookie session_token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Учётные данные"
// @Success 200 {object} utils.SuccessResponse{data=dto.LoginResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := decodeBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.authUC.Login(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    resp.Token,
		Path:     "/",
		Expires:  resp.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return utils.SendSuccess(c, resp, nil)
}

// Logout godoc
// @Summary Выход администратора
// @Description Удаляет cookie сессии; токен на сервере не отзывается
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   h.cookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return utils.SendMessage(c, "Logged out")
}

// Session godoc
// @Summary Текущая сессия
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SessionResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Security AdminSession
// @Router /api/auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return utils.SendError(c, apperrors.ErrUnauthorized)
	}

	return utils.SendSuccess(c, dto.SessionResponse{
		Name:      claims.Name,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil)
}
