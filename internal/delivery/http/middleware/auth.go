package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/heritage-archive/content-service/internal/pkg/auth"
	"github.com/heritage-archive/content-service/internal/pkg/utils"
)

const (
	// SessionCookieName - имя HTTP-only cookie с токеном сессии
	SessionCookieName = "session_token"

	sessionLocalsKey = "session"
)

// SessionValidator проверяет токен сессии администратора
type SessionValidator interface {
	ValidateSession(token string) (*auth.Claims, error)
}

// TokenFromRequest извлекает токен из Authorization: Bearer или из cookie
func TokenFromRequest(c *fiber.Ctx) string {
	if header := c.Get(fiber.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	return c.Cookies(SessionCookieName)
}

// RequireAdmin пропускает только запросы с действующей сессией администратора.
// Проверка выполняется до разбора тела запроса.
func RequireAdmin(sessions SessionValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := sessions.ValidateSession(TokenFromRequest(c))
		if err != nil {
			return utils.SendError(c, err)
		}
		c.Locals(sessionLocalsKey, claims)
		return c.Next()
	}
}

// AdminPages перенаправляет на redirectPath, если сессии нет
func AdminPages(sessions SessionValidator, redirectPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := sessions.ValidateSession(TokenFromRequest(c))
		if err != nil {
			return c.Redirect(redirectPath, fiber.StatusFound)
		}
		c.Locals(sessionLocalsKey, claims)
		return c.Next()
	}
}

// SessionFromContext возвращает сессию, сохранённую RequireAdmin/AdminPages
func SessionFromContext(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(sessionLocalsKey).(*auth.Claims)
	return claims, ok
}
