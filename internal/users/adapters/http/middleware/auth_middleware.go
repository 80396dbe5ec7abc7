package middleware

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"userhive/internal/users/ports/services"
	"userhive/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

const bearerPrefix = "Bearer "

// NewAuthMiddleware создает стадию аутентификации: проверяет bearer токен
// для всех маршрутов, кроме явно анонимных, и при отказе коротко замыкает
// конвейер ответом 401 до запуска внутренних стадий.
func NewAuthMiddleware(tokenService services.TokenService, anonymousPaths ...string) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		if slices.Contains(anonymousPaths, ctx.Path()) {
			return ctx.Next()
		}

		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return sendUnauthorized(ctx, ErrorNoAuthHeader)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return sendUnauthorized(ctx, ErrorInvalidTokenFormat)
		}

		subject, err := tokenService.Verify(requestCtx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return sendUnauthorized(ctx, ErrorInvalidToken)
		}

		ctx.Locals(localSubject, subject)
		return ctx.Next()
	}
}

// sendUnauthorized пишет короткое замыкание 401.
func sendUnauthorized(ctx fiber.Ctx, message string) error {
	if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("sending unauthorized response: %w", err)
	}
	return nil
}
