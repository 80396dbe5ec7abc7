package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"userhive/internal/users/config"
	"userhive/pkg/logger"
)

// Сообщения стадии защиты полезной нагрузки.
const (
	msgUnsupportedMediaType = "415 Unsupported Media Type"
	msgPayloadTooLarge      = "413 Payload Too Large"

	errUnsupportedMediaType = "unsupported media type"
	errPayloadTooLarge      = "payload too large"
)

// NewPayloadGuardMiddleware создает стадию защиты полезной нагрузки для
// методов с телом (POST, PUT, PATCH): тип содержимого вне списка
// разрешенных отклоняется с 415, размер тела выше потолка - с 413.
// Проверяются и заявленный Content-Length, и фактический размер тела:
// chunked запрос не несет Content-Length и ловится только второй
// проверкой. Фактическое тело к этому моменту уже ограничено BodyLimit
// сервера, поэтому стадия ничего не буферизует сверх него.
func NewPayloadGuardMiddleware(cfg *config.SecurityConfig) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		method := ctx.Method()
		if method != fiber.MethodPost && method != fiber.MethodPut && method != fiber.MethodPatch {
			return ctx.Next()
		}

		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "payload_guard"))

		contentType := ctx.Get(fiber.HeaderContentType)
		if !cfg.Allows(contentType) {
			log.Warn(requestCtx, msgUnsupportedMediaType, zap.String("content_type", contentType))
			if err := ctx.Status(fiber.StatusUnsupportedMediaType).JSON(fiber.Map{
				"error":  errUnsupportedMediaType,
				"detail": fmt.Sprintf("allowed content types: %s", cfg.AllowedList()),
			}); err != nil {
				return fmt.Errorf("sending unsupported media type response: %w", err)
			}
			return nil
		}

		if declared := int64(ctx.Request().Header.ContentLength()); declared > cfg.MaxBodyBytes {
			log.Warn(requestCtx, msgPayloadTooLarge, zap.Int64("content_length", declared))
			return sendPayloadTooLarge(ctx, cfg)
		}

		if actual := int64(len(ctx.Body())); actual > cfg.MaxBodyBytes {
			log.Warn(requestCtx, msgPayloadTooLarge, zap.Int64("body_bytes", actual))
			return sendPayloadTooLarge(ctx, cfg)
		}

		return ctx.Next()
	}
}

// sendPayloadTooLarge пишет короткое замыкание 413.
func sendPayloadTooLarge(ctx fiber.Ctx, cfg *config.SecurityConfig) error {
	if err := ctx.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
		"error":  errPayloadTooLarge,
		"detail": fmt.Sprintf("max allowed request body is %d bytes", cfg.MaxBodyBytes),
	}); err != nil {
		return fmt.Errorf("sending payload too large response: %w", err)
	}
	return nil
}
