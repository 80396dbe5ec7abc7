package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"userhive/pkg/logger"
)

// Сообщения стадии containment ошибок.
const (
	msgServerPanic    = "Server panic"
	msgUnhandledError = "Unhandled error"

	errInternalServer = "Internal Server Error"
)

// NewRecoveryMiddleware создает внешнюю стадию containment ошибок: любая
// необработанная паника или ошибка ниже по конвейеру логируется с
// идентификатором корреляции и превращается в фиксированный JSON ответ 500.
// Детали сбоя клиенту не раскрываются.
func NewRecoveryMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) (err error) {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx)

		defer func() {
			if r := recover(); r != nil {
				correlationID := CorrelationID(ctx)
				log.Error(requestCtx, msgServerPanic,
					zap.String("error", fmt.Sprintf("%v", r)),
					zap.String(logger.RequestID, correlationID),
					zap.String("stack", string(debug.Stack())),
				)
				err = sendInternalError(ctx, correlationID)
			}
		}()

		if nextErr := ctx.Next(); nextErr != nil {
			correlationID := CorrelationID(ctx)
			log.Error(requestCtx, msgUnhandledError,
				zap.String(logger.RequestID, correlationID),
				zap.Error(nextErr),
			)
			return sendInternalError(ctx, correlationID)
		}
		return nil
	}
}

// sendInternalError пишет непрозрачный ответ 500 с идентификатором корреляции.
func sendInternalError(ctx fiber.Ctx, correlationID string) error {
	if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":         errInternalServer,
		"correlationId": correlationID,
	}); err != nil {
		return fmt.Errorf("sending internal error response: %w", err)
	}
	return nil
}
