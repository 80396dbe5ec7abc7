package middleware

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"userhive/pkg/logger"
)

// NewLoggerMiddleware создает стадию корреляционного логирования: разрешает
// идентификатор корреляции из входящего заголовка или генерирует новый,
// проставляет его в заголовок ответа, кладет контекст запроса с этим
// идентификатором в locals и логирует начало и завершение обработки.
// Все строки лога одного запроса несут один идентификатор.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		correlationID := CorrelationID(ctx)
		requestCtx := logger.NewRequestIDContext(ctx.Context(), correlationID)
		ctx.Locals(localRequestContext, requestCtx)

		start := time.Now()
		path := ctx.Path()
		method := ctx.Method()

		log := logger.Log(requestCtx).With(
			zap.String("path", path),
			zap.String("method", method),
			zap.String("ip", ctx.IP()),
		)

		log.Info(requestCtx, "Request started")

		err := ctx.Next()

		latency := time.Since(start)
		status := ctx.Response().StatusCode()

		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}

		if err != nil {
			log.Error(requestCtx, "Request failed", append(logFields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(requestCtx, "Request completed", logFields...)
		return nil
	}
}
