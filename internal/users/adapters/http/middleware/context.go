// Package middleware содержит промежуточное ПО конвейера обработки запросов.
// Порядок регистрации фиксирован и определяет наблюдаемое поведение:
// containment ошибок, заголовки безопасности, аутентификация, защита
// полезной нагрузки, корреляционное логирование.
package middleware

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"userhive/pkg/logger"
)

// HeaderCorrelationID - заголовок сквозного идентификатора запроса.
const HeaderCorrelationID = "X-Correlation-ID"

// Ключи locals, разделяемые стадиями конвейера.
const (
	localCorrelationID  = "correlationID"
	localRequestContext = "requestContext"
	localSubject        = "subject"
)

// CorrelationID возвращает сквозной идентификатор запроса. Первый вызов
// внутри запроса берет значение из входящего заголовка или генерирует
// новое, кэширует его в locals и проставляет в заголовок ответа;
// последующие вызовы из любой стадии видят то же значение.
func CorrelationID(ctx fiber.Ctx) string {
	if id, ok := ctx.Locals(localCorrelationID).(string); ok && id != "" {
		return id
	}

	id := ctx.Get(HeaderCorrelationID)
	if id == "" {
		id = logger.GenerateRequestID()
	}

	ctx.Locals(localCorrelationID, id)
	ctx.Set(HeaderCorrelationID, id)
	return id
}

// RequestContext возвращает контекст запроса с идентификатором корреляции,
// подготовленный стадией логирования, либо базовый контекст fiber.
func RequestContext(ctx fiber.Ctx) context.Context {
	if reqCtx, ok := ctx.Locals(localRequestContext).(context.Context); ok {
		return reqCtx
	}
	return ctx.Context()
}

// Subject возвращает субъект проверенного bearer токена, если
// аутентификация для маршрута выполнялась.
func Subject(ctx fiber.Ctx) (string, bool) {
	subject, ok := ctx.Locals(localSubject).(string)
	return subject, ok && subject != ""
}
