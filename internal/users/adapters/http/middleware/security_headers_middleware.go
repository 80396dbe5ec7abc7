package middleware

import "github.com/gofiber/fiber/v3"

// securityHeaders - фиксированный набор защитных заголовков ответа.
var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"Referrer-Policy", "no-referrer"},
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"X-Frame-Options", "DENY"},
}

// NewSecurityHeadersMiddleware создает стадию, добавляющую защитные
// заголовки на обратном пути к каждому ответу, включая короткие замыкания
// внутренних стадий (401, 413, 415) и ответ 500 стадии containment.
// Уже присутствующий заголовок не перезаписывается. Установка выполняется
// в defer, поэтому заголовки выживают и при панике ниже по конвейеру.
func NewSecurityHeadersMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		defer func() {
			for _, header := range securityHeaders {
				if len(ctx.Response().Header.Peek(header[0])) == 0 {
					ctx.Set(header[0], header[1])
				}
			}
		}()
		return ctx.Next()
	}
}
