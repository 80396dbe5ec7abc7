// Package services определяет интерфейсы инфраструктурных сервисов.
package services

import "context"

// TokenService определяет контракт выпуска и проверки bearer токенов.
type TokenService interface {
	// Issue выпускает подписанный токен для указанного субъекта.
	Issue(ctx context.Context, subject string) (string, error)

	// Verify проверяет подпись, издателя, аудиторию и срок действия токена
	// и возвращает субъект.
	Verify(ctx context.Context, tokenString string) (string, error)
}
