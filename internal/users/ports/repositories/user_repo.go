// Package repositories определяет интерфейсы хранилища пользователей.
package repositories

import (
	"context"

	"userhive/internal/users/domain/entities"
)

// UserRepository определяет контракт хранилища пользователей.
// Все операции безопасны для конкурентных вызовов. Отсутствие записи
// выражается булевым результатом, а не ошибкой.
type UserRepository interface {
	// Add сохраняет снимок пользователя и возвращает назначенный ID.
	// ID строго возрастают начиная с 1 и никогда не переиспользуются.
	Add(ctx context.Context, user *entities.User) int

	// FindByID возвращает копию записи или (nil, false), если ID отсутствует.
	FindByID(ctx context.Context, id int) (*entities.User, bool)

	// FindAll возвращает снимок всех записей; порядок не определен.
	FindAll(ctx context.Context) []*entities.User

	// Update заменяет запись целиком; false, если ID отсутствует.
	Update(ctx context.Context, user *entities.User) bool

	// Delete удаляет запись; false, если ID отсутствует.
	Delete(ctx context.Context, id int) bool
}
