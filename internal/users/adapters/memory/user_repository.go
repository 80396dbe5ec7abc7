// Package memory реализует хранилище пользователей в памяти процесса.
// Хранилище не переживает перезапуск и не предназначено для продакшена
// в роли долговременного хранилища.
package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"userhive/internal/users/domain/entities"
)

// UserRepository - потокобезопасное хранилище пользователей в памяти.
// Записи хранятся как неизменяемые снимки: каждая мутация заменяет
// запись целиком, на месте записи никогда не изменяются.
type UserRepository struct {
	mu     sync.RWMutex
	users  map[int]*entities.User
	nextID atomic.Int64
}

// NewUserRepository создает пустое хранилище пользователей.
func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[int]*entities.User),
	}
}

// Add назначает следующий ID атомарно и сохраняет снимок пользователя.
// Конкурентные вызовы никогда не получают одинаковый ID, пропусков нет.
func (r *UserRepository) Add(_ context.Context, user *entities.User) int {
	id := int(r.nextID.Add(1))

	stored := *user
	stored.ID = id

	r.mu.Lock()
	r.users[id] = &stored
	r.mu.Unlock()

	return id
}

// FindByID возвращает копию записи по ID или (nil, false), если ее нет.
// Отсутствие записи - нормальный исход, не ошибка.
func (r *UserRepository) FindByID(_ context.Context, id int) (*entities.User, bool) {
	r.mu.RLock()
	user, ok := r.users[id]
	r.mu.RUnlock()

	if !ok {
		return nil, false
	}
	copied := *user
	return &copied, true
}

// FindAll возвращает согласованный на момент вызова снимок всех записей.
// Порядок итерации не определен.
func (r *UserRepository) FindAll(_ context.Context) []*entities.User {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		copied := *user
		all = append(all, &copied)
	}
	return all
}

// Update заменяет запись по user.ID целиком; false, если ID отсутствует.
// Входная запись считается уже провалидированной вызывающей стороной.
func (r *UserRepository) Update(_ context.Context, user *entities.User) bool {
	stored := *user

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return false
	}
	r.users[user.ID] = &stored
	return true
}

// Delete удаляет запись без надгробия; ID никогда не переиспользуется.
func (r *UserRepository) Delete(_ context.Context, id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)
	return true
}
