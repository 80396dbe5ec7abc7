// Package app реализует прикладную бизнес-логику сервиса пользователей.
package app

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"userhive/internal/users/app/dto"
	"userhive/internal/users/domain/entities"
	"userhive/internal/users/ports/repositories"
	"userhive/pkg/logger"
)

// Параметры пагинации по умолчанию.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 500
)

// ErrValidation сигнализирует о некорректных входных данных запроса.
// Отличим от "не найдено": отсутствие записи выражается булевым
// результатом и никогда не является ошибкой.
var ErrValidation = errors.New("invalid user data")

// Сообщения для логирования.
const (
	msgUserCreated = "created user"
	msgUserUpdated = "updated user"
	msgUserDeleted = "deleted user"
)

// UserUseCase представляет бизнес-логику работы с пользователями.
// Единственная точка обращения к хранилищу.
type UserUseCase struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр UserUseCase.
func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// Create валидирует запрос, обрезает текстовые поля и сохраняет
// нового пользователя. Возвращает назначенный ID.
func (uc *UserUseCase) Create(ctx context.Context, req *dto.CreateUserRequest) (int, error) {
	if req == nil {
		return 0, fmt.Errorf("%w: request body is required", ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	user, err := entities.NewUser(
		strings.TrimSpace(req.FirstName),
		strings.TrimSpace(req.LastName),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Department),
		req.IsActive,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	id := uc.userRepo.Add(ctx, user)
	logger.Log(ctx).Info(ctx, msgUserCreated,
		zap.Int("user_id", id),
		zap.String("email", user.Email))
	return id, nil
}

// GetByID возвращает пользователя по ID; (nil, false), если его нет.
func (uc *UserUseCase) GetByID(ctx context.Context, id int) (*entities.User, bool) {
	return uc.userRepo.FindByID(ctx, id)
}

// GetAll возвращает снимок всех пользователей.
func (uc *UserUseCase) GetAll(ctx context.Context) []*entities.User {
	return uc.userRepo.FindAll(ctx)
}

// GetPaged возвращает страницу пользователей с фильтрацией по департаменту
// (точное совпадение без учета регистра) и признаку активности.
// page <= 0 нормализуется к 1, pageSize вне [1,500] - к 20. TotalCount
// считается после фильтрации и до пагинации; страница за пределами
// выборки - пустой список, не ошибка.
func (uc *UserUseCase) GetPaged(ctx context.Context, department string, isActive *bool, page, pageSize int) *dto.PagedResult {
	if page <= 0 {
		page = DefaultPage
	}
	if pageSize < 1 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}

	all := uc.userRepo.FindAll(ctx)

	filtered := make([]*entities.User, 0, len(all))
	for _, user := range all {
		if strings.TrimSpace(department) != "" && !strings.EqualFold(user.Department, department) {
			continue
		}
		if isActive != nil && user.IsActive != *isActive {
			continue
		}
		filtered = append(filtered, user)
	}

	// Порядок итерации хранилища не определен; сортировка по ID делает
	// разбиение на страницы детерминированным между вызовами.
	sort.Slice(filtered, func(i, j int) bool { return filtered[i].ID < filtered[j].ID })

	total := len(filtered)
	offset := (page - 1) * pageSize
	items := []*entities.User{}
	if offset < total {
		end := offset + pageSize
		if end > total {
			end = total
		}
		items = filtered[offset:end]
	}

	return &dto.PagedResult{
		Items:      items,
		TotalCount: total,
		Page:       page,
		PageSize:   pageSize,
	}
}

// Update валидирует запрос и применяет его поля к существующей записи.
// Возвращает (false, nil), если ID отсутствует: это не ошибка.
func (uc *UserUseCase) Update(ctx context.Context, id int, req *dto.UpdateUserRequest) (bool, error) {
	if req == nil {
		return false, fmt.Errorf("%w: request body is required", ErrValidation)
	}
	if err := req.Validate(); err != nil {
		return false, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	existing, ok := uc.userRepo.FindByID(ctx, id)
	if !ok {
		return false, nil
	}

	err := existing.Update(
		strings.TrimSpace(req.FirstName),
		strings.TrimSpace(req.LastName),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Department),
		req.IsActive,
	)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	updated := uc.userRepo.Update(ctx, existing)
	if updated {
		logger.Log(ctx).Info(ctx, msgUserUpdated, zap.Int("user_id", id))
	}
	return updated, nil
}

// Delete удаляет пользователя; false, если ID отсутствует.
func (uc *UserUseCase) Delete(ctx context.Context, id int) bool {
	deleted := uc.userRepo.Delete(ctx, id)
	if deleted {
		logger.Log(ctx).Info(ctx, msgUserDeleted, zap.Int("user_id", id))
	}
	return deleted
}
