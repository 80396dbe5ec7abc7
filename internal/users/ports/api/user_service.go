// Package api определяет интерфейсы прикладного уровня для HTTP адаптеров.
package api

import (
	"context"

	"userhive/internal/users/app/dto"
	"userhive/internal/users/domain/entities"
)

// UserService определяет операции прикладного уровня над пользователями.
// Ошибки валидации различимы через app.ErrValidation; отсутствие записи
// выражается булевым результатом, а не ошибкой.
type UserService interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (int, error)
	GetByID(ctx context.Context, id int) (*entities.User, bool)
	GetAll(ctx context.Context) []*entities.User
	GetPaged(ctx context.Context, department string, isActive *bool, page, pageSize int) *dto.PagedResult
	Update(ctx context.Context, id int, req *dto.UpdateUserRequest) (bool, error)
	Delete(ctx context.Context, id int) bool
}
