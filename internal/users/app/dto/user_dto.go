// Package dto содержит объекты передачи данных HTTP API пользователей.
package dto

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"userhive/internal/users/domain/entities"
)

// Ошибки правил валидации.
var (
	errBlank        = errors.New("cannot be blank")
	errInvalidEmail = errors.New("must be in the format local@domain.tld")
)

// requiredNonBlank проверяет, что строка не пуста после обрезки пробелов.
func requiredNonBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errBlank
	}
	return nil
}

// validEmail применяет доменный инвариант формата email
// к значению после обрезки пробелов, как оно и будет сохранено.
func validEmail(value interface{}) error {
	s, _ := value.(string)
	if !entities.ValidEmail(strings.TrimSpace(s)) {
		return errInvalidEmail
	}
	return nil
}

// CreateUserRequest - входной запрос на создание пользователя.
// Не несет идентичности и никогда не сохраняется.
type CreateUserRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	IsActive   bool   `json:"isActive"`
}

// Validate проверяет форму и формат полей запроса.
func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.By(requiredNonBlank)),
		validation.Field(&r.LastName, validation.By(requiredNonBlank)),
		validation.Field(&r.Email, validation.By(requiredNonBlank), validation.By(validEmail)),
		validation.Field(&r.Department, validation.By(requiredNonBlank)),
	)
}

// UpdateUserRequest - входной запрос на обновление пользователя.
type UpdateUserRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	IsActive   bool   `json:"isActive"`
}

// Validate проверяет форму и формат полей запроса.
func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.By(requiredNonBlank)),
		validation.Field(&r.LastName, validation.By(requiredNonBlank)),
		validation.Field(&r.Email, validation.By(requiredNonBlank), validation.By(validEmail)),
		validation.Field(&r.Department, validation.By(requiredNonBlank)),
	)
}

// PagedResult - страница отфильтрованной выборки пользователей.
// TotalCount считается до применения пагинации. Не изменяется после создания.
type PagedResult struct {
	Items      []*entities.User `json:"items"`
	TotalCount int              `json:"totalCount"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}
