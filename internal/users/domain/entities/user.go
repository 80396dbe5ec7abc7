// Package entities определяет доменные сущности сервиса пользователей.
package entities

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Ошибки валидации доменной сущности пользователя.
var (
	ErrFirstNameRequired  = errors.New("first name is required")
	ErrLastNameRequired   = errors.New("last name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("email format is invalid")
	ErrDepartmentRequired = errors.New("department is required")
)

// emailPattern - единый инвариант формата email: локальная часть без "@" и
// пробелов, ровно один "@", домен с точкой. Тот же шаблон применяется
// при валидации входных запросов.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User представляет учетную запись пользователя.
// ID назначается хранилищем и неизменяем после создания.
type User struct {
	ID           int       `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Department   string    `json:"department"`
	IsActive     bool      `json:"isActive"`
	CreatedAtUTC time.Time `json:"createdAtUtc"`
	UpdatedAtUTC time.Time `json:"updatedAtUtc"`
}

// NewUser создает нового пользователя с нулевым ID (еще не сохранен).
// Оба таймштампа устанавливаются в текущее время UTC.
func NewUser(firstName, lastName, email, department string, isActive bool) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		Department:   department,
		IsActive:     isActive,
		CreatedAtUTC: now,
		UpdatedAtUTC: now,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Update заменяет все изменяемые поля и обновляет UpdatedAtUTC.
func (u *User) Update(firstName, lastName, email, department string, isActive bool) error {
	u.FirstName = firstName
	u.LastName = lastName
	u.Email = email
	u.Department = department
	u.IsActive = isActive
	u.UpdatedAtUTC = time.Now().UTC()
	return u.Validate()
}

// Validate проверяет инварианты сущности.
func (u *User) Validate() error {
	if strings.TrimSpace(u.FirstName) == "" {
		return ErrFirstNameRequired
	}
	if strings.TrimSpace(u.LastName) == "" {
		return ErrLastNameRequired
	}
	if strings.TrimSpace(u.Email) == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(u.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(u.Department) == "" {
		return ErrDepartmentRequired
	}
	return nil
}

// ValidEmail сообщает, соответствует ли строка инварианту формата email.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
