package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// TokenRequest - запрос на выпуск JWT.
// Минимальный состав: субъект (как правило email пользователя).
type TokenRequest struct {
	Subject string `json:"subject"`
}

// Validate проверяет поля запроса на выпуск токена.
func (r TokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Subject, validation.Required, validation.Length(3, 320), is.Email),
	)
}

// TokenResponse - ответ с выпущенным JWT.
type TokenResponse struct {
	Token string `json:"token"`
}
