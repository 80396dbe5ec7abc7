// Package services содержит доменные контракты вспомогательных сервисов.
package services

import "errors"

// Ошибки, связанные с JWT токенами.
var (
	ErrInvalidToken    = errors.New("invalid JWT token")
	ErrExpiredToken    = errors.New("JWT token has expired")
	ErrGeneratingToken = errors.New("failed to generate JWT token")
)

// TokenScope - фиксированная строка scope, помещаемая в выпускаемые токены.
const TokenScope = "users.read users.write"
