// Package services содержит инфраструктурные реализации доменных сервисов.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domain "userhive/internal/users/domain/services"
	svc "userhive/internal/users/ports/services"
	"userhive/pkg/logger"
)

// Константы для логирования.
const (
	methodIssue  = "Issue"
	methodVerify = "Verify"

	msgIssuingToken   = "issuing token"
	msgTokenIssued    = "token issued successfully"
	msgVerifyingToken = "verifying token"
	msgTokenVerified  = "token verified successfully"
	msgTokenExpired   = "token has expired"
	msgInvalidToken   = "invalid token"

	//nolint:gosec
	errSigningToken = "error signing token"
)

// ErrInvalidAlgorithm - ошибка неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims - состав выпускаемого токена: субъект, уникальный идентификатор
// токена и фиксированный scope поверх зарегистрированных claims.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует ports/services.TokenService на симметричном ключе.
// Выпуск токенов - утилита для разработки и тестов; в боевом развертывании
// его заменяет внешний поставщик идентичности.
type ServiceJWT struct {
	secretKey []byte
	issuer    string
	audience  string
	lifetime  time.Duration
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey, issuer, audience string, lifetime time.Duration) svc.TokenService {
	return &ServiceJWT{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		lifetime:  lifetime,
	}
}

// Issue выпускает подписанный HS256 токен: sub, jti, scope, nbf=iat=now,
// exp=now+lifetime.
func (s *ServiceJWT) Issue(ctx context.Context, subject string) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.String("subject", subject),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.secretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", fmt.Errorf("issuing token: %w: empty secret key", domain.ErrGeneratingToken)
	}

	now := time.Now()
	claims := Claims{
		Scope: domain.TokenScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			Subject:   subject,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("issuing token: %w: %w", domain.ErrGeneratingToken, err)
	}

	log.Debug(ctx, msgTokenIssued, zap.Time("expiresAt", now.Add(s.lifetime)))
	return tokenString, nil
}

// Verify проверяет подпись, издателя, аудиторию и срок действия без
// допуска на расхождение часов и возвращает субъект токена.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return "", fmt.Errorf("verifying token: %w", domain.ErrExpiredToken)
		}
		log.Debug(ctx, msgInvalidToken, zap.Error(err))
		return "", fmt.Errorf("verifying token: %w: %w", domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return "", fmt.Errorf("verifying token: %w", domain.ErrInvalidToken)
	}

	if claims.Subject == "" {
		log.Debug(ctx, "subject claim is empty")
		return "", fmt.Errorf("verifying token: %w: empty subject", domain.ErrInvalidToken)
	}

	log.Debug(ctx, msgTokenVerified, zap.String("subject", claims.Subject))
	return claims.Subject, nil
}
