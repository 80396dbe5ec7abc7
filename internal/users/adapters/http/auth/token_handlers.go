// Package auth содержит HTTP обработчик выпуска dev токенов.
package auth

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"userhive/internal/users/adapters/http/middleware"
	"userhive/internal/users/app/dto"
	"userhive/internal/users/ports/services"
	"userhive/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerIssueToken = "auth handler: issue token"

	ErrorInvalidRequest = "invalid request"
)

// Handler содержит HTTP обработчики выпуска токенов.
// Эндпоинт анонимный и предназначен только для разработки и тестов;
// в боевом развертывании его заменяет внешний поставщик идентичности.
type Handler struct {
	tokenService services.TokenService
}

// NewHandler создает новый экземпляр обработчика токенов.
func NewHandler(tokenService services.TokenService) *Handler {
	return &Handler{tokenService: tokenService}
}

// IssueToken обрабатывает запрос на выпуск короткоживущего JWT.
func (h *Handler) IssueToken(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerIssueToken)

	var req dto.TokenRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": ErrorInvalidRequest,
		}); err != nil {
			return fmt.Errorf("sending bad request response: %w", err)
		}
		return nil
	}

	if err := req.Validate(); err != nil {
		if err := ctx.Status(http.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		}); err != nil {
			return fmt.Errorf("sending validation error response: %w", err)
		}
		return nil
	}

	token, err := h.tokenService.Issue(requestCtx, req.Subject)
	if err != nil {
		return fmt.Errorf("issuing token: %w", err)
	}

	if err := ctx.Status(http.StatusOK).JSON(dto.TokenResponse{Token: token}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
