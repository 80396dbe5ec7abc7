// Package users содержит HTTP обработчики ресурса пользователей.
package users

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"userhive/internal/users/adapters/http/middleware"
	"userhive/internal/users/app"
	"userhive/internal/users/app/dto"
	"userhive/internal/users/ports/api"
	"userhive/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerList    = "user handler: list"
	LogHandlerGetByID = "user handler: get by id"
	LogHandlerCreate  = "user handler: create"
	LogHandlerUpdate  = "user handler: update"
	LogHandlerDelete  = "user handler: delete"

	ErrorInvalidRequest = "invalid request"
	ErrorUserNotFound   = "user not found"
)

// Вспомогательная функция для отправки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики ресурса пользователей.
type Handler struct {
	userService api.UserService
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(userService api.UserService) *Handler {
	return &Handler{userService: userService}
}

// parseID разбирает параметр пути :id. Нечисловой ID трактуется как
// несуществующий маршрут ресурса.
func parseID(ctx fiber.Ctx) (int, bool) {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// List обрабатывает запрос списка пользователей с фильтрацией и пагинацией.
func (h *Handler) List(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerList)

	department := ctx.Query("department")

	var isActive *bool
	if raw := ctx.Query("isActive"); raw != "" {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			return sendErrorResponse(ctx, http.StatusBadRequest, "isActive must be a boolean")
		}
		isActive = &value
	}

	page, ok := queryInt(ctx, "page", app.DefaultPage)
	if !ok {
		return sendErrorResponse(ctx, http.StatusBadRequest, "page must be an integer")
	}
	pageSize, ok := queryInt(ctx, "pageSize", app.DefaultPageSize)
	if !ok {
		return sendErrorResponse(ctx, http.StatusBadRequest, "pageSize must be an integer")
	}

	result := h.userService.GetPaged(requestCtx, department, isActive, page, pageSize)

	if err := ctx.Status(http.StatusOK).JSON(result); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetByID обрабатывает запрос пользователя по ID.
func (h *Handler) GetByID(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetByID)

	id, ok := parseID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusNotFound, ErrorUserNotFound)
	}

	user, found := h.userService.GetByID(requestCtx, id)
	if !found {
		return sendErrorResponse(ctx, http.StatusNotFound, fmt.Sprintf("user %d not found", id))
	}

	if err := ctx.Status(http.StatusOK).JSON(user); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Create обрабатывает запрос на создание пользователя.
func (h *Handler) Create(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerCreate)

	var req dto.CreateUserRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	id, err := h.userService.Create(requestCtx, &req)
	if err != nil {
		if errors.Is(err, app.ErrValidation) {
			return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		return fmt.Errorf("creating user: %w", err)
	}

	ctx.Set(fiber.HeaderLocation, fmt.Sprintf("/api/users/%d", id))
	if err := ctx.Status(http.StatusCreated).JSON(fiber.Map{"id": id}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Update обрабатывает запрос на обновление пользователя.
func (h *Handler) Update(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerUpdate)

	id, ok := parseID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusNotFound, ErrorUserNotFound)
	}

	var req dto.UpdateUserRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Debug(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, ErrorInvalidRequest)
	}

	updated, err := h.userService.Update(requestCtx, id, &req)
	if err != nil {
		if errors.Is(err, app.ErrValidation) {
			return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
		}
		return fmt.Errorf("updating user: %w", err)
	}
	if !updated {
		return sendErrorResponse(ctx, http.StatusNotFound, fmt.Sprintf("user %d not found", id))
	}

	return ctx.SendStatus(http.StatusNoContent)
}

// Delete обрабатывает запрос на удаление пользователя.
func (h *Handler) Delete(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerDelete)

	id, ok := parseID(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusNotFound, ErrorUserNotFound)
	}

	if !h.userService.Delete(requestCtx, id) {
		return sendErrorResponse(ctx, http.StatusNotFound, fmt.Sprintf("user %d not found", id))
	}

	return ctx.SendStatus(http.StatusNoContent)
}

// Boom имитирует необработанный сбой для проверки containment ошибок.
func (h *Handler) Boom(fiber.Ctx) error {
	panic("simulated failure")
}

// queryInt разбирает целочисленный параметр запроса с значением по умолчанию.
func queryInt(ctx fiber.Ctx, name string, defaultValue int) (int, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return value, true
}
