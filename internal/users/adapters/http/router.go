// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"userhive/internal/users/adapters/http/auth"
	"userhive/internal/users/adapters/http/middleware"
	"userhive/internal/users/adapters/http/users"
	"userhive/internal/users/config"
	"userhive/internal/users/ports/api"
	"userhive/internal/users/ports/services"
)

// Метаданные приложения для эндпоинта /.
const (
	AppName    = "userhive"
	AppVersion = "v1"
)

// Анонимные маршруты, не требующие bearer токена.
var anonymousPaths = []string{"/", "/auth/token"}

// SetupRouter настраивает конвейер стадий и маршрутизацию HTTP сервера.
// Порядок регистрации стадий фиксирован: containment ошибок снаружи,
// затем заголовки безопасности (обратный путь каждого ответа), затем
// аутентификация, защита полезной нагрузки и корреляционное логирование.
// Перестановка стадий меняет наблюдаемое поведение.
func SetupRouter(app *fiber.App, userService api.UserService, tokenService services.TokenService, securityCfg *config.SecurityConfig) {
	userHandler := users.NewHandler(userService)
	tokenHandler := auth.NewHandler(tokenService)

	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewSecurityHeadersMiddleware())
	app.Use(middleware.NewAuthMiddleware(tokenService, anonymousPaths...))
	app.Use(middleware.NewPayloadGuardMiddleware(securityCfg))
	app.Use(middleware.NewLoggerMiddleware())

	// Liveness/info.
	app.Get("/", func(ctx fiber.Ctx) error {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"app":     AppName,
			"version": AppVersion,
		})
	})

	// Выпуск dev токена (анонимный).
	app.Post("/auth/token", tokenHandler.IssueToken)

	// Ресурс пользователей (требует авторизации).
	usersRoutes := app.Group("/api/users")
	usersRoutes.Get("/", userHandler.List)
	usersRoutes.Get("/boom", userHandler.Boom)
	usersRoutes.Get("/:id", userHandler.GetByID)
	usersRoutes.Post("/", userHandler.Create)
	usersRoutes.Put("/:id", userHandler.Update)
	usersRoutes.Delete("/:id", userHandler.Delete)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
