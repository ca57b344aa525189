package userRoutes

import (
	userControllers "skillora/controllers/user"
	"skillora/middleware"
	userValidators "skillora/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/api/users")

	// Bootstrap routes are open; create-first-admin is self-limiting to the
	// first admin
	userGroup.Get("/check-admin", userControllers.CheckAdmin)
	userGroup.Post("/create-first-admin", userValidators.CreateAdmin(), userControllers.CreateFirstAdmin)

	userGroup.Post("/create-admin", middleware.JWTMiddleware, middleware.AdminMiddleware, userValidators.CreateAdmin(), userControllers.CreateAdmin)

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Put("/profile", middleware.JWTMiddleware, userValidators.UpdateProfile(), userControllers.UpdateProfile)

	// Admin management
	userGroup.Get("/admin", middleware.JWTMiddleware, middleware.AdminMiddleware, userControllers.ListUsers)
	userGroup.Patch("/:userId/status", middleware.JWTMiddleware, middleware.AdminMiddleware, userControllers.ToggleStatus)
	userGroup.Patch("/:userId/admin", middleware.JWTMiddleware, middleware.AdminMiddleware, userControllers.ToggleAdmin)
}
