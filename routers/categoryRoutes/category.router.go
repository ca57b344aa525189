package categoryRoutes

import (
	categoryControllers "skillora/controllers/category"
	"skillora/middleware"
	categoryValidators "skillora/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/api/categories")

	categoryGroup.Get("/", categoryControllers.GetCategories)
	categoryGroup.Get("/:id", categoryControllers.GetCategory)

	categoryGroup.Post("/", middleware.JWTMiddleware, middleware.AdminMiddleware, categoryValidators.Category(true), categoryControllers.CreateCategory)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, categoryValidators.Category(false), categoryControllers.UpdateCategory)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminMiddleware, categoryControllers.DeleteCategory)
}
