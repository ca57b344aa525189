package courseRoutes

import (
	courseControllers "skillora/controllers/course"
	"skillora/middleware"
	courseValidators "skillora/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Public catalog
	courseGroup.Get("/", courseValidators.CourseList(), courseControllers.GetAllCourses)
	courseGroup.Get("/featured", courseControllers.GetFeaturedCourses)
	courseGroup.Get("/:id", courseControllers.GetCourseDetails)

	// Authoring; ownership is enforced in the handlers
	courseGroup.Post("/", middleware.JWTMiddleware, courseValidators.CreateCourse(), courseControllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, courseValidators.UpdateCourse(), courseControllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, courseControllers.DeleteCourse)

	// Section management
	courseGroup.Post("/:id/sections", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidators.Section(true), courseControllers.CreateSection)
	courseGroup.Put("/:id/sections/:sectionId", middleware.JWTMiddleware, middleware.AdminMiddleware, courseValidators.Section(false), courseControllers.UpdateSection)
	courseGroup.Delete("/:id/sections/:sectionId", middleware.JWTMiddleware, middleware.AdminMiddleware, courseControllers.DeleteSection)
}
