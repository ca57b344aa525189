package enrollmentRoutes

import (
	enrollmentControllers "skillora/controllers/enrollment"
	"skillora/middleware"
	enrollmentValidators "skillora/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/api/enrollments", middleware.JWTMiddleware)

	enrollmentGroup.Get("/", enrollmentControllers.GetEnrollments)
	enrollmentGroup.Post("/", enrollmentValidators.Enroll(), enrollmentControllers.EnrollInCourse)
	enrollmentGroup.Get("/:courseId/progress", enrollmentControllers.GetProgress)
	enrollmentGroup.Put("/:courseId/progress", enrollmentValidators.Progress(), enrollmentControllers.UpdateProgress)
}
