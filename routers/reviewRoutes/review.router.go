package reviewRoutes

import (
	reviewControllers "skillora/controllers/review"
	"skillora/middleware"
	reviewValidators "skillora/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/api/reviews")

	reviewGroup.Get("/course/:courseId", reviewControllers.GetCourseReviews)

	reviewGroup.Post("/course/:courseId", middleware.JWTMiddleware, reviewValidators.Review(), reviewControllers.CreateReview)
	reviewGroup.Put("/:reviewId", middleware.JWTMiddleware, reviewValidators.Review(), reviewControllers.UpdateReview)
	reviewGroup.Delete("/:reviewId", middleware.JWTMiddleware, reviewControllers.DeleteReview)
}
