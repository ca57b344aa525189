package reviewValidator

import (
	reviewController "skillora/controllers/review"
	"skillora/middleware"

	"github.com/gofiber/fiber/v2"
)

// Review validator middleware, shared by create and update
func Review() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(reviewController.ReviewRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationErrors(err))
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
