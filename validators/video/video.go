package videoValidator

import (
	videoController "skillora/controllers/video"
	"skillora/middleware"

	"github.com/gofiber/fiber/v2"
)

// AddVideo validator middleware
func AddVideo() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(videoController.AddVideoRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationErrors(err))
		}

		c.Locals("validatedAddVideo", reqData)
		return c.Next()
	}
}
