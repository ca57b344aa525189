package enrollmentValidator

import (
	enrollmentController "skillora/controllers/enrollment"
	"skillora/middleware"

	"github.com/gofiber/fiber/v2"
)

// Enroll validator middleware
func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(enrollmentController.EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationErrors(err))
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// Progress validator middleware. Only the completed-lesson set is accepted;
// a client-supplied percentage is rejected outright.
func Progress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := new(struct {
			CompletedLessons []uint   `json:"completedLessons"`
			ProgressPercent  *float64 `json:"progressPercent"`
		})
		if err := c.BodyParser(raw); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if raw.ProgressPercent != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"progressPercent": "progressPercent is derived from completed lessons and cannot be set directly!",
			})
		}

		reqData := &enrollmentController.ProgressRequest{
			CompletedLessons: raw.CompletedLessons,
		}

		c.Locals("validatedProgress", reqData)
		return c.Next()
	}
}
