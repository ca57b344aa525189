package userValidator

import (
	userController "skillora/controllers/user"
	"skillora/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateAdmin validator middleware, shared by the bootstrap and the
// admin-gated creation routes
func CreateAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(userController.CreateAdminRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationErrors(err))
		}

		c.Locals("validatedCreateAdmin", reqData)
		return c.Next()
	}
}

// UpdateProfile validator middleware
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(userController.UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationErrors(err))
		}

		c.Locals("validatedUpdateProfile", reqData)
		return c.Next()
	}
}
