package categoryValidator

import (
	"strings"

	categoryController "skillora/controllers/category"
	"skillora/middleware"

	"github.com/gofiber/fiber/v2"
)

// Category validator middleware, shared by create (name required) and update
func Category(requireName bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(categoryController.CategoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if requireName && strings.TrimSpace(reqData.Name) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"name": "name is required!",
			})
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}
