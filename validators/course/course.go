package courseValidator

import (
	"strconv"
	"strings"

	courseController "skillora/controllers/course"
	"skillora/middleware"

	"github.com/gofiber/fiber/v2"
)

// CourseList validates the catalog filter query parameters, including the
// "min-max" price range form.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		errors := make(map[string]string)

		query := &courseController.CourseListQuery{
			Level: c.Query("level"),
			Sort:  c.Query("sort"),
			Page:  c.QueryInt("page", 1),
			Limit: c.QueryInt("limit", 10),
		}

		if raw := c.Query("category"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || id == 0 {
				errors["category"] = "Invalid category ID!"
			} else {
				query.Category = uint(id)
			}
		}

		if query.Level != "" {
			switch query.Level {
			case "Beginner", "Intermediate", "Advanced":
			default:
				errors["level"] = "level must be one of: Beginner Intermediate Advanced!"
			}
		}

		switch query.Sort {
		case "", "newest", "price-asc", "price-desc":
		default:
			errors["sort"] = "sort must be one of: newest price-asc price-desc!"
		}

		// Price filter arrives as "min-max"; either side may be empty
		if raw := c.Query("price"); raw != "" {
			parts := strings.SplitN(raw, "-", 2)
			if parts[0] != "" {
				min, err := strconv.ParseInt(parts[0], 10, 64)
				if err != nil || min < 0 {
					errors["price"] = "Invalid price range!"
				} else {
					query.MinPrice = &min
				}
			}
			if len(parts) == 2 && parts[1] != "" {
				max, err := strconv.ParseInt(parts[1], 10, 64)
				if err != nil || max < 0 {
					errors["price"] = "Invalid price range!"
				} else {
					query.MaxPrice = &max
				}
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourseList", query)
		return c.Next()
	}
}

// CreateCourse validator middleware; title, price and level are mandatory on
// creation
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "title is required!"
		}
		if reqData.Price == nil {
			errors["price"] = "price is required!"
		}
		if reqData.Level == "" {
			errors["level"] = "level is required!"
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			for field, msg := range middleware.ValidationErrors(err) {
				errors[field] = msg
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateCourse validator middleware; all fields optional, formats enforced
func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.CourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.ValidationErrors(err))
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}

// Section validator middleware, shared by create and update
func Section(requireTitle bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(courseController.SectionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)
		if requireTitle && strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "title is required!"
		}

		if err := middleware.Validate.Struct(reqData); err != nil {
			for field, msg := range middleware.ValidationErrors(err) {
				errors[field] = msg
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSection", reqData)
		return c.Next()
	}
}
