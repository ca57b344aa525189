package courseController

import (
	"skillora/database"
	"skillora/middleware"
	"skillora/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SectionRequest is the validated section create/update body
type SectionRequest struct {
	Title       string `json:"title" validate:"omitempty,min=1"`
	Description string `json:"description"`
	Order       int    `json:"order" validate:"omitempty,gte=1"`
}

// CreateSection adds a section to a course. Admin only. When no order is
// supplied the section lands after the current last one.
func CreateSection(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	orderIndex := reqData.Order
	if orderIndex == 0 {
		var maxOrder int
		db.Model(&models.Section{}).Where("course_id = ?", course.ID).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	} else if orderTaken(db, course.ID, orderIndex, 0) {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A section with this order already exists in this course!", nil)
	}

	section := models.Section{
		CourseID:    course.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		OrderIndex:  orderIndex,
	}

	if err := db.Create(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Section created successfully.", section)
}

// orderTaken reports whether another section of the course already holds the
// given order
func orderTaken(db *gorm.DB, courseID uint, order int, excludeID uint) bool {
	var count int64
	db.Model(&models.Section{}).
		Where("course_id = ? AND order_index = ? AND id <> ?", courseID, order, excludeID).
		Count(&count)
	return count > 0
}

// UpdateSection updates a section's title, description or order. Admin only.
func UpdateSection(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}
	sectionID, err := c.ParamsInt("sectionId")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section ID!", nil)
	}

	reqData, ok := c.Locals("validatedSection").(*SectionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND course_id = ?", sectionID, courseID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	if reqData.Title != "" {
		section.Title = reqData.Title
	}
	if reqData.Description != "" {
		section.Description = reqData.Description
	}
	if reqData.Order > 0 && reqData.Order != section.OrderIndex {
		if orderTaken(db, section.CourseID, reqData.Order, section.ID) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A section with this order already exists in this course!", nil)
		}
		section.OrderIndex = reqData.Order
	}

	if err := db.Save(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update section!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section updated successfully.", section)
}

// DeleteSection removes a section and its lessons. Admin only.
func DeleteSection(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}
	sectionID, err := c.ParamsInt("sectionId")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section ID!", nil)
	}

	db := database.Database.Db

	var section models.Section
	if err := db.Where("id = ? AND course_id = ?", sectionID, courseID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	tx := db.Begin()
	if err := tx.Unscoped().Where("section_id = ?", section.ID).Delete(&models.Lesson{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}
	if err := tx.Unscoped().Delete(&section).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete section!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Section deleted successfully.", nil)
}
