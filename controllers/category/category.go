package categoryController

import (
	"log"

	"skillora/database"
	"skillora/middleware"
	"skillora/models"
	"skillora/utils"

	"github.com/gofiber/fiber/v2"
)

// CategoryRequest is the validated create/update body
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IconName    string `json:"iconName"`
	ColorClass  string `json:"colorClass"`
}

// GetCategories lists all categories ordered by name
func GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.Order("name asc").Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully.", categories)
}

// GetCategory returns a single category
func GetCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category ID!", nil)
	}

	var category models.Category
	if err := database.Database.Db.First(&category, categoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully.", category)
}

// CreateCategory creates a category. Admin only. The slug is always derived
// from the name.
func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCategory").(*CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db
	slug := utils.Slugify(reqData.Name)

	if err := db.Where("slug = ?", slug).First(&models.Category{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
	}

	category := models.Category{
		Name:        reqData.Name,
		Slug:        slug,
		Description: reqData.Description,
		IconName:    reqData.IconName,
		ColorClass:  reqData.ColorClass,
	}

	if err := db.Create(&category).Error; err != nil {
		log.Printf("Error creating category: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully.", category)
}

// UpdateCategory updates a category. Admin only.
func UpdateCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category ID!", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*CategoryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if reqData.Name != "" {
		slug := utils.Slugify(reqData.Name)
		if err := db.Where("slug = ? AND id <> ?", slug, categoryID).First(&models.Category{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "A category with this name already exists!", nil)
		}
		category.Name = reqData.Name
		category.Slug = slug
	}
	if reqData.Description != "" {
		category.Description = reqData.Description
	}
	if reqData.IconName != "" {
		category.IconName = reqData.IconName
	}
	if reqData.ColorClass != "" {
		category.ColorClass = reqData.ColorClass
	}

	if err := db.Save(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category updated successfully.", category)
}

// DeleteCategory removes a category. Admin only.
func DeleteCategory(c *fiber.Ctx) error {
	categoryID, err := c.ParamsInt("id")
	if err != nil || categoryID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category ID!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.First(&category, categoryID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if err := db.Unscoped().Delete(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category deleted successfully.", nil)
}
