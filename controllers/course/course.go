package courseController

import (
	"log"
	"math"

	"skillora/database"
	"skillora/middleware"
	"skillora/models"
	"skillora/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CourseListQuery is the validated catalog filter set
type CourseListQuery struct {
	Category uint
	Level    string
	MinPrice *int64
	MaxPrice *int64
	Sort     string
	Page     int
	Limit    int
}

// CourseRequest is the validated create/update body
type CourseRequest struct {
	Title         string `json:"title" validate:"omitempty,min=3"`
	Description   string `json:"description"`
	Price         *int64 `json:"price" validate:"omitempty,gte=0"`
	CategoryID    uint   `json:"categoryId"`
	Level         string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	DurationHours int    `json:"durationHours" validate:"omitempty,gte=0"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	IsPublished   *bool  `json:"isPublished"`
	IsFeatured    *bool  `json:"isFeatured"`
}

// GetAllCourses lists published courses with catalog filters and pagination
func GetAllCourses(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedCourseList").(*CourseListQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db.Model(&models.Course{}).Where("is_published = ?", true)

	if query.Category != 0 {
		db = db.Where("category_id = ?", query.Category)
	}
	if query.Level != "" {
		db = db.Where("level = ?", query.Level)
	}
	if query.MinPrice != nil {
		db = db.Where("price >= ?", *query.MinPrice)
	}
	if query.MaxPrice != nil {
		db = db.Where("price <= ?", *query.MaxPrice)
	}

	switch query.Sort {
	case "price-asc":
		db = db.Order("price asc")
	case "price-desc":
		db = db.Order("price desc")
	default: // newest
		db = db.Order("created_at desc")
	}

	var total int64
	db.Count(&total)

	page, limit := utils.NormalizePagination(query.Page, query.Limit)
	offset := (page - 1) * limit

	var courses []models.Course
	err := db.Offset(offset).Limit(limit).
		Preload("Instructor").
		Preload("Category").
		Find(&courses).Error
	if err != nil {
		log.Printf("Error fetching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", fiber.Map{
		"courses":      courses,
		"currentPage":  page,
		"totalPages":   int64(math.Ceil(float64(total) / float64(limit))),
		"totalCourses": total,
	})
}

// GetFeaturedCourses returns up to 6 featured published courses
func GetFeaturedCourses(c *fiber.Ctx) error {
	var courses []models.Course
	err := database.Database.Db.
		Where("is_featured = ? AND is_published = ?", true, true).
		Limit(6).
		Preload("Instructor").
		Preload("Category").
		Find(&courses).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch featured courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Featured courses fetched successfully.", courses)
}

// GetCourseDetails returns a single course with its ordered sections and
// lessons
func GetCourseDetails(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var course models.Course
	err = database.Database.Db.
		Preload("Instructor").
		Preload("Category").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		Preload("Sections.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index asc")
		}).
		First(&course, courseID).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully.", course)
}

// CreateCourse creates a course owned by the authenticated user
func CreateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	if reqData.CategoryID != 0 {
		if err := db.First(&models.Category{}, reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
	}

	course := models.Course{
		Title:         reqData.Title,
		Slug:          utils.Slugify(reqData.Title),
		Description:   reqData.Description,
		Level:         reqData.Level,
		ThumbnailURL:  reqData.ThumbnailURL,
		DurationHours: reqData.DurationHours,
		InstructorID:  userID,
		CategoryID:    reqData.CategoryID,
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}

	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	// Course authorship makes the user an instructor
	db.Model(&models.User{}).Where("id = ?", userID).Update("is_instructor", true)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

// UpdateCourse updates a course. Only the owning instructor or an admin may
// mutate it.
func UpdateCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	reqData, ok := c.Locals("validatedCourseUpdate").(*CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !isOwnerOrAdmin(db, userID, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to modify this course!", nil)
	}

	if reqData.Title != "" {
		course.Title = reqData.Title
		course.Slug = utils.Slugify(reqData.Title)
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.ThumbnailURL != "" {
		course.ThumbnailURL = reqData.ThumbnailURL
	}
	if reqData.DurationHours > 0 {
		course.DurationHours = reqData.DurationHours
	}
	if reqData.CategoryID != 0 {
		if err := db.First(&models.Category{}, reqData.CategoryID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		course.CategoryID = reqData.CategoryID
	}
	if reqData.IsPublished != nil {
		course.IsPublished = *reqData.IsPublished
	}
	if reqData.IsFeatured != nil {
		course.IsFeatured = *reqData.IsFeatured
	}

	if err := db.Save(&course).Error; err != nil {
		log.Printf("Error updating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

// DeleteCourse removes a course together with its sections and lessons.
// Only the owning instructor or an admin may delete it.
func DeleteCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("id")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if !isOwnerOrAdmin(db, userID, course.InstructorID) {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to delete this course!", nil)
	}

	tx := db.Begin()
	var sectionIDs []uint
	tx.Model(&models.Section{}).Where("course_id = ?", course.ID).Pluck("id", &sectionIDs)
	if len(sectionIDs) > 0 {
		if err := tx.Unscoped().Where("section_id IN ?", sectionIDs).Delete(&models.Lesson{}).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
		}
	}
	if err := tx.Unscoped().Where("course_id = ?", course.ID).Delete(&models.Section{}).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	if err := tx.Unscoped().Delete(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully.", nil)
}

// isOwnerOrAdmin reports whether userID owns the course or holds the stored
// admin flag
func isOwnerOrAdmin(db *gorm.DB, userID, instructorID uint) bool {
	if userID == instructorID {
		return true
	}
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return false
	}
	return user.IsAdmin
}
