package reviewController

import (
	"log"

	"skillora/database"
	"skillora/middleware"
	"skillora/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReviewRequest is the validated review body
type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"max=2000"`
}

// GetCourseReviews lists a course's reviews, newest first
func GetCourseReviews(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var reviews []models.Review
	err = database.Database.Db.
		Where("course_id = ?", courseID).
		Preload("User").
		Order("created_at desc").
		Find(&reviews).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully.", reviews)
}

// CreateReview creates a review. Requires an enrollment for the pair and at
// most one review per (user, course).
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Must be enrolled to review this course!", nil)
	}

	var existing models.Review
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already reviewed this course!", nil)
	}

	review := models.Review{
		UserID:   userID,
		CourseID: uint(courseID),
		Rating:   reqData.Rating,
		Comment:  reqData.Comment,
	}

	if err := db.Create(&review).Error; err != nil {
		log.Printf("Error creating review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create review!", nil)
	}

	refreshCourseRating(db, review.CourseID)
	db.Preload("User").First(&review, review.ID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully.", review)
}

// refreshCourseRating bumps the stored mean rating right away; the stats
// scheduler reconciles any drift.
func refreshCourseRating(db *gorm.DB, courseID uint) {
	var rating float64
	row := db.Model(&models.Review{}).Where("course_id = ?", courseID).
		Select("COALESCE(AVG(rating), 0)").Row()
	if err := row.Scan(&rating); err != nil {
		log.Printf("Error averaging reviews for course %d: %v", courseID, err)
		return
	}
	db.Model(&models.Course{}).Where("id = ?", courseID).UpdateColumn("rating", rating)
}

// UpdateReview updates the caller's own review
func UpdateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID, err := c.ParamsInt("reviewId")
	if err != nil || reviewID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review ID!", nil)
	}

	reqData, ok := c.Locals("validatedReview").(*ReviewRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	// Ownership is part of the lookup; someone else's review reads as absent
	var review models.Review
	if err := db.Where("id = ? AND user_id = ?", reviewID, userID).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	review.Rating = reqData.Rating
	review.Comment = reqData.Comment

	if err := db.Save(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update review!", nil)
	}

	refreshCourseRating(db, review.CourseID)
	db.Preload("User").First(&review, review.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review updated successfully.", review)
}

// DeleteReview removes the caller's own review
func DeleteReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reviewID, err := c.ParamsInt("reviewId")
	if err != nil || reviewID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid review ID!", nil)
	}

	db := database.Database.Db

	var review models.Review
	if err := db.Where("id = ? AND user_id = ?", reviewID, userID).First(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	if err := db.Unscoped().Delete(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	refreshCourseRating(db, review.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted successfully.", nil)
}
