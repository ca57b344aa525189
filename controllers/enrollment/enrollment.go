package enrollmentController

import (
	"log"

	"skillora/database"
	"skillora/middleware"
	"skillora/models"
	"skillora/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EnrollRequest is the validated enrollment body
type EnrollRequest struct {
	CourseID uint `json:"courseId" validate:"required,gt=0"`
}

// ProgressRequest is the validated progress-update body. Only the completed
// set is accepted; the percentage is always recomputed server-side.
type ProgressRequest struct {
	CompletedLessons []uint `json:"completedLessons"`
}

// GetEnrollments lists the caller's enrollments, newest first
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	err := database.Database.Db.
		Where("user_id = ?", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", enrollments)
}

// EnrollInCourse creates an enrollment for the caller. At most one row per
// (user, course) pair.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_published = ?", reqData.CourseID, true).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var existing models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Already enrolled in this course!", nil)
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: course.ID,
		Status:   "ACTIVE",
	}
	enrollment.SetCompletedLessonIDs(nil)

	if err := db.Create(&enrollment).Error; err != nil {
		log.Printf("Error creating enrollment: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	// Opportunistic counter bump; the stats scheduler reconciles drift
	db.Model(&models.Course{}).Where("id = ?", course.ID).
		UpdateColumn("enrollment_count", gorm.Expr("enrollment_count + 1"))

	var user models.User
	if err := db.First(&user, userID).Error; err == nil {
		go utils.SendEnrollmentEmail(user, course)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully.", enrollment)
}

// GetProgress returns the caller's completed lessons and progress for a course
func GetProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	var enrollment models.Enrollment
	if err := database.Database.Db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully.", fiber.Map{
		"completedLessons": enrollment.CompletedLessonIDs(),
		"progressPercent":  enrollment.ProgressPercent,
	})
}

// UpdateProgress replaces the completed-lesson set. Lesson IDs that do not
// belong to the course are dropped, and the percentage is derived from the
// completed count against the course's total lessons.
func UpdateProgress(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}

	reqData, ok := c.Locals("validatedProgress").(*ProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Enrollment not found!", nil)
	}

	// Every lesson of the course, via its sections
	var courseLessonIDs []uint
	err = db.Model(&models.Lesson{}).
		Joins("JOIN sections ON sections.id = lessons.section_id").
		Where("sections.course_id = ?", courseID).
		Pluck("lessons.id", &courseLessonIDs).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	known := make(map[uint]bool, len(courseLessonIDs))
	for _, id := range courseLessonIDs {
		known[id] = true
	}

	completed := make([]uint, 0, len(reqData.CompletedLessons))
	seen := make(map[uint]bool, len(reqData.CompletedLessons))
	for _, id := range reqData.CompletedLessons {
		if known[id] && !seen[id] {
			completed = append(completed, id)
			seen[id] = true
		}
	}

	var percent float64
	if len(courseLessonIDs) > 0 {
		percent = float64(len(completed)) / float64(len(courseLessonIDs)) * 100
	}

	enrollment.SetCompletedLessonIDs(completed)
	enrollment.ProgressPercent = percent
	if percent >= 100 {
		enrollment.Status = "COMPLETED"
	} else {
		enrollment.Status = "ACTIVE"
	}

	if err := db.Save(&enrollment).Error; err != nil {
		log.Printf("Error updating progress: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress updated successfully.", enrollment)
}
