package videoController

import (
	"log"

	"skillora/database"
	"skillora/middleware"
	"skillora/models"
	"skillora/utils"

	"github.com/gofiber/fiber/v2"
)

// AddVideoRequest is the validated add-video body. Duration and thumbnail are
// deliberately absent: they are fetched from the media host.
type AddVideoRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	PublicID    string `json:"publicId" validate:"required"`
}

// GetUploadSignature issues signed parameters for a direct client upload.
// Admin only.
func GetUploadSignature(c *fiber.Ctx) error {
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Upload signature generated.", utils.GenerateUploadSignature())
}

// AddVideo attaches an uploaded asset to a course section as a new lesson.
// Admin only. The asset reference must be unique within the section and its
// metadata comes from the media host, never from the client.
func AddVideo(c *fiber.Ctx) error {
	courseID, err := c.ParamsInt("courseId")
	if err != nil || courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course ID!", nil)
	}
	sectionID, err := c.ParamsInt("sectionId")
	if err != nil || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid section ID!", nil)
	}

	reqData, ok := c.Locals("validatedAddVideo").(*AddVideoRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var section models.Section
	if err := db.Where("id = ? AND course_id = ?", sectionID, course.ID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var existing models.Lesson
	if err := db.Where("section_id = ? AND public_id = ?", section.ID, reqData.PublicID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A video with this ID already exists in this section!", nil)
	}

	details, err := utils.GetVideoDetails(reqData.PublicID)
	if err != nil {
		log.Printf("Error fetching video details for %s: %v", reqData.PublicID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch video details from media host!", nil)
	}

	var count int64
	db.Model(&models.Lesson{}).Where("section_id = ?", section.ID).Count(&count)

	lesson := models.Lesson{
		SectionID:   section.ID,
		Title:       reqData.Title,
		Description: reqData.Description,
		PublicID:    reqData.PublicID,
		Duration:    details.Duration,
		Thumbnail:   details.Thumbnail,
		OrderIndex:  int(count) + 1,
	}

	if err := db.Create(&lesson).Error; err != nil {
		log.Printf("Error creating lesson: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add video to course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Video added to course successfully.", lesson)
}

// GetVideoDetails returns playback metadata for an asset. The caller must be
// enrolled in the owning course.
func GetVideoDetails(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	publicID := c.Params("publicId")
	courseID := c.QueryInt("courseId")
	if courseID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Any enrollment grants playback; finishing a course must not revoke it
	var enrollment models.Enrollment
	err := db.Where("user_id = ? AND course_id = ?", userID, course.ID).First(&enrollment).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You must be enrolled in this course to view its videos!", nil)
	}

	// The asset must belong to one of the course's sections
	var lesson models.Lesson
	err = db.Joins("JOIN sections ON sections.id = lessons.section_id").
		Where("sections.course_id = ? AND lessons.public_id = ?", course.ID, publicID).
		First(&lesson).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found in this course!", nil)
	}

	details, err := utils.GetVideoDetails(publicID)
	if err != nil {
		log.Printf("Error fetching video details for %s: %v", publicID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch video details from media host!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video details fetched successfully.", details)
}

// DeleteVideo removes a lesson, re-sequences the section's remaining lessons
// contiguously from 1, then best-effort deletes the remote asset. Admin only.
// Local state is authoritative; remote cleanup is advisory.
func DeleteVideo(c *fiber.Ctx) error {
	publicID := c.Params("publicId")
	courseID := c.QueryInt("courseId")
	sectionID := c.QueryInt("sectionId")
	if courseID < 1 || sectionID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID and Section ID are required!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var section models.Section
	if err := db.Where("id = ? AND course_id = ?", sectionID, course.ID).First(&section).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Section not found!", nil)
	}

	var lesson models.Lesson
	if err := db.Where("section_id = ? AND public_id = ?", section.ID, publicID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Video not found in this section!", nil)
	}

	tx := db.Begin()
	if err := tx.Unscoped().Delete(&lesson).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete video!", nil)
	}

	// Close the gap: remaining lessons get contiguous orders from 1
	var remaining []models.Lesson
	if err := tx.Where("section_id = ?", section.ID).Order("order_index asc").Find(&remaining).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete video!", nil)
	}
	for i := range remaining {
		if remaining[i].OrderIndex == i+1 {
			continue
		}
		err := tx.Model(&models.Lesson{}).Where("id = ?", remaining[i].ID).
			UpdateColumn("order_index", i+1).Error
		if err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete video!", nil)
		}
	}
	tx.Commit()

	// Remote cleanup is best-effort; a failure never rolls back the local
	// removal
	if err := utils.DeleteVideo(publicID); err != nil {
		log.Printf("Media host deletion failed for %s: %v", publicID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Video deleted successfully.", nil)
}

// UploadThumbnail stores a course thumbnail image locally and returns its
// public URL
func UploadThumbnail(c *fiber.Ctx) error {
	file, err := c.FormFile("thumbnail")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "thumbnail file is required!", nil)
	}

	path, err := utils.SaveUploadedFile(file, "./public/uploads")
	if err != nil {
		log.Printf("Error saving uploaded thumbnail: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store thumbnail!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Thumbnail uploaded successfully.", fiber.Map{
		"url": utils.GetFileURL(path),
	})
}
