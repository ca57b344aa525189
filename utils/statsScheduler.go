package utils

import (
	"log"
	"time"

	"skillora/database"
	"skillora/models"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[STATS-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartStatsScheduler runs the hourly course-stats reconciliation. Handlers
// bump counters opportunistically; this job makes the stored values converge
// with the actual enrollment and review rows.
func StartStatsScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", ReconcileCourseStats); err != nil {
		log.Fatalf("Failed to schedule course stats job: %v", err)
	}

	c.Start()
	logScheduler("Course stats scheduler started")
	return c
}

// ReconcileCourseStats recomputes enrollment_count and rating for every
// course from the underlying rows.
func ReconcileCourseStats() {
	db := database.Database.Db

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		logScheduler("Error fetching courses: " + err.Error())
		return
	}

	for _, course := range courses {
		var enrollments int64
		if err := db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollments).Error; err != nil {
			logScheduler("Error counting enrollments: " + err.Error())
			continue
		}

		var rating float64
		row := db.Model(&models.Review{}).Where("course_id = ?", course.ID).
			Select("COALESCE(AVG(rating), 0)").Row()
		if err := row.Scan(&rating); err != nil {
			logScheduler("Error averaging reviews: " + err.Error())
			continue
		}

		if course.EnrollmentCount == enrollments && course.Rating == rating {
			continue
		}

		err := db.Model(&models.Course{}).Where("id = ?", course.ID).
			UpdateColumns(map[string]interface{}{
				"enrollment_count": enrollments,
				"rating":           rating,
			}).Error
		if err != nil {
			logScheduler("Error updating course stats: " + err.Error())
		}
	}
}
