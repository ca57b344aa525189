package utils_test

import (
	"testing"

	"skillora/database"
	"skillora/models"
	"skillora/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupStatsTest(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestReconcileCourseStats(t *testing.T) {
	db := setupStatsTest(t)

	instructor := models.User{Username: "teacher", Email: "teacher@test.io", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&instructor).Error)

	// Stored counters start out wrong; the job must converge them
	course := models.Course{Title: "Go Course", Slug: "go-course", Price: 9900, Level: "Beginner", InstructorID: instructor.ID, IsPublished: true, EnrollmentCount: 99, Rating: 1}
	require.NoError(t, db.Create(&course).Error)

	for i, rating := range []int{4, 5} {
		user := models.User{Username: string(rune('a' + i)), Email: string(rune('a'+i)) + "@test.io", Password: "x", IsActive: true}
		require.NoError(t, db.Create(&user).Error)

		enrollment := models.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ACTIVE"}
		enrollment.SetCompletedLessonIDs(nil)
		require.NoError(t, db.Create(&enrollment).Error)

		review := models.Review{UserID: user.ID, CourseID: course.ID, Rating: rating}
		require.NoError(t, db.Create(&review).Error)
	}

	utils.ReconcileCourseStats()

	var reloaded models.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, int64(2), reloaded.EnrollmentCount)
	assert.Equal(t, 4.5, reloaded.Rating)
}

func TestReconcileCourseStatsZeroesOrphanCounters(t *testing.T) {
	db := setupStatsTest(t)

	instructor := models.User{Username: "teacher", Email: "teacher@test.io", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&instructor).Error)

	course := models.Course{Title: "Empty", Slug: "empty", Price: 0, Level: "Beginner", InstructorID: instructor.ID, EnrollmentCount: 5, Rating: 4.2}
	require.NoError(t, db.Create(&course).Error)

	utils.ReconcileCourseStats()

	var reloaded models.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Zero(t, reloaded.EnrollmentCount)
	assert.Zero(t, reloaded.Rating)
}
