package reviewController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillora/config"
	"skillora/database"
	"skillora/middleware"
	"skillora/models"
	reviewRoutes "skillora/routers/reviewRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupReviewTest(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	reviewRoutes.SetupReviewRoutes(app)
	return app
}

func newUser(t *testing.T, name string) (models.User, string) {
	user := models.User{Username: name, Email: name + "@test.io", Password: "x", IsActive: true}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID)
	require.NoError(t, err)
	return user, token
}

func seedCourse(t *testing.T) models.Course {
	db := database.Database.Db

	instructor := models.User{Username: "teacher", Email: "teacher@test.io", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&instructor).Error)

	course := models.Course{Title: "Go Course", Slug: "go-course", Price: 9900, Level: "Beginner", InstructorID: instructor.ID, IsPublished: true}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func enroll(t *testing.T, user models.User, course models.Course) {
	enrollment := models.Enrollment{UserID: user.ID, CourseID: course.ID, Status: "ACTIVE"}
	enrollment.SetCompletedLessonIDs(nil)
	require.NoError(t, database.Database.Db.Create(&enrollment).Error)
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

func TestCreateReview(t *testing.T) {
	app := setupReviewTest(t)
	course := seedCourse(t)
	user, token := newUser(t, "learner")
	enroll(t, user, course)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), token, fiber.Map{
		"rating":  5,
		"comment": "Excellent material.",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["rating"])

	// Author is embedded for display
	author := data["user"].(map[string]interface{})
	assert.Equal(t, "learner", author["username"])
}

func TestCreateReviewRequiresEnrollment(t *testing.T) {
	app := setupReviewTest(t)
	course := seedCourse(t)
	_, token := newUser(t, "outsider")

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), token, fiber.Map{
		"rating": 4,
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateReviewTwiceConflicts(t *testing.T) {
	app := setupReviewTest(t)
	course := seedCourse(t)
	user, token := newUser(t, "learner")
	enroll(t, user, course)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), token, fiber.Map{"rating": 4})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), token, fiber.Map{"rating": 5})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	app := setupReviewTest(t)
	course := seedCourse(t)
	user, token := newUser(t, "learner")
	enroll(t, user, course)

	for _, rating := range []int{0, 6, -1} {
		resp := doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), token, fiber.Map{"rating": rating})
		assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode, "rating %d", rating)
	}
}

func TestGetCourseReviewsIsPublic(t *testing.T) {
	app := setupReviewTest(t)
	course := seedCourse(t)
	user, token := newUser(t, "learner")
	enroll(t, user, course)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), token, fiber.Map{"rating": 4})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// No token required to read
	resp = doJSON(t, app, "GET", fmt.Sprintf("/api/reviews/course/%d", course.ID), "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	reviews := decodeBody(t, resp)["data"].([]interface{})
	assert.Len(t, reviews, 1)
}

func TestUpdateReview(t *testing.T) {
	app := setupReviewTest(t)
	course := seedCourse(t)
	user, token := newUser(t, "learner")
	enroll(t, user, course)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), token, fiber.Map{"rating": 3})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["data"].(map[string]interface{})["ID"].(float64)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/reviews/%d", int(id)), token, fiber.Map{
		"rating":  5,
		"comment": "Grew on me.",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["rating"])
	assert.Equal(t, "Grew on me.", data["comment"])
}

// Someone else's review reads as absent, not forbidden.
func TestUpdateReviewOfOtherUser(t *testing.T) {
	app := setupReviewTest(t)
	course := seedCourse(t)
	author, authorToken := newUser(t, "author")
	enroll(t, author, course)
	_, otherToken := newUser(t, "other")

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), authorToken, fiber.Map{"rating": 3})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["data"].(map[string]interface{})["ID"].(float64)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/reviews/%d", int(id)), otherToken, fiber.Map{"rating": 1})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// Creating and deleting reviews keeps the stored course rating in step.
func TestReviewsUpdateCourseRating(t *testing.T) {
	app := setupReviewTest(t)
	course := seedCourse(t)
	db := database.Database.Db

	first, firstToken := newUser(t, "first")
	enroll(t, first, course)
	second, secondToken := newUser(t, "second")
	enroll(t, second, course)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), firstToken, fiber.Map{"rating": 4})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), secondToken, fiber.Map{"rating": 5})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var reloaded models.Course
	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, 4.5, reloaded.Rating)

	var secondReview models.Review
	require.NoError(t, db.Where("user_id = ?", second.ID).First(&secondReview).Error)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/reviews/%d", secondReview.ID), secondToken, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, db.First(&reloaded, course.ID).Error)
	assert.Equal(t, float64(4), reloaded.Rating)
}

func TestDeleteReview(t *testing.T) {
	app := setupReviewTest(t)
	course := seedCourse(t)
	user, token := newUser(t, "learner")
	enroll(t, user, course)

	resp := doJSON(t, app, "POST", fmt.Sprintf("/api/reviews/course/%d", course.ID), token, fiber.Map{"rating": 4})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["data"].(map[string]interface{})["ID"].(float64)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/reviews/%d", int(id)), token, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	database.Database.Db.Model(&models.Review{}).Count(&count)
	assert.Zero(t, count)
}
