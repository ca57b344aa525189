package categoryController_test

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
	categoryRoutes "skillora/routers/categoryRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupCategoryTest(t *testing.T) *fiber.App {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	categoryRoutes.SetupCategoryRoutes(app)
	return app
}

func userToken(t *testing.T, name string, isAdmin bool) string {
	user := models.User{Username: name, Email: name + "@test.io", Password: "x", IsAdmin: isAdmin, IsActive: true}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID)
	require.NoError(t, err)
	return token
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

func TestCreateCategory(t *testing.T) {
	app := setupCategoryTest(t)
	admin := userToken(t, "admin", true)

	resp := doJSON(t, app, "POST", "/api/categories", admin, fiber.Map{
		"name":        "Web Development",
		"description": "Frontend and backend courses",
		"iconName":    "code",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "Web Development", data["name"])
	assert.Equal(t, "web-development", data["slug"])
}

func TestCreateCategoryRequiresAdmin(t *testing.T) {
	app := setupCategoryTest(t)
	plain := userToken(t, "plain", false)

	resp := doJSON(t, app, "POST", "/api/categories", plain, fiber.Map{"name": "Design"})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	app := setupCategoryTest(t)
	admin := userToken(t, "admin", true)

	resp := doJSON(t, app, "POST", "/api/categories", admin, fiber.Map{"name": "Data Science"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// Same slug after normalization
	resp = doJSON(t, app, "POST", "/api/categories", admin, fiber.Map{"name": "data science"})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestGetCategories(t *testing.T) {
	app := setupCategoryTest(t)
	admin := userToken(t, "admin", true)

	for _, name := range []string{"Zoology", "Algebra"} {
		resp := doJSON(t, app, "POST", "/api/categories", admin, fiber.Map{"name": name})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, "GET", "/api/categories", "", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	categories := decodeBody(t, resp)["data"].([]interface{})
	require.Len(t, categories, 2)

	// Ordered by name
	first := categories[0].(map[string]interface{})
	assert.Equal(t, "Algebra", first["name"])
}

func TestUpdateCategory(t *testing.T) {
	app := setupCategoryTest(t)
	admin := userToken(t, "admin", true)

	resp := doJSON(t, app, "POST", "/api/categories", admin, fiber.Map{"name": "Desing"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["data"].(map[string]interface{})["ID"].(float64)

	resp = doJSON(t, app, "PUT", fmt.Sprintf("/api/categories/%d", int(id)), admin, fiber.Map{"name": "Design"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decodeBody(t, resp)["data"].(map[string]interface{})
	assert.Equal(t, "Design", data["name"])
	assert.Equal(t, "design", data["slug"])
}

func TestDeleteCategoryFreesSlug(t *testing.T) {
	app := setupCategoryTest(t)
	admin := userToken(t, "admin", true)

	resp := doJSON(t, app, "POST", "/api/categories", admin, fiber.Map{"name": "Design"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	id := decodeBody(t, resp)["data"].(map[string]interface{})["ID"].(float64)

	resp = doJSON(t, app, "DELETE", fmt.Sprintf("/api/categories/%d", int(id)), admin, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The slug is reusable after deletion
	resp = doJSON(t, app, "POST", "/api/categories", admin, fiber.Map{"name": "Design"})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestGetCategoryNotFound(t *testing.T) {
	app := setupCategoryTest(t)

	resp := doJSON(t, app, "GET", "/api/categories/999", "", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
