package userController

import (
	"log"

	"skillora/config"
	"skillora/database"
	"skillora/middleware"
	"skillora/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateAdminRequest is the validated body for the admin-creation routes
type CreateAdminRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=30"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	AdminSecretKey string `json:"adminSecretKey"`
}

// UpdateProfileRequest is the validated profile-update body
type UpdateProfileRequest struct {
	Username  string `json:"username" validate:"omitempty,min=3,max=30"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl" validate:"omitempty,url"`
}

// CheckAdmin reports whether any admin account exists. Open route used by the
// client to decide whether to offer the first-admin bootstrap screen.
func CheckAdmin(c *fiber.Ctx) error {
	var count int64
	if err := database.Database.Db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Error checking admin existence!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin existence checked.", fiber.Map{
		"exists": count > 0,
	})
}

// CreateFirstAdmin bootstraps the very first admin account. It requires the
// admin secret AND that no admin exists yet, so the route cannot be replayed.
func CreateFirstAdmin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateAdmin").(*CreateAdminRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if config.AppConfig.AdminSecretKey == "" || reqData.AdminSecretKey != config.AppConfig.AdminSecretKey {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Invalid admin secret key!", nil)
	}

	db := database.Database.Db

	var adminCount int64
	if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create admin user!", nil)
	}
	if adminCount > 0 {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "An admin user already exists!", nil)
	}

	return createAdminUser(c, db, reqData)
}

// CreateAdmin creates an additional admin account. Gated by AdminMiddleware;
// no secret re-proof is required from an already-authenticated admin.
func CreateAdmin(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateAdmin").(*CreateAdminRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	return createAdminUser(c, database.Database.Db, reqData)
}

func createAdminUser(c *fiber.Ctx, db *gorm.DB, reqData *CreateAdminRequest) error {
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create admin user!", nil)
	}

	admin := models.User{
		Username:     reqData.Username,
		Email:        reqData.Email,
		Password:     string(hashedPassword),
		FirstName:    reqData.FirstName,
		LastName:     reqData.LastName,
		IsAdmin:      true,
		IsInstructor: true,
		IsActive:     true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Printf("Error saving admin to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create admin user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Admin user created successfully.", admin)
}

// GetProfile returns the authenticated user's profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully.", user)
}

// UpdateProfile updates the authenticated user's own record
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedUpdateProfile").(*UpdateProfileRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	// Unique fields stay unique across the other users
	if reqData.Email != "" && reqData.Email != user.Email {
		if err := db.Where("email = ? AND id <> ?", reqData.Email, userID).First(&models.User{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		user.Email = reqData.Email
	}
	if reqData.Username != "" && reqData.Username != user.Username {
		if err := db.Where("username = ? AND id <> ?", reqData.Username, userID).First(&models.User{}).Error; err == nil {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Username is already taken!", nil)
		}
		user.Username = reqData.Username
	}
	if reqData.FirstName != "" {
		user.FirstName = reqData.FirstName
	}
	if reqData.LastName != "" {
		user.LastName = reqData.LastName
	}
	if reqData.Bio != "" {
		user.Bio = reqData.Bio
	}
	if reqData.AvatarURL != "" {
		user.AvatarURL = reqData.AvatarURL
	}

	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user)
}

// ListUsers returns every user. Admin only.
func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", users)
}

// ToggleStatus activates or deactivates a user account. Admin only.
func ToggleStatus(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("userId")
	if err != nil || targetID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	reqData := new(struct {
		IsActive *bool `json:"isActive"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.IsActive == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "isActive is required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, targetID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.IsActive = *reqData.IsActive
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update user status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User status updated successfully.", user)
}

// ToggleAdmin promotes or demotes a user. Admin only. The last remaining
// admin cannot be demoted, so the system cannot lock itself out.
func ToggleAdmin(c *fiber.Ctx) error {
	targetID, err := c.ParamsInt("userId")
	if err != nil || targetID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user ID!", nil)
	}

	reqData := new(struct {
		IsAdmin *bool `json:"isAdmin"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.IsAdmin == nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "isAdmin is required!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.First(&user, targetID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	if user.IsAdmin && !*reqData.IsAdmin {
		var adminCount int64
		if err := db.Model(&models.User{}).Where("is_admin = ?", true).Count(&adminCount).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update admin status!", nil)
		}
		if adminCount <= 1 {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Cannot demote the last remaining admin!", nil)
		}
	}

	user.IsAdmin = *reqData.IsAdmin
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update admin status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin status updated successfully.", user)
}
