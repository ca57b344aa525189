package videoRoutes

import (
	videoControllers "skillora/controllers/video"
	"skillora/middleware"
	videoValidators "skillora/validators/video"

	"github.com/gofiber/fiber/v2"
)

func SetupVideoRoutes(app *fiber.App) {
	videoGroup := app.Group("/api/videos")

	videoGroup.Post("/upload-signature", middleware.JWTMiddleware, middleware.AdminMiddleware, videoControllers.GetUploadSignature)
	videoGroup.Post("/courses/:courseId/sections/:sectionId", middleware.JWTMiddleware, middleware.AdminMiddleware, videoValidators.AddVideo(), videoControllers.AddVideo)
	videoGroup.Get("/details/:publicId", middleware.JWTMiddleware, videoControllers.GetVideoDetails)
	videoGroup.Delete("/:publicId", middleware.JWTMiddleware, middleware.AdminMiddleware, videoControllers.DeleteVideo)

	uploadGroup := app.Group("/api/uploads")
	uploadGroup.Post("/thumbnail", middleware.JWTMiddleware, videoControllers.UploadThumbnail)
}
