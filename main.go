package main

import (
	"skillora/config"
	"skillora/database"
	authRoutes "skillora/routers/authRoutes"
	categoryRoutes "skillora/routers/categoryRoutes"
	courseRoutes "skillora/routers/courseRoutes"
	enrollmentRoutes "skillora/routers/enrollmentRoutes"
	reviewRoutes "skillora/routers/reviewRoutes"
	userRoutes "skillora/routers/userRoutes"
	videoRoutes "skillora/routers/videoRoutes"
	"skillora/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.Load()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",   // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	reviewRoutes.SetupReviewRoutes(app)
	videoRoutes.SetupVideoRoutes(app)

	utils.StartStatsScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
