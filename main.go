package main

import (
	"io"
	"log"
	"os"

	"holistica/config"
	"holistica/database"
	"holistica/middleware"
	authRoutes "holistica/routers/authRoutes"
	contentRoutes "holistica/routers/contentRoutes"
	courseRoutes "holistica/routers/courseRoutes"
	enrollmentRoutes "holistica/routers/enrollmentRoutes"
	notificationRoutes "holistica/routers/notificationRoutes"
	paymentRoutes "holistica/routers/paymentRoutes"
	reportRoutes "holistica/routers/reportRoutes"
	scheduleRoutes "holistica/routers/scheduleRoutes"
	userRoutes "holistica/routers/userRoutes"
	"holistica/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: config.AppConfig.FrontendURL,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Request log goes to stdout and app.log
	logOutput := io.Writer(os.Stdout)
	if logFile, err := os.OpenFile("app.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
		logOutput = io.MultiWriter(os.Stdout, logFile)
	} else {
		log.Printf("Could not open app.log: %v", err)
	}
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
		Output: logOutput,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/health/db", func(c *fiber.Ctx) error {
		sqlDB, err := database.Database.Db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return middleware.ErrorDetailsResponse(c, fiber.StatusServiceUnavailable, "Base de datos no disponible", err)
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	notificationRoutes.SetupNotificationRoutes(app)
	scheduleRoutes.SetupScheduleRoutes(app)
	contentRoutes.SetupContentRoutes(app)
	userRoutes.SetupUserRoutes(app)
	reportRoutes.SetupReportRoutes(app)

	utils.StartReportScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
