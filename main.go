package main

import (
	"log"

	"devpath/config"
	authController "devpath/controllers/auth"
	contentController "devpath/controllers/content"
	uploadController "devpath/controllers/upload"
	userController "devpath/controllers/user"
	"devpath/database"
	"devpath/repository"
	"devpath/routers/authRoutes"
	"devpath/routers/contentRoutes"
	"devpath/routers/uploadRoutes"
	"devpath/routers/userRoutes"
	"devpath/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	cfg := config.LoadConfig()
	db := database.Connect(cfg)

	users := repository.NewUserRepository(db)
	tracking := repository.NewLoginTrackingRepository(db)
	modules := repository.NewModuleRepository(db)
	subModules := repository.NewSubModuleRepository(db)

	mailer := utils.NewEmailService(cfg)
	uploader := utils.NewCloudinaryClient(cfg)

	authCtl := authController.New(cfg, users, tracking, mailer)
	userCtl := userController.New(users)
	moduleCtl := contentController.NewModuleController(modules)
	subModuleCtl := contentController.NewSubModuleController(subModules, modules)
	dashboardCtl := contentController.NewDashboardController(modules, subModules, users)
	uploadCtl := uploadController.New(uploader)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app, cfg, authCtl)
	userRoutes.SetupUserRoutes(app, cfg, userCtl)
	contentRoutes.SetupAdminContentRoutes(app, cfg, users, moduleCtl, subModuleCtl, dashboardCtl)
	uploadRoutes.SetupUploadRoutes(app, cfg, users, uploadCtl)

	scheduler := utils.StartUnblockScheduler(users)
	defer scheduler.Stop()

	log.Printf("Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
