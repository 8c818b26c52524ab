package uploadRoutes

import (
	"devpath/config"
	uploadController "devpath/controllers/upload"
	"devpath/middleware"
	"devpath/repository"

	"github.com/gofiber/fiber/v2"
)

// SetupUploadRoutes sets up the asset upload route
func SetupUploadRoutes(app *fiber.App, cfg *config.Config, users *repository.UserRepository, ctl *uploadController.Controller) {
	group := app.Group("/admin/upload", middleware.JWTMiddleware(cfg), middleware.AdminOnly(users))

	group.Post("/:kind", ctl.Upload)
}
