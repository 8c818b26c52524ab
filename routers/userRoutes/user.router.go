package userRoutes

import (
	"devpath/config"
	userController "devpath/controllers/user"
	"devpath/middleware"
	userValidator "devpath/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up the profile routes
func SetupUserRoutes(app *fiber.App, cfg *config.Config, ctl *userController.Controller) {
	group := app.Group("/user", middleware.JWTMiddleware(cfg))

	group.Get("/profile", ctl.GetProfile)
	group.Patch("/profile", userValidator.UpdateProfile(), ctl.UpdateProfile)
}
