package authRoutes

import (
	"devpath/config"
	authController "devpath/controllers/auth"
	"devpath/middleware"
	authValidator "devpath/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup, login and login-history routes
func SetupAuthRoutes(app *fiber.App, cfg *config.Config, ctl *authController.Controller) {
	group := app.Group("/auth")

	group.Post("/signup", authValidator.Signup(), ctl.Signup)
	group.Post("/login", authValidator.Login(), ctl.Login)
	group.Get("/login-history", middleware.JWTMiddleware(cfg), authValidator.LoginHistoryList(), ctl.LoginHistoryList)
}
