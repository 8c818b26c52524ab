package contentRoutes

import (
	"devpath/config"
	contentController "devpath/controllers/content"
	"devpath/middleware"
	"devpath/repository"
	contentValidator "devpath/validators/content"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminContentRoutes sets up all admin content management routes
func SetupAdminContentRoutes(
	app *fiber.App,
	cfg *config.Config,
	users *repository.UserRepository,
	moduleCtl *contentController.ModuleController,
	subModuleCtl *contentController.SubModuleController,
	dashboardCtl *contentController.DashboardController,
) {
	jwtGuard := middleware.JWTMiddleware(cfg)
	adminGuard := middleware.AdminOnly(users)

	// Module CRUD
	moduleGroup := app.Group("/admin/module", jwtGuard, adminGuard)
	moduleGroup.Get("/list", moduleCtl.List)
	moduleGroup.Post("/create", contentValidator.CreateModule(), moduleCtl.Create)
	moduleGroup.Get("/:id", contentValidator.EntityID(), moduleCtl.Get)
	moduleGroup.Put("/:id", contentValidator.EntityID(), contentValidator.UpdateModule(), moduleCtl.Update)
	moduleGroup.Delete("/:id", contentValidator.EntityID(), moduleCtl.Delete)

	// Sub-module CRUD
	subModuleGroup := app.Group("/admin/sub-module", jwtGuard, adminGuard)
	subModuleGroup.Get("/list", subModuleCtl.List)
	subModuleGroup.Post("/create", contentValidator.CreateSubModule(), subModuleCtl.Create)
	subModuleGroup.Get("/:id", contentValidator.EntityID(), subModuleCtl.Get)
	subModuleGroup.Put("/:id", contentValidator.EntityID(), contentValidator.UpdateSubModule(), subModuleCtl.Update)
	subModuleGroup.Delete("/:id", contentValidator.EntityID(), subModuleCtl.Delete)

	// Dashboard
	dashGroup := app.Group("/admin/dashboard", jwtGuard, adminGuard)
	dashGroup.Get("/stats", dashboardCtl.Stats)
}
