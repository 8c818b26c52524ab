package contentController

import (
	"devpath/middleware"
	"devpath/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

type DashboardController struct {
	modules    *repository.ModuleRepository
	subModules *repository.SubModuleRepository
	users      *repository.UserRepository
}

func NewDashboardController(modules *repository.ModuleRepository, subModules *repository.SubModuleRepository, users *repository.UserRepository) *DashboardController {
	return &DashboardController{modules: modules, subModules: subModules, users: users}
}

// Stats returns collection counts for the admin dashboard
func (ctl *DashboardController) Stats(c *fiber.Ctx) error {
	moduleCount, err := ctl.modules.Count()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	subModuleCount, err := ctl.subModules.Count()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	userCount, err := ctl.users.Count()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	signupsToday, err := ctl.users.CountCreatedSince(now.BeginningOfDay())
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"modules":       moduleCount,
		"sub_modules":   subModuleCount,
		"users":         userCount,
		"signups_today": signupsToday,
	})
}
