package contentController

import (
	"errors"

	"devpath/middleware"
	"devpath/models/content"
	"devpath/repository"
	contentValidator "devpath/validators/content"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ModuleController struct {
	modules *repository.ModuleRepository
}

func NewModuleController(modules *repository.ModuleRepository) *ModuleController {
	return &ModuleController{modules: modules}
}

// List returns the full module collection snapshot
func (ctl *ModuleController) List(c *fiber.Ctx) error {
	modules, err := ctl.modules.ListAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Modules fetched successfully!", fiber.Map{
		"modules": modules,
	})
}

// Get fetches a single module by id
func (ctl *ModuleController) Get(c *fiber.Ctx) error {
	id := c.Locals("entityID").(uint)

	module, err := ctl.modules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module fetched successfully!", module)
}

// Create creates a new module from a validated draft
func (ctl *ModuleController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedModule").(*contentValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module := content.Module{
		Title:        reqData.Title,
		Level:        reqData.Level,
		ThumbnailURL: reqData.ThumbnailURL,
		Description:  reqData.Description,
	}

	if err := ctl.modules.Create(&module); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Module created successfully!", module)
}

// Update upserts the full draft to an existing module id
func (ctl *ModuleController) Update(c *fiber.Ctx) error {
	id := c.Locals("entityID").(uint)

	module, err := ctl.modules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	reqData, ok := c.Locals("validatedModule").(*contentValidator.ModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	module.Title = reqData.Title
	module.Level = reqData.Level
	module.ThumbnailURL = reqData.ThumbnailURL
	module.Description = reqData.Description

	if err := ctl.modules.Upsert(module); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module updated successfully!", module)
}

// Delete removes a module. Sub-modules keep their denormalized parent title;
// they are not cascaded.
func (ctl *ModuleController) Delete(c *fiber.Ctx) error {
	id := c.Locals("entityID").(uint)

	module, err := ctl.modules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	if err := ctl.modules.Delete(module); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module deleted successfully!", nil)
}
