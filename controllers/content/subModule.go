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

type SubModuleController struct {
	subModules *repository.SubModuleRepository
	modules    *repository.ModuleRepository
}

func NewSubModuleController(subModules *repository.SubModuleRepository, modules *repository.ModuleRepository) *SubModuleController {
	return &SubModuleController{subModules: subModules, modules: modules}
}

// List returns the full sub-module collection snapshot
func (ctl *SubModuleController) List(c *fiber.Ctx) error {
	subModules, err := ctl.subModules.ListAll()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sub-modules!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-modules fetched successfully!", fiber.Map{
		"sub_modules": subModules,
	})
}

// Get fetches a single sub-module by id
func (ctl *SubModuleController) Get(c *fiber.Ctx) error {
	id := c.Locals("entityID").(uint)

	subModule, err := ctl.subModules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sub-module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-module fetched successfully!", subModule)
}

// Create creates a sub-module under an existing parent module. The parent's
// title is copied into the row at selection time, and its level is used when
// the draft did not override it.
func (ctl *SubModuleController) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSubModule").(*contentValidator.SubModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	// Check if the parent module exists
	parent, err := ctl.modules.GetByID(reqData.ModuleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch module!", nil)
	}

	level := reqData.Level
	if level == "" {
		level = parent.Level
	}

	subModule := content.SubModule{
		ModuleID:       parent.ID,
		ModuleTitle:    parent.Title,
		Title:          reqData.Title,
		Level:          level,
		ThumbnailURL:   reqData.ThumbnailURL,
		Content:        reqData.Content,
		WatchVideos:    reqData.WatchVideos,
		PDFNote:        reqData.PDFNote,
		AdditionalNote: reqData.AdditionalNote,
	}

	if err := ctl.subModules.Create(&subModule); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create sub-module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sub-module created successfully!", subModule)
}

// Update upserts the draft to an existing sub-module. The parent selection is
// locked once the row exists, so the denormalized title and inherited level
// stay consistent with history.
func (ctl *SubModuleController) Update(c *fiber.Ctx) error {
	id := c.Locals("entityID").(uint)

	subModule, err := ctl.subModules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sub-module!", nil)
	}

	reqData, ok := c.Locals("validatedSubModule").(*contentValidator.SubModuleRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.ModuleID != 0 && reqData.ModuleID != subModule.ModuleID {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"module_id": "Parent module cannot be changed!",
		})
	}

	subModule.Title = reqData.Title
	if reqData.Level != "" {
		subModule.Level = reqData.Level
	}
	subModule.ThumbnailURL = reqData.ThumbnailURL
	subModule.Content = reqData.Content
	subModule.WatchVideos = reqData.WatchVideos
	subModule.PDFNote = reqData.PDFNote
	subModule.AdditionalNote = reqData.AdditionalNote

	if err := ctl.subModules.Upsert(subModule); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sub-module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-module updated successfully!", subModule)
}

// Delete removes a sub-module
func (ctl *SubModuleController) Delete(c *fiber.Ctx) error {
	id := c.Locals("entityID").(uint)

	subModule, err := ctl.subModules.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sub-module not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sub-module!", nil)
	}

	if err := ctl.subModules.Delete(subModule); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete sub-module!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sub-module deleted successfully!", nil)
}
