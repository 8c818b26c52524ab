package repository

import (
	"devpath/models/content"

	"gorm.io/gorm"
)

// ModuleRepository is the narrow persistence surface for modules: fetch-by-id,
// full snapshot list, create, upsert and delete. List order is whatever the
// store returns; no ordering is imposed here.
type ModuleRepository struct {
	db *gorm.DB
}

func NewModuleRepository(db *gorm.DB) *ModuleRepository {
	return &ModuleRepository{db: db}
}

func (r *ModuleRepository) GetByID(id uint) (*content.Module, error) {
	var module content.Module
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&module).Error; err != nil {
		return nil, err
	}
	return &module, nil
}

func (r *ModuleRepository) ListAll() ([]content.Module, error) {
	var modules []content.Module
	err := r.db.Where("is_deleted = ?", false).Find(&modules).Error
	return modules, err
}

func (r *ModuleRepository) Create(module *content.Module) error {
	return r.db.Create(module).Error
}

func (r *ModuleRepository) Upsert(module *content.Module) error {
	return r.db.Save(module).Error
}

func (r *ModuleRepository) Delete(module *content.Module) error {
	module.IsDeleted = true
	return r.db.Save(module).Error
}

func (r *ModuleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&content.Module{}).Where("is_deleted = ?", false).Count(&count).Error
	return count, err
}

// SubModuleRepository mirrors ModuleRepository for sub-modules.
type SubModuleRepository struct {
	db *gorm.DB
}

func NewSubModuleRepository(db *gorm.DB) *SubModuleRepository {
	return &SubModuleRepository{db: db}
}

func (r *SubModuleRepository) GetByID(id uint) (*content.SubModule, error) {
	var subModule content.SubModule
	if err := r.db.Where("id = ? AND is_deleted = ?", id, false).First(&subModule).Error; err != nil {
		return nil, err
	}
	return &subModule, nil
}

func (r *SubModuleRepository) ListAll() ([]content.SubModule, error) {
	var subModules []content.SubModule
	err := r.db.Where("is_deleted = ?", false).Find(&subModules).Error
	return subModules, err
}

func (r *SubModuleRepository) Create(subModule *content.SubModule) error {
	return r.db.Create(subModule).Error
}

func (r *SubModuleRepository) Upsert(subModule *content.SubModule) error {
	return r.db.Save(subModule).Error
}

func (r *SubModuleRepository) Delete(subModule *content.SubModule) error {
	subModule.IsDeleted = true
	return r.db.Save(subModule).Error
}

func (r *SubModuleRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&content.SubModule{}).Where("is_deleted = ?", false).Count(&count).Error
	return count, err
}
