package content

import "gorm.io/gorm"

// Module represents a top-level learning module
type Module struct {
	gorm.Model
	Title        string `json:"title"`
	Level        string `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced
	ThumbnailURL string `json:"thumbnail_url"`
	Description  string `json:"description"`
	IsDeleted    bool   `gorm:"default:false"`
}
