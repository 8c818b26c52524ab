package content

import "gorm.io/gorm"

// SubModule represents a lesson inside a module. ModuleTitle is a copy of the
// parent title taken when the parent was selected; it is not kept in sync if
// the parent is later renamed.
type SubModule struct {
	gorm.Model
	ModuleID       uint   `json:"module_id" gorm:"index;not null"`
	ModuleTitle    string `json:"module_title"`
	Title          string `json:"title"`
	Level          string `json:"level" gorm:"default:'Beginner'"`
	ThumbnailURL   string `json:"thumbnail_url"`
	Content        string `json:"sub_module_content" gorm:"type:text"` // rich-text body
	WatchVideos    string `json:"watch_videos"`                        // video URL
	PDFNote        string `json:"pdf_note"`
	AdditionalNote string `json:"additional_note"`
	IsDeleted      bool   `gorm:"default:false"`
}
