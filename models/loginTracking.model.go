package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type LoginTracking struct {
	gorm.Model
	UserID    uint           `json:"user_id" gorm:"index"`
	IPAddress string         `json:"ip_address"`
	Device    string         `json:"device"`
	Timestamp time.Time      `json:"timestamp"`
	Details   datatypes.JSON `json:"details"` // request metadata captured at login time
	IsDeleted bool           `gorm:"default:false"`
}
