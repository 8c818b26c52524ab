package models

import (
	"time"

	"gorm.io/gorm"
)

// User account types
const (
	TypeAdmin   = "Admin"
	TypeLearner = "Learner"
)

// Proficiency levels shared by users, modules and sub-modules
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

type User struct {
	gorm.Model
	Name                string     `json:"name" gorm:"default:''"`
	Email               string     `json:"email" gorm:"unique;not null"`
	Password            string     `json:"-" gorm:"not null"`
	AvatarURL           string     `json:"avatar_url" gorm:"default:''"`
	Type                string     `json:"type" gorm:"default:'Learner'"` // Admin, Learner
	Level               string     `json:"level" gorm:"default:'Beginner'"`
	LastLogin           time.Time  `json:"last_login" gorm:"default:NULL"`
	FailedLoginAttempts int        `json:"-" gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `json:"-" gorm:"default:false"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `json:"-" gorm:"default:false"`
}
