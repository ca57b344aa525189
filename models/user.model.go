package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex;not null"`
	Email        string `json:"email" gorm:"uniqueIndex;not null"`
	Password     string `json:"-" gorm:"not null"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Bio          string `json:"bio" gorm:"type:text;default:''"`
	AvatarURL    string `json:"avatarUrl" gorm:"default:''"`
	IsAdmin      bool   `json:"isAdmin" gorm:"default:false"`
	IsInstructor bool   `json:"isInstructor" gorm:"default:false"`
	IsActive     bool   `json:"isActive" gorm:"default:true"`
}
