package models

import "gorm.io/gorm"

type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	IconName    string `json:"iconName" gorm:"default:''"`
	ColorClass  string `json:"colorClass" gorm:"default:''"`
	Description string `json:"description" gorm:"type:text;default:''"`
}
