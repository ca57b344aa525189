package models

import "gorm.io/gorm"

// Lesson is a single video lesson inside a section. PublicID is the external
// media-host asset reference and is unique within its section, as is
// OrderIndex. Duration is in seconds and comes from the media host, never
// from the client.
type Lesson struct {
	gorm.Model
	SectionID   uint   `json:"sectionId" gorm:"index;not null;uniqueIndex:idx_section_lesson_public"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text;default:''"`
	PublicID    string `json:"publicId" gorm:"column:public_id;not null;uniqueIndex:idx_section_lesson_public"`
	Duration    int    `json:"duration" gorm:"default:0"`
	Thumbnail   string `json:"thumbnail" gorm:"default:''"`
	OrderIndex  int    `json:"order" gorm:"not null"`
}
