package models

import "gorm.io/gorm"

// Section groups ordered lessons inside a course. OrderIndex is unique per
// course and defines the display sequence.
type Section struct {
	gorm.Model
	CourseID    uint     `json:"courseId" gorm:"index;not null;uniqueIndex:idx_course_section_order"`
	Title       string   `json:"title" gorm:"not null"`
	Description string   `json:"description" gorm:"type:text;default:''"`
	OrderIndex  int      `json:"order" gorm:"not null;uniqueIndex:idx_course_section_order"`
	Lessons     []Lesson `json:"lessons,omitempty" gorm:"foreignKey:SectionID"`
}
