package models

import "gorm.io/gorm"

// Review is authored by an enrolled user, at most one per (user, course) pair.
type Review struct {
	gorm.Model
	UserID   uint   `json:"userId" gorm:"not null;uniqueIndex:idx_user_course_review"`
	User     *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	CourseID uint   `json:"courseId" gorm:"not null;uniqueIndex:idx_user_course_review"`
	Rating   int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment  string `json:"comment" gorm:"type:text;default:''"`
}
