package models

import "gorm.io/gorm"

// Course represents a marketplace course. Price is stored in integer cents
// to avoid floating-point rounding; Level is one of Beginner, Intermediate,
// Advanced.
type Course struct {
	gorm.Model
	Title           string    `json:"title" gorm:"not null"`
	Slug            string    `json:"slug" gorm:"index"`
	Description     string    `json:"description" gorm:"type:text;default:''"`
	Price           int64     `json:"price" gorm:"not null;default:0;check:price >= 0"`
	Level           string    `json:"level" gorm:"default:'Beginner'"`
	ThumbnailURL    string    `json:"thumbnailUrl" gorm:"default:''"`
	DurationHours   int       `json:"durationHours" gorm:"default:0"`
	InstructorID    uint      `json:"instructorId" gorm:"index;not null"`
	Instructor      *User     `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	CategoryID      uint      `json:"categoryId" gorm:"index"`
	Category        *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Sections        []Section `json:"sections,omitempty" gorm:"foreignKey:CourseID"`
	IsFeatured      bool      `json:"isFeatured" gorm:"default:false"`
	IsPublished     bool      `json:"isPublished" gorm:"default:false"`
	EnrollmentCount int64     `json:"enrollmentCount" gorm:"default:0"`
	Rating          float64   `json:"rating" gorm:"default:0"`
}

// CourseLevels are the only accepted values for Course.Level
var CourseLevels = []string{"Beginner", "Intermediate", "Advanced"}

func IsValidCourseLevel(level string) bool {
	for _, l := range CourseLevels {
		if l == level {
			return true
		}
	}
	return false
}
