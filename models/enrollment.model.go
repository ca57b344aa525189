package models

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Enrollment links a user to a course they joined. At most one row exists per
// (user, course) pair. CompletedLessons holds lesson IDs as a JSON array;
// ProgressPercent is always derived server-side from the completed count.
type Enrollment struct {
	gorm.Model
	UserID           uint           `json:"userId" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID         uint           `json:"courseId" gorm:"not null;uniqueIndex:idx_user_course"`
	Course           *Course        `json:"course,omitempty" gorm:"foreignKey:CourseID"`
	Status           string         `json:"status" gorm:"default:'ACTIVE'"`
	CompletedLessons datatypes.JSON `json:"completedLessons" gorm:"default:'[]'"`
	ProgressPercent  float64        `json:"progressPercent" gorm:"default:0"`
}

// CompletedLessonIDs decodes the stored JSON array of lesson IDs.
func (e *Enrollment) CompletedLessonIDs() []uint {
	var ids []uint
	if len(e.CompletedLessons) == 0 {
		return ids
	}
	if err := json.Unmarshal(e.CompletedLessons, &ids); err != nil {
		return nil
	}
	return ids
}

// SetCompletedLessonIDs encodes lesson IDs into the JSON column.
func (e *Enrollment) SetCompletedLessonIDs(ids []uint) {
	if ids == nil {
		ids = []uint{}
	}
	raw, _ := json.Marshal(ids)
	e.CompletedLessons = datatypes.JSON(raw)
}
