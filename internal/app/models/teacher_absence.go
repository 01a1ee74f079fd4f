package models

import (
	"time"
)

// TeacherAbsence defines one absence record based on the 'teacher_absences'
// table. TeacherID references users.id by value only; there is no foreign key,
// so a record may outlive the user it points at.
type TeacherAbsence struct {
	ID        int64     `json:"id" db:"id"`
	TeacherID int64     `json:"teacherId" db:"teacher_id"`
	Day       string    `json:"day" db:"day" example:"2024-05-01"` // Date-granularity string, YYYY-MM-DD
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Teacher   *User     `json:"teacher,omitempty"` // Relation, resolved by join; nil when the user is gone
}
