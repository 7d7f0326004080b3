package domain

import "time"

// Student is one roster entry. Roll numbers are unique within a
// class+section; a roster is always scoped to one class+section and
// ordered by roll number.
type Student struct {
	ID              int32     `json:"id"`
	ClassID         int32     `json:"class_id"`
	SectionID       int32     `json:"section_id"`
	RollNumber      int32     `json:"roll_number"`
	Name            string    `json:"name"`
	GuardianName    string    `json:"guardian_name"`
	GuardianContact string    `json:"guardian_contact"`
	UserID          *int32    `json:"user_id,omitempty"`
	CreatedOn       time.Time `json:"created_on"`
	UpdatedOn       time.Time `json:"updated_on"`
}
