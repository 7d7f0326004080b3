package domain

import "time"

type Exam struct {
	ID        int32     `json:"id"`
	Name      string    `json:"name"`
	ClassID   int32     `json:"class_id"`
	Date      time.Time `json:"date"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// SeatRule maps an inclusive roll-number range to a physical row in a room.
// StartRoll <= EndRoll; ranges may overlap or leave gaps.
type SeatRule struct {
	StartRoll  int32  `json:"start_roll"`
	EndRoll    int32  `json:"end_roll"`
	Row        string `json:"row"`
	RoomNumber string `json:"room_number"`
}

// Seat is one entry of a generated seat plan. A nil StudentID marks a
// placeholder for a rule whose range matched no roster entry. Seats are
// immutable once generated; regenerating a plan replaces it wholesale.
type Seat struct {
	ID          int32     `json:"id"`
	SeatNumber  int32     `json:"seat_number"`
	StudentID   *int32    `json:"student_id"`
	StudentName *string   `json:"student_name"`
	RoomNumber  string    `json:"room_number"`
	Row         string    `json:"row"`
	ClassID     int32     `json:"class_id"`
	SectionID   int32     `json:"section_id"`
	ExamID      int32     `json:"exam_id"`
	CreatedOn   time.Time `json:"created_on"`
}
