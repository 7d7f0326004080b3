package seating

import (
	"fmt"

	"edufleet-backend/internal/domain"
)

// Allocate partitions a roster into exam seats following the given
// roll-number-range rules. The roster must already be sorted ascending by
// roll number and scoped to one class+section.
//
// Seat numbers are 1-based and strictly increasing across the whole plan;
// the counter is never reset between rules. Each rule scans the full
// roster, so a student whose roll number falls in two overlapping rules is
// seated twice. After a rule is processed, if the accumulated plan holds
// no seat for that rule's row, a single placeholder seat (nil student) is
// emitted so the row still appears on the printed plan.
func Allocate(roster []domain.Student, rules []domain.SeatRule, classID, sectionID, examID int32) ([]domain.Seat, error) {
	if classID == 0 || sectionID == 0 || examID == 0 {
		return nil, fmt.Errorf("%w: class, section and exam are required", domain.ErrValidation)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("%w: at least one seat rule is required", domain.ErrValidation)
	}
	for _, rule := range rules {
		if rule.StartRoll > rule.EndRoll {
			return nil, fmt.Errorf("%w: seat rule start roll %d exceeds end roll %d", domain.ErrValidation, rule.StartRoll, rule.EndRoll)
		}
	}

	var seats []domain.Seat
	seatNumber := int32(1)

	for _, rule := range rules {
		for _, student := range roster {
			if student.RollNumber < rule.StartRoll || student.RollNumber > rule.EndRoll {
				continue
			}
			id := student.ID
			name := student.Name
			seats = append(seats, domain.Seat{
				SeatNumber:  seatNumber,
				StudentID:   &id,
				StudentName: &name,
				RoomNumber:  rule.RoomNumber,
				Row:         rule.Row,
				ClassID:     classID,
				SectionID:   sectionID,
				ExamID:      examID,
			})
			seatNumber++
		}

		if !rowOccupied(seats, rule.Row) {
			seats = append(seats, domain.Seat{
				SeatNumber: seatNumber,
				RoomNumber: rule.RoomNumber,
				Row:        rule.Row,
				ClassID:    classID,
				SectionID:  sectionID,
				ExamID:     examID,
			})
			seatNumber++
		}
	}

	return seats, nil
}

// rowOccupied reports whether any seat (placeholder included) has been
// emitted for the given row so far.
func rowOccupied(seats []domain.Seat, row string) bool {
	for _, s := range seats {
		if s.Row == row {
			return true
		}
	}
	return false
}
