package postgres

import (
	"context"
	"database/sql"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/logger"
	"edufleet-backend/internal/repository"
)

type seatPlanRepository struct {
	db *sql.DB
}

func NewSeatPlanRepository(db *sql.DB) repository.SeatPlanRepository {
	return &seatPlanRepository{db: db}
}

// ReplacePlan deletes any previous plan for the exam+class+section and
// inserts the new seats inside one transaction, so readers never see a
// half-generated plan.
func (r *seatPlanRepository) ReplacePlan(ctx context.Context, examID, classID, sectionID int32, seats []domain.Seat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	deleteQuery := `DELETE FROM seats WHERE exam_id = $1 AND class_id = $2 AND section_id = $3`
	if _, err := tx.ExecContext(ctx, deleteQuery, examID, classID, sectionID); err != nil {
		return err
	}

	insertQuery := `INSERT INTO seats (seat_number, student_id, student_name, room_number, row, class_id, section_id, exam_id, created_on)
	                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	now := time.Now()
	for _, seat := range seats {
		if _, err := tx.ExecContext(ctx, insertQuery, seat.SeatNumber, seat.StudentID, seat.StudentName, seat.RoomNumber, seat.Row, seat.ClassID, seat.SectionID, seat.ExamID, now); err != nil {
			return err
		}
	}

	logger.DatabaseResult("ReplacePlan", int64(len(seats)), nil, "exam_id", examID)
	return tx.Commit()
}

func (r *seatPlanRepository) GetPlan(ctx context.Context, examID, classID, sectionID int32) ([]domain.Seat, error) {
	query := `SELECT id, seat_number, student_id, student_name, room_number, row, class_id, section_id, exam_id, created_on
	          FROM seats WHERE exam_id = $1 AND class_id = $2 AND section_id = $3 ORDER BY seat_number`
	rows, err := r.db.QueryContext(ctx, query, examID, classID, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []domain.Seat
	for rows.Next() {
		var s domain.Seat
		if err := rows.Scan(&s.ID, &s.SeatNumber, &s.StudentID, &s.StudentName, &s.RoomNumber, &s.Row, &s.ClassID, &s.SectionID, &s.ExamID, &s.CreatedOn); err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return seats, rows.Err()
}
