package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/logger"
	"edufleet-backend/internal/repository"
)

type studentRepository struct {
	db *sql.DB
}

func NewStudentRepository(db *sql.DB) repository.StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `id, class_id, section_id, roll_number, name, guardian_name, guardian_contact, user_id, created_on, updated_on`

func (r *studentRepository) Create(ctx context.Context, s *domain.Student) error {
	query := `INSERT INTO students (class_id, section_id, roll_number, name, guardian_name, guardian_contact, user_id, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, s.ClassID, s.SectionID, s.RollNumber, s.Name, s.GuardianName, s.GuardianContact, s.UserID, now, now).Scan(&s.ID)
}

func (r *studentRepository) GetByID(ctx context.Context, id int32) (*domain.Student, error) {
	s := &domain.Student{}
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.ClassID, &s.SectionID, &s.RollNumber, &s.Name, &s.GuardianName, &s.GuardianContact, &s.UserID, &s.CreatedOn, &s.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: student %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *studentRepository) Update(ctx context.Context, s *domain.Student) error {
	query := `UPDATE students SET class_id=$1, section_id=$2, roll_number=$3, name=$4, guardian_name=$5, guardian_contact=$6, user_id=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, s.ClassID, s.SectionID, s.RollNumber, s.Name, s.GuardianName, s.GuardianContact, s.UserID, time.Now(), s.ID)
	return err
}

func (r *studentRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}

func (r *studentRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY class_id, section_id, roll_number LIMIT $1 OFFSET $2`

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM students`).Scan(&count); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var students []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.ClassID, &s.SectionID, &s.RollNumber, &s.Name, &s.GuardianName, &s.GuardianContact, &s.UserID, &s.CreatedOn, &s.UpdatedOn); err != nil {
			return nil, 0, err
		}
		students = append(students, s)
	}
	return students, count, rows.Err()
}

func (r *studentRepository) ListByClassSection(ctx context.Context, classID, sectionID int32) ([]domain.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE class_id = $1 AND section_id = $2 ORDER BY roll_number`
	logger.DatabaseCall("ListByClassSection", query, "class_id", classID, "section_id", sectionID)

	rows, err := r.db.QueryContext(ctx, query, classID, sectionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []domain.Student
	for rows.Next() {
		var s domain.Student
		if err := rows.Scan(&s.ID, &s.ClassID, &s.SectionID, &s.RollNumber, &s.Name, &s.GuardianName, &s.GuardianContact, &s.UserID, &s.CreatedOn, &s.UpdatedOn); err != nil {
			return nil, err
		}
		roster = append(roster, s)
	}
	logger.DatabaseResult("ListByClassSection", int64(len(roster)), rows.Err())
	return roster, rows.Err()
}
