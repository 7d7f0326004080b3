package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/repository"
)

type examRepository struct {
	db *sql.DB
}

func NewExamRepository(db *sql.DB) repository.ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(ctx context.Context, e *domain.Exam) error {
	query := `INSERT INTO exams (name, class_id, date, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, e.Name, e.ClassID, e.Date, now, now).Scan(&e.ID)
}

func (r *examRepository) GetByID(ctx context.Context, id int32) (*domain.Exam, error) {
	e := &domain.Exam{}
	query := `SELECT id, name, class_id, date, created_on, updated_on FROM exams WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Name, &e.ClassID, &e.Date, &e.CreatedOn, &e.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: exam %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *examRepository) Update(ctx context.Context, e *domain.Exam) error {
	query := `UPDATE exams SET name=$1, class_id=$2, date=$3, updated_on=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, e.Name, e.ClassID, e.Date, time.Now(), e.ID)
	return err
}

func (r *examRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM exams WHERE id = $1`, id)
	return err
}

func (r *examRepository) ListByClass(ctx context.Context, classID int32) ([]domain.Exam, error) {
	query := `SELECT id, name, class_id, date, created_on, updated_on FROM exams WHERE class_id = $1 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []domain.Exam
	for rows.Next() {
		var e domain.Exam
		if err := rows.Scan(&e.ID, &e.Name, &e.ClassID, &e.Date, &e.CreatedOn, &e.UpdatedOn); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}
