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

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (registration_number, model, seats, price_per_hour_cents, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, c.RegistrationNumber, c.Model, c.Seats, c.PricePerHourCents, c.Status, now, now).Scan(&c.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := `SELECT id, registration_number, model, seats, price_per_hour_cents, status, created_on, updated_on FROM cars WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.RegistrationNumber, &c.Model, &c.Seats, &c.PricePerHourCents, &c.Status, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: car %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET registration_number=$1, model=$2, seats=$3, price_per_hour_cents=$4, status=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, c.RegistrationNumber, c.Model, c.Seats, c.PricePerHourCents, c.Status, time.Now(), c.ID)
	return err
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	return err
}

func (r *carRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Car, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, registration_number, model, seats, price_per_hour_cents, status, created_on, updated_on FROM cars`

	args := []interface{}{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}

	var count int32
	countQuery := `SELECT count(*) FROM (` + query + `) as sub`
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.RegistrationNumber, &c.Model, &c.Seats, &c.PricePerHourCents, &c.Status, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, 0, err
		}
		cars = append(cars, c)
	}
	return cars, count, rows.Err()
}
