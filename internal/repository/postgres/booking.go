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

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const bookingColumns = `id, reference, user_id, car_id, rental_start, rental_end, total_price_cents, status, payment_status, overdue_notified, created_on, updated_on`

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (reference, user_id, car_id, rental_start, rental_end, total_price_cents, status, payment_status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, b.Reference, b.UserID, b.CarID, b.RentalStart, b.RentalEnd, b.TotalPriceCents, b.Status, b.PaymentStatus, now, now).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	b := &domain.Booking{}
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&b.ID, &b.Reference, &b.UserID, &b.CarID, &b.RentalStart, &b.RentalEnd, &b.TotalPriceCents, &b.Status, &b.PaymentStatus, &b.OverdueNotified, &b.CreatedOn, &b.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `UPDATE bookings SET rental_end=$1, total_price_cents=$2, status=$3, payment_status=$4, overdue_notified=$5, updated_on=$6 WHERE id=$7`
	_, err := r.db.ExecContext(ctx, query, b.RentalEnd, b.TotalPriceCents, b.Status, b.PaymentStatus, b.OverdueNotified, time.Now(), b.ID)
	return err
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE user_id = $1`

	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}

	var count int32
	countQuery := `SELECT count(*) FROM (` + query + `) as sub`
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(` ORDER BY created_on DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, 0, err
	}
	return bookings, count, nil
}

func (r *bookingRepository) ListActivePastEnd(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE status = $1 AND rental_end < $2 AND overdue_notified IS NULL`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusActive, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListUnpaidPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE status = $1 AND payment_status = $2 AND created_on < $3`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusPending, domain.PaymentStatusPending, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func (r *bookingRepository) ListUnpaidConfirmed(ctx context.Context) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE status = $1 AND payment_status = $2`
	rows, err := r.db.QueryContext(ctx, query, domain.BookingStatusConfirmed, domain.PaymentStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]domain.Booking, error) {
	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.Reference, &b.UserID, &b.CarID, &b.RentalStart, &b.RentalEnd, &b.TotalPriceCents, &b.Status, &b.PaymentStatus, &b.OverdueNotified, &b.CreatedOn, &b.UpdatedOn); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
