package repos

import (
	"context"
	"testing"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/repository/postgres"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func bookingRows(ids ...int32) *sqlmock.Rows {
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "reference", "user_id", "car_id", "rental_start", "rental_end", "total_price_cents", "status", "payment_status", "overdue_notified", "created_on", "updated_on"})
	for _, id := range ids {
		rows.AddRow(id, "bk-ref", 1, 7, now, now.Add(2*time.Hour), 3000, "ACTIVE", "pending", nil, now, now)
	}
	return rows
}

func TestBookingRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
		b := &domain.Booking{
			Reference:       "bk-ref",
			UserID:          1,
			CarID:           7,
			RentalStart:     start,
			RentalEnd:       start.Add(3 * time.Hour),
			TotalPriceCents: 4500,
			Status:          domain.BookingStatusPending,
			PaymentStatus:   domain.PaymentStatusPending,
		}

		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(b.Reference, b.UserID, b.CarID, b.RentalStart, b.RentalEnd, b.TotalPriceCents, b.Status, b.PaymentStatus, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		err := repo.Create(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, int32(42), b.ID)
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1").
			WithArgs(int32(99)).
			WillReturnRows(bookingRows())

		b, err := repo.GetByID(ctx, 99)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingRepository_ListActivePastEnd(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("Only Unnotified Active", func(t *testing.T) {
		cutoff := time.Now()
		mock.ExpectQuery("SELECT (.+) FROM bookings").
			WithArgs(domain.BookingStatusActive, cutoff).
			WillReturnRows(bookingRows(1, 2))

		bookings, err := repo.ListActivePastEnd(ctx, cutoff)
		assert.NoError(t, err)
		assert.Len(t, bookings, 2)
	})
}

func TestBookingRepository_ListByUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewBookingRepository(db)
	ctx := context.Background()

	t.Run("With Status Filter", func(t *testing.T) {
		mock.ExpectQuery("SELECT count").
			WithArgs(int32(1), "ACTIVE").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectQuery("SELECT (.+) FROM bookings WHERE user_id = \\$1 AND status = \\$2").
			WithArgs(int32(1), "ACTIVE", int32(20), int32(0)).
			WillReturnRows(bookingRows(1))

		bookings, total, err := repo.ListByUser(ctx, 1, "ACTIVE", 1, 20)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), total)
		assert.Len(t, bookings, 1)
	})
}
