package unit

import (
	"context"
	"testing"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newBookingService() (*MockBookingRepo, *MockCarRepo, *MockWalletRepo, *MockUserRepo, *MockEmailService, *MockNotificationRepo, service.BookingService) {
	bookingRepo := new(MockBookingRepo)
	carRepo := new(MockCarRepo)
	walletRepo := new(MockWalletRepo)
	userRepo := new(MockUserRepo)
	emailSvc := new(MockEmailService)
	noteRepo := new(MockNotificationRepo)
	svc := service.NewBookingService(bookingRepo, carRepo, walletRepo, userRepo, emailSvc, noteRepo)
	return bookingRepo, carRepo, walletRepo, userRepo, emailSvc, noteRepo, svc
}

func TestBookingService_CreateBooking(t *testing.T) {
	ctx := context.Background()
	userID := int32(1)
	carID := int32(7)
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		bookingRepo, carRepo, _, userRepo, emailSvc, noteRepo, svc := newBookingService()

		car := &domain.Car{ID: carID, Model: "Corolla", PricePerHourCents: 1500, Status: domain.CarStatusAvailable}
		carRepo.On("GetByID", ctx, carID).Return(car, nil)
		bookingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		carRepo.On("Update", ctx, mock.AnythingOfType("*domain.Car")).Return(nil)
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Email: "renter@test.com", Name: "Renter"}, nil)
		emailSvc.On("SendBookingConfirmation", ctx, "renter@test.com", "Renter", mock.AnythingOfType("string"), int64(4500)).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		// 2h30m rents as 3 full hours
		booking, err := svc.CreateBooking(ctx, userID, carID, start, start.Add(2*time.Hour+30*time.Minute))
		assert.NoError(t, err)
		assert.NotNil(t, booking)
		assert.Equal(t, int64(4500), booking.TotalPriceCents)
		assert.Equal(t, domain.BookingStatusPending, booking.Status)
		assert.Equal(t, domain.PaymentStatusPending, booking.PaymentStatus)
		assert.NotEmpty(t, booking.Reference)
		assert.Equal(t, domain.CarStatusRented, car.Status)
	})

	t.Run("Car Not Available", func(t *testing.T) {
		_, carRepo, _, _, _, _, svc := newBookingService()

		carRepo.On("GetByID", ctx, carID).Return(&domain.Car{ID: carID, Status: domain.CarStatusRented}, nil)

		booking, err := svc.CreateBooking(ctx, userID, carID, start, start.Add(time.Hour))
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("End Not After Start", func(t *testing.T) {
		_, carRepo, _, _, _, _, svc := newBookingService()

		carRepo.On("GetByID", ctx, carID).Return(&domain.Car{ID: carID, PricePerHourCents: 1500, Status: domain.CarStatusAvailable}, nil)

		booking, err := svc.CreateBooking(ctx, userID, carID, start, start)
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestBookingService_PayForBooking(t *testing.T) {
	ctx := context.Background()
	userID := int32(1)
	bookingID := int32(42)

	unpaid := func() *domain.Booking {
		return &domain.Booking{
			ID:              bookingID,
			Reference:       "bk-ref",
			UserID:          userID,
			CarID:           7,
			TotalPriceCents: 3000,
			Status:          domain.BookingStatusConfirmed,
			PaymentStatus:   domain.PaymentStatusPending,
		}
	}

	t.Run("Success", func(t *testing.T) {
		bookingRepo, _, walletRepo, userRepo, emailSvc, noteRepo, svc := newBookingService()

		bookingRepo.On("GetByID", ctx, bookingID).Return(unpaid(), nil)
		walletRepo.On("Ledger", ctx, userID).Return([]domain.WalletTransaction{
			{UserID: userID, AmountCents: 5000, Type: domain.TransactionTypeCredit, RunningBalanceCents: 5000},
		}, nil)
		walletRepo.On("AppendTransaction", ctx, mock.AnythingOfType("*domain.WalletTransaction"), int64(5000)).Return(nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		userRepo.On("GetByID", ctx, userID).Return(&domain.User{ID: userID, Email: "renter@test.com", Name: "Renter"}, nil)
		emailSvc.On("SendBookingReceipt", ctx, "renter@test.com", "Renter", "bk-ref", int64(3000)).Return(nil)
		noteRepo.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)

		paid, entry, err := svc.PayForBooking(ctx, userID, bookingID)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, paid.PaymentStatus)
		assert.Equal(t, domain.TransactionTypeDebit, entry.Type)
		assert.Equal(t, int64(3000), entry.AmountCents)
		assert.Equal(t, int64(2000), entry.RunningBalanceCents)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		bookingRepo, _, walletRepo, _, _, _, svc := newBookingService()

		bookingRepo.On("GetByID", ctx, bookingID).Return(unpaid(), nil)
		walletRepo.On("Ledger", ctx, userID).Return([]domain.WalletTransaction{
			{UserID: userID, AmountCents: 1000, Type: domain.TransactionTypeCredit, RunningBalanceCents: 1000},
		}, nil)

		_, _, err := svc.PayForBooking(ctx, userID, bookingID)
		assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
		walletRepo.AssertNotCalled(t, "AppendTransaction", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Already Paid", func(t *testing.T) {
		bookingRepo, _, walletRepo, _, _, _, svc := newBookingService()

		paid := unpaid()
		paid.PaymentStatus = domain.PaymentStatusPaid
		bookingRepo.On("GetByID", ctx, bookingID).Return(paid, nil)
		walletRepo.On("Ledger", ctx, userID).Return([]domain.WalletTransaction{
			{UserID: userID, AmountCents: 5000, Type: domain.TransactionTypeCredit, RunningBalanceCents: 5000},
		}, nil)

		_, _, err := svc.PayForBooking(ctx, userID, bookingID)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("Not Owner", func(t *testing.T) {
		bookingRepo, _, _, _, _, _, svc := newBookingService()

		bookingRepo.On("GetByID", ctx, bookingID).Return(unpaid(), nil)

		_, _, err := svc.PayForBooking(ctx, int32(99), bookingID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("Concurrent Append Conflict", func(t *testing.T) {
		bookingRepo, _, walletRepo, _, _, _, svc := newBookingService()

		bookingRepo.On("GetByID", ctx, bookingID).Return(unpaid(), nil)
		walletRepo.On("Ledger", ctx, userID).Return([]domain.WalletTransaction{
			{UserID: userID, AmountCents: 5000, Type: domain.TransactionTypeCredit, RunningBalanceCents: 5000},
		}, nil)
		walletRepo.On("AppendTransaction", ctx, mock.AnythingOfType("*domain.WalletTransaction"), int64(5000)).Return(domain.ErrConflict)

		_, _, err := svc.PayForBooking(ctx, userID, bookingID)
		assert.ErrorIs(t, err, domain.ErrConflict)
		bookingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestBookingService_ExtendBooking(t *testing.T) {
	ctx := context.Background()
	userID := int32(1)
	bookingID := int32(42)
	end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Adds Hours And Keeps Payment Status", func(t *testing.T) {
		bookingRepo, carRepo, _, _, _, _, svc := newBookingService()

		booking := &domain.Booking{
			ID:              bookingID,
			UserID:          userID,
			CarID:           7,
			RentalEnd:       end,
			TotalPriceCents: 3000,
			Status:          domain.BookingStatusActive,
			PaymentStatus:   domain.PaymentStatusPaid,
		}
		bookingRepo.On("GetByID", ctx, bookingID).Return(booking, nil)
		carRepo.On("GetByID", ctx, int32(7)).Return(&domain.Car{ID: 7, PricePerHourCents: 1500}, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		// 90 extra minutes bills as 2 full hours
		extended, err := svc.ExtendBooking(ctx, userID, bookingID, end.Add(90*time.Minute))
		assert.NoError(t, err)
		assert.Equal(t, int64(6000), extended.TotalPriceCents)
		assert.Equal(t, end.Add(90*time.Minute), extended.RentalEnd)
		assert.Equal(t, domain.PaymentStatusPaid, extended.PaymentStatus)
	})

	t.Run("New End Before Current End", func(t *testing.T) {
		bookingRepo, carRepo, _, _, _, _, svc := newBookingService()

		booking := &domain.Booking{ID: bookingID, UserID: userID, CarID: 7, RentalEnd: end}
		bookingRepo.On("GetByID", ctx, bookingID).Return(booking, nil)
		carRepo.On("GetByID", ctx, int32(7)).Return(&domain.Car{ID: 7, PricePerHourCents: 1500}, nil)

		_, err := svc.ExtendBooking(ctx, userID, bookingID, end.Add(-time.Hour))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestBookingService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	bookingID := int32(42)

	t.Run("Confirm From Pending", func(t *testing.T) {
		bookingRepo, _, _, _, _, _, svc := newBookingService()

		bookingRepo.On("GetByID", ctx, bookingID).Return(&domain.Booking{ID: bookingID, Status: domain.BookingStatusPending}, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

		booking, err := svc.ConfirmBooking(ctx, bookingID)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	})

	t.Run("Confirm From Wrong State", func(t *testing.T) {
		bookingRepo, _, _, _, _, _, svc := newBookingService()

		bookingRepo.On("GetByID", ctx, bookingID).Return(&domain.Booking{ID: bookingID, Status: domain.BookingStatusActive}, nil)

		_, err := svc.ConfirmBooking(ctx, bookingID)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("Complete Releases Car", func(t *testing.T) {
		bookingRepo, carRepo, _, _, _, _, svc := newBookingService()

		bookingRepo.On("GetByID", ctx, bookingID).Return(&domain.Booking{ID: bookingID, CarID: 7, Status: domain.BookingStatusActive}, nil)
		bookingRepo.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
		car := &domain.Car{ID: 7, Status: domain.CarStatusRented}
		carRepo.On("GetByID", ctx, int32(7)).Return(car, nil)
		carRepo.On("Update", ctx, car).Return(nil)

		booking, err := svc.CompleteBooking(ctx, bookingID)
		assert.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, booking.Status)
		assert.Equal(t, domain.CarStatusAvailable, car.Status)
	})

	t.Run("Cancel Completed Booking", func(t *testing.T) {
		bookingRepo, _, _, _, _, _, svc := newBookingService()

		bookingRepo.On("GetByID", ctx, bookingID).Return(&domain.Booking{ID: bookingID, UserID: 1, Status: domain.BookingStatusCompleted}, nil)

		_, err := svc.CancelBooking(ctx, 1, bookingID)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
