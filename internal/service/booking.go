package service

import (
	"context"
	"fmt"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/ledger"
	"edufleet-backend/internal/repository"
	"edufleet-backend/internal/utils"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	carRepo     repository.CarRepository
	walletRepo  repository.WalletRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	noteRepo    repository.NotificationRepository
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	carRepo repository.CarRepository,
	walletRepo repository.WalletRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		walletRepo:  walletRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		noteRepo:    noteRepo,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID, carID int32, start, end time.Time) (*domain.Booking, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car.Status != domain.CarStatusAvailable {
		return nil, fmt.Errorf("%w: car %d is not available", domain.ErrConflict, carID)
	}

	totalCents, err := utils.RentalPriceCents(start, end, car.PricePerHourCents)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		Reference:       uuid.NewString(),
		UserID:          userID,
		CarID:           carID,
		RentalStart:     start,
		RentalEnd:       end,
		TotalPriceCents: totalCents,
		Status:          domain.BookingStatusPending,
		PaymentStatus:   domain.PaymentStatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}

	car.Status = domain.CarStatusRented
	if err := s.carRepo.Update(ctx, car); err != nil {
		return nil, err
	}

	// Notify the customer
	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		_ = s.emailSvc.SendBookingConfirmation(ctx, user.Email, user.Name, booking.Reference, booking.TotalPriceCents)
		notif := &domain.Notification{
			UserID:  userID,
			Title:   "Booking Created",
			Message: fmt.Sprintf("Your booking %s for %s is awaiting payment", booking.Reference, car.Model),
			Attributes: map[string]string{
				"type":       "BOOKING_CREATED",
				"booking_id": fmt.Sprintf("%d", booking.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}

	return booking, nil
}

// PayForBooking settles a booking against the user's wallet ledger. The
// balance check and debit run on a ledger snapshot; the repository append
// is conditional on that snapshot's balance, so a concurrent settlement
// on the same wallet surfaces as a conflict instead of a double debit.
func (s *bookingService) PayForBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, *domain.WalletTransaction, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, nil, err
	}
	if booking.UserID != userID {
		return nil, nil, fmt.Errorf("%w: booking %d", domain.ErrForbidden, bookingID)
	}

	txs, err := s.walletRepo.Ledger(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	priorBalance := ledger.Balance(txs)

	_, entry, paid, err := ledger.Settle(txs, *booking)
	if err != nil {
		return nil, nil, err
	}
	entry.Reference = uuid.NewString()

	if err := s.walletRepo.AppendTransaction(ctx, &entry, priorBalance); err != nil {
		return nil, nil, err
	}
	if err := s.bookingRepo.Update(ctx, &paid); err != nil {
		return nil, nil, err
	}

	if user, err := s.userRepo.GetByID(ctx, userID); err == nil {
		_ = s.emailSvc.SendBookingReceipt(ctx, user.Email, user.Name, paid.Reference, entry.AmountCents)
		notif := &domain.Notification{
			UserID:  userID,
			Title:   "Booking Paid",
			Message: fmt.Sprintf("Payment received for booking %s", paid.Reference),
			Attributes: map[string]string{
				"type":       "BOOKING_PAID",
				"booking_id": fmt.Sprintf("%d", paid.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, notif)
	}

	return &paid, &entry, nil
}

func (s *bookingService) ExtendBooking(ctx context.Context, userID, bookingID int32, newEnd time.Time) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrForbidden, bookingID)
	}

	car, err := s.carRepo.GetByID(ctx, booking.CarID)
	if err != nil {
		return nil, err
	}

	extended, err := ledger.Extend(*booking, *car, newEnd)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Update(ctx, &extended); err != nil {
		return nil, err
	}
	return &extended, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrForbidden, bookingID)
	}
	if booking.Status == domain.BookingStatusCancelled || booking.Status == domain.BookingStatusCompleted {
		return nil, fmt.Errorf("%w: booking %d is %s", domain.ErrConflict, bookingID, booking.Status)
	}

	booking.Status = domain.BookingStatusCancelled
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	s.releaseCar(ctx, booking.CarID)
	return booking, nil
}

func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID int32) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, domain.BookingStatusPending, domain.BookingStatusConfirmed)
}

func (s *bookingService) StartBooking(ctx context.Context, bookingID int32) (*domain.Booking, error) {
	return s.transition(ctx, bookingID, domain.BookingStatusConfirmed, domain.BookingStatusActive)
}

func (s *bookingService) CompleteBooking(ctx context.Context, bookingID int32) (*domain.Booking, error) {
	booking, err := s.transition(ctx, bookingID, domain.BookingStatusActive, domain.BookingStatusCompleted)
	if err != nil {
		return nil, err
	}
	s.releaseCar(ctx, booking.CarID)
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("%w: booking %d", domain.ErrForbidden, bookingID)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	return s.bookingRepo.ListByUser(ctx, userID, status, page, pageSize)
}

func (s *bookingService) transition(ctx context.Context, bookingID int32, from, to domain.BookingStatus) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Status != from {
		return nil, fmt.Errorf("%w: booking %d is %s, expected %s", domain.ErrConflict, bookingID, booking.Status, from)
	}
	booking.Status = to
	if err := s.bookingRepo.Update(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) releaseCar(ctx context.Context, carID int32) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return
	}
	car.Status = domain.CarStatusAvailable
	_ = s.carRepo.Update(ctx, car)
}
