package jobs

import (
	"context"
	"fmt"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/logger"
)

// MarkOverdueBookings flags active bookings whose rental end has passed
// and notifies the renter once.
func (jr *JobRunner) MarkOverdueBookings() {
	jr.runWithRecovery("MarkOverdueBookings", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		bookings, err := jr.store.BookingRepository.ListActivePastEnd(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue bookings", "error", err)
			return
		}

		count := 0
		for i := range bookings {
			booking := bookings[i]
			booking.OverdueNotified = &now
			if err := jr.store.BookingRepository.Update(ctx, &booking); err != nil {
				logger.Error("Failed to flag overdue booking", "booking_id", booking.ID, "error", err)
				continue
			}
			count++

			user, err := jr.store.UserRepository.GetByID(ctx, booking.UserID)
			if err != nil {
				logger.Error("Failed to load renter for overdue notice", "booking_id", booking.ID, "error", err)
				continue
			}

			_ = jr.services.Email.SendOverdueNotice(ctx, user.Email, user.Name, booking.Reference)
			_ = jr.store.NotificationRepository.Create(ctx, &domain.Notification{
				UserID:  booking.UserID,
				Title:   "Rental overdue",
				Message: fmt.Sprintf("Your rental %s ended on %s. Please return the car.", booking.Reference, booking.RentalEnd.Format(time.RFC3339)),
				Attributes: map[string]string{
					"booking_id": fmt.Sprintf("%d", booking.ID),
					"reference":  booking.Reference,
				},
			})

			logger.Debug("Flagged booking as overdue",
				"booking_id", booking.ID,
				"user_id", booking.UserID,
				"rental_end", booking.RentalEnd)
		}

		logger.Info("Marked bookings as overdue", "count", count)
	})
}

// ReleaseExpiredPendingBookings cancels unpaid pending bookings older
// than the configured TTL and puts their cars back in the fleet.
func (jr *JobRunner) ReleaseExpiredPendingBookings() {
	jr.runWithRecovery("ReleaseExpiredPendingBookings", func() {
		ctx := context.Background()
		ttl := time.Duration(jr.config.Booking.PendingTTLMinutes) * time.Minute
		cutoff := time.Now().UTC().Add(-ttl)

		bookings, err := jr.store.BookingRepository.ListUnpaidPendingBefore(ctx, cutoff)
		if err != nil {
			logger.Error("Failed to list expired pending bookings", "error", err)
			return
		}

		count := 0
		for i := range bookings {
			booking := bookings[i]
			booking.Status = domain.BookingStatusCancelled
			if err := jr.store.BookingRepository.Update(ctx, &booking); err != nil {
				logger.Error("Failed to cancel expired booking", "booking_id", booking.ID, "error", err)
				continue
			}

			car, err := jr.store.CarRepository.GetByID(ctx, booking.CarID)
			if err == nil && car.Status == domain.CarStatusRented {
				car.Status = domain.CarStatusAvailable
				if err := jr.store.CarRepository.Update(ctx, car); err != nil {
					logger.Error("Failed to release car for expired booking", "car_id", car.ID, "error", err)
				}
			}

			_ = jr.store.NotificationRepository.Create(ctx, &domain.Notification{
				UserID:  booking.UserID,
				Title:   "Booking expired",
				Message: fmt.Sprintf("Booking %s was cancelled because it was not paid in time.", booking.Reference),
				Attributes: map[string]string{
					"booking_id": fmt.Sprintf("%d", booking.ID),
					"reference":  booking.Reference,
				},
			})
			count++
		}

		logger.Info("Released expired pending bookings", "count", count, "cutoff", cutoff)
	})
}

// SendPaymentReminders emails every renter with a confirmed but unpaid
// booking.
func (jr *JobRunner) SendPaymentReminders() {
	jr.runWithRecovery("SendPaymentReminders", func() {
		ctx := context.Background()

		bookings, err := jr.store.BookingRepository.ListUnpaidConfirmed(ctx)
		if err != nil {
			logger.Error("Failed to list unpaid confirmed bookings", "error", err)
			return
		}

		count := 0
		for i := range bookings {
			booking := bookings[i]

			user, err := jr.store.UserRepository.GetByID(ctx, booking.UserID)
			if err != nil {
				logger.Error("Failed to load renter for payment reminder", "booking_id", booking.ID, "error", err)
				continue
			}

			if err := jr.services.Email.SendPaymentReminder(ctx, user.Email, user.Name, booking.Reference, booking.TotalPriceCents); err != nil {
				logger.Error("Failed to send payment reminder", "booking_id", booking.ID, "error", err)
				continue
			}
			count++
		}

		logger.Info("Sent payment reminders", "count", count)
	})
}
