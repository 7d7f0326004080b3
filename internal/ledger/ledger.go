// Package ledger holds the pure wallet accounting rules: appending to a
// user's append-only transaction ledger, settling a booking against it,
// and extending a booking's rental window. It performs no I/O and never
// mutates its inputs; callers persist the returned values and are
// responsible for serializing concurrent appends per user.
package ledger

import (
	"fmt"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/utils"
)

// Balance returns the running balance of the last ledger entry, or 0 for
// an empty ledger.
func Balance(txs []domain.WalletTransaction) int64 {
	if len(txs) == 0 {
		return 0
	}
	return txs[len(txs)-1].RunningBalanceCents
}

// Append adds a transaction to the ledger and returns the extended ledger
// along with the new entry. The amount must be positive. A debit is
// allowed to drive the balance negative here; balance sufficiency is
// enforced by Settle, not by the ledger itself.
func Append(txs []domain.WalletTransaction, amountCents int64, txType domain.TransactionType, message string) ([]domain.WalletTransaction, domain.WalletTransaction, error) {
	if amountCents <= 0 {
		return nil, domain.WalletTransaction{}, fmt.Errorf("%w: transaction amount must be positive", domain.ErrValidation)
	}
	if txType != domain.TransactionTypeCredit && txType != domain.TransactionTypeDebit {
		return nil, domain.WalletTransaction{}, fmt.Errorf("%w: unknown transaction type %q", domain.ErrValidation, txType)
	}

	balance := Balance(txs)
	if txType == domain.TransactionTypeCredit {
		balance += amountCents
	} else {
		balance -= amountCents
	}

	entry := domain.WalletTransaction{
		AmountCents:         amountCents,
		Type:                txType,
		Message:             message,
		RunningBalanceCents: balance,
		CreatedOn:           time.Now().UTC(),
	}
	if len(txs) > 0 {
		entry.UserID = txs[len(txs)-1].UserID
	}

	out := make([]domain.WalletTransaction, len(txs), len(txs)+1)
	copy(out, txs)
	return append(out, entry), entry, nil
}

// Settle pays for a booking out of the given ledger. Paying twice is a
// conflict; an insufficient balance rejects the whole operation with the
// ledger untouched. On success the returned booking is marked Paid and
// the returned entry is the debit that covers it.
func Settle(txs []domain.WalletTransaction, booking domain.Booking) ([]domain.WalletTransaction, domain.WalletTransaction, domain.Booking, error) {
	if booking.PaymentStatus == domain.PaymentStatusPaid {
		return nil, domain.WalletTransaction{}, booking, fmt.Errorf("%w: booking %s is already paid", domain.ErrConflict, booking.Reference)
	}
	if Balance(txs) < booking.TotalPriceCents {
		return nil, domain.WalletTransaction{}, booking, fmt.Errorf("%w: balance %d is below booking price %d", domain.ErrInsufficientFunds, Balance(txs), booking.TotalPriceCents)
	}

	msg := fmt.Sprintf("Payment for booking %s", booking.Reference)
	out, entry, err := Append(txs, booking.TotalPriceCents, domain.TransactionTypeDebit, msg)
	if err != nil {
		return nil, domain.WalletTransaction{}, booking, err
	}
	entry.UserID = booking.UserID
	entry.RelatedBookingID = &booking.ID
	out[len(out)-1] = entry

	booking.PaymentStatus = domain.PaymentStatusPaid
	return out, entry, booking, nil
}

// Extend pushes a booking's rental end forward and adds the incremental
// hours to its total price at the car's hourly rate. The payment status
// is left alone: a booking that was already Paid stays Paid even though
// it now costs more, matching the platform's historical behavior.
func Extend(booking domain.Booking, car domain.Car, newEnd time.Time) (domain.Booking, error) {
	if !newEnd.After(booking.RentalEnd) {
		return booking, fmt.Errorf("%w: new rental end must be after the current rental end", domain.ErrValidation)
	}

	extraCents, err := utils.RentalPriceCents(booking.RentalEnd, newEnd, car.PricePerHourCents)
	if err != nil {
		return booking, err
	}

	booking.RentalEnd = newEnd
	booking.TotalPriceCents += extraCents
	return booking, nil
}
