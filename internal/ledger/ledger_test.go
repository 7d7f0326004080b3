package ledger

import (
	"errors"
	"testing"
	"time"

	"edufleet-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBalance(t *testing.T) {
	t.Run("Empty ledger", func(t *testing.T) {
		assert.Equal(t, int64(0), Balance(nil))
	})

	t.Run("Last entry wins", func(t *testing.T) {
		txs := []domain.WalletTransaction{
			{RunningBalanceCents: 500},
			{RunningBalanceCents: 300},
		}
		assert.Equal(t, int64(300), Balance(txs))
	})
}

func TestAppend(t *testing.T) {
	t.Run("Credit on empty ledger", func(t *testing.T) {
		txs, entry, err := Append(nil, 500, domain.TransactionTypeCredit, "top up")
		assert.NoError(t, err)
		assert.Len(t, txs, 1)
		assert.Equal(t, int64(500), entry.RunningBalanceCents)
		assert.Equal(t, domain.TransactionTypeCredit, entry.Type)
	})

	t.Run("Debit subtracts", func(t *testing.T) {
		start := []domain.WalletTransaction{{RunningBalanceCents: 500}}
		txs, entry, err := Append(start, 200, domain.TransactionTypeDebit, "fee")
		assert.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, int64(300), entry.RunningBalanceCents)
	})

	t.Run("Debit may go negative", func(t *testing.T) {
		_, entry, err := Append(nil, 100, domain.TransactionTypeDebit, "fee")
		assert.NoError(t, err)
		assert.Equal(t, int64(-100), entry.RunningBalanceCents)
	})

	t.Run("Input ledger untouched", func(t *testing.T) {
		start := []domain.WalletTransaction{{RunningBalanceCents: 500}}
		_, _, err := Append(start, 200, domain.TransactionTypeDebit, "fee")
		assert.NoError(t, err)
		assert.Len(t, start, 1)
		assert.Equal(t, int64(500), start[0].RunningBalanceCents)
	})

	t.Run("Zero amount rejected", func(t *testing.T) {
		_, _, err := Append(nil, 0, domain.TransactionTypeCredit, "nope")
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("Negative amount rejected", func(t *testing.T) {
		_, _, err := Append(nil, -10, domain.TransactionTypeCredit, "nope")
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})

	t.Run("Balance is credits minus debits", func(t *testing.T) {
		var txs []domain.WalletTransaction
		var err error
		steps := []struct {
			amount int64
			txType domain.TransactionType
		}{
			{1000, domain.TransactionTypeCredit},
			{250, domain.TransactionTypeDebit},
			{400, domain.TransactionTypeCredit},
			{150, domain.TransactionTypeDebit},
		}
		for _, s := range steps {
			txs, _, err = Append(txs, s.amount, s.txType, "step")
			assert.NoError(t, err)
		}
		assert.Equal(t, int64(1000-250+400-150), Balance(txs))
	})
}

func TestSettle(t *testing.T) {
	booking := domain.Booking{
		ID:              7,
		Reference:       "bk-7",
		UserID:          1,
		TotalPriceCents: 500,
		PaymentStatus:   domain.PaymentStatusPending,
	}

	t.Run("Success", func(t *testing.T) {
		funded, _, err := Append(nil, 500, domain.TransactionTypeCredit, "top up")
		assert.NoError(t, err)

		txs, entry, paid, err := Settle(funded, booking)
		assert.NoError(t, err)
		assert.Len(t, txs, 2)
		assert.Equal(t, domain.PaymentStatusPaid, paid.PaymentStatus)
		assert.Equal(t, int64(0), entry.RunningBalanceCents)
		assert.Equal(t, domain.TransactionTypeDebit, entry.Type)
		assert.Equal(t, int32(7), *entry.RelatedBookingID)
		assert.Equal(t, int32(1), entry.UserID)
	})

	t.Run("Insufficient funds leaves ledger unchanged", func(t *testing.T) {
		short := []domain.WalletTransaction{{RunningBalanceCents: 0}}
		b := booking
		b.TotalPriceCents = 1

		txs, _, unpaid, err := Settle(short, b)
		assert.True(t, errors.Is(err, domain.ErrInsufficientFunds))
		assert.Nil(t, txs)
		assert.Equal(t, domain.PaymentStatusPending, unpaid.PaymentStatus)
		assert.Len(t, short, 1)
	})

	t.Run("Double payment is a conflict", func(t *testing.T) {
		funded, _, err := Append(nil, 1000, domain.TransactionTypeCredit, "top up")
		assert.NoError(t, err)

		txs, _, paid, err := Settle(funded, booking)
		assert.NoError(t, err)

		again, _, _, err := Settle(txs, paid)
		assert.True(t, errors.Is(err, domain.ErrConflict))
		assert.Nil(t, again)
		assert.Len(t, txs, 2) // no second debit
	})
}

func TestExtend(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	car := domain.Car{PricePerHourCents: 10000}
	booking := domain.Booking{
		RentalStart:     start,
		RentalEnd:       start.Add(2 * time.Hour),
		TotalPriceCents: 20000,
		PaymentStatus:   domain.PaymentStatusPaid,
	}

	t.Run("Adds ceil hours at car rate", func(t *testing.T) {
		extended, err := Extend(booking, car, booking.RentalEnd.Add(90*time.Minute))
		assert.NoError(t, err)
		assert.Equal(t, int64(40000), extended.TotalPriceCents) // +2 hours
		assert.Equal(t, booking.RentalEnd.Add(90*time.Minute), extended.RentalEnd)
	})

	t.Run("Payment status untouched", func(t *testing.T) {
		extended, err := Extend(booking, car, booking.RentalEnd.Add(time.Hour))
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusPaid, extended.PaymentStatus)
	})

	t.Run("New end must move forward", func(t *testing.T) {
		_, err := Extend(booking, car, booking.RentalEnd)
		assert.True(t, errors.Is(err, domain.ErrValidation))

		_, err = Extend(booking, car, booking.RentalEnd.Add(-time.Minute))
		assert.True(t, errors.Is(err, domain.ErrValidation))
	})
}
