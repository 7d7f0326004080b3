package domain

import "time"

type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// WalletTransaction is one entry of a user's append-only wallet ledger.
// AmountCents is always positive; the direction comes from Type.
// RunningBalanceCents is the balance after this entry is applied.
type WalletTransaction struct {
	ID                  int32           `json:"id"`
	Reference           string          `json:"reference"`
	UserID              int32           `json:"user_id"`
	AmountCents         int64           `json:"amount_cents"`
	Type                TransactionType `json:"type"`
	Message             string          `json:"message"`
	RunningBalanceCents int64           `json:"running_balance_cents"`
	RelatedBookingID    *int32          `json:"related_booking_id,omitempty"`
	CreatedOn           time.Time       `json:"created_on"`
}
