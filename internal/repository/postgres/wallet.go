package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/logger"
	"edufleet-backend/internal/repository"
)

type walletRepository struct {
	db *sql.DB
}

func NewWalletRepository(db *sql.DB) repository.WalletRepository {
	return &walletRepository{db: db}
}

const walletColumns = `id, reference, user_id, amount_cents, type, message, running_balance_cents, related_booking_id, created_on`

// AppendTransaction serializes ledger mutation per user: it locks the
// user row, re-reads the latest running balance under the lock, and
// refuses the insert if it no longer matches what the caller computed
// against. Two concurrent debits can therefore never both apply on the
// same prior balance.
func (r *walletRepository) AppendTransaction(ctx context.Context, tx *domain.WalletTransaction, priorBalanceCents int64) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer dbTx.Rollback()

	var userID int32
	err = dbTx.QueryRowContext(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, tx.UserID).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: user %d", domain.ErrNotFound, tx.UserID)
	}
	if err != nil {
		return err
	}

	var current int64
	err = dbTx.QueryRowContext(ctx,
		`SELECT running_balance_cents FROM wallet_transactions WHERE user_id = $1 ORDER BY id DESC LIMIT 1`,
		tx.UserID).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		current = 0
	} else if err != nil {
		return err
	}

	if current != priorBalanceCents {
		return fmt.Errorf("%w: wallet balance moved from %d to %d during settlement", domain.ErrConflict, priorBalanceCents, current)
	}

	query := `INSERT INTO wallet_transactions (reference, user_id, amount_cents, type, message, running_balance_cents, related_booking_id, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	err = dbTx.QueryRowContext(ctx, query, tx.Reference, tx.UserID, tx.AmountCents, tx.Type, tx.Message, tx.RunningBalanceCents, tx.RelatedBookingID, time.Now()).Scan(&tx.ID)
	if err != nil {
		return err
	}

	logger.DatabaseResult("AppendTransaction", 1, nil, "user_id", tx.UserID, "type", tx.Type)
	return dbTx.Commit()
}

func (r *walletRepository) Ledger(ctx context.Context, userID int32) ([]domain.WalletTransaction, error) {
	query := `SELECT ` + walletColumns + ` FROM wallet_transactions WHERE user_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

func (r *walletRepository) Balance(ctx context.Context, userID int32) (int64, error) {
	var balance int64
	query := `SELECT running_balance_cents FROM wallet_transactions WHERE user_id = $1 ORDER BY id DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&balance)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	return balance, err
}

func (r *walletRepository) ListTransactions(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WalletTransaction, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM wallet_transactions WHERE user_id = $1`, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + walletColumns + ` FROM wallet_transactions WHERE user_id = $1 ORDER BY id DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	txs, err := scanTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return txs, count, nil
}

func scanTransactions(rows *sql.Rows) ([]domain.WalletTransaction, error) {
	var txs []domain.WalletTransaction
	for rows.Next() {
		var tx domain.WalletTransaction
		if err := rows.Scan(&tx.ID, &tx.Reference, &tx.UserID, &tx.AmountCents, &tx.Type, &tx.Message, &tx.RunningBalanceCents, &tx.RelatedBookingID, &tx.CreatedOn); err != nil {
			return nil, err
		}
		txs = append(txs, tx)
	}
	return txs, rows.Err()
}
