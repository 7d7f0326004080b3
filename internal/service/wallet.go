package service

import (
	"context"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/ledger"
	"edufleet-backend/internal/repository"

	"github.com/google/uuid"
)

type walletService struct {
	walletRepo repository.WalletRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
}

func NewWalletService(walletRepo repository.WalletRepository, userRepo repository.UserRepository, emailSvc EmailService) WalletService {
	return &walletService{
		walletRepo: walletRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
	}
}

func (s *walletService) AddToWallet(ctx context.Context, userID int32, amountCents int64, message string) (*domain.WalletTransaction, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	txs, err := s.walletRepo.Ledger(ctx, userID)
	if err != nil {
		return nil, err
	}
	priorBalance := ledger.Balance(txs)

	if message == "" {
		message = "Wallet top-up"
	}
	_, entry, err := ledger.Append(txs, amountCents, domain.TransactionTypeCredit, message)
	if err != nil {
		return nil, err
	}
	entry.UserID = userID
	entry.Reference = uuid.NewString()

	if err := s.walletRepo.AppendTransaction(ctx, &entry, priorBalance); err != nil {
		return nil, err
	}

	_ = s.emailSvc.SendWalletCreditReceipt(ctx, user.Email, user.Name, entry.AmountCents, entry.RunningBalanceCents)
	return &entry, nil
}

func (s *walletService) Balance(ctx context.Context, userID int32) (int64, error) {
	return s.walletRepo.Balance(ctx, userID)
}

func (s *walletService) Transactions(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WalletTransaction, int32, error) {
	return s.walletRepo.ListTransactions(ctx, userID, page, pageSize)
}
