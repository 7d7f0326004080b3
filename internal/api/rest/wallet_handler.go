package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/service"
)

// WalletHandler exposes the authenticated user's wallet endpoints.
type WalletHandler struct {
	walletSvc service.WalletService
}

func NewWalletHandler(walletSvc service.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

type creditWalletRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Message     string `json:"message"`
}

// Credit adds money to the wallet.
// POST /api/v1/wallet/credit
func (h *WalletHandler) Credit(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req creditWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	entry, err := h.walletSvc.AddToWallet(r.Context(), userID, req.AmountCents, req.Message)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// Balance returns the wallet balance in cents.
// GET /api/v1/wallet/balance
func (h *WalletHandler) Balance(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	balance, err := h.walletSvc.Balance(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]int64{"balance_cents": balance})
}

// Transactions returns the wallet ledger, newest first.
// GET /api/v1/wallet/transactions?page=&page_size=
func (h *WalletHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	page, pageSize := paging(r)

	txs, total, err := h.walletSvc.Transactions(r.Context(), userID, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"transactions": txs,
		"total":        total,
		"page":         page,
		"page_size":    pageSize,
	})
}
