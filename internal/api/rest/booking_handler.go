package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/service"
)

// BookingHandler exposes the rental booking lifecycle endpoints.
type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	CarID       int32  `json:"car_id"`
	RentalStart string `json:"rental_start"` // RFC 3339
	RentalEnd   string `json:"rental_end"`   // RFC 3339
}

type extendBookingRequest struct {
	NewEnd string `json:"new_end"` // RFC 3339
}

type payBookingResponse struct {
	Booking     *domain.Booking           `json:"booking"`
	Transaction *domain.WalletTransaction `json:"transaction"`
}

func parseRFC3339(field, raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC 3339", domain.ErrValidation, field)
	}
	return t, nil
}

// Create places a new booking for the authenticated user.
// POST /api/v1/bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	if req.CarID <= 0 {
		respondError(w, fmt.Errorf("%w: car_id is required", domain.ErrValidation))
		return
	}
	start, err := parseRFC3339("rental_start", req.RentalStart)
	if err != nil {
		respondError(w, err)
		return
	}
	end, err := parseRFC3339("rental_end", req.RentalEnd)
	if err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), userID, req.CarID, start, end)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, booking)
}

// Pay settles a booking from the user's wallet.
// POST /api/v1/bookings/{id}/pay
func (h *BookingHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	bookingID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	booking, entry, err := h.bookingSvc.PayForBooking(r.Context(), userID, bookingID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, payBookingResponse{Booking: booking, Transaction: entry})
}

// Extend pushes the rental end later and adds the additional hours to
// the booking total.
// POST /api/v1/bookings/{id}/extend
func (h *BookingHandler) Extend(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	bookingID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req extendBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	newEnd, err := parseRFC3339("new_end", req.NewEnd)
	if err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.bookingSvc.ExtendBooking(r.Context(), userID, bookingID, newEnd)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, booking)
}

// Cancel cancels a booking and frees the car.
// POST /api/v1/bookings/{id}/cancel
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	bookingID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.bookingSvc.CancelBooking(r.Context(), userID, bookingID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, booking)
}

// Confirm moves a pending booking to confirmed (admin only).
// POST /api/v1/bookings/{id}/confirm
func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.ConfirmBooking)
}

// Start moves a confirmed booking to active (admin only).
// POST /api/v1/bookings/{id}/start
func (h *BookingHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.StartBooking)
}

// Complete moves an active booking to completed (admin only).
// POST /api/v1/bookings/{id}/complete
func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.CompleteBooking)
}

func (h *BookingHandler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, bookingID int32) (*domain.Booking, error)) {
	bookingID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	booking, err := fn(r.Context(), bookingID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, booking)
}

// Get returns one booking owned by the authenticated user.
// GET /api/v1/bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	bookingID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), userID, bookingID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, booking)
}

// List returns the authenticated user's bookings, optionally filtered
// by status.
// GET /api/v1/bookings?status=&page=&page_size=
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	page, pageSize := paging(r)
	status := r.URL.Query().Get("status")

	bookings, total, err := h.bookingSvc.ListBookings(r.Context(), userID, status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"bookings":  bookings,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
