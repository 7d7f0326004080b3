package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/service"
)

// CarHandler exposes fleet management endpoints. Listing is open to any
// authenticated user; mutations are admin only.
type CarHandler struct {
	carSvc service.CarService
}

func NewCarHandler(carSvc service.CarService) *CarHandler {
	return &CarHandler{carSvc: carSvc}
}

type carRequest struct {
	RegistrationNumber string `json:"registration_number"`
	Model              string `json:"model"`
	Seats              int32  `json:"seats"`
	PricePerHourCents  int64  `json:"price_per_hour_cents"`
	Status             string `json:"status"`
}

func (req *carRequest) toDomain() (*domain.Car, error) {
	if strings.TrimSpace(req.RegistrationNumber) == "" || strings.TrimSpace(req.Model) == "" {
		return nil, fmt.Errorf("%w: registration_number and model are required", domain.ErrValidation)
	}
	if req.PricePerHourCents <= 0 {
		return nil, fmt.Errorf("%w: price_per_hour_cents must be positive", domain.ErrValidation)
	}
	status := domain.CarStatus(req.Status)
	if req.Status == "" {
		status = domain.CarStatusAvailable
	}
	switch status {
	case domain.CarStatusAvailable, domain.CarStatusRented, domain.CarStatusMaintenance:
	default:
		return nil, fmt.Errorf("%w: unknown car status %q", domain.ErrValidation, req.Status)
	}
	return &domain.Car{
		RegistrationNumber: strings.TrimSpace(req.RegistrationNumber),
		Model:              strings.TrimSpace(req.Model),
		Seats:              req.Seats,
		PricePerHourCents:  req.PricePerHourCents,
		Status:             status,
	}, nil
}

// Create adds a car to the fleet.
// POST /api/v1/cars
func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	car, err := req.toDomain()
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.carSvc.AddCar(r.Context(), car); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, car)
}

// Get returns a single car.
// GET /api/v1/cars/{id}
func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	car, err := h.carSvc.GetCar(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, car)
}

// Update replaces a car's details.
// PUT /api/v1/cars/{id}
func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	car, err := req.toDomain()
	if err != nil {
		respondError(w, err)
		return
	}
	car.ID = id
	if err := h.carSvc.UpdateCar(r.Context(), car); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, car)
}

// Delete removes a car from the fleet.
// DELETE /api/v1/cars/{id}
func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.carSvc.RemoveCar(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// List returns a paginated fleet view, optionally filtered by status.
// GET /api/v1/cars?status=&page=&page_size=
func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paging(r)
	status := r.URL.Query().Get("status")

	cars, total, err := h.carSvc.ListCars(r.Context(), status, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"cars":      cars,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}
