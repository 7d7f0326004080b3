package service

import (
	"context"
	"fmt"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/repository"
)

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) AddCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	if car.Status == "" {
		car.Status = domain.CarStatusAvailable
	}
	return s.carRepo.Create(ctx, car)
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

func (s *carService) UpdateCar(ctx context.Context, car *domain.Car) error {
	if err := validateCar(car); err != nil {
		return err
	}
	if _, err := s.carRepo.GetByID(ctx, car.ID); err != nil {
		return err
	}
	return s.carRepo.Update(ctx, car)
}

func (s *carService) RemoveCar(ctx context.Context, id int32) error {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if car.Status == domain.CarStatusRented {
		return fmt.Errorf("%w: car %d is rented out", domain.ErrConflict, id)
	}
	return s.carRepo.Delete(ctx, id)
}

func (s *carService) ListCars(ctx context.Context, status string, page, pageSize int32) ([]domain.Car, int32, error) {
	return s.carRepo.List(ctx, status, page, pageSize)
}

func validateCar(car *domain.Car) error {
	if car.RegistrationNumber == "" || car.Model == "" {
		return fmt.Errorf("%w: registration number and model are required", domain.ErrValidation)
	}
	if car.PricePerHourCents <= 0 {
		return fmt.Errorf("%w: price per hour must be positive", domain.ErrValidation)
	}
	return nil
}
