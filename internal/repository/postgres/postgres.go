package postgres

import (
	"database/sql"

	"edufleet-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.StudentRepository
	repository.ExamRepository
	repository.SeatPlanRepository
	repository.CarRepository
	repository.BookingRepository
	repository.WalletRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		ExamRepository:         NewExamRepository(db),
		SeatPlanRepository:     NewSeatPlanRepository(db),
		CarRepository:          NewCarRepository(db),
		BookingRepository:      NewBookingRepository(db),
		WalletRepository:       NewWalletRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
