package repository

import (
	"context"
	"time"

	"edufleet-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id int32) (*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error)
	// ListByClassSection returns the roster for one class+section,
	// ordered ascending by roll number.
	ListByClassSection(ctx context.Context, classID, sectionID int32) ([]domain.Student, error)
}

type ExamRepository interface {
	Create(ctx context.Context, exam *domain.Exam) error
	GetByID(ctx context.Context, id int32) (*domain.Exam, error)
	Update(ctx context.Context, exam *domain.Exam) error
	Delete(ctx context.Context, id int32) error
	ListByClass(ctx context.Context, classID int32) ([]domain.Exam, error)
}

type SeatPlanRepository interface {
	// ReplacePlan atomically swaps the stored seat plan for one
	// exam+class+section with the given seats.
	ReplacePlan(ctx context.Context, examID, classID, sectionID int32, seats []domain.Seat) error
	GetPlan(ctx context.Context, examID, classID, sectionID int32) ([]domain.Seat, error)
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Car, int32, error)
}

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
	// ListActivePastEnd returns active bookings whose rental end has
	// passed and which have not been flagged as overdue yet.
	ListActivePastEnd(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
	// ListUnpaidPendingBefore returns unpaid pending bookings created
	// before the cutoff.
	ListUnpaidPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error)
	// ListUnpaidConfirmed returns confirmed bookings still awaiting payment.
	ListUnpaidConfirmed(ctx context.Context) ([]domain.Booking, error)
}

type WalletRepository interface {
	// AppendTransaction inserts the transaction only if the user's
	// latest running balance still equals priorBalanceCents, locking the
	// wallet rows for the duration. A mismatch means a concurrent append
	// won the race and is reported as domain.ErrConflict. This is the
	// per-user serialization point for ledger mutation.
	AppendTransaction(ctx context.Context, tx *domain.WalletTransaction, priorBalanceCents int64) error
	// Ledger returns the user's full transaction sequence, oldest first.
	Ledger(ctx context.Context, userID int32) ([]domain.WalletTransaction, error)
	Balance(ctx context.Context, userID int32) (int64, error)
	ListTransactions(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WalletTransaction, int32, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
