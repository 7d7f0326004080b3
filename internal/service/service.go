package service

import (
	"context"
	"time"

	"edufleet-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (string, string, error)                             // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type StudentService interface {
	AddStudent(ctx context.Context, student *domain.Student) error
	GetStudent(ctx context.Context, id int32) (*domain.Student, error)
	UpdateStudent(ctx context.Context, student *domain.Student) error
	RemoveStudent(ctx context.Context, id int32) error
	ListStudents(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error)
	// Roster returns the students of one class+section ordered by roll number.
	Roster(ctx context.Context, classID, sectionID int32) ([]domain.Student, error)
}

type ExamService interface {
	CreateExam(ctx context.Context, exam *domain.Exam) error
	GetExam(ctx context.Context, id int32) (*domain.Exam, error)
	ListExams(ctx context.Context, classID int32) ([]domain.Exam, error)
	// GenerateSeatPlan partitions the class+section roster into seats
	// following the given rules and replaces any previously stored plan.
	GenerateSeatPlan(ctx context.Context, examID, classID, sectionID int32, rules []domain.SeatRule) ([]domain.Seat, error)
	GetSeatPlan(ctx context.Context, examID, classID, sectionID int32) ([]domain.Seat, error)
}

type CarService interface {
	AddCar(ctx context.Context, car *domain.Car) error
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	UpdateCar(ctx context.Context, car *domain.Car) error
	RemoveCar(ctx context.Context, id int32) error
	ListCars(ctx context.Context, status string, page, pageSize int32) ([]domain.Car, int32, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, userID, carID int32, start, end time.Time) (*domain.Booking, error)
	PayForBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, *domain.WalletTransaction, error)
	ExtendBooking(ctx context.Context, userID, bookingID int32, newEnd time.Time) (*domain.Booking, error)
	CancelBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID int32) (*domain.Booking, error)
	StartBooking(ctx context.Context, bookingID int32) (*domain.Booking, error)
	CompleteBooking(ctx context.Context, bookingID int32) (*domain.Booking, error)
	GetBooking(ctx context.Context, userID, bookingID int32) (*domain.Booking, error)
	ListBookings(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error)
}

type WalletService interface {
	AddToWallet(ctx context.Context, userID int32, amountCents int64, message string) (*domain.WalletTransaction, error)
	Balance(ctx context.Context, userID int32) (int64, error)
	Transactions(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WalletTransaction, int32, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type EmailService interface {
	SendWalletCreditReceipt(ctx context.Context, email, name string, amountCents, balanceCents int64) error
	SendBookingConfirmation(ctx context.Context, email, name, reference string, totalPriceCents int64) error
	SendBookingReceipt(ctx context.Context, email, name, reference string, amountCents int64) error
	SendPaymentReminder(ctx context.Context, email, name, reference string, totalPriceCents int64) error
	SendOverdueNotice(ctx context.Context, email, name, reference string) error
	SendSeatPlanPublished(ctx context.Context, email, studentName, examName, roomNumber, row string, seatNumber int32) error
}
