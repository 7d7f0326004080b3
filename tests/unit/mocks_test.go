package unit

import (
	"context"
	"time"

	"edufleet-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockStudentRepo
type MockStudentRepo struct {
	mock.Mock
}

func (m *MockStudentRepo) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}
func (m *MockStudentRepo) GetByID(ctx context.Context, id int32) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}
func (m *MockStudentRepo) Update(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}
func (m *MockStudentRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockStudentRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.Student), args.Get(1).(int32), args.Error(2)
}
func (m *MockStudentRepo) ListByClassSection(ctx context.Context, classID, sectionID int32) ([]domain.Student, error) {
	args := m.Called(ctx, classID, sectionID)
	return args.Get(0).([]domain.Student), args.Error(1)
}

// MockExamRepo
type MockExamRepo struct {
	mock.Mock
}

func (m *MockExamRepo) Create(ctx context.Context, exam *domain.Exam) error {
	args := m.Called(ctx, exam)
	return args.Error(0)
}
func (m *MockExamRepo) GetByID(ctx context.Context, id int32) (*domain.Exam, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Exam), args.Error(1)
}
func (m *MockExamRepo) Update(ctx context.Context, exam *domain.Exam) error {
	args := m.Called(ctx, exam)
	return args.Error(0)
}
func (m *MockExamRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockExamRepo) ListByClass(ctx context.Context, classID int32) ([]domain.Exam, error) {
	args := m.Called(ctx, classID)
	return args.Get(0).([]domain.Exam), args.Error(1)
}

// MockSeatPlanRepo
type MockSeatPlanRepo struct {
	mock.Mock
}

func (m *MockSeatPlanRepo) ReplacePlan(ctx context.Context, examID, classID, sectionID int32, seats []domain.Seat) error {
	args := m.Called(ctx, examID, classID, sectionID, seats)
	return args.Error(0)
}
func (m *MockSeatPlanRepo) GetPlan(ctx context.Context, examID, classID, sectionID int32) ([]domain.Seat, error) {
	args := m.Called(ctx, examID, classID, sectionID)
	return args.Get(0).([]domain.Seat), args.Error(1)
}

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Car, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]domain.Car), args.Get(1).(int32), args.Error(2)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListActivePastEnd(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListUnpaidPendingBefore(ctx context.Context, cutoff time.Time) ([]domain.Booking, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListUnpaidConfirmed(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockWalletRepo
type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) AppendTransaction(ctx context.Context, tx *domain.WalletTransaction, priorBalanceCents int64) error {
	args := m.Called(ctx, tx, priorBalanceCents)
	return args.Error(0)
}
func (m *MockWalletRepo) Ledger(ctx context.Context, userID int32) ([]domain.WalletTransaction, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.WalletTransaction), args.Error(1)
}
func (m *MockWalletRepo) Balance(ctx context.Context, userID int32) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockWalletRepo) ListTransactions(ctx context.Context, userID int32, page, pageSize int32) ([]domain.WalletTransaction, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.WalletTransaction), args.Get(1).(int32), args.Error(2)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWalletCreditReceipt(ctx context.Context, email, name string, amountCents, balanceCents int64) error {
	args := m.Called(ctx, email, name, amountCents, balanceCents)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, name, reference string, totalPriceCents int64) error {
	args := m.Called(ctx, email, name, reference, totalPriceCents)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingReceipt(ctx context.Context, email, name, reference string, amountCents int64) error {
	args := m.Called(ctx, email, name, reference, amountCents)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReminder(ctx context.Context, email, name, reference string, totalPriceCents int64) error {
	args := m.Called(ctx, email, name, reference, totalPriceCents)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueNotice(ctx context.Context, email, name, reference string) error {
	args := m.Called(ctx, email, name, reference)
	return args.Error(0)
}
func (m *MockEmailService) SendSeatPlanPublished(ctx context.Context, email, studentName, examName, roomNumber, row string, seatNumber int32) error {
	args := m.Called(ctx, email, studentName, examName, roomNumber, row, seatNumber)
	return args.Error(0)
}
