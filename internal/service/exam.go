package service

import (
	"context"
	"fmt"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/logger"
	"edufleet-backend/internal/repository"
	"edufleet-backend/internal/seating"
)

type examService struct {
	examRepo     repository.ExamRepository
	seatPlanRepo repository.SeatPlanRepository
	studentRepo  repository.StudentRepository
	userRepo     repository.UserRepository
	emailSvc     EmailService
	noteRepo     repository.NotificationRepository
}

func NewExamService(
	examRepo repository.ExamRepository,
	seatPlanRepo repository.SeatPlanRepository,
	studentRepo repository.StudentRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	noteRepo repository.NotificationRepository,
) ExamService {
	return &examService{
		examRepo:     examRepo,
		seatPlanRepo: seatPlanRepo,
		studentRepo:  studentRepo,
		userRepo:     userRepo,
		emailSvc:     emailSvc,
		noteRepo:     noteRepo,
	}
}

func (s *examService) CreateExam(ctx context.Context, exam *domain.Exam) error {
	if exam.Name == "" || exam.ClassID == 0 {
		return fmt.Errorf("%w: exam name and class are required", domain.ErrValidation)
	}
	return s.examRepo.Create(ctx, exam)
}

func (s *examService) GetExam(ctx context.Context, id int32) (*domain.Exam, error) {
	return s.examRepo.GetByID(ctx, id)
}

func (s *examService) ListExams(ctx context.Context, classID int32) ([]domain.Exam, error) {
	return s.examRepo.ListByClass(ctx, classID)
}

func (s *examService) GenerateSeatPlan(ctx context.Context, examID, classID, sectionID int32, rules []domain.SeatRule) ([]domain.Seat, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	roster, err := s.studentRepo.ListByClassSection(ctx, classID, sectionID)
	if err != nil {
		return nil, err
	}
	if len(roster) == 0 {
		return nil, fmt.Errorf("%w: no students in class %d section %d", domain.ErrNotFound, classID, sectionID)
	}

	seats, err := seating.Allocate(roster, rules, classID, sectionID, examID)
	if err != nil {
		return nil, err
	}

	if err := s.seatPlanRepo.ReplacePlan(ctx, examID, classID, sectionID, seats); err != nil {
		return nil, err
	}
	logger.Info("Seat plan generated", "exam_id", examID, "class_id", classID, "section_id", sectionID, "seats", len(seats))

	s.notifySeated(ctx, exam, roster, seats)
	return seats, nil
}

func (s *examService) GetSeatPlan(ctx context.Context, examID, classID, sectionID int32) ([]domain.Seat, error) {
	seats, err := s.seatPlanRepo.GetPlan(ctx, examID, classID, sectionID)
	if err != nil {
		return nil, err
	}
	if len(seats) == 0 {
		return nil, fmt.Errorf("%w: no seat plan for exam %d", domain.ErrNotFound, examID)
	}
	return seats, nil
}

// notifySeated fans out best-effort notifications to seated students that
// have a linked platform account. Failures are logged, never propagated.
func (s *examService) notifySeated(ctx context.Context, exam *domain.Exam, roster []domain.Student, seats []domain.Seat) {
	byID := make(map[int32]domain.Student, len(roster))
	for _, st := range roster {
		byID[st.ID] = st
	}

	for _, seat := range seats {
		if seat.StudentID == nil {
			continue
		}
		student, ok := byID[*seat.StudentID]
		if !ok || student.UserID == nil {
			continue
		}

		user, err := s.userRepo.GetByID(ctx, *student.UserID)
		if err != nil {
			logger.Warn("Seat plan notification skipped", "student_id", student.ID, "error", err)
			continue
		}

		note := &domain.Notification{
			UserID:  user.ID,
			Title:   "Exam Seat Assigned",
			Message: fmt.Sprintf("Seat %d, room %s, row %s for %s", seat.SeatNumber, seat.RoomNumber, seat.Row, exam.Name),
			Attributes: map[string]string{
				"type":    "SEAT_PLAN_PUBLISHED",
				"exam_id": fmt.Sprintf("%d", exam.ID),
			},
		}
		_ = s.noteRepo.Create(ctx, note)
		_ = s.emailSvc.SendSeatPlanPublished(ctx, user.Email, student.Name, exam.Name, seat.RoomNumber, seat.Row, seat.SeatNumber)
	}
}
