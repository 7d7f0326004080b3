package service

import (
	"context"
	"fmt"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/repository"
)

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) AddStudent(ctx context.Context, student *domain.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}
	return s.studentRepo.Create(ctx, student)
}

func (s *studentService) GetStudent(ctx context.Context, id int32) (*domain.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}

func (s *studentService) UpdateStudent(ctx context.Context, student *domain.Student) error {
	if err := validateStudent(student); err != nil {
		return err
	}
	if _, err := s.studentRepo.GetByID(ctx, student.ID); err != nil {
		return err
	}
	return s.studentRepo.Update(ctx, student)
}

func (s *studentService) RemoveStudent(ctx context.Context, id int32) error {
	if _, err := s.studentRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.studentRepo.Delete(ctx, id)
}

func (s *studentService) ListStudents(ctx context.Context, page, pageSize int32) ([]domain.Student, int32, error) {
	return s.studentRepo.List(ctx, page, pageSize)
}

func (s *studentService) Roster(ctx context.Context, classID, sectionID int32) ([]domain.Student, error) {
	if classID == 0 || sectionID == 0 {
		return nil, fmt.Errorf("%w: class and section are required", domain.ErrValidation)
	}
	return s.studentRepo.ListByClassSection(ctx, classID, sectionID)
}

func validateStudent(student *domain.Student) error {
	if student.Name == "" {
		return fmt.Errorf("%w: student name is required", domain.ErrValidation)
	}
	if student.ClassID == 0 || student.SectionID == 0 {
		return fmt.Errorf("%w: class and section are required", domain.ErrValidation)
	}
	if student.RollNumber <= 0 {
		return fmt.Errorf("%w: roll number must be positive", domain.ErrValidation)
	}
	return nil
}
