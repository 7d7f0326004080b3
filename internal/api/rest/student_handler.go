package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/service"
)

// StudentHandler exposes student roster management endpoints (admin only).
type StudentHandler struct {
	studentSvc service.StudentService
}

func NewStudentHandler(studentSvc service.StudentService) *StudentHandler {
	return &StudentHandler{studentSvc: studentSvc}
}

type studentRequest struct {
	ClassID         int32  `json:"class_id"`
	SectionID       int32  `json:"section_id"`
	RollNumber      int32  `json:"roll_number"`
	Name            string `json:"name"`
	GuardianName    string `json:"guardian_name"`
	GuardianContact string `json:"guardian_contact"`
	UserID          *int32 `json:"user_id,omitempty"`
}

type studentListResponse struct {
	Students []domain.Student `json:"students"`
	Total    int32            `json:"total"`
	Page     int32            `json:"page"`
	PageSize int32            `json:"page_size"`
}

func (req *studentRequest) toDomain() (*domain.Student, error) {
	if req.ClassID <= 0 || req.SectionID <= 0 || req.RollNumber <= 0 {
		return nil, fmt.Errorf("%w: class_id, section_id and roll_number must be positive", domain.ErrValidation)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	return &domain.Student{
		ClassID:         req.ClassID,
		SectionID:       req.SectionID,
		RollNumber:      req.RollNumber,
		Name:            strings.TrimSpace(req.Name),
		GuardianName:    req.GuardianName,
		GuardianContact: req.GuardianContact,
		UserID:          req.UserID,
	}, nil
}

// Create registers a new student.
// POST /api/v1/students
func (h *StudentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req studentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	student, err := req.toDomain()
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.studentSvc.AddStudent(r.Context(), student); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, student)
}

// Get returns a single student by id.
// GET /api/v1/students/{id}
func (h *StudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	student, err := h.studentSvc.GetStudent(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, student)
}

// Update replaces a student's details.
// PUT /api/v1/students/{id}
func (h *StudentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req studentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	student, err := req.toDomain()
	if err != nil {
		respondError(w, err)
		return
	}
	student.ID = id
	if err := h.studentSvc.UpdateStudent(r.Context(), student); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, student)
}

// Delete removes a student.
// DELETE /api/v1/students/{id}
func (h *StudentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.studentSvc.RemoveStudent(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// List returns a paginated student roster.
// GET /api/v1/students?page=&page_size=
func (h *StudentHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := paging(r)

	students, total, err := h.studentSvc.ListStudents(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, studentListResponse{
		Students: students,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// Roster returns all students of one class+section ordered by roll number.
// GET /api/v1/classes/{classId}/sections/{sectionId}/students
func (h *StudentHandler) Roster(w http.ResponseWriter, r *http.Request) {
	classID, err := pathID(r, "classId")
	if err != nil {
		respondError(w, err)
		return
	}
	sectionID, err := pathID(r, "sectionId")
	if err != nil {
		respondError(w, err)
		return
	}

	students, err := h.studentSvc.Roster(r.Context(), classID, sectionID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"students": students})
}
