package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"edufleet-backend/internal/domain"
	"edufleet-backend/internal/service"
)

// ExamHandler exposes exam management and seat-plan endpoints.
type ExamHandler struct {
	examSvc service.ExamService
}

func NewExamHandler(examSvc service.ExamService) *ExamHandler {
	return &ExamHandler{examSvc: examSvc}
}

type examRequest struct {
	Name    string `json:"name"`
	ClassID int32  `json:"class_id"`
	Date    string `json:"date"` // RFC 3339
}

type seatRuleRequest struct {
	StartRoll  int32  `json:"start_roll"`
	EndRoll    int32  `json:"end_roll"`
	Row        string `json:"row"`
	RoomNumber string `json:"room_number"`
}

type seatPlanRequest struct {
	ClassID   int32             `json:"class_id"`
	SectionID int32             `json:"section_id"`
	Rules     []seatRuleRequest `json:"rules"`
}

// Create registers a new exam.
// POST /api/v1/exams
func (h *ExamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req examRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.ClassID <= 0 {
		respondError(w, fmt.Errorf("%w: name and class_id are required", domain.ErrValidation))
		return
	}
	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		respondError(w, fmt.Errorf("%w: date must be RFC 3339", domain.ErrValidation))
		return
	}

	exam := &domain.Exam{Name: strings.TrimSpace(req.Name), ClassID: req.ClassID, Date: date}
	if err := h.examSvc.CreateExam(r.Context(), exam); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, exam)
}

// Get returns a single exam.
// GET /api/v1/exams/{id}
func (h *ExamHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	exam, err := h.examSvc.GetExam(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, exam)
}

// List returns the exams scheduled for a class.
// GET /api/v1/exams?class_id=
func (h *ExamHandler) List(w http.ResponseWriter, r *http.Request) {
	classID := queryInt32(r, "class_id", 0)
	if classID <= 0 {
		respondError(w, fmt.Errorf("%w: class_id query parameter is required", domain.ErrValidation))
		return
	}

	exams, err := h.examSvc.ListExams(r.Context(), classID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"exams": exams})
}

// GenerateSeatPlan builds and stores the seating arrangement for one
// class+section of an exam, replacing any previous plan.
// POST /api/v1/exams/{id}/seat-plan
func (h *ExamHandler) GenerateSeatPlan(w http.ResponseWriter, r *http.Request) {
	examID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var req seatPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, fmt.Errorf("%w: malformed request body", domain.ErrValidation))
		return
	}

	rules := make([]domain.SeatRule, 0, len(req.Rules))
	for _, rr := range req.Rules {
		rules = append(rules, domain.SeatRule{
			StartRoll:  rr.StartRoll,
			EndRoll:    rr.EndRoll,
			Row:        rr.Row,
			RoomNumber: rr.RoomNumber,
		})
	}

	seats, err := h.examSvc.GenerateSeatPlan(r.Context(), examID, req.ClassID, req.SectionID, rules)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{"seats": seats})
}

// GetSeatPlan returns the stored seating arrangement.
// GET /api/v1/exams/{id}/seat-plan?class_id=&section_id=
func (h *ExamHandler) GetSeatPlan(w http.ResponseWriter, r *http.Request) {
	examID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	classID := queryInt32(r, "class_id", 0)
	sectionID := queryInt32(r, "section_id", 0)
	if classID <= 0 || sectionID <= 0 {
		respondError(w, fmt.Errorf("%w: class_id and section_id query parameters are required", domain.ErrValidation))
		return
	}

	seats, err := h.examSvc.GetSeatPlan(r.Context(), examID, classID, sectionID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"seats": seats})
}
