package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	planModel "gymtrack_backend/internals/features/training/plan/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreatePlanRequest struct {
	StudentID string     `json:"student_id" validate:"required,uuid4"`
	TrainerID string     `json:"trainer_id" validate:"required,uuid4"`
	RoutineID *string    `json:"routine_id,omitempty" validate:"omitempty,uuid4"`
	Status    string     `json:"status" validate:"omitempty,max=50"`
	Name      string     `json:"name" validate:"required,min=2,max=150"`
	StartDate time.Time  `json:"start_date" validate:"required"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

func (r *CreatePlanRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Status = strings.TrimSpace(strings.ToLower(r.Status))
}

type UpdatePlanRequest struct {
	Name      *string    `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Status    *string    `json:"status,omitempty" validate:"omitempty,max=50"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	RoutineID *string    `json:"routine_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *UpdatePlanRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Status != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Status))
		r.Status = &v
	}
}

// UpdatesMap — status di-resolve ke status_id oleh service, bukan di sini.
func (r *UpdatePlanRequest) UpdatesMap(now time.Time, statusID *uuid.UUID) (map[string]interface{}, error) {
	updates := map[string]interface{}{"updated_at": now}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if statusID != nil {
		updates["status_id"] = *statusID
	}
	if r.StartDate != nil {
		updates["start_date"] = *r.StartDate
	}
	if r.EndDate != nil {
		updates["end_date"] = *r.EndDate
	}
	if r.RoutineID != nil {
		rid, err := uuid.Parse(*r.RoutineID)
		if err != nil {
			return nil, err
		}
		updates["routine_id"] = rid
	}
	return updates, nil
}

// CreateEvaluationRequest — skor WAJIB bulat 0..5; referensi wajib ada.
type CreateEvaluationRequest struct {
	PlanID    string `json:"plan_id" validate:"required,uuid4"`
	StudentID string `json:"student_id" validate:"required,uuid4"`
	Score     *int   `json:"score" validate:"required,gte=0,lte=5"`
	Comment   string `json:"comment" validate:"omitempty,max=2000"`
}

func (r *CreateEvaluationRequest) Normalize() {
	r.Comment = strings.TrimSpace(r.Comment)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type EvaluationResponse struct {
	ID        string    `json:"id"`
	PlanID    string    `json:"plan_id"`
	StudentID string    `json:"student_id"`
	TrainerID string    `json:"trainer_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func EvaluationFromModel(m *planModel.PlanEvaluationModel) EvaluationResponse {
	return EvaluationResponse{
		ID:        m.ID.String(),
		PlanID:    m.PlanID.String(),
		StudentID: m.StudentID.String(),
		TrainerID: m.TrainerID.String(),
		Score:     m.Score,
		Comment:   m.Comment,
		CreatedAt: m.CreatedAt,
	}
}

type PlanResponse struct {
	ID        string     `json:"id"`
	StudentID string     `json:"student_id"`
	TrainerID string     `json:"trainer_id"`
	RoutineID *string    `json:"routine_id,omitempty"`
	Status    string     `json:"status"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	Evaluations []EvaluationResponse `json:"evaluations,omitempty"`
}

func FromModel(m *planModel.PlanModel) PlanResponse {
	resp := PlanResponse{
		ID:        m.ID.String(),
		StudentID: m.StudentID.String(),
		TrainerID: m.TrainerID.String(),
		Status:    m.Status.Name,
		Name:      m.Name,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.RoutineID != nil {
		v := m.RoutineID.String()
		resp.RoutineID = &v
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		resp.DeletedAt = &t
	}
	for i := range m.Evaluations {
		resp.Evaluations = append(resp.Evaluations, EvaluationFromModel(&m.Evaluations[i]))
	}
	return resp
}

func FromModels(ms []planModel.PlanModel) []PlanResponse {
	out := make([]PlanResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
