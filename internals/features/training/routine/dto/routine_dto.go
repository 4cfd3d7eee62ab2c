package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	routineModel "gymtrack_backend/internals/features/training/routine/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type RoutineExerciseItem struct {
	ExerciseID string `json:"exercise_id" validate:"required,uuid4"`
	Sets       int    `json:"sets" validate:"required,gte=1,lte=20"`
	Reps       int    `json:"reps" validate:"required,gte=1,lte=100"`
	RestSecs   int    `json:"rest_secs" validate:"omitempty,gte=0,lte=600"`
	Position   int    `json:"position" validate:"omitempty,gte=0"`
	Notes      string `json:"notes" validate:"omitempty,max=1000"`
}

type CreateRoutineRequest struct {
	TrainerID   string                `json:"trainer_id" validate:"required,uuid4"`
	StudentID   *string               `json:"student_id,omitempty" validate:"omitempty,uuid4"`
	Name        string                `json:"name" validate:"required,min=2,max=150"`
	Description string                `json:"description" validate:"omitempty,max=5000"`
	Exercises   []RoutineExerciseItem `json:"exercises" validate:"omitempty,dive"`
}

func (r *CreateRoutineRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateRoutineRequest) ToModel(trainerID uuid.UUID) (*routineModel.RoutineModel, error) {
	m := &routineModel.RoutineModel{
		TrainerID:   trainerID,
		Name:        r.Name,
		Description: r.Description,
	}
	if r.StudentID != nil && *r.StudentID != "" {
		sid, err := uuid.Parse(*r.StudentID)
		if err != nil {
			return nil, err
		}
		m.StudentID = &sid
	}
	for i, item := range r.Exercises {
		eid, err := uuid.Parse(item.ExerciseID)
		if err != nil {
			return nil, err
		}
		pos := item.Position
		if pos == 0 {
			pos = i
		}
		m.Exercises = append(m.Exercises, routineModel.RoutineExerciseModel{
			ExerciseID: eid,
			Sets:       item.Sets,
			Reps:       item.Reps,
			RestSecs:   item.RestSecs,
			Position:   pos,
			Notes:      strings.TrimSpace(item.Notes),
		})
	}
	return m, nil
}

type UpdateRoutineRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	StudentID   *string `json:"student_id,omitempty" validate:"omitempty,uuid4"`
}

func (r *UpdateRoutineRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
}

func (r *UpdateRoutineRequest) UpdatesMap(now time.Time) (map[string]interface{}, error) {
	updates := map[string]interface{}{"updated_at": now}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.StudentID != nil {
		sid, err := uuid.Parse(*r.StudentID)
		if err != nil {
			return nil, err
		}
		updates["student_id"] = sid
	}
	return updates, nil
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type RoutineExerciseResponse struct {
	ExerciseID string `json:"exercise_id"`
	Sets       int    `json:"sets"`
	Reps       int    `json:"reps"`
	RestSecs   int    `json:"rest_secs"`
	Position   int    `json:"position"`
	Notes      string `json:"notes,omitempty"`
}

type RoutineResponse struct {
	ID          string                    `json:"id"`
	TrainerID   string                    `json:"trainer_id"`
	StudentID   *string                   `json:"student_id,omitempty"`
	Name        string                    `json:"name"`
	Description string                    `json:"description,omitempty"`
	Exercises   []RoutineExerciseResponse `json:"exercises"`
	CreatedAt   time.Time                 `json:"created_at"`
	UpdatedAt   time.Time                 `json:"updated_at"`
	DeletedAt   *time.Time                `json:"deleted_at,omitempty"`
}

func FromModel(m *routineModel.RoutineModel) RoutineResponse {
	resp := RoutineResponse{
		ID:          m.ID.String(),
		TrainerID:   m.TrainerID.String(),
		Name:        m.Name,
		Description: m.Description,
		Exercises:   make([]RoutineExerciseResponse, 0, len(m.Exercises)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.StudentID != nil {
		v := m.StudentID.String()
		resp.StudentID = &v
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		resp.DeletedAt = &t
	}
	for _, e := range m.Exercises {
		resp.Exercises = append(resp.Exercises, RoutineExerciseResponse{
			ExerciseID: e.ExerciseID.String(),
			Sets:       e.Sets,
			Reps:       e.Reps,
			RestSecs:   e.RestSecs,
			Position:   e.Position,
			Notes:      e.Notes,
		})
	}
	return resp
}

func FromModels(ms []routineModel.RoutineModel) []RoutineResponse {
	out := make([]RoutineResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
