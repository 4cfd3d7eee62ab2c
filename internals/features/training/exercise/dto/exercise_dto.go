package dto

import (
	"strings"
	"time"

	"github.com/lib/pq"

	exerciseModel "gymtrack_backend/internals/features/training/exercise/model"
)

type CreateExerciseRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=150"`
	Description string   `json:"description" validate:"omitempty,max=5000"`
	MuscleGroup string   `json:"muscle_group" validate:"omitempty,max=100"`
	Equipment   []string `json:"equipment" validate:"omitempty,dive,max=100"`
	VideoURL    string   `json:"video_url" validate:"omitempty,url,max=500"`
}

func (r *CreateExerciseRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.MuscleGroup = strings.TrimSpace(r.MuscleGroup)
	r.VideoURL = strings.TrimSpace(r.VideoURL)
	for i := range r.Equipment {
		r.Equipment[i] = strings.TrimSpace(r.Equipment[i])
	}
}

func (r *CreateExerciseRequest) ToModel() *exerciseModel.ExerciseModel {
	return &exerciseModel.ExerciseModel{
		Name:        r.Name,
		Description: r.Description,
		MuscleGroup: r.MuscleGroup,
		Equipment:   pq.StringArray(r.Equipment),
		VideoURL:    r.VideoURL,
	}
}

type UpdateExerciseRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=2,max=150"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=5000"`
	MuscleGroup *string   `json:"muscle_group,omitempty" validate:"omitempty,max=100"`
	Equipment   *[]string `json:"equipment,omitempty" validate:"omitempty,dive,max=100"`
	VideoURL    *string   `json:"video_url,omitempty" validate:"omitempty,url,max=500"`
}

func (r *UpdateExerciseRequest) Normalize() {
	if r.Name != nil {
		v := strings.TrimSpace(*r.Name)
		r.Name = &v
	}
	if r.Description != nil {
		v := strings.TrimSpace(*r.Description)
		r.Description = &v
	}
	if r.MuscleGroup != nil {
		v := strings.TrimSpace(*r.MuscleGroup)
		r.MuscleGroup = &v
	}
	if r.VideoURL != nil {
		v := strings.TrimSpace(*r.VideoURL)
		r.VideoURL = &v
	}
}

func (r *UpdateExerciseRequest) UpdatesMap(now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": now}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.MuscleGroup != nil {
		updates["muscle_group"] = *r.MuscleGroup
	}
	if r.Equipment != nil {
		updates["equipment"] = pq.StringArray(*r.Equipment)
	}
	if r.VideoURL != nil {
		updates["video_url"] = *r.VideoURL
	}
	return updates
}

type ExerciseResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	MuscleGroup string    `json:"muscle_group,omitempty"`
	Equipment   []string  `json:"equipment,omitempty"`
	VideoURL    string    `json:"video_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromModel(m *exerciseModel.ExerciseModel) ExerciseResponse {
	return ExerciseResponse{
		ID:          m.ID.String(),
		Name:        m.Name,
		Description: m.Description,
		MuscleGroup: m.MuscleGroup,
		Equipment:   []string(m.Equipment),
		VideoURL:    m.VideoURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func FromModels(ms []exerciseModel.ExerciseModel) []ExerciseResponse {
	out := make([]ExerciseResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
