package dto

import (
	"strings"
	"time"

	trainerModel "gymtrack_backend/internals/features/members/trainer/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateTrainerRequest struct {
	FirstName      string `json:"first_name" validate:"required,min=2,max=100"`
	LastName       string `json:"last_name" validate:"required,min=2,max=100"`
	DocumentNumber string `json:"document_number" validate:"required,min=4,max=30"`
	Email          string `json:"email" validate:"omitempty,email,max=255"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	Specialty      string `json:"specialty" validate:"omitempty,max=150"`
}

func (r *CreateTrainerRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.DocumentNumber = strings.TrimSpace(r.DocumentNumber)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Specialty = strings.TrimSpace(r.Specialty)
}

func (r *CreateTrainerRequest) ToModel() *trainerModel.TrainerModel {
	return &trainerModel.TrainerModel{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		DocumentNumber: r.DocumentNumber,
		Email:          r.Email,
		Phone:          r.Phone,
		Specialty:      r.Specialty,
	}
}

type UpdateTrainerRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=2,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=2,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,max=30"`
	Specialty *string `json:"specialty,omitempty" validate:"omitempty,max=150"`
}

func (r *UpdateTrainerRequest) Normalize() {
	if r.FirstName != nil {
		v := strings.TrimSpace(*r.FirstName)
		r.FirstName = &v
	}
	if r.LastName != nil {
		v := strings.TrimSpace(*r.LastName)
		r.LastName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Phone != nil {
		v := strings.TrimSpace(*r.Phone)
		r.Phone = &v
	}
	if r.Specialty != nil {
		v := strings.TrimSpace(*r.Specialty)
		r.Specialty = &v
	}
}

// document_number sengaja TIDAK bisa di-update — identitas dokumen tetap.
func (r *UpdateTrainerRequest) UpdatesMap(now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": now}
	if r.FirstName != nil {
		updates["first_name"] = *r.FirstName
	}
	if r.LastName != nil {
		updates["last_name"] = *r.LastName
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.Specialty != nil {
		updates["specialty"] = *r.Specialty
	}
	return updates
}

type DeleteTrainerRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type TrainerResponse struct {
	ID             string     `json:"id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	DocumentNumber string     `json:"document_number"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Specialty      string     `json:"specialty,omitempty"`
	DeletedReason  *string    `json:"deleted_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

func FromModel(m *trainerModel.TrainerModel) TrainerResponse {
	resp := TrainerResponse{
		ID:             m.ID.String(),
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		DocumentNumber: m.DocumentNumber,
		Email:          m.Email,
		Phone:          m.Phone,
		Specialty:      m.Specialty,
		DeletedReason:  m.DeletedReason,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		resp.DeletedAt = &t
	}
	return resp
}

func FromModels(ms []trainerModel.TrainerModel) []TrainerResponse {
	out := make([]TrainerResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
