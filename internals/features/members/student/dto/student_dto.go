package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	studentModel "gymtrack_backend/internals/features/members/student/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateStudentRequest struct {
	TrainerID string     `json:"trainer_id" validate:"required,uuid4"`
	FirstName string     `json:"first_name" validate:"required,min=2,max=100"`
	LastName  string     `json:"last_name" validate:"required,min=2,max=100"`
	Email     string     `json:"email" validate:"omitempty,email,max=255"`
	Phone     string     `json:"phone" validate:"omitempty,max=30"`
	BirthDate *time.Time `json:"birth_date"`
	Goal      string     `json:"goal" validate:"omitempty,max=2000"`
}

func (r *CreateStudentRequest) Normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Goal = strings.TrimSpace(r.Goal)
}

func (r *CreateStudentRequest) ToModel(trainerID uuid.UUID) *studentModel.StudentModel {
	return &studentModel.StudentModel{
		TrainerID: trainerID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		BirthDate: r.BirthDate,
		Goal:      r.Goal,
	}
}

// UpdateStudentRequest — partial update, pointer untuk bedakan omit vs isi
type UpdateStudentRequest struct {
	FirstName *string    `json:"first_name,omitempty" validate:"omitempty,min=2,max=100"`
	LastName  *string    `json:"last_name,omitempty" validate:"omitempty,min=2,max=100"`
	Email     *string    `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Phone     *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Goal      *string    `json:"goal,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateStudentRequest) Normalize() {
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
	if r.Goal != nil {
		v := strings.TrimSpace(*r.Goal)
		r.Goal = &v
	}
}

// UpdatesMap — kolom→nilai untuk GORM Updates; updated_at SELALU ikut.
func (r *UpdateStudentRequest) UpdatesMap(now time.Time) map[string]interface{} {
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
	if r.BirthDate != nil {
		updates["birth_date"] = *r.BirthDate
	}
	if r.Goal != nil {
		updates["goal"] = *r.Goal
	}
	return updates
}

// DeleteStudentRequest — alasan opsional saat soft delete
type DeleteStudentRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type StudentResponse struct {
	ID            string     `json:"id"`
	TrainerID     string     `json:"trainer_id"`
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	BirthDate     *time.Time `json:"birth_date,omitempty"`
	Goal          string     `json:"goal,omitempty"`
	DeletedReason *string    `json:"deleted_reason,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty"`
}

func FromModel(m *studentModel.StudentModel) StudentResponse {
	resp := StudentResponse{
		ID:            m.ID.String(),
		TrainerID:     m.TrainerID.String(),
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Email:         m.Email,
		Phone:         m.Phone,
		BirthDate:     m.BirthDate,
		Goal:          m.Goal,
		DeletedReason: m.DeletedReason,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		resp.DeletedAt = &t
	}
	return resp
}

func FromModels(ms []studentModel.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
