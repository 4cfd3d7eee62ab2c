package dto

import (
	"strings"
	"time"

	uModel "gymtrack_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest — untuk register / create by admin
type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=student trainer admin"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.TrimSpace(r.Role)
}

// ToModel — konversi ke model (ingat: hash password di service!)
func (r *CreateUserRequest) ToModel() *uModel.UserModel {
	return &uModel.UserModel{
		UserName: r.UserName,
		Email:    r.Email,
		Password: r.Password, // hash di service
		Role:     r.Role,
		IsActive: true,
	}
}

// UpdateUserRequest — partial update (pakai pointer agar bisa bedakan omit vs null)
type UpdateUserRequest struct {
	UserName *string `json:"user_name,omitempty" validate:"omitempty,min=3,max=50"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// Normalize — trims if present
func (r *UpdateUserRequest) Normalize() {
	if r.UserName != nil {
		v := strings.TrimSpace(*r.UserName)
		r.UserName = &v
	}
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
}

// UpdatesMap — map kolom→nilai untuk GORM Updates; updated_at SELALU ikut
// supaya tidak ada jalur update yang lupa refresh timestamp.
func (r *UpdateUserRequest) UpdatesMap(now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": now}
	if r.UserName != nil {
		updates["user_name"] = *r.UserName
	}
	if r.Email != nil {
		updates["email"] = *r.Email
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type UserResponse struct {
	ID        string  `json:"id"`
	UserName  string  `json:"user_name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	TrainerID *string `json:"trainer_id,omitempty"`
	StudentID *string `json:"student_id,omitempty"`
	IsActive  bool    `json:"is_active"`
}

func FromModel(m *uModel.UserModel) UserResponse {
	resp := UserResponse{
		ID:       m.ID.String(),
		UserName: m.UserName,
		Email:    m.Email,
		Role:     m.Role,
		IsActive: m.IsActive,
	}
	if m.TrainerID != nil {
		v := m.TrainerID.String()
		resp.TrainerID = &v
	}
	if m.StudentID != nil {
		v := m.StudentID.String()
		resp.StudentID = &v
	}
	return resp
}
