package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	appointmentModel "gymtrack_backend/internals/features/appointments/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type CreateAppointmentRequest struct {
	TrainerID  string    `json:"trainer_id" validate:"required,uuid4"`
	Title      string    `json:"title" validate:"required,min=2,max=150"`
	Notes      string    `json:"notes" validate:"omitempty,max=2000"`
	StartsAt   time.Time `json:"starts_at" validate:"required"`
	EndsAt     time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	StudentIDs []string  `json:"student_ids" validate:"omitempty,dive,uuid4"`
}

func (r *CreateAppointmentRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Notes = strings.TrimSpace(r.Notes)
}

func (r *CreateAppointmentRequest) ToModel(trainerID uuid.UUID) (*appointmentModel.AppointmentModel, error) {
	m := &appointmentModel.AppointmentModel{
		TrainerID: trainerID,
		Title:     r.Title,
		Notes:     r.Notes,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
	}
	for _, sidStr := range r.StudentIDs {
		sid, err := uuid.Parse(sidStr)
		if err != nil {
			return nil, err
		}
		m.Students = append(m.Students, appointmentModel.AppointmentStudentModel{
			StudentID: sid,
		})
	}
	return m, nil
}

type UpdateAppointmentRequest struct {
	Title    *string    `json:"title,omitempty" validate:"omitempty,min=2,max=150"`
	Notes    *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
	StartsAt *time.Time `json:"starts_at,omitempty"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
}

func (r *UpdateAppointmentRequest) Normalize() {
	if r.Title != nil {
		v := strings.TrimSpace(*r.Title)
		r.Title = &v
	}
	if r.Notes != nil {
		v := strings.TrimSpace(*r.Notes)
		r.Notes = &v
	}
}

// UpdatesMap — geser jadwal me-reset pre_notification_sent supaya
// pengingat dikirim ulang untuk jam yang baru.
func (r *UpdateAppointmentRequest) UpdatesMap(now time.Time) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": now}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Notes != nil {
		updates["notes"] = *r.Notes
	}
	if r.StartsAt != nil {
		updates["starts_at"] = *r.StartsAt
		updates["pre_notification_sent"] = false
	}
	if r.EndsAt != nil {
		updates["ends_at"] = *r.EndsAt
	}
	return updates
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type AppointmentStudentResponse struct {
	StudentID string `json:"student_id"`
	Attended  *bool  `json:"attended,omitempty"`
}

type AppointmentResponse struct {
	ID                  string                       `json:"id"`
	TrainerID           string                       `json:"trainer_id"`
	Title               string                       `json:"title"`
	Notes               string                       `json:"notes,omitempty"`
	StartsAt            time.Time                    `json:"starts_at"`
	EndsAt              time.Time                    `json:"ends_at"`
	PreNotificationSent bool                         `json:"pre_notification_sent"`
	Students            []AppointmentStudentResponse `json:"students"`
	CreatedAt           time.Time                    `json:"created_at"`
	UpdatedAt           time.Time                    `json:"updated_at"`
	DeletedAt           *time.Time                   `json:"deleted_at,omitempty"`
}

func FromModel(m *appointmentModel.AppointmentModel) AppointmentResponse {
	resp := AppointmentResponse{
		ID:                  m.ID.String(),
		TrainerID:           m.TrainerID.String(),
		Title:               m.Title,
		Notes:               m.Notes,
		StartsAt:            m.StartsAt,
		EndsAt:              m.EndsAt,
		PreNotificationSent: m.PreNotificationSent,
		Students:            make([]AppointmentStudentResponse, 0, len(m.Students)),
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		resp.DeletedAt = &t
	}
	for _, s := range m.Students {
		resp.Students = append(resp.Students, AppointmentStudentResponse{
			StudentID: s.StudentID.String(),
			Attended:  s.Attended,
		})
	}
	return resp
}

func FromModels(ms []appointmentModel.AppointmentModel) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
