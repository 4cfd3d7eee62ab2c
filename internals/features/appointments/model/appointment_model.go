package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentModel — turno (janji latihan) milik satu trainer, bisa
// diikuti beberapa alumno lewat appointment_students.
type AppointmentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TrainerID uuid.UUID `gorm:"type:uuid;not null;index" json:"trainer_id"`

	Title    string    `gorm:"type:varchar(150);not null" json:"title"`
	Notes    string    `gorm:"type:text" json:"notes"`
	StartsAt time.Time `gorm:"not null;index" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at"`

	// flag idempoten sweep pengingat 1 jam sebelum mulai
	PreNotificationSent bool `gorm:"not null;default:false" json:"pre_notification_sent"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Students []AppointmentStudentModel `gorm:"foreignKey:AppointmentID" json:"students,omitempty"`
}

func (AppointmentModel) TableName() string {
	return "appointments"
}

// AppointmentStudentModel — baris penghubung turno↔alumno, identitas
// pasangan (appointment_id, student_id). Ikut soft delete turnonya.
type AppointmentStudentModel struct {
	AppointmentID uuid.UUID `gorm:"type:uuid;primaryKey" json:"appointment_id"`
	StudentID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"student_id"`

	Attended *bool `gorm:"" json:"attended,omitempty"` // null = belum dicatat

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AppointmentStudentModel) TableName() string {
	return "appointment_students"
}
