package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentModel — alumno binaan satu trainer. Soft delete via deleted_at,
// baris tidak pernah dihapus fisik.
type StudentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TrainerID uuid.UUID `gorm:"type:uuid;not null;index" json:"trainer_id"`

	FirstName string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Email     string     `gorm:"type:varchar(255)" json:"email"`
	Phone     string     `gorm:"type:varchar(30)" json:"phone"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Goal      string     `gorm:"type:text" json:"goal"` // objetivo latihan si alumno

	// diisi saat soft delete (alasan keluar: pindah, berhenti, dst.)
	DeletedReason *string `gorm:"type:text" json:"deleted_reason,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
