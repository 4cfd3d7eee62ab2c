package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ExerciseModel — katalog gerakan (ejercicio) yang dipakai rutina.
type ExerciseModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	Name        string         `gorm:"type:varchar(150);not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	MuscleGroup string         `gorm:"type:varchar(100)" json:"muscle_group"`
	Equipment   pq.StringArray `gorm:"type:text[]" json:"equipment"` // alat yang dibutuhkan
	VideoURL    string         `gorm:"type:varchar(500)" json:"video_url"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ExerciseModel) TableName() string {
	return "exercises"
}
