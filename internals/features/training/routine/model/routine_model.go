package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoutineModel — rutina latihan milik satu trainer, bisa di-assign ke alumno.
type RoutineModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TrainerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"trainer_id"`
	StudentID *uuid.UUID `gorm:"type:uuid;index" json:"student_id,omitempty"`

	Name        string `gorm:"type:varchar(150);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Exercises []RoutineExerciseModel `gorm:"foreignKey:RoutineID" json:"exercises,omitempty"`
}

func (RoutineModel) TableName() string {
	return "routines"
}

// RoutineExerciseModel — baris penghubung rutina↔ejercicio.
// Identitas = pasangan (routine_id, exercise_id); ikut ter-soft-delete
// bersama rutinanya dengan timestamp yang SAMA.
type RoutineExerciseModel struct {
	RoutineID  uuid.UUID `gorm:"type:uuid;primaryKey" json:"routine_id"`
	ExerciseID uuid.UUID `gorm:"type:uuid;primaryKey" json:"exercise_id"`

	Sets     int    `gorm:"not null;default:3" json:"sets"`
	Reps     int    `gorm:"not null;default:10" json:"reps"`
	RestSecs int    `gorm:"not null;default:60" json:"rest_secs"`
	Position int    `gorm:"not null;default:0" json:"position"` // urutan di dalam rutina
	Notes    string `gorm:"type:text" json:"notes"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (RoutineExerciseModel) TableName() string {
	return "routine_exercises"
}
