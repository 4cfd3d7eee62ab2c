package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlanStatusModel — katalog estado plan (completado / incompleto /
// en progreso). Seed lewat migrasi, jarang berubah.
type PlanStatusModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_plan_statuses_name" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PlanStatusModel) TableName() string {
	return "plan_statuses"
}

// Nama estado yang dikenal. Matching by exact string.
const (
	StatusCompleted  = "completado"
	StatusIncomplete = "incompleto"
	StatusInProgress = "en progreso"
)

// PlanModel — plan de entrenamiento satu alumno, dipegang satu trainer.
type PlanModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	StudentID uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	TrainerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"trainer_id"`
	RoutineID *uuid.UUID `gorm:"type:uuid;index" json:"routine_id,omitempty"`
	StatusID  uuid.UUID  `gorm:"type:uuid;not null" json:"status_id"`

	Name      string     `gorm:"type:varchar(150);not null" json:"name"`
	StartDate time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate   *time.Time `gorm:"type:date;index" json:"end_date,omitempty"`

	// flag idempoten untuk sweep harian "plan berakhir tanpa penilaian"
	RatedNotified bool `gorm:"not null;default:false" json:"rated_notified"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Status      PlanStatusModel       `gorm:"foreignKey:StatusID" json:"status,omitempty"`
	Evaluations []PlanEvaluationModel `gorm:"foreignKey:PlanID" json:"evaluations,omitempty"`
}

func (PlanModel) TableName() string {
	return "plans"
}

// PlanEvaluationModel — penilaian alumno atas plan yang selesai,
// skor bulat 0..5. Dasar statistik rating.
type PlanEvaluationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PlanID    uuid.UUID `gorm:"type:uuid;not null;index" json:"plan_id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	TrainerID uuid.UUID `gorm:"type:uuid;not null;index" json:"trainer_id"`

	Score   int    `gorm:"not null" json:"score"` // 0..5, divalidasi di ingest
	Comment string `gorm:"type:text" json:"comment"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PlanEvaluationModel) TableName() string {
	return "plan_evaluations"
}
