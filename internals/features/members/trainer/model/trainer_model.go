package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrainerModel — entrenador. document_number unik (duplikat → 409).
type TrainerModel struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`

	FirstName      string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName       string `gorm:"type:varchar(100);not null" json:"last_name"`
	DocumentNumber string `gorm:"type:varchar(30);not null;uniqueIndex:uq_trainers_document_number" json:"document_number"`
	Email          string `gorm:"type:varchar(255)" json:"email"`
	Phone          string `gorm:"type:varchar(30)" json:"phone"`
	Specialty      string `gorm:"type:varchar(150)" json:"specialty"`

	DeletedReason *string `gorm:"type:text" json:"deleted_reason,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (TrainerModel) TableName() string {
	return "trainers"
}
