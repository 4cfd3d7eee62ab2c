package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationModel — notifikasi untuk trainer. Baris DB adalah source
// of truth; fan-out AMQP hanya advisory.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	TrainerID uuid.UUID `gorm:"type:uuid;not null;index" json:"trainer_id"`

	Title   string `gorm:"type:varchar(200);not null" json:"title"`
	Message string `gorm:"type:text;not null" json:"message"`

	// ref deep-link opsional: {"type":"plan","id":"..."}
	Ref datatypes.JSON `gorm:"type:jsonb" json:"ref,omitempty"`

	IsRead bool       `gorm:"not null;default:false;index" json:"is_read"`
	ReadAt *time.Time `json:"read_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
