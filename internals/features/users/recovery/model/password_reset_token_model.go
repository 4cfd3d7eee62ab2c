package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetTokenModel menyimpan token reset password.
// Yang disimpan cuma HASH (SHA-256) dari secret, bukan secret-nya.
// Baris tidak pernah dihapus — jadi audit trail.
type PasswordResetTokenModel struct {
	ID     uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user_id"`

	TokenHash []byte `gorm:"column:token_hash;type:bytea;not null;uniqueIndex" json:"-"`

	ExpiredAt time.Time `gorm:"column:expired_at;type:timestamptz;not null" json:"expired_at"`
	Used      bool      `gorm:"column:used;not null;default:false" json:"used"`

	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;autoCreateTime" json:"created_at"`
}

// TableName override
func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
