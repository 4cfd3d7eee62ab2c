package service

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	notifModel "gymtrack_backend/internals/features/notifications/model"
	notifPublisher "gymtrack_backend/internals/features/notifications/publisher"
)

// Ref — penunjuk deep-link opsional pada notifikasi.
type Ref struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// BuildNotification rakit model siap-insert. Insert dilakukan caller
// (biasanya di dalam transaksi bareng flag idempoten sweep).
func BuildNotification(trainerID uuid.UUID, title, message string, ref *Ref) (*notifModel.NotificationModel, error) {
	m := &notifModel.NotificationModel{
		TrainerID: trainerID,
		Title:     title,
		Message:   message,
	}
	if ref != nil {
		b, err := sonic.Marshal(ref)
		if err != nil {
			return nil, err
		}
		m.Ref = datatypes.JSON(b)
	}
	return m, nil
}

// Create insert notifikasi lalu fan-out setelah tersimpan.
func Create(db *gorm.DB, trainerID uuid.UUID, title, message string, ref *Ref) (*notifModel.NotificationModel, error) {
	m, err := BuildNotification(trainerID, title, message, ref)
	if err != nil {
		return nil, err
	}
	if err := db.Create(m).Error; err != nil {
		return nil, err
	}
	PublishCreated(m)
	return m, nil
}

// PublishCreated — fan-out advisory SETELAH baris commit. Fire-and-forget.
func PublishCreated(m *notifModel.NotificationModel) {
	notifPublisher.Publish(notifPublisher.NotificationEvent{
		NotificationID: m.ID.String(),
		TrainerID:      m.TrainerID.String(),
		Title:          m.Title,
		Message:        m.Message,
		CreatedAt:      m.CreatedAt,
	})
}

// MarkRead tandai satu notifikasi terbaca (idempoten).
func MarkRead(db *gorm.DB, trainerID, notificationID uuid.UUID) (int64, error) {
	now := time.Now().UTC()
	res := db.Model(&notifModel.NotificationModel{}).
		Where("id = ? AND trainer_id = ? AND is_read = false", notificationID, trainerID).
		Updates(map[string]interface{}{
			"is_read":    true,
			"read_at":    now,
			"updated_at": now,
		})
	return res.RowsAffected, res.Error
}

// MarkAllRead tandai semua notifikasi trainer terbaca.
func MarkAllRead(db *gorm.DB, trainerID uuid.UUID) (int64, error) {
	now := time.Now().UTC()
	res := db.Model(&notifModel.NotificationModel{}).
		Where("trainer_id = ? AND is_read = false", trainerID).
		Updates(map[string]interface{}{
			"is_read":    true,
			"read_at":    now,
			"updated_at": now,
		})
	return res.RowsAffected, res.Error
}
