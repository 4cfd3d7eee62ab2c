package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	appointmentModel "gymtrack_backend/internals/features/appointments/model"
)

// SoftDeleteAppointment — turno + baris appointment_students dihapus
// lunak dalam satu transaksi, timestamp sama.
func SoftDeleteAppointment(db *gorm.DB, appointmentID uuid.UUID) (int64, error) {
	now := time.Now().UTC()
	var affected int64

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&appointmentModel.AppointmentModel{}).
			Where("id = ? AND deleted_at IS NULL", appointmentID).
			Update("deleted_at", now)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&appointmentModel.AppointmentStudentModel{}).
			Where("appointment_id = ? AND deleted_at IS NULL", appointmentID).
			Update("deleted_at", now).Error
	})
	return affected, err
}
