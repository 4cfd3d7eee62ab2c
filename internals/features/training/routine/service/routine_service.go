package service

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	routineModel "gymtrack_backend/internals/features/training/routine/model"
)

// SoftDeleteRoutine — hapus rutina BESERTA baris routine_exercises-nya
// dalam satu transaksi. Parent dan child dicap deleted_at yang sama
// supaya audit trail konsisten.
func SoftDeleteRoutine(db *gorm.DB, routineID uuid.UUID) (int64, error) {
	now := time.Now().UTC()
	var affected int64

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&routineModel.RoutineModel{}).
			Where("id = ? AND deleted_at IS NULL", routineID).
			Update("deleted_at", now)
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&routineModel.RoutineExerciseModel{}).
			Where("routine_id = ? AND deleted_at IS NULL", routineID).
			Update("deleted_at", now).Error
	})
	return affected, err
}

// ReplaceExercises — ganti seluruh isi rutina dalam satu transaksi.
// Baris lama dihapus fisik (PK komposit — kalau cuma soft-delete,
// exercise yang sama tidak bisa dimasukkan lagi), baris baru di-insert,
// rutina di-stamp updated_at.
func ReplaceExercises(db *gorm.DB, routineID uuid.UUID, items []routineModel.RoutineExerciseModel) error {
	now := time.Now().UTC()

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().
			Where("routine_id = ?", routineID).
			Delete(&routineModel.RoutineExerciseModel{}).Error; err != nil {
			return err
		}

		for i := range items {
			items[i].RoutineID = routineID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}

		return tx.Model(&routineModel.RoutineModel{}).
			Where("id = ?", routineID).
			Update("updated_at", now).Error
	})
}
