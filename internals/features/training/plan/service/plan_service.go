package service

import (
	"errors"
	"log"

	"gorm.io/gorm"

	planModel "gymtrack_backend/internals/features/training/plan/model"
)

var ErrNoStatuses = errors.New("katalog estado kosong")

// ResolveStatus — cari estado by nama persis; kalau tidak ada, fallback
// ke estado pertama yang tersedia (katalog kosong = error, bukan panic).
func ResolveStatus(db *gorm.DB, name string) (*planModel.PlanStatusModel, error) {
	var status planModel.PlanStatusModel

	if name != "" {
		err := db.Where("name = ?", name).First(&status).Error
		if err == nil {
			return &status, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		log.Printf("[PLAN] estado %q tidak ditemukan, fallback ke estado pertama", name)
	}

	if err := db.Order("created_at ASC").First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoStatuses
		}
		return nil, err
	}
	return &status, nil
}
