package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "gymtrack_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanupScheduler hapus token blacklist yang sudah lewat
// masa berlakunya. Jalan tiap 24 jam di goroutine sendiri.
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		for {
			log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

			n, err := authRepo.CleanupExpiredBlacklist(db)
			if err != nil {
				log.Printf("[CLEANUP ERROR] Gagal hapus token kadaluarsa: %v", err)
			} else if n > 0 {
				log.Printf("[CLEANUP] %d token kadaluarsa dihapus", n)
			} else {
				log.Println("[CLEANUP] Tidak ada token yang memenuhi syarat dihapus")
			}

			time.Sleep(24 * time.Hour)
		}
	}()
}
