package service

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authHelper "gymtrack_backend/internals/features/users/auth/helper"
	authRepo "gymtrack_backend/internals/features/users/auth/repository"
	recoveryModel "gymtrack_backend/internals/features/users/recovery/model"
	userModel "gymtrack_backend/internals/features/users/user/model"

	"github.com/google/uuid"
)

/* ==========================
   Errors
========================== */

var (
	ErrInvalidToken       = errors.New("recovery: token tidak dikenal")
	ErrTokenExpiredOrUsed = errors.New("recovery: token kadaluarsa atau sudah dipakai")
	ErrUserNotFound       = errors.New("recovery: user tidak ditemukan")
)

const tokenTTLDefaultMinutes = 10

// TokenTTL baca RECOVERY_TOKEN_TTL_MINUTES (default 10 menit).
func TokenTTL() time.Duration {
	if v := os.Getenv("RECOVERY_TOKEN_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return tokenTTLDefaultMinutes * time.Minute
}

/* ==========================
   Pure helpers
========================== */

// GenerateSecret bikin secret acak 32 byte (256 bit), URL-safe.
func GenerateSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashSecret — SHA-256 deterministik; yang masuk DB cuma ini.
func HashSecret(raw string) []byte {
	sum := sha256.Sum256([]byte(raw))
	return sum[:]
}

// IsRedeemable: token bisa dipakai iff belum used DAN belum lewat expired_at.
func IsRedeemable(used bool, expiredAt, now time.Time) bool {
	return !used && !now.After(expiredAt)
}

/* ==========================
   ISSUE
========================== */

// IssueToken bikin token baru untuk user. Dalam SATU transaksi:
// token unused milik user yang sama di-mark used dulu (maks. satu token
// aktif per user), baru insert token baru. Raw secret dikembalikan ke
// caller untuk dikirim via email — tidak pernah disimpan atau di-log.
func IssueToken(db *gorm.DB, userID uuid.UUID) (string, time.Duration, error) {
	raw, err := GenerateSecret()
	if err != nil {
		return "", 0, err
	}

	ttl := TokenTTL()
	now := time.Now().UTC()

	err = db.Transaction(func(tx *gorm.DB) error {
		// invalidasi token aktif sebelumnya
		if err := tx.Model(&recoveryModel.PasswordResetTokenModel{}).
			Where("user_id = ? AND used = false", userID).
			Update("used", true).Error; err != nil {
			return err
		}

		return tx.Create(&recoveryModel.PasswordResetTokenModel{
			UserID:    userID,
			TokenHash: HashSecret(raw),
			ExpiredAt: now.Add(ttl),
			Used:      false,
		}).Error
	})
	if err != nil {
		return "", 0, err
	}

	return raw, ttl, nil
}

/* ==========================
   REDEEM
========================== */

// RedeemToken tukar token dengan password baru. Semua langkah dalam satu
// transaksi dengan row lock (FOR UPDATE) supaya dua redeem bersamaan
// untuk token yang sama diserialisasi — maksimal satu yang berhasil.
// Partial state (password ganti tapi token belum used, atau sebaliknya)
// tidak pernah kelihatan dari luar.
func RedeemToken(db *gorm.DB, rawSecret, newPassword string) error {
	if err := authHelper.ValidatePasswordStrength(newPassword); err != nil {
		return err
	}

	newHash, err := authHelper.HashPassword(newPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var token recoveryModel.PasswordResetTokenModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("token_hash = ?", HashSecret(rawSecret)).
			First(&token).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidToken
			}
			return err
		}

		if !IsRedeemable(token.Used, token.ExpiredAt, time.Now().UTC()) {
			return ErrTokenExpiredOrUsed
		}

		var user userModel.UserModel
		if err := tx.First(&user, "id = ?", token.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		// password baru lewat bcrypt (beda dengan hash token yang SHA-256)
		if err := authRepo.UpdateUserPassword(tx, user.ID, newHash); err != nil {
			return err
		}

		return tx.Model(&token).Update("used", true).Error
	})
}

/* ==========================
   CHECK (UX only)
========================== */

// CheckSamePassword cek apakah kandidat password sama dengan password
// user pemilik token SAAT INI. Murni baca — token tidak dikonsumsi.
// Dipakai frontend untuk warning "password baru sama dengan yang lama".
func CheckSamePassword(db *gorm.DB, rawSecret, candidate string) (bool, error) {
	var token recoveryModel.PasswordResetTokenModel
	if err := db.Where("token_hash = ?", HashSecret(rawSecret)).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrInvalidToken
		}
		return false, err
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", token.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	return authHelper.CheckPasswordHash(user.Password, candidate) == nil, nil
}
