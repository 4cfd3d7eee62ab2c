package helpers

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

func isAlphaNumeric(s string) bool {
	hasLetter := regexp.MustCompile(`[A-Za-z]`).MatchString(s)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(s)
	return hasLetter && hasNumber
}

// Validasi Email (regex simple)
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// ValidateRegisterInput cek aturan dasar sebelum validasi struct
func ValidateRegisterInput(userName, email, password string) error {
	if strings.TrimSpace(userName) == "" {
		return errors.New("username wajib diisi")
	}
	if !isValidEmail(strings.TrimSpace(email)) {
		return errors.New("format email tidak valid")
	}
	return ValidatePasswordStrength(password)
}

// ValidatePasswordStrength — minimal 8 karakter, kombinasi huruf & angka
func ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("password minimal 8 karakter")
	}
	if !isAlphaNumeric(password) {
		return errors.New("password harus kombinasi huruf dan angka")
	}
	return nil
}

/* ====================== PASSWORD HASH ====================== */

func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func CheckPasswordHash(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
