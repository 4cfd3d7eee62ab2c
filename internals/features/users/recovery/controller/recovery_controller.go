package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helper "gymtrack_backend/internals/helpers"
	"gymtrack_backend/internals/helpers/mailer"
	authRepo "gymtrack_backend/internals/features/users/auth/repository"
	recoveryService "gymtrack_backend/internals/features/users/recovery/service"
)

type RecoveryController struct {
	DB *gorm.DB
}

func NewRecoveryController(db *gorm.DB) *RecoveryController {
	return &RecoveryController{DB: db}
}

/* ==========================
   REQUEST DTO
========================== */

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

type checkPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Pesan generik: token invalid, expired, dan used semua dijawab sama
// supaya tidak bocor status token ke pihak luar.
const genericTokenMsg = "Token de recuperación inválido o expirado"

/* ==========================
   HANDLERS
========================== */

// ForgotPassword selalu balas 200 dengan pesan yang sama, ada atau
// tidak ada user dengan email itu (anti user-enumeration).
func (ctrl *RecoveryController) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Email wajib diisi")
	}

	okMsg := "Si el correo está registrado, recibirás un enlace de recuperación"

	user, err := authRepo.FindUserByEmail(ctrl.DB, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, okMsg, nil)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses permintaan")
	}

	rawSecret, ttl, err := recoveryService.IssueToken(ctrl.DB, user.ID)
	if err != nil {
		log.Printf("[RECOVERY] gagal issue token untuk %s: %v", user.ID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses permintaan")
	}

	// Kirim email setelah token tersimpan. Fire-and-forget di dalam mailer.
	mailer.SendPasswordReset(user.Email, user.UserName, rawSecret, ttl)

	return helper.JsonOK(c, okMsg, nil)
}

// ResetPassword menukar token sekali-pakai dengan password baru.
func (ctrl *RecoveryController) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if req.Token == "" || req.NewPassword == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token dan password baru wajib diisi")
	}

	err := recoveryService.RedeemToken(ctrl.DB, req.Token, req.NewPassword)
	switch {
	case err == nil:
		return helper.JsonOK(c, "Contraseña actualizada correctamente", nil)
	case errors.Is(err, recoveryService.ErrInvalidToken),
		errors.Is(err, recoveryService.ErrTokenExpiredOrUsed):
		return helper.JsonError(c, fiber.StatusBadRequest, genericTokenMsg)
	case errors.Is(err, recoveryService.ErrUserNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Usuario no encontrado")
	default:
		if msg := err.Error(); strings.HasPrefix(msg, "password") {
			return helper.JsonError(c, fiber.StatusBadRequest, msg)
		}
		log.Printf("[RECOVERY] gagal redeem token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses permintaan")
	}
}

// CheckSamePassword ngecek apakah kandidat password sama dengan password
// lama pemilik token. Tidak mengubah apa pun, token tetap redeemable.
func (ctrl *RecoveryController) CheckSamePassword(c *fiber.Ctx) error {
	var req checkPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if req.Token == "" || req.Password == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Token dan password wajib diisi")
	}

	same, err := recoveryService.CheckSamePassword(ctrl.DB, req.Token, req.Password)
	switch {
	case err == nil:
		return helper.JsonOK(c, "OK", fiber.Map{"same_password": same})
	case errors.Is(err, recoveryService.ErrInvalidToken),
		errors.Is(err, recoveryService.ErrTokenExpiredOrUsed):
		return helper.JsonError(c, fiber.StatusBadRequest, genericTokenMsg)
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses permintaan")
	}
}
