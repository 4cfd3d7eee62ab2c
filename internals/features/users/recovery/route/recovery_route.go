package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	recoveryController "gymtrack_backend/internals/features/users/recovery/controller"
	"gymtrack_backend/internals/middlewares"
)

// RecoveryRoutes daftar endpoint pemulihan password. Semuanya public:
// user yang lupa password jelas belum bisa login.
func RecoveryRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := recoveryController.NewRecoveryController(db)

	recovery := app.Group("/api/auth")
	recovery.Post("/forgot-password", middlewares.ForgotPasswordRateLimiter(), ctrl.ForgotPassword)
	recovery.Post("/reset-password", ctrl.ResetPassword)
	recovery.Post("/check-same-password", ctrl.CheckSamePassword)
}
