package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "gymtrack_backend/internals/features/users/user/controller"
	"gymtrack_backend/internals/constants"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

// UserRoutes — profil diri (semua role) + manajemen user (admin only).
// Dipanggil dari group yang sudah lewat AuthMiddleware.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	// profil diri
	api.Patch("/users/me", ctrl.UpdateProfile)

	// admin
	admin := api.Group("/users", authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("manajemen user"), constants.AdminOnly...,
	))
	admin.Get("/", ctrl.GetAll)
	admin.Get("/:id", ctrl.GetByID)
	admin.Patch("/:id", ctrl.Update)
}
