package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	trainerController "gymtrack_backend/internals/features/members/trainer/controller"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

// TrainerRoutes — listing terbuka untuk semua role login; mutasi admin only.
func TrainerRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := trainerController.NewTrainerController(db)

	trainers := api.Group("/trainers")
	trainers.Get("/", ctrl.GetAll)
	trainers.Get("/deleted", authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("arsip trainer"), constants.AdminOnly...,
	), ctrl.GetDeleted)
	trainers.Get("/:id", ctrl.GetByID)

	adminOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorAdmin("manajemen trainer"), constants.AdminOnly...,
	)
	trainers.Post("/", adminOnly, ctrl.Create)
	trainers.Patch("/:id", adminOnly, ctrl.Update)
	trainers.Delete("/:id", adminOnly, ctrl.Delete)
}
