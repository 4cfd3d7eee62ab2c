package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	exerciseController "gymtrack_backend/internals/features/training/exercise/controller"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

// ExerciseRoutes — katalog dibaca semua role; mutasi trainer & admin.
func ExerciseRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := exerciseController.NewExerciseController(db)

	exercises := api.Group("/exercises")
	exercises.Get("/", ctrl.GetAll)
	exercises.Get("/:id", ctrl.GetByID)

	trainerOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTrainer("katalog ejercicio"), constants.TrainerAndAbove...,
	)
	exercises.Post("/", trainerOnly, ctrl.Create)
	exercises.Patch("/:id", trainerOnly, ctrl.Update)
	exercises.Delete("/:id", trainerOnly, ctrl.Delete)
}
