package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	routineController "gymtrack_backend/internals/features/training/routine/controller"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

// RoutineRoutes — rutina milik trainer; alumno cukup baca.
func RoutineRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := routineController.NewRoutineController(db)

	routines := api.Group("/routines")
	routines.Get("/:id", ctrl.GetByID)

	trainerOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTrainer("manajemen rutina"), constants.TrainerAndAbove...,
	)
	routines.Get("/", trainerOnly, ctrl.GetAll)
	routines.Post("/", trainerOnly, ctrl.Create)
	routines.Patch("/:id", trainerOnly, ctrl.Update)
	routines.Put("/:id/exercises", trainerOnly, ctrl.ReplaceExercises)
	routines.Delete("/:id", trainerOnly, ctrl.Delete)
}
