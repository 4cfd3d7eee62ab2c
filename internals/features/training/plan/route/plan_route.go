package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	planController "gymtrack_backend/internals/features/training/plan/controller"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

// PlanRoutes — plan dikelola trainer; alumno boleh baca & menilai.
func PlanRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := planController.NewPlanController(db)

	plans := api.Group("/plans")
	plans.Get("/:id", ctrl.GetByID)
	plans.Get("/:id/evaluations", ctrl.GetEvaluations)
	plans.Post("/:id/evaluations", ctrl.CreateEvaluation) // alumno menilai plannya

	trainerOnly := authMiddleware.OnlyRoles(
		constants.RoleErrorTrainer("manajemen plan"), constants.TrainerAndAbove...,
	)
	plans.Get("/", trainerOnly, ctrl.GetAll)
	plans.Post("/", trainerOnly, ctrl.Create)
	plans.Patch("/:id", trainerOnly, ctrl.Update)
	plans.Delete("/:id", trainerOnly, ctrl.Delete)
}
