package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	studentController "gymtrack_backend/internals/features/members/student/controller"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

// StudentRoutes — CRUD alumno, hanya trainer & admin.
func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := api.Group("/students", authMiddleware.OnlyRoles(
		constants.RoleErrorTrainer("manajemen alumno"), constants.TrainerAndAbove...,
	))
	students.Post("/", ctrl.Create)
	students.Get("/", ctrl.GetAll)
	students.Get("/deleted", ctrl.GetDeleted)
	students.Get("/:id", ctrl.GetByID)
	students.Patch("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
