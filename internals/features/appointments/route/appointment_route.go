package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	appointmentController "gymtrack_backend/internals/features/appointments/controller"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

// AppointmentRoutes — turno, trainer & admin.
func AppointmentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := appointmentController.NewAppointmentController(db)

	appointments := api.Group("/appointments", authMiddleware.OnlyRoles(
		constants.RoleErrorTrainer("manajemen turno"), constants.TrainerAndAbove...,
	))
	appointments.Post("/", ctrl.Create)
	appointments.Get("/", ctrl.GetAll)
	appointments.Get("/upcoming", ctrl.GetUpcoming)
	appointments.Get("/:id", ctrl.GetByID)
	appointments.Patch("/:id", ctrl.Update)
	appointments.Delete("/:id", ctrl.Delete)
}
