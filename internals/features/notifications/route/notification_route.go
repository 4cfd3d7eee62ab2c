package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	notifController "gymtrack_backend/internals/features/notifications/controller"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

// NotificationRoutes — inbox trainer.
func NotificationRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := notifController.NewNotificationController(db)

	notifications := api.Group("/notifications", authMiddleware.OnlyRoles(
		constants.RoleErrorTrainer("notifikasi"), constants.TrainerAndAbove...,
	))
	notifications.Get("/", ctrl.GetAll)
	notifications.Patch("/read-all", ctrl.MarkAllRead)
	notifications.Patch("/:id/read", ctrl.MarkRead)
}
