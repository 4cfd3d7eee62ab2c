package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	statsController "gymtrack_backend/internals/features/statistics/controller"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

// StatsRoutes — statistik trainer & admin.
func StatsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := statsController.NewStatsController(db)

	stats := api.Group("/stats", authMiddleware.OnlyRoles(
		constants.RoleErrorTrainer("statistik"), constants.TrainerAndAbove...,
	))
	stats.Get("/admissions-vs-removals", ctrl.AdmissionsVsRemovals)
	stats.Get("/active-count", ctrl.ActiveCount)
	stats.Get("/ratings/monthly", ctrl.MonthlyRatings)
	stats.Get("/ratings/distribution", ctrl.RatingDistribution)
	stats.Get("/students/:id/plan-progress", ctrl.PlanProgress)
}
