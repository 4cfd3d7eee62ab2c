package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	appointmentRoute "gymtrack_backend/internals/features/appointments/route"
	studentRoute "gymtrack_backend/internals/features/members/student/route"
	trainerRoute "gymtrack_backend/internals/features/members/trainer/route"
	notifRoute "gymtrack_backend/internals/features/notifications/route"
	statsRoute "gymtrack_backend/internals/features/statistics/route"
	exerciseRoute "gymtrack_backend/internals/features/training/exercise/route"
	planRoute "gymtrack_backend/internals/features/training/plan/route"
	routineRoute "gymtrack_backend/internals/features/training/routine/route"
	authRoute "gymtrack_backend/internals/features/users/auth/route"
	recoveryRoute "gymtrack_backend/internals/features/users/recovery/route"
	userRoute "gymtrack_backend/internals/features/users/user/route"
	authMiddleware "gymtrack_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up auth & recovery routes...")
	authRoute.AuthRoutes(app, db)
	recoveryRoute.RecoveryRoutes(app, db)

	// ===================== PRIVATE (JWT) =====================
	log.Println("[INFO] Setting up private API group...")
	api := app.Group("/api", authMiddleware.AuthMiddleware(db))

	userRoute.UserRoutes(api, db)
	trainerRoute.TrainerRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	exerciseRoute.ExerciseRoutes(api, db)
	routineRoute.RoutineRoutes(api, db)
	planRoute.PlanRoutes(api, db)
	appointmentRoute.AppointmentRoutes(api, db)
	notifRoute.NotificationRoutes(api, db)
	statsRoute.StatsRoutes(api, db)

	log.Println("[INFO] ✅ Semua route terpasang")
}
