package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	statsService "gymtrack_backend/internals/features/statistics/service"
	helper "gymtrack_backend/internals/helpers"
)

type StatsController struct {
	DB *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{DB: db}
}

// parseRange — ?start=YYYY-MM&end=YYYY-MM (inklusif) → jendela half-open
// [start, end+1 bulan). End yang diminta ikut penuh.
func parseRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	startStr := strings.TrimSpace(c.Query("start"))
	endStr := strings.TrimSpace(c.Query("end"))
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, errors.New("start dan end wajib (format YYYY-MM)")
	}

	start, err := statsService.ParseMonth(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start tidak valid (format YYYY-MM)")
	}
	end, err := statsService.ParseMonth(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end tidak valid (format YYYY-MM)")
	}

	return start, end.AddDate(0, 1, 0), nil
}

func resolveTrainer(c *fiber.Ctx) (uuid.UUID, error) {
	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleAdmin {
		if tid := strings.TrimSpace(c.Query("trainer_id")); tid != "" {
			return uuid.Parse(tid)
		}
	}
	tidStr, _ := c.Locals("trainer_id").(string)
	return uuid.Parse(tidStr)
}

// GET /api/stats/admissions-vs-removals
func (ctrl *StatsController) AdmissionsVsRemovals(c *fiber.Ctx) error {
	trainerID, err := resolveTrainer(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "trainer_id tidak valid")
	}
	start, end, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := statsService.AdmissionsVsRemovals(ctrl.DB, trainerID, start, end)
	if err != nil {
		log.Println("[STATS] admissions-vs-removals gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "Altas vs bajas per bulan", rows)
}

// GET /api/stats/active-count
func (ctrl *StatsController) ActiveCount(c *fiber.Ctx) error {
	trainerID, err := resolveTrainer(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "trainer_id tidak valid")
	}
	start, end, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := statsService.ActiveCountSeries(ctrl.DB, trainerID, start, end)
	if err != nil {
		log.Println("[STATS] active-count gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "Alumno aktif per akhir bulan", rows)
}

// GET /api/stats/ratings/monthly
func (ctrl *StatsController) MonthlyRatings(c *fiber.Ctx) error {
	trainerID, err := resolveTrainer(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "trainer_id tidak valid")
	}
	start, end, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := statsService.MonthlyAverageRating(ctrl.DB, trainerID, start, end)
	if err != nil {
		log.Println("[STATS] monthly ratings gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "Rata-rata skor per bulan", rows)
}

// GET /api/stats/ratings/distribution
func (ctrl *StatsController) RatingDistribution(c *fiber.Ctx) error {
	trainerID, err := resolveTrainer(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "trainer_id tidak valid")
	}
	start, end, err := parseRange(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rows, err := statsService.RatingDistribution(ctrl.DB, trainerID, start, end)
	if err != nil {
		log.Println("[STATS] rating distribution gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung statistik")
	}
	return helper.JsonOK(c, "Distribusi skor 0..5", rows)
}

// GET /api/stats/students/:id/plan-progress
func (ctrl *StatsController) PlanProgress(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID alumno tidak valid")
	}

	summary, err := statsService.GetPlanProgress(ctrl.DB, studentID)
	if err != nil {
		log.Println("[STATS] plan progress gagal:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung progres")
	}
	return helper.JsonOK(c, "Progres plan alumno", summary)
}
