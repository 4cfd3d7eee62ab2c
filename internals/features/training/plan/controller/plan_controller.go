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
	planDto "gymtrack_backend/internals/features/training/plan/dto"
	planModel "gymtrack_backend/internals/features/training/plan/model"
	planService "gymtrack_backend/internals/features/training/plan/service"
	helper "gymtrack_backend/internals/helpers"
)

type PlanController struct {
	DB *gorm.DB
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{DB: db}
}

// POST /api/plans
func (ctrl *PlanController) Create(c *fiber.Ctx) error {
	var req planDto.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()

	role, _ := c.Locals("userRole").(string)
	if role != constants.RoleAdmin {
		if tidStr, ok := c.Locals("trainer_id").(string); ok {
			req.TrainerID = tidStr
		}
	}

	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	trainerID, err := uuid.Parse(req.TrainerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "trainer_id tidak valid")
	}

	status, err := planService.ResolveStatus(ctrl.DB, req.Status)
	if err != nil {
		if errors.Is(err, planService.ErrNoStatuses) {
			return helper.JsonError(c, fiber.StatusNotFound, "Estado plan tidak tersedia")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve estado")
	}

	m := &planModel.PlanModel{
		StudentID: studentID,
		TrainerID: trainerID,
		StatusID:  status.ID,
		Name:      req.Name,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.RoutineID != nil && *req.RoutineID != "" {
		rid, err := uuid.Parse(*req.RoutineID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "routine_id tidak valid")
		}
		m.RoutineID = &rid
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Println("[PLAN] gagal create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan plan")
	}

	m.Status = *status
	return helper.JsonCreated(c, "Plan dibuat", planDto.FromModel(m))
}

// GET /api/plans — filter ?student_id= / ?status=
func (ctrl *PlanController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&planModel.PlanModel{})

	role, _ := c.Locals("userRole").(string)
	if role != constants.RoleAdmin {
		tidStr, _ := c.Locals("trainer_id").(string)
		tid, err := uuid.Parse(tidStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "token tidak membawa trainer_id")
		}
		q = q.Where("plans.trainer_id = ?", tid)
	}

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("plans.student_id = ?", id)
	}
	if status := strings.TrimSpace(strings.ToLower(c.Query("status"))); status != "" {
		q = q.Joins("JOIN plan_statuses ps ON ps.id = plans.status_id").
			Where("ps.name = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data plan")
	}

	var plans []planModel.PlanModel
	if err := q.Preload("Status").
		Order("plans.created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&plans).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data plan")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(plans)
	return helper.JsonList(c, "Daftar plan", planDto.FromModels(plans), pagination)
}

// GET /api/plans/:id
func (ctrl *PlanController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID plan tidak valid")
	}

	var plan planModel.PlanModel
	if err := ctrl.DB.Preload("Status").Preload("Evaluations").
		First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data plan")
	}

	return helper.JsonOK(c, "Detail plan", planDto.FromModel(&plan))
}

// PATCH /api/plans/:id
func (ctrl *PlanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID plan tidak valid")
	}

	var req planDto.UpdatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var plan planModel.PlanModel
	if err := ctrl.DB.First(&plan, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data plan")
	}

	var statusID *uuid.UUID
	if req.Status != nil && *req.Status != "" {
		status, err := planService.ResolveStatus(ctrl.DB, *req.Status)
		if err != nil {
			if errors.Is(err, planService.ErrNoStatuses) {
				return helper.JsonError(c, fiber.StatusNotFound, "Estado plan tidak tersedia")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal resolve estado")
		}
		statusID = &status.ID
	}

	updates, err := req.UpdatesMap(time.Now().UTC(), statusID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "routine_id tidak valid")
	}
	if err := ctrl.DB.Model(&plan).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui plan")
	}

	if err := ctrl.DB.Preload("Status").First(&plan, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data plan")
	}
	return helper.JsonUpdated(c, "Plan diperbarui", planDto.FromModel(&plan))
}

// DELETE /api/plans/:id — soft delete
func (ctrl *PlanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID plan tidak valid")
	}

	res := ctrl.DB.Delete(&planModel.PlanModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus plan")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Plan tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Plan dihapus", fiber.Map{"id": id.String()})
}

/* =======================================================
   EVALUATIONS (ingest rating, skor 0..5)
   ======================================================= */

// POST /api/plans/:id/evaluations
func (ctrl *PlanController) CreateEvaluation(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID plan tidak valid")
	}

	var req planDto.CreateEvaluationRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	req.PlanID = planID.String()

	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}

	var plan planModel.PlanModel
	if err := ctrl.DB.First(&plan, "id = ?", planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Plan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data plan")
	}

	eval := &planModel.PlanEvaluationModel{
		PlanID:    planID,
		StudentID: studentID,
		TrainerID: plan.TrainerID,
		Score:     *req.Score,
		Comment:   req.Comment,
	}
	if err := ctrl.DB.Create(eval).Error; err != nil {
		log.Println("[PLAN] gagal create evaluation:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan penilaian")
	}

	return helper.JsonCreated(c, "Penilaian disimpan", planDto.EvaluationFromModel(eval))
}

// GET /api/plans/:id/evaluations
func (ctrl *PlanController) GetEvaluations(c *fiber.Ctx) error {
	planID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID plan tidak valid")
	}

	var evals []planModel.PlanEvaluationModel
	if err := ctrl.DB.Where("plan_id = ?", planID).
		Order("created_at DESC").Find(&evals).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penilaian")
	}

	resp := make([]planDto.EvaluationResponse, 0, len(evals))
	for i := range evals {
		resp = append(resp, planDto.EvaluationFromModel(&evals[i]))
	}
	return helper.JsonOK(c, "Daftar penilaian", resp)
}
