package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	trainerDto "gymtrack_backend/internals/features/members/trainer/dto"
	trainerModel "gymtrack_backend/internals/features/members/trainer/model"
	helper "gymtrack_backend/internals/helpers"
)

type TrainerController struct {
	DB *gorm.DB
}

func NewTrainerController(db *gorm.DB) *TrainerController {
	return &TrainerController{DB: db}
}

func isDuplicateKey(err error) bool {
	return strings.Contains(err.Error(), "duplicate key")
}

// POST /api/trainers
func (ctrl *TrainerController) Create(c *fiber.Ctx) error {
	var req trainerDto.CreateTrainerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		if isDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor dokumen sudah terdaftar")
		}
		log.Println("[TRAINER] gagal create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan trainer")
	}

	return helper.JsonCreated(c, "Trainer dibuat", trainerDto.FromModel(m))
}

// GET /api/trainers
func (ctrl *TrainerController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&trainerModel.TrainerModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR document_number LIKE ?",
			like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trainer")
	}

	var trainers []trainerModel.TrainerModel
	if err := q.Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&trainers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trainer")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(trainers)
	return helper.JsonList(c, "Daftar trainer", trainerDto.FromModels(trainers), pagination)
}

// GET /api/trainers/deleted
func (ctrl *TrainerController) GetDeleted(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Unscoped().Model(&trainerModel.TrainerModel{}).
		Where("deleted_at IS NOT NULL")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trainer")
	}

	var trainers []trainerModel.TrainerModel
	if err := q.Order("deleted_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&trainers).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trainer")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(trainers)
	return helper.JsonList(c, "Daftar trainer terhapus", trainerDto.FromModels(trainers), pagination)
}

// GET /api/trainers/:id
func (ctrl *TrainerController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID trainer tidak valid")
	}

	var trainer trainerModel.TrainerModel
	if err := ctrl.DB.First(&trainer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trainer tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trainer")
	}

	return helper.JsonOK(c, "Detail trainer", trainerDto.FromModel(&trainer))
}

// PATCH /api/trainers/:id
func (ctrl *TrainerController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID trainer tidak valid")
	}

	var req trainerDto.UpdateTrainerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var trainer trainerModel.TrainerModel
	if err := ctrl.DB.First(&trainer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trainer tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trainer")
	}

	if err := ctrl.DB.Model(&trainer).Updates(req.UpdatesMap(time.Now().UTC())).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui trainer")
	}

	if err := ctrl.DB.First(&trainer, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trainer")
	}
	return helper.JsonUpdated(c, "Trainer diperbarui", trainerDto.FromModel(&trainer))
}

// DELETE /api/trainers/:id — soft delete + alasan opsional
func (ctrl *TrainerController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID trainer tidak valid")
	}

	var req trainerDto.DeleteTrainerRequest
	_ = c.BodyParser(&req)

	var trainer trainerModel.TrainerModel
	if err := ctrl.DB.First(&trainer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Trainer tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data trainer")
	}

	updates := map[string]interface{}{"deleted_at": time.Now().UTC()}
	if reason := strings.TrimSpace(req.Reason); reason != "" {
		updates["deleted_reason"] = reason
	}
	if err := ctrl.DB.Model(&trainer).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus trainer")
	}

	return helper.JsonDeleted(c, "Trainer dihapus", fiber.Map{"id": id.String()})
}
