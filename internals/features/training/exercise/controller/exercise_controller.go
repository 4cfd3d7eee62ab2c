package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	exerciseDto "gymtrack_backend/internals/features/training/exercise/dto"
	exerciseModel "gymtrack_backend/internals/features/training/exercise/model"
	helper "gymtrack_backend/internals/helpers"
)

type ExerciseController struct {
	DB *gorm.DB
}

func NewExerciseController(db *gorm.DB) *ExerciseController {
	return &ExerciseController{DB: db}
}

// POST /api/exercises
func (ctrl *ExerciseController) Create(c *fiber.Ctx) error {
	var req exerciseDto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Println("[EXERCISE] gagal create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan ejercicio")
	}
	return helper.JsonCreated(c, "Ejercicio dibuat", exerciseDto.FromModel(m))
}

// GET /api/exercises — filter opsional ?muscle_group= & ?search=
func (ctrl *ExerciseController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&exerciseModel.ExerciseModel{})
	if mg := strings.TrimSpace(c.Query("muscle_group")); mg != "" {
		q = q.Where("muscle_group = ?", mg)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ejercicio")
	}

	var exercises []exerciseModel.ExerciseModel
	if err := q.Order("name ASC").Offset(p.Offset).Limit(p.Limit).Find(&exercises).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ejercicio")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(exercises)
	return helper.JsonList(c, "Daftar ejercicio", exerciseDto.FromModels(exercises), pagination)
}

// GET /api/exercises/:id
func (ctrl *ExerciseController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ejercicio tidak valid")
	}

	var exercise exerciseModel.ExerciseModel
	if err := ctrl.DB.First(&exercise, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ejercicio tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ejercicio")
	}
	return helper.JsonOK(c, "Detail ejercicio", exerciseDto.FromModel(&exercise))
}

// PATCH /api/exercises/:id
func (ctrl *ExerciseController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ejercicio tidak valid")
	}

	var req exerciseDto.UpdateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var exercise exerciseModel.ExerciseModel
	if err := ctrl.DB.First(&exercise, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Ejercicio tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ejercicio")
	}

	if err := ctrl.DB.Model(&exercise).Updates(req.UpdatesMap(time.Now().UTC())).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui ejercicio")
	}

	if err := ctrl.DB.First(&exercise, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data ejercicio")
	}
	return helper.JsonUpdated(c, "Ejercicio diperbarui", exerciseDto.FromModel(&exercise))
}

// DELETE /api/exercises/:id — soft delete
func (ctrl *ExerciseController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID ejercicio tidak valid")
	}

	res := ctrl.DB.Delete(&exerciseModel.ExerciseModel{}, "id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ejercicio")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Ejercicio tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Ejercicio dihapus", fiber.Map{"id": id.String()})
}
