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
	routineDto "gymtrack_backend/internals/features/training/routine/dto"
	routineModel "gymtrack_backend/internals/features/training/routine/model"
	routineService "gymtrack_backend/internals/features/training/routine/service"
	helper "gymtrack_backend/internals/helpers"
)

type RoutineController struct {
	DB *gorm.DB
}

func NewRoutineController(db *gorm.DB) *RoutineController {
	return &RoutineController{DB: db}
}

func resolveTrainerID(c *fiber.Ctx, bodyTrainerID string) (uuid.UUID, error) {
	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleAdmin && bodyTrainerID != "" {
		return uuid.Parse(bodyTrainerID)
	}
	tidStr, _ := c.Locals("trainer_id").(string)
	return uuid.Parse(tidStr)
}

// POST /api/routines
func (ctrl *RoutineController) Create(c *fiber.Ctx) error {
	var req routineDto.CreateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()

	trainerID, err := resolveTrainerID(c, req.TrainerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "trainer_id tidak valid")
	}
	req.TrainerID = trainerID.String()

	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m, err := req.ToModel(trainerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "exercise_id / student_id tidak valid")
	}

	// rutina + baris exercise sekali jalan (asosiasi GORM, satu transaksi)
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Println("[ROUTINE] gagal create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan rutina")
	}

	return helper.JsonCreated(c, "Rutina dibuat", routineDto.FromModel(m))
}

// GET /api/routines — filter opsional ?student_id=
func (ctrl *RoutineController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&routineModel.RoutineModel{})

	role, _ := c.Locals("userRole").(string)
	if role != constants.RoleAdmin {
		tidStr, _ := c.Locals("trainer_id").(string)
		tid, err := uuid.Parse(tidStr)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "token tidak membawa trainer_id")
		}
		q = q.Where("trainer_id = ?", tid)
	}

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("student_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rutina")
	}

	var routines []routineModel.RoutineModel
	if err := q.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&routines).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rutina")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(routines)
	return helper.JsonList(c, "Daftar rutina", routineDto.FromModels(routines), pagination)
}

// GET /api/routines/:id
func (ctrl *RoutineController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rutina tidak valid")
	}

	var routine routineModel.RoutineModel
	if err := ctrl.DB.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&routine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rutina tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rutina")
	}

	return helper.JsonOK(c, "Detail rutina", routineDto.FromModel(&routine))
}

// PATCH /api/routines/:id — metadata saja; isi exercise lewat PUT /exercises
func (ctrl *RoutineController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rutina tidak valid")
	}

	var req routineDto.UpdateRoutineRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var routine routineModel.RoutineModel
	if err := ctrl.DB.First(&routine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rutina tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rutina")
	}

	updates, err := req.UpdatesMap(time.Now().UTC())
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
	}
	if err := ctrl.DB.Model(&routine).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui rutina")
	}

	if err := ctrl.DB.Preload("Exercises").First(&routine, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rutina")
	}
	return helper.JsonUpdated(c, "Rutina diperbarui", routineDto.FromModel(&routine))
}

// PUT /api/routines/:id/exercises — ganti seluruh isi rutina
func (ctrl *RoutineController) ReplaceExercises(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rutina tidak valid")
	}

	var body struct {
		Exercises []routineDto.RoutineExerciseItem `json:"exercises" validate:"required,dive"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	if err := helper.Validate.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	var routine routineModel.RoutineModel
	if err := ctrl.DB.First(&routine, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rutina tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rutina")
	}

	items := make([]routineModel.RoutineExerciseModel, 0, len(body.Exercises))
	for i, item := range body.Exercises {
		eid, err := uuid.Parse(item.ExerciseID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "exercise_id tidak valid")
		}
		pos := item.Position
		if pos == 0 {
			pos = i
		}
		items = append(items, routineModel.RoutineExerciseModel{
			ExerciseID: eid,
			Sets:       item.Sets,
			Reps:       item.Reps,
			RestSecs:   item.RestSecs,
			Position:   pos,
			Notes:      strings.TrimSpace(item.Notes),
		})
	}

	if err := routineService.ReplaceExercises(ctrl.DB, id, items); err != nil {
		log.Println("[ROUTINE] gagal replace exercises:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui isi rutina")
	}

	if err := ctrl.DB.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&routine, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data rutina")
	}
	return helper.JsonUpdated(c, "Isi rutina diperbarui", routineDto.FromModel(&routine))
}

// DELETE /api/routines/:id — cascade soft delete (rutina + barisnya)
func (ctrl *RoutineController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID rutina tidak valid")
	}

	if _, err := routineService.SoftDeleteRoutine(ctrl.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Rutina tidak ditemukan")
		}
		log.Println("[ROUTINE] gagal delete:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus rutina")
	}

	return helper.JsonDeleted(c, "Rutina dihapus", fiber.Map{"id": id.String()})
}
