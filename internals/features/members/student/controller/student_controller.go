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
	studentDto "gymtrack_backend/internals/features/members/student/dto"
	studentModel "gymtrack_backend/internals/features/members/student/model"
	helper "gymtrack_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// trainerScope — trainer hanya lihat alumno miliknya; admin bebas
// (opsional filter ?trainer_id=).
func trainerScope(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleAdmin {
		if tid := strings.TrimSpace(c.Query("trainer_id")); tid != "" {
			id, err := uuid.Parse(tid)
			if err != nil {
				return nil, errors.New("trainer_id tidak valid")
			}
			return q.Where("trainer_id = ?", id), nil
		}
		return q, nil
	}

	tidStr, _ := c.Locals("trainer_id").(string)
	tid, err := uuid.Parse(tidStr)
	if err != nil {
		return nil, errors.New("token tidak membawa trainer_id")
	}
	return q.Where("trainer_id = ?", tid), nil
}

/* =======================================================
   CREATE
   ======================================================= */

// POST /api/students
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var req studentDto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()

	// trainer membuat alumno untuk dirinya sendiri; trainer_id di body
	// hanya dihormati untuk admin
	role, _ := c.Locals("userRole").(string)
	if role != constants.RoleAdmin {
		if tidStr, ok := c.Locals("trainer_id").(string); ok {
			req.TrainerID = tidStr
		}
	}

	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	trainerID, err := uuid.Parse(req.TrainerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "trainer_id tidak valid")
	}

	m := req.ToModel(trainerID)
	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Println("[STUDENT] gagal create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan alumno")
	}

	return helper.JsonCreated(c, "Alumno dibuat", studentDto.FromModel(m))
}

/* =======================================================
   READ
   ======================================================= */

// GET /api/students — hanya yang aktif (deleted_at IS NULL via default scope)
func (ctrl *StudentController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q, err := trainerScope(c, ctrl.DB.Model(&studentModel.StudentModel{}))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alumno")
	}

	var students []studentModel.StudentModel
	if err := q.Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alumno")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(students)
	return helper.JsonList(c, "Daftar alumno", studentDto.FromModels(students), pagination)
}

// GET /api/students/deleted — daftar yang sudah di-soft-delete
func (ctrl *StudentController) GetDeleted(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := ctrl.DB.Unscoped().Model(&studentModel.StudentModel{}).
		Where("deleted_at IS NOT NULL")
	q, err := trainerScope(c, base)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alumno")
	}

	var students []studentModel.StudentModel
	if err := q.Order("deleted_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alumno")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(students)
	return helper.JsonList(c, "Daftar alumno terhapus", studentDto.FromModels(students), pagination)
}

// GET /api/students/:id
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID alumno tidak valid")
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumno tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alumno")
	}

	return helper.JsonOK(c, "Detail alumno", studentDto.FromModel(&student))
}

/* =======================================================
   UPDATE & DELETE
   ======================================================= */

// PATCH /api/students/:id — partial update, updated_at selalu di-stamp
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID alumno tidak valid")
	}

	var req studentDto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumno tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alumno")
	}

	if err := ctrl.DB.Model(&student).Updates(req.UpdatesMap(time.Now().UTC())).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui alumno")
	}

	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alumno")
	}
	return helper.JsonUpdated(c, "Alumno diperbarui", studentDto.FromModel(&student))
}

// DELETE /api/students/:id — soft delete + alasan opsional.
// deleted_at & deleted_reason di-set dalam SATU statement.
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID alumno tidak valid")
	}

	var req studentDto.DeleteStudentRequest
	_ = c.BodyParser(&req) // body opsional

	var student studentModel.StudentModel
	if err := ctrl.DB.First(&student, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Alumno tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data alumno")
	}

	updates := map[string]interface{}{"deleted_at": time.Now().UTC()}
	if reason := strings.TrimSpace(req.Reason); reason != "" {
		updates["deleted_reason"] = reason
	}
	if err := ctrl.DB.Model(&student).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus alumno")
	}

	return helper.JsonDeleted(c, "Alumno dihapus", fiber.Map{"id": id.String()})
}
