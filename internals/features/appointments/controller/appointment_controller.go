package controller

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack_backend/internals/constants"
	appointmentDto "gymtrack_backend/internals/features/appointments/dto"
	appointmentModel "gymtrack_backend/internals/features/appointments/model"
	appointmentService "gymtrack_backend/internals/features/appointments/service"
	helper "gymtrack_backend/internals/helpers"
)

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

func scopedQuery(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	role, _ := c.Locals("userRole").(string)
	if role == constants.RoleAdmin {
		return q, nil
	}
	tidStr, _ := c.Locals("trainer_id").(string)
	tid, err := uuid.Parse(tidStr)
	if err != nil {
		return nil, errors.New("token tidak membawa trainer_id")
	}
	return q.Where("trainer_id = ?", tid), nil
}

// POST /api/appointments
func (ctrl *AppointmentController) Create(c *fiber.Ctx) error {
	var req appointmentDto.CreateAppointmentRequest
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

	trainerID, err := uuid.Parse(req.TrainerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "trainer_id tidak valid")
	}

	m, err := req.ToModel(trainerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_ids tidak valid")
	}

	if err := ctrl.DB.Create(m).Error; err != nil {
		log.Println("[APPOINTMENT] gagal create:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan turno")
	}

	return helper.JsonCreated(c, "Turno dibuat", appointmentDto.FromModel(m))
}

// GET /api/appointments — default semua milik trainer; ?from=&to= opsional (RFC3339)
func (ctrl *AppointmentController) GetAll(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q, err := scopedQuery(c, ctrl.DB.Model(&appointmentModel.AppointmentModel{}))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "from tidak valid (RFC3339)")
		}
		q = q.Where("starts_at >= ?", t)
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "to tidak valid (RFC3339)")
		}
		q = q.Where("starts_at < ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data turno")
	}

	var appointments []appointmentModel.AppointmentModel
	if err := q.Preload("Students").
		Order("starts_at ASC").Offset(p.Offset).Limit(p.Limit).Find(&appointments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data turno")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(appointments)
	return helper.JsonList(c, "Daftar turno", appointmentDto.FromModels(appointments), pagination)
}

// GET /api/appointments/upcoming — turno yang belum mulai, terdekat dulu
func (ctrl *AppointmentController) GetUpcoming(c *fiber.Ctx) error {
	q, err := scopedQuery(c, ctrl.DB.Model(&appointmentModel.AppointmentModel{}))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var appointments []appointmentModel.AppointmentModel
	if err := q.Where("starts_at >= ?", time.Now().UTC()).
		Preload("Students").
		Order("starts_at ASC").Limit(50).Find(&appointments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data turno")
	}

	return helper.JsonOK(c, "Turno mendatang", appointmentDto.FromModels(appointments))
}

// GET /api/appointments/:id
func (ctrl *AppointmentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID turno tidak valid")
	}

	var appointment appointmentModel.AppointmentModel
	if err := ctrl.DB.Preload("Students").First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turno tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data turno")
	}

	return helper.JsonOK(c, "Detail turno", appointmentDto.FromModel(&appointment))
}

// PATCH /api/appointments/:id
func (ctrl *AppointmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID turno tidak valid")
	}

	var req appointmentDto.UpdateAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Request body tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var appointment appointmentModel.AppointmentModel
	if err := ctrl.DB.First(&appointment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turno tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data turno")
	}

	if err := ctrl.DB.Model(&appointment).Updates(req.UpdatesMap(time.Now().UTC())).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui turno")
	}

	if err := ctrl.DB.Preload("Students").First(&appointment, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data turno")
	}
	return helper.JsonUpdated(c, "Turno diperbarui", appointmentDto.FromModel(&appointment))
}

// DELETE /api/appointments/:id — cascade soft delete
func (ctrl *AppointmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID turno tidak valid")
	}

	if _, err := appointmentService.SoftDeleteAppointment(ctrl.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Turno tidak ditemukan")
		}
		log.Println("[APPOINTMENT] gagal delete:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus turno")
	}

	return helper.JsonDeleted(c, "Turno dihapus", fiber.Map{"id": id.String()})
}
