package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	notifModel "gymtrack_backend/internals/features/notifications/model"
	notifService "gymtrack_backend/internals/features/notifications/service"
	helper "gymtrack_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

func trainerIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	tidStr, _ := c.Locals("trainer_id").(string)
	tid, err := uuid.Parse(tidStr)
	if err != nil {
		return uuid.Nil, errors.New("token tidak membawa trainer_id")
	}
	return tid, nil
}

// GET /api/notifications — default hanya unread; ?all=true untuk semua
func (ctrl *NotificationController) GetAll(c *fiber.Ctx) error {
	trainerID, err := trainerIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&notifModel.NotificationModel{}).
		Where("trainer_id = ?", trainerID)
	if c.Query("all") != "true" {
		q = q.Where("is_read = false")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	var notifications []notifModel.NotificationModel
	if err := q.Order("created_at DESC").Offset(p.Offset).Limit(p.Limit).Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil notifikasi")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pagination.Count = len(notifications)
	return helper.JsonList(c, "Daftar notifikasi", notifications, pagination)
}

// PATCH /api/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	trainerID, err := trainerIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID notifikasi tidak valid")
	}

	affected, err := notifService.MarkRead(ctrl.DB, trainerID, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}
	if affected == 0 {
		// sudah read atau bukan milik trainer ini — dua-duanya bukan error fatal
		var exists int64
		ctrl.DB.Model(&notifModel.NotificationModel{}).
			Where("id = ? AND trainer_id = ?", id, trainerID).Count(&exists)
		if exists == 0 {
			return helper.JsonError(c, fiber.StatusNotFound, "Notifikasi tidak ditemukan")
		}
	}

	return helper.JsonUpdated(c, "Notifikasi ditandai terbaca", fiber.Map{"id": id.String()})
}

// PATCH /api/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	trainerID, err := trainerIDFromLocals(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	affected, err := notifService.MarkAllRead(ctrl.DB, trainerID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menandai notifikasi")
	}

	return helper.JsonUpdated(c, "Semua notifikasi ditandai terbaca", fiber.Map{"marked": affected})
}
