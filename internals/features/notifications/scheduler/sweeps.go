package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	appointmentModel "gymtrack_backend/internals/features/appointments/model"
	notifModel "gymtrack_backend/internals/features/notifications/model"
	notifService "gymtrack_backend/internals/features/notifications/service"
	planModel "gymtrack_backend/internals/features/training/plan/model"
)

// Mutex per sweep: tick yang masih jalan tidak boleh ditumpuk tick
// berikutnya. TryLock gagal → tick di-skip, bukan ditunggu.
var (
	planSweepMu        sync.Mutex
	appointmentSweepMu sync.Mutex
)

/* =======================================================
   SWEEP 1 — plan berakhir hari ini tanpa penilaian (harian)
   ======================================================= */

// StartPlanEndSweep jalan sekali sehari: plan yang end_date-nya hari ini
// dan belum punya penilaian → satu notifikasi ke trainernya.
func StartPlanEndSweep(db *gorm.DB) {
	go func() {
		log.Println("[SWEEP] 📋 plan-end sweep aktif (interval 24 jam)")
		for {
			if planSweepMu.TryLock() {
				runPlanEndSweep(db)
				planSweepMu.Unlock()
			} else {
				log.Println("[SWEEP] plan-end masih jalan, tick dilewati")
			}
			time.Sleep(24 * time.Hour)
		}
	}()
}

func runPlanEndSweep(db *gorm.DB) {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	tomorrow := today.Add(24 * time.Hour)

	var plans []planModel.PlanModel
	err := db.Where("end_date >= ? AND end_date < ?", today, tomorrow).
		Where("rated_notified = false").
		Where("NOT EXISTS (SELECT 1 FROM plan_evaluations pe WHERE pe.plan_id = plans.id)").
		Find(&plans).Error
	if err != nil {
		log.Println("[SWEEP] plan-end query gagal:", err)
		return
	}

	for i := range plans {
		plan := &plans[i]
		notified, err := notifyPlanEnd(db, plan)
		if err != nil {
			log.Printf("[SWEEP] plan-end gagal untuk %s: %v", plan.ID, err)
			continue
		}
		if notified != nil {
			notifService.PublishCreated(notified)
		}
	}
	if len(plans) > 0 {
		log.Printf("[SWEEP] plan-end selesai, %d plan diperiksa", len(plans))
	}
}

// notifyPlanEnd — flag check-then-set + insert notifikasi dalam SATU
// transaksi. Sweep yang tumpang tindih kalah di UPDATE bersyarat
// (RowsAffected 0) dan tidak menggandakan notifikasi.
func notifyPlanEnd(db *gorm.DB, plan *planModel.PlanModel) (*notifModel.NotificationModel, error) {
	var created *notifModel.NotificationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&planModel.PlanModel{}).
			Where("id = ? AND rated_notified = false", plan.ID).
			Update("rated_notified", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// sudah dinotifikasi oleh tick lain
			return nil
		}

		m, err := notifService.BuildNotification(
			plan.TrainerID,
			"Plan finalizado sin evaluación",
			fmt.Sprintf("El plan %q terminó hoy y aún no tiene evaluación del alumno.", plan.Name),
			&notifService.Ref{Type: "plan", ID: plan.ID.String()},
		)
		if err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		created = m
		return nil
	})
	return created, err
}

/* =======================================================
   SWEEP 2 — pengingat turno 1 jam sebelum mulai (per menit)
   ======================================================= */

// StartAppointmentReminderSweep jalan tiap menit: turno yang mulai
// dalam 1 jam ke depan dan belum diingatkan → notifikasi + flip flag.
func StartAppointmentReminderSweep(db *gorm.DB) {
	go func() {
		log.Println("[SWEEP] ⏰ appointment-reminder sweep aktif (interval 1 menit)")
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if appointmentSweepMu.TryLock() {
				runAppointmentReminderSweep(db)
				appointmentSweepMu.Unlock()
			} else {
				log.Println("[SWEEP] appointment-reminder masih jalan, tick dilewati")
			}
		}
	}()
}

func runAppointmentReminderSweep(db *gorm.DB) {
	now := time.Now().UTC()
	horizon := now.Add(time.Hour)

	var appointments []appointmentModel.AppointmentModel
	err := db.Where("starts_at > ? AND starts_at <= ?", now, horizon).
		Where("pre_notification_sent = false").
		Find(&appointments).Error
	if err != nil {
		log.Println("[SWEEP] appointment-reminder query gagal:", err)
		return
	}

	for i := range appointments {
		appointment := &appointments[i]
		notified, err := notifyAppointmentUpcoming(db, appointment)
		if err != nil {
			log.Printf("[SWEEP] reminder gagal untuk %s: %v", appointment.ID, err)
			continue
		}
		if notified != nil {
			notifService.PublishCreated(notified)
		}
	}
}

// notifyAppointmentUpcoming — pola idempoten yang sama dengan
// notifyPlanEnd: UPDATE bersyarat + insert dalam satu transaksi.
func notifyAppointmentUpcoming(db *gorm.DB, appointment *appointmentModel.AppointmentModel) (*notifModel.NotificationModel, error) {
	var created *notifModel.NotificationModel

	err := db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&appointmentModel.AppointmentModel{}).
			Where("id = ? AND pre_notification_sent = false", appointment.ID).
			Update("pre_notification_sent", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		m, err := notifService.BuildNotification(
			appointment.TrainerID,
			"Turno próximo",
			fmt.Sprintf("El turno %q comienza a las %s.",
				appointment.Title, appointment.StartsAt.Format("15:04")),
			&notifService.Ref{Type: "appointment", ID: appointment.ID.String()},
		)
		if err != nil {
			return err
		}
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		created = m
		return nil
	})
	return created, err
}
