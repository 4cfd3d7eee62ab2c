package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	database "gymtrack_backend/internals/databases"
	planModel "gymtrack_backend/internals/features/training/plan/model"
)

const cacheTTL = 5 * time.Minute

/* =======================================================
   Cache-aside (Redis opsional)
   ======================================================= */

// cachedJSON — baca dari Redis kalau ada; miss/Redis mati → compute,
// lalu tulis balik best-effort.
func cachedJSON[T any](key string, compute func() (T, error)) (T, error) {
	var zero T
	if database.Redis != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		raw, err := database.Redis.Get(ctx, key).Bytes()
		cancel()
		if err == nil {
			var out T
			if uerr := sonic.Unmarshal(raw, &out); uerr == nil {
				return out, nil
			}
		}
	}

	out, err := compute()
	if err != nil {
		return zero, err
	}

	if database.Redis != nil {
		if raw, merr := sonic.Marshal(out); merr == nil {
			ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			if serr := database.Redis.Set(ctx, key, raw, cacheTTL).Err(); serr != nil {
				log.Println("[STATS] cache set gagal:", serr)
			}
			cancel()
		}
	}
	return out, nil
}

/* =======================================================
   Query mentah → map sparse
   ======================================================= */

type monthCountRow struct {
	Month string
	Count int64
}

// queryMonthCounts jalankan query GROUP BY to_char(ts,'YYYY-MM') dan
// kembalikan map sparse bulan→jumlah.
func queryMonthCounts(db *gorm.DB, query string, args ...interface{}) (map[string]int64, error) {
	var rows []monthCountRow
	if err := db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Month] = r.Count
	}
	return out, nil
}

func admissionsByMonth(db *gorm.DB, trainerID uuid.UUID, start, end time.Time) (map[string]int64, error) {
	return queryMonthCounts(db, `
		SELECT to_char(created_at, 'YYYY-MM') AS month, COUNT(*) AS count
		FROM students
		WHERE trainer_id = ? AND created_at >= ? AND created_at < ?
		GROUP BY 1`, trainerID, start, end)
}

func removalsByMonth(db *gorm.DB, trainerID uuid.UUID, start, end time.Time) (map[string]int64, error) {
	return queryMonthCounts(db, `
		SELECT to_char(deleted_at, 'YYYY-MM') AS month, COUNT(*) AS count
		FROM students
		WHERE trainer_id = ? AND deleted_at IS NOT NULL
		  AND deleted_at >= ? AND deleted_at < ?
		GROUP BY 1`, trainerID, start, end)
}

// activeBefore — seed saldo: alumno yang dibuat sebelum jendela dan
// belum dihapus sebelum jendela.
func activeBefore(db *gorm.DB, trainerID uuid.UUID, start time.Time) (int64, error) {
	var seed int64
	err := db.Raw(`
		SELECT COUNT(*)
		FROM students
		WHERE trainer_id = ? AND created_at < ?
		  AND (deleted_at IS NULL OR deleted_at >= ?)`,
		trainerID, start, start).Scan(&seed).Error
	return seed, err
}

func totalStudents(db *gorm.DB, trainerID uuid.UUID) (int64, error) {
	var n int64
	err := db.Raw(`SELECT COUNT(*) FROM students WHERE trainer_id = ?`, trainerID).
		Scan(&n).Error
	return n, err
}

/* =======================================================
   Operasi publik
   ======================================================= */

// AdmissionsVsRemovals — series sparse masuk-vs-keluar per bulan.
func AdmissionsVsRemovals(db *gorm.DB, trainerID uuid.UUID, start, end time.Time) ([]AdmissionRemovalRow, error) {
	key := fmt.Sprintf("stats:admrem:%s:%s:%s",
		trainerID, start.Format(monthLayout), end.Format(monthLayout))

	return cachedJSON(key, func() ([]AdmissionRemovalRow, error) {
		admissions, err := admissionsByMonth(db, trainerID, start, end)
		if err != nil {
			return nil, err
		}
		removals, err := removalsByMonth(db, trainerID, start, end)
		if err != nil {
			return nil, err
		}
		return BuildAdmissionsVsRemovals(admissions, removals), nil
	})
}

// ActiveCountSeries — series padat saldo aktif per akhir bulan.
// Trainer tanpa alumno sama sekali → series kosong.
func ActiveCountSeries(db *gorm.DB, trainerID uuid.UUID, start, end time.Time) ([]ActiveCountRow, error) {
	key := fmt.Sprintf("stats:active:%s:%s:%s",
		trainerID, start.Format(monthLayout), end.Format(monthLayout))

	return cachedJSON(key, func() ([]ActiveCountRow, error) {
		total, err := totalStudents(db, trainerID)
		if err != nil {
			return nil, err
		}
		if total == 0 {
			return []ActiveCountRow{}, nil
		}

		seed, err := activeBefore(db, trainerID, start)
		if err != nil {
			return nil, err
		}
		admissions, err := admissionsByMonth(db, trainerID, start, end)
		if err != nil {
			return nil, err
		}
		removals, err := removalsByMonth(db, trainerID, start, end)
		if err != nil {
			return nil, err
		}
		return BuildActiveCountSeries(start, end, seed, admissions, removals), nil
	})
}

// MonthlyAverageRating — rata-rata skor per bulan, sparse.
func MonthlyAverageRating(db *gorm.DB, trainerID uuid.UUID, start, end time.Time) ([]MonthlyRatingRow, error) {
	key := fmt.Sprintf("stats:rating:%s:%s:%s",
		trainerID, start.Format(monthLayout), end.Format(monthLayout))

	return cachedJSON(key, func() ([]MonthlyRatingRow, error) {
		var rows []MonthlyRatingRow
		err := db.Raw(`
			SELECT to_char(created_at, 'YYYY-MM') AS month,
			       AVG(score)::float8 AS average,
			       COUNT(*) AS count
			FROM plan_evaluations
			WHERE trainer_id = ? AND created_at >= ? AND created_at < ?
			GROUP BY 1`, trainerID, start, end).Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		return SortMonthlyRatings(rows), nil
	})
}

// RatingDistribution — histogram skor, SELALU 6 baris 0..5.
func RatingDistribution(db *gorm.DB, trainerID uuid.UUID, start, end time.Time) ([]ScoreBucketRow, error) {
	key := fmt.Sprintf("stats:dist:%s:%s:%s",
		trainerID, start.Format(monthLayout), end.Format(monthLayout))

	return cachedJSON(key, func() ([]ScoreBucketRow, error) {
		var rows []struct {
			Score int
			Count int64
		}
		err := db.Raw(`
			SELECT score, COUNT(*) AS count
			FROM plan_evaluations
			WHERE trainer_id = ? AND created_at >= ? AND created_at < ?
			GROUP BY score`, trainerID, start, end).Scan(&rows).Error
		if err != nil {
			return nil, err
		}
		counts := make(map[int]int64, len(rows))
		for _, r := range rows {
			counts[r.Score] = r.Count
		}
		return BuildDistribution(counts), nil
	})
}

/* =======================================================
   Reporting assembly — progres plan satu alumno
   ======================================================= */

// PlanProgressSummary — snapshot all-time, bukan series historis.
type PlanProgressSummary struct {
	StudentID  string  `json:"student_id"`
	Total      int64   `json:"total"`
	Completed  int64   `json:"completed"`
	Incomplete int64   `json:"incomplete"`
	InProgress int64   `json:"in_progress"`
	Percentage float64 `json:"percentage"`
}

// BuildPlanProgress — persentase = completed/total*100; total 0 → 0
// (tanpa pembagian nol).
func BuildPlanProgress(studentID string, total, completed, incomplete, inProgress int64) PlanProgressSummary {
	s := PlanProgressSummary{
		StudentID:  studentID,
		Total:      total,
		Completed:  completed,
		Incomplete: incomplete,
		InProgress: inProgress,
	}
	if total > 0 {
		s.Percentage = float64(completed) / float64(total) * 100
	}
	return s
}

// GetPlanProgress — hitung per nama estado persis (matching string).
func GetPlanProgress(db *gorm.DB, studentID uuid.UUID) (PlanProgressSummary, error) {
	var rows []struct {
		Name  string
		Count int64
	}
	err := db.Raw(`
		SELECT ps.name AS name, COUNT(*) AS count
		FROM plans p
		JOIN plan_statuses ps ON ps.id = p.status_id
		WHERE p.student_id = ? AND p.deleted_at IS NULL
		GROUP BY ps.name`, studentID).Scan(&rows).Error
	if err != nil {
		return PlanProgressSummary{}, err
	}

	var total, completed, incomplete, inProgress int64
	for _, r := range rows {
		total += r.Count
		switch r.Name {
		case planModel.StatusCompleted:
			completed = r.Count
		case planModel.StatusIncomplete:
			incomplete = r.Count
		case planModel.StatusInProgress:
			inProgress = r.Count
		}
	}
	return BuildPlanProgress(studentID.String(), total, completed, incomplete, inProgress), nil
}
