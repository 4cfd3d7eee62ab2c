package service

import (
	"sort"
	"time"
)

const monthLayout = "2006-01"

/* =======================================================
   Tipe baris hasil
   ======================================================= */

// AdmissionRemovalRow — satu bulan dengan aktivitas masuk/keluar.
type AdmissionRemovalRow struct {
	Month      string `json:"month"`
	Admissions int64  `json:"admissions"`
	Removals   int64  `json:"removals"`
}

// ActiveCountRow — snapshot saldo alumno aktif di akhir bulan.
type ActiveCountRow struct {
	Month       string `json:"month"`
	ActiveCount int64  `json:"active_count"`
}

// MonthlyRatingRow — rata-rata skor per bulan (sparse).
type MonthlyRatingRow struct {
	Month   string  `json:"month"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

// ScoreBucketRow — satu skor 0..5 dengan jumlahnya (dense).
type ScoreBucketRow struct {
	Score int   `json:"score"`
	Count int64 `json:"count"`
}

/* =======================================================
   Builder murni (tanpa DB) — inti bucketing bulanan
   ======================================================= */

// BuildAdmissionsVsRemovals — union key dua map sparse, urut naik.
// Bulan tanpa aktivitas di KEDUA sisi tidak muncul; sisi yang absen
// dihitung 0.
func BuildAdmissionsVsRemovals(admissions, removals map[string]int64) []AdmissionRemovalRow {
	months := make(map[string]struct{}, len(admissions)+len(removals))
	for m := range admissions {
		months[m] = struct{}{}
	}
	for m := range removals {
		months[m] = struct{}{}
	}

	keys := make([]string, 0, len(months))
	for m := range months {
		keys = append(keys, m)
	}
	sort.Strings(keys)

	rows := make([]AdmissionRemovalRow, 0, len(keys))
	for _, m := range keys {
		rows = append(rows, AdmissionRemovalRow{
			Month:      m,
			Admissions: admissions[m],
			Removals:   removals[m],
		})
	}
	return rows
}

// BuildActiveCountSeries — jalan PADAT bulan demi bulan di [start, end),
// saldo berjalan di-seed dari jumlah aktif SEBELUM jendela dibuka:
//
//	saldo[m] = saldo[m-1] + masuk[m] - keluar[m]
//
// Prefix-sum, BUKAN hitung absolut per bulan. start >= end → series
// kosong. Kasus "trainer tanpa alumno sama sekali" di-short-circuit
// oleh pemanggil sebelum builder ini jalan.
func BuildActiveCountSeries(start, end time.Time, seed int64, admissions, removals map[string]int64) []ActiveCountRow {
	if !start.Before(end) {
		return []ActiveCountRow{}
	}

	rows := make([]ActiveCountRow, 0, 12)
	balance := seed
	for cur := startOfMonth(start); cur.Before(end); cur = cur.AddDate(0, 1, 0) {
		key := cur.Format(monthLayout)
		balance += admissions[key] - removals[key]
		rows = append(rows, ActiveCountRow{Month: key, ActiveCount: balance})
	}
	return rows
}

// BuildDistribution — SELALU 6 baris skor 0..5 urut naik, 0 kalau
// tidak ada data. Sengaja asimetris dengan rata-rata bulanan yang sparse.
func BuildDistribution(counts map[int]int64) []ScoreBucketRow {
	rows := make([]ScoreBucketRow, 0, 6)
	for score := 0; score <= 5; score++ {
		rows = append(rows, ScoreBucketRow{Score: score, Count: counts[score]})
	}
	return rows
}

// SortMonthlyRatings — hasil GROUP BY tidak dijamin urut; urutkan by bulan.
func SortMonthlyRatings(rows []MonthlyRatingRow) []MonthlyRatingRow {
	sort.Slice(rows, func(i, j int) bool { return rows[i].Month < rows[j].Month })
	return rows
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ParseMonth — "YYYY-MM" → awal bulan itu.
func ParseMonth(s string) (time.Time, error) {
	return time.Parse(monthLayout, s)
}
