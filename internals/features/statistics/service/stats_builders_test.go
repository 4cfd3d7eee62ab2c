package service

import (
	"reflect"
	"testing"
	"time"
)

func month(s string) time.Time {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestBuildAdmissionsVsRemovals(t *testing.T) {
	tests := []struct {
		name       string
		admissions map[string]int64
		removals   map[string]int64
		want       []AdmissionRemovalRow
	}{
		{
			name:       "tanpa data sama sekali",
			admissions: map[string]int64{},
			removals:   map[string]int64{},
			want:       []AdmissionRemovalRow{},
		},
		{
			name:       "bulan satu-sisi tetap muncul, sisi absen 0",
			admissions: map[string]int64{"2025-03": 3},
			removals:   map[string]int64{},
			want: []AdmissionRemovalRow{
				{Month: "2025-03", Admissions: 3, Removals: 0},
			},
		},
		{
			name:       "union key dua map, urut naik, gap dilewati",
			admissions: map[string]int64{"2025-01": 2, "2025-04": 1},
			removals:   map[string]int64{"2025-02": 1, "2025-04": 2},
			want: []AdmissionRemovalRow{
				{Month: "2025-01", Admissions: 2, Removals: 0},
				{Month: "2025-02", Admissions: 0, Removals: 1},
				{Month: "2025-04", Admissions: 1, Removals: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildAdmissionsVsRemovals(tt.admissions, tt.removals)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildAdmissionsVsRemovals() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildActiveCountSeries(t *testing.T) {
	tests := []struct {
		name       string
		start, end time.Time
		seed       int64
		admissions map[string]int64
		removals   map[string]int64
		want       []ActiveCountRow
	}{
		{
			// saldo berjalan: 10 + 3 - 1 = 12, lalu 12 + 0 - 2 = 10
			name:       "prefix-sum dengan seed",
			start:      month("2025-01"),
			end:        month("2025-03"),
			seed:       10,
			admissions: map[string]int64{"2025-01": 3},
			removals:   map[string]int64{"2025-01": 1, "2025-02": 2},
			want: []ActiveCountRow{
				{Month: "2025-01", ActiveCount: 12},
				{Month: "2025-02", ActiveCount: 10},
			},
		},
		{
			name:       "padat: bulan tanpa aktivitas tetap muncul",
			start:      month("2025-01"),
			end:        month("2025-04"),
			seed:       5,
			admissions: map[string]int64{"2025-03": 1},
			removals:   map[string]int64{},
			want: []ActiveCountRow{
				{Month: "2025-01", ActiveCount: 5},
				{Month: "2025-02", ActiveCount: 5},
				{Month: "2025-03", ActiveCount: 6},
			},
		},
		{
			name:       "start sesudah end → kosong",
			start:      month("2025-06"),
			end:        month("2025-03"),
			seed:       10,
			admissions: map[string]int64{"2025-04": 1},
			removals:   map[string]int64{},
			want:       []ActiveCountRow{},
		},
		{
			name:       "saldo boleh turun ke nol",
			start:      month("2025-01"),
			end:        month("2025-02"),
			seed:       2,
			admissions: map[string]int64{},
			removals:   map[string]int64{"2025-01": 2},
			want: []ActiveCountRow{
				{Month: "2025-01", ActiveCount: 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildActiveCountSeries(tt.start, tt.end, tt.seed, tt.admissions, tt.removals)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildActiveCountSeries() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildDistributionAlwaysSixRows(t *testing.T) {
	tests := []struct {
		name   string
		counts map[int]int64
		want   []ScoreBucketRow
	}{
		{
			name:   "tanpa data → enam baris nol",
			counts: map[int]int64{},
			want: []ScoreBucketRow{
				{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0},
			},
		},
		{
			name:   "data sparse tetap enam baris",
			counts: map[int]int64{0: 1, 5: 4},
			want: []ScoreBucketRow{
				{0, 1}, {1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildDistribution(tt.counts)
			if len(got) != 6 {
				t.Fatalf("BuildDistribution() menghasilkan %d baris, want 6", len(got))
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildDistribution() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortMonthlyRatings(t *testing.T) {
	rows := []MonthlyRatingRow{
		{Month: "2025-03", Average: 4.5, Count: 2},
		{Month: "2025-01", Average: 3.0, Count: 1},
	}
	got := SortMonthlyRatings(rows)
	if got[0].Month != "2025-01" || got[1].Month != "2025-03" {
		t.Errorf("SortMonthlyRatings() urutan salah: %v", got)
	}
}

func TestBuildPlanProgress(t *testing.T) {
	tests := []struct {
		name                                   string
		total, completed, incomplete, inProg   int64
		wantPct                                float64
	}{
		{name: "setengah selesai", total: 4, completed: 2, incomplete: 1, inProg: 1, wantPct: 50.0},
		{name: "tanpa plan → 0, bukan div-by-zero", total: 0, wantPct: 0.0},
		{name: "semua selesai", total: 3, completed: 3, wantPct: 100.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildPlanProgress("x", tt.total, tt.completed, tt.incomplete, tt.inProg)
			if got.Percentage != tt.wantPct {
				t.Errorf("Percentage = %v, want %v", got.Percentage, tt.wantPct)
			}
		})
	}
}

func TestParseMonth(t *testing.T) {
	got, err := ParseMonth("2025-07")
	if err != nil {
		t.Fatalf("ParseMonth() error = %v", err)
	}
	if got.Year() != 2025 || got.Month() != time.July || got.Day() != 1 {
		t.Errorf("ParseMonth() = %v, want awal Juli 2025", got)
	}

	if _, err := ParseMonth("07-2025"); err == nil {
		t.Error("ParseMonth() format salah lolos")
	}
}
