package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func intp(n int) *int { return &n }

func TestCreateEvaluationScoreBounds(t *testing.T) {
	v := validator.New()

	base := CreateEvaluationRequest{
		PlanID:    "7f9c24e5-1dcf-4b3a-9e1d-111111111111",
		StudentID: "7f9c24e5-1dcf-4b3a-9e1d-222222222222",
	}

	tests := []struct {
		name    string
		score   *int
		wantErr bool
	}{
		{name: "skor minimum 0 valid", score: intp(0), wantErr: false},
		{name: "skor maksimum 5 valid", score: intp(5), wantErr: false},
		{name: "skor tengah valid", score: intp(3), wantErr: false},
		{name: "skor -1 ditolak", score: intp(-1), wantErr: true},
		{name: "skor 6 ditolak", score: intp(6), wantErr: true},
		{name: "skor kosong ditolak", score: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			req.Score = tt.score
			err := v.Struct(&req)
			if (err != nil) != tt.wantErr {
				t.Errorf("Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateEvaluationMandatoryRefs(t *testing.T) {
	v := validator.New()

	// tanpa plan_id / student_id → validasi gagal, bukan dikoreksi diam-diam
	req := CreateEvaluationRequest{Score: intp(4)}
	if err := v.Struct(&req); err == nil {
		t.Fatal("request tanpa referensi wajib lolos validasi")
	}
}
