package dto

import (
	"testing"
	"time"
)

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func TestUpdateUserRequestUpdatesMap(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      UpdateUserRequest
		wantKeys []string
	}{
		{
			name:     "request kosong tetap stamp updated_at",
			req:      UpdateUserRequest{},
			wantKeys: []string{"updated_at"},
		},
		{
			name:     "hanya field yang diisi yang masuk",
			req:      UpdateUserRequest{UserName: strp("nuevo")},
			wantKeys: []string{"updated_at", "user_name"},
		},
		{
			name: "semua field",
			req: UpdateUserRequest{
				UserName: strp("nuevo"),
				Email:    strp("a@b.com"),
				IsActive: boolp(false),
			},
			wantKeys: []string{"updated_at", "user_name", "email", "is_active"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.UpdatesMap(now)
			if len(got) != len(tt.wantKeys) {
				t.Fatalf("UpdatesMap() punya %d key, want %d: %v", len(got), len(tt.wantKeys), got)
			}
			for _, k := range tt.wantKeys {
				if _, ok := got[k]; !ok {
					t.Errorf("UpdatesMap() tidak punya key %q", k)
				}
			}
			if got["updated_at"] != now {
				t.Errorf("updated_at = %v, want %v", got["updated_at"], now)
			}
		})
	}
}

func TestCreateUserRequestNormalize(t *testing.T) {
	r := CreateUserRequest{
		UserName: "  Ana ",
		Email:    " ANA@Example.COM ",
		Role:     " student ",
	}
	r.Normalize()

	if r.UserName != "Ana" {
		t.Errorf("UserName = %q", r.UserName)
	}
	if r.Email != "ana@example.com" {
		t.Errorf("Email = %q, want lowercase trimmed", r.Email)
	}
	if r.Role != "student" {
		t.Errorf("Role = %q", r.Role)
	}
}
