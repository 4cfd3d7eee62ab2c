package service

import (
	"bytes"
	"testing"
	"time"
)

func TestGenerateSecret(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		s, err := GenerateSecret()
		if err != nil {
			t.Fatalf("GenerateSecret() error = %v", err)
		}
		// 32 byte → 43 karakter base64 raw-url
		if len(s) != 43 {
			t.Errorf("GenerateSecret() len = %d, want 43", len(s))
		}
		if seen[s] {
			t.Fatalf("GenerateSecret() menghasilkan duplikat: %s", s)
		}
		seen[s] = true
	}
}

func TestHashSecret(t *testing.T) {
	a := HashSecret("rahasia-satu")
	b := HashSecret("rahasia-satu")
	c := HashSecret("rahasia-dua")

	if !bytes.Equal(a, b) {
		t.Error("HashSecret tidak deterministik untuk input sama")
	}
	if bytes.Equal(a, c) {
		t.Error("HashSecret sama untuk input berbeda")
	}
	if len(a) != 32 {
		t.Errorf("HashSecret() len = %d, want 32 (SHA-256)", len(a))
	}
}

func TestIsRedeemable(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		used      bool
		expiredAt time.Time
		want      bool
	}{
		{
			name:      "belum used, belum expired",
			used:      false,
			expiredAt: now.Add(5 * time.Minute),
			want:      true,
		},
		{
			name:      "pas di batas expired masih boleh",
			used:      false,
			expiredAt: now,
			want:      true,
		},
		{
			name:      "sudah used",
			used:      true,
			expiredAt: now.Add(5 * time.Minute),
			want:      false,
		},
		{
			name:      "sudah expired",
			used:      false,
			expiredAt: now.Add(-time.Second),
			want:      false,
		},
		{
			name:      "used dan expired",
			used:      true,
			expiredAt: now.Add(-time.Hour),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRedeemable(tt.used, tt.expiredAt, now); got != tt.want {
				t.Errorf("IsRedeemable(%v, %v) = %v, want %v", tt.used, tt.expiredAt, got, tt.want)
			}
		})
	}
}

func TestTokenTTLDefault(t *testing.T) {
	t.Setenv("RECOVERY_TOKEN_TTL_MINUTES", "")
	if got := TokenTTL(); got != 10*time.Minute {
		t.Errorf("TokenTTL() default = %v, want 10m", got)
	}

	t.Setenv("RECOVERY_TOKEN_TTL_MINUTES", "30")
	if got := TokenTTL(); got != 30*time.Minute {
		t.Errorf("TokenTTL() = %v, want 30m", got)
	}

	// nilai invalid → fallback default
	t.Setenv("RECOVERY_TOKEN_TTL_MINUTES", "abc")
	if got := TokenTTL(); got != 10*time.Minute {
		t.Errorf("TokenTTL() dengan env invalid = %v, want 10m", got)
	}
}
