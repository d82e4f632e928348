package authtoken

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func tokenWithExp(exp time.Time) string {
	payload, _ := json.Marshal(map[string]any{"exp": exp.Unix()})
	return fmt.Sprintf("header.%s.sig", base64.RawURLEncoding.EncodeToString(payload))
}

func TestExpirationAt(t *testing.T) {
	exp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		token  string
		wantOk bool
	}{
		{"valid token", tokenWithExp(exp), true},
		{"empty string", "", false},
		{"two segments", "a.b", false},
		{"payload not base64", "a.!!!.c", false},
		{"payload not json", "a." + base64.RawURLEncoding.EncodeToString([]byte("nope")) + ".c", false},
		{"missing exp claim", "a." + base64.RawURLEncoding.EncodeToString([]byte("{}")) + ".c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExpirationAt(tt.token)
			if ok != tt.wantOk {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOk)
			}
			if ok && !got.Equal(exp) {
				t.Errorf("exp = %v, want %v", got, exp)
			}
		})
	}
}

func TestExpirationAtPaddedSegment(t *testing.T) {
	payload, _ := json.Marshal(map[string]any{"exp": int64(1700000000)})
	token := "h." + base64.URLEncoding.EncodeToString(payload) + ".s"

	got, ok := ExpirationAt(token)
	if !ok {
		t.Fatal("padded segment should decode")
	}
	if got.Unix() != 1700000000 {
		t.Errorf("exp = %d, want 1700000000", got.Unix())
	}
}

func TestIsUsable(t *testing.T) {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		exp  time.Time
		want bool
	}{
		{"well in the future", now.Add(time.Hour), true},
		{"already expired", now.Add(-time.Minute), false},
		{"inside the safety margin", now.Add(SafetyMargin - time.Second), false},
		{"exactly at the margin", now.Add(SafetyMargin), false},
		{"just past the margin", now.Add(SafetyMargin + time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUsable(tokenWithExp(tt.exp), now); got != tt.want {
				t.Errorf("IsUsable = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentityUsable(t *testing.T) {
	now := time.Now()

	if IdentityUsable(nil, now) {
		t.Error("nil identity should not be usable")
	}
	if IdentityUsable(&Identity{}, now) {
		t.Error("empty token should not be usable")
	}

	id := &Identity{Token: tokenWithExp(now.Add(time.Hour))}
	if !IdentityUsable(id, now) {
		t.Error("fresh token should be usable")
	}
}
