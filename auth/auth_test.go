// Copyright (c) 2025 Arber Bekoci.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestVerifyPassword(t *testing.T) {
	tests := []struct {
		name      string
		submitted string
		expected  string
		want      bool
	}{
		{"exact match", "hunter2", "hunter2", true},
		{"mismatch", "hunter2", "hunter3", false},
		{"different lengths", "short", "a much longer password", false},
		{"empty submitted", "", "hunter2", false},
		{"both empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.submitted, tt.expected); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNewSessionToken(t *testing.T) {
	a, err := NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}
	b, err := NewSessionToken()
	if err != nil {
		t.Fatalf("NewSessionToken failed: %v", err)
	}

	if a == b {
		t.Error("Expected distinct tokens")
	}
	if strings.Contains(a, "=") {
		t.Errorf("Expected no padding in token %q", a)
	}
	if len(a) != 32 {
		t.Errorf("Expected 32-char token for 24 bytes, got %d", len(a))
	}
}
