package version

import (
	"strings"
	"testing"
)

func TestBuildID(t *testing.T) {
	tests := []struct {
		name      string
		date      string
		expected  int
		wantError bool
	}{
		{name: "epoch date", date: "2026-01-01", expected: 0},
		{name: "next day", date: "2026-01-02", expected: 1},
		{name: "one year later", date: "2027-01-01", expected: 365},
		{name: "across a leap year", date: "2029-01-01", expected: 1096},
		{name: "invalid format", date: "01/02/2026", wantError: true},
		{name: "empty date", date: "", wantError: true},
		{name: "before epoch", date: "2025-12-31", wantError: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BuildID(tt.date)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got nil (id=%d)", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("BuildID() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	oldDate, oldCommit := BuildDate, BuildCommit
	defer func() { BuildDate, BuildCommit = oldDate, oldCommit }()

	BuildDate, BuildCommit = "", ""
	if info := Info(); info.Known || info.Error == "" {
		t.Errorf("Info() without a date = %+v", info)
	}
	if s := String(); !strings.Contains(s, "dev build") {
		t.Errorf("String() = %q", s)
	}

	BuildDate, BuildCommit = "2026-02-01", "abc123"
	info := Info()
	if !info.Known || info.BuildID != 31 || info.Commit != "abc123" {
		t.Errorf("Info() = %+v", info)
	}
	if s := String(); !strings.Contains(s, "build 31") || !strings.Contains(s, "commit[abc123]") {
		t.Errorf("String() = %q", s)
	}
}
