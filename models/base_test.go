package models

import (
	"testing"
	"time"
)

func TestFormatDocumentNumber(t *testing.T) {
	tests := []struct {
		prefix string
		date   time.Time
		seq    int64
		want   string
	}{
		{"PO", time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), 1, "PO-202503-0001"},
		{"INV", time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), 42, "INV-202512-0042"},
		{"PAY", time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), 12345, "PAY-202601-12345"},
	}
	for _, tt := range tests {
		if got := FormatDocumentNumber(tt.prefix, tt.date, tt.seq); got != tt.want {
			t.Errorf("FormatDocumentNumber(%s, %v, %d) = %s, want %s", tt.prefix, tt.date, tt.seq, got, tt.want)
		}
	}
}
