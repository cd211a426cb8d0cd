package utils

import (
	"testing"
	"time"
)

func TestGetMonthRange(t *testing.T) {
	start, end := GetMonthRange(2025, time.February)
	if start != time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC) {
		t.Errorf("start = %v", start)
	}
	if end != time.Date(2025, time.February, 28, 23, 59, 59, 0, time.UTC) {
		t.Errorf("end = %v", end)
	}

	start, end = GetMonthRange(2024, time.February)
	if end.Day() != 29 {
		t.Errorf("leap year end day = %d, want 29", end.Day())
	}
	if start.Month() != time.February {
		t.Errorf("start month = %v", start.Month())
	}
}

func TestUniqueSlice(t *testing.T) {
	got := UniqueSlice([]int{1, 2, 2, 3, 1})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"user@example.com", "a.b+c@mail.co.id"}
	invalid := []string{"", "not-an-email", "user@", "@example.com"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}
