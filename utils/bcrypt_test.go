package utils

import "testing"

// Password hashes are stored as strings; the []byte hash must survive the
// string round-trip callers do when filling User.Password.
func TestHashPasswordStringRoundTrip(t *testing.T) {
	hashed, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	stored := string(hashed)
	if err := ComparePassword(stored, "admin123"); err != nil {
		t.Errorf("ComparePassword(stored, original) = %v, want nil", err)
	}
	if err := ComparePassword(stored, "wrong-password"); err == nil {
		t.Error("ComparePassword(stored, wrong) = nil, want error")
	}
}
