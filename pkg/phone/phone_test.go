package phone

import "testing"

func TestDigits(t *testing.T) {
	cases := map[string]string{
		"987-654-3210":     "9876543210",
		"+91 98765 43210":  "919876543210",
		"(555) 123-4567":   "5551234567",
		"no digits at all": "",
	}
	for in, want := range cases {
		if got := Digits(in); got != want {
			t.Errorf("Digits(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeValidNumber(t *testing.T) {
	got := Normalize("98765 43210", "IN")
	if got != "+919876543210" {
		t.Errorf("Normalize = %q, want +919876543210", got)
	}
}

func TestNormalizeInvalidFallsBackToDigits(t *testing.T) {
	got := Normalize("12345", "IN")
	if got != "12345" {
		t.Errorf("Normalize = %q, want bare digits 12345", got)
	}
}
