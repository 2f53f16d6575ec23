package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "10:15", "23:59", "09:05"}
	invalid := []string{"24:00", "10:60", "1015", "10:5", "9:05", "", "aa:bb"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("IsValidClock(%q) = true, want false", s)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2023-01-01", "2000-12-31"}
	invalid := []string{"2023-13-01", "01-01-2023", "2023/01/01", ""}
	for _, s := range valid {
		if _, ok := IsValidDate(s); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsAllowedImage(t *testing.T) {
	valid := []string{"proof.jpg", "selfie.JPEG", "photo.png"}
	invalid := []string{"document.pdf", "archive.zip", "noext", "photo.gif"}
	for _, s := range valid {
		if !IsAllowedImage(s) {
			t.Errorf("IsAllowedImage(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsAllowedImage(s) {
			t.Errorf("IsAllowedImage(%q) = true, want false", s)
		}
	}
}
