package clock

import "testing"

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"10:15", 615},
		{"10:45", 645},
		{"23:59", 1439},
		{"09:05", 545},
		{"", 0},
		{"1015", 0},
		{"10:15:30", 0},
		{"ab:cd", 0},
	}
	for _, c := range cases {
		got := ParseMinutes(c.input)
		if got != c.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestHoursBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"10:00", "19:00", 9.0},
		{"10:20", "19:30", 9.166666666666666},
		{"09:00", "13:30", 4.5},
		{"19:00", "10:00", -9.0},
		{"", "01:00", 1.0},
	}
	for _, c := range cases {
		got := HoursBetween(c.start, c.end)
		if got != c.want {
			t.Errorf("HoursBetween(%q, %q) = %v, want %v", c.start, c.end, got, c.want)
		}
	}
}
