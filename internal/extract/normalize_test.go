package extract

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1/15/2020", "2020-01-15"},
		{"12/31/2019", "2019-12-31"},
		{"02/05/2021", "2021-02-05"},
		{"3/2020", "2020-03-01"}, // Month/year maps to the first of the month
		{"11/2018", "2018-11-01"},
		{"2020-06-15", "2020-06-15"}, // Already normalized passes through
		{"", ""},
		{"   ", ""},
		{"--", ""},
		{"13/40/2020", ""}, // Impossible date
		{"January 2020", ""},
		{"2020", ""},
	}

	for _, tt := range tests {
		if got := NormalizeDate(tt.input); got != tt.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeAmount(t *testing.T) {
	tests := []struct {
		input string
		want  *int
	}{
		{"$1,234", intPtr(1234)},
		{"$500", intPtr(500)},
		{"1234", intPtr(1234)},
		{"$ 2,500 ", intPtr(2500)},
		{"$1,234.56", intPtr(1234)}, // Cents truncated
		{"0", intPtr(0)},
		{"--", nil},
		{"", nil},
		{"N/A", nil},
		{"$", nil},
	}

	for _, tt := range tests {
		got := NormalizeAmount(tt.input)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("NormalizeAmount(%q) = %d, want nil", tt.input, *got)
		case tt.want != nil && got == nil:
			t.Errorf("NormalizeAmount(%q) = nil, want %d", tt.input, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("NormalizeAmount(%q) = %d, want %d", tt.input, *got, *tt.want)
		}
	}
}

func TestLast4(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"****1234", "1234"},
		{"4111-1111-1111-9876", "9876"},
		{"XXXX5678", "5678"},
		{"42", "42"}, // Fewer than 4 digits returns what exists
		{"", ""},
		{"no digits", ""},
	}

	for _, tt := range tests {
		if got := Last4(tt.input); got != tt.want {
			t.Errorf("Last4(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func intPtr(n int) *int { return &n }
