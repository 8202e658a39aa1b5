package extract

import (
	"strconv"
	"strings"
	"time"
)

// NormalizeDate converts M/D/YYYY or M/YYYY into YYYY-MM-DD. M/YYYY maps to
// the first day of the month. Already-normalized YYYY-MM-DD input passes
// through unchanged so normalization is idempotent. Any other shape returns
// the empty string ("unknown"), never an error and never a default date.
func NormalizeDate(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse("1/2/2006", s); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.Parse("1/2006", s); err == nil {
		return t.Format("2006-01-02")
	}

	return ""
}

// NormalizeAmount strips $, commas, and whitespace and parses an integer.
// A non-numeric result is nil ("not reported"), which is distinct from zero.
func NormalizeAmount(raw string) *int {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return nil
	}

	// Tolerate cents by truncating at the decimal point
	if idx := strings.Index(s, "."); idx >= 0 {
		s = s[:idx]
		if s == "" {
			return nil
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// Last4 reduces an account number to its last 4 digits. Mask characters
// and separators are ignored; fewer than 4 digits returns what exists.
func Last4(raw string) string {
	var digits []rune
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) > 4 {
		digits = digits[len(digits)-4:]
	}
	return string(digits)
}
