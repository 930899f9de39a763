package scoring

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	clockTimeRe  = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	digitsRe     = regexp.MustCompile(`\d`)
)

// NormalizeTimeNumber reduces a time or number answer to a canonical form
// so that "07:00 AM", "7:00", "7 am" and "7" all compare equal. The
// function is idempotent: applying it twice yields the same string.
func NormalizeTimeNumber(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	// Meridiem suffixes carry no information once both sides are folded.
	for _, suffix := range []string{" am", " pm", "am", "pm"} {
		s = strings.TrimSuffix(s, suffix)
	}
	s = whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")

	if m := clockTimeRe.FindStringSubmatch(s); m != nil {
		hour := strings.TrimPrefix(m[1], "0")
		if hour == "" {
			hour = "0"
		}
		if m[2] == "00" {
			return hour
		}
		return hour + ":" + m[2]
	}

	return s
}

// digitsOnly keeps the digit characters of s in order, for tolerant
// number comparison ("9,173" vs "9173").
func digitsOnly(s string) string {
	return strings.Join(digitsRe.FindAllString(s, -1), "")
}
