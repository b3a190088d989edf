package validation

import (
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,12}$`)
)

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPhone reports whether s is 10-12 digits with an optional leading +.
// Spaces, dashes and parentheses are not accepted.
func IsValidPhone(s string) bool {
	return phonePattern.MatchString(s)
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ParseDate parses a YYYY-MM-DD string. Impossible dates such as 2023-02-30
// fail to parse.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
