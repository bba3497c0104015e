package validator

import (
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

// ToMap returns the errors keyed by field. Later errors on the same field win.
func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// Messages returns the flat set of distinct error messages, in first-seen
// order. The same rule firing on several rows yields one message.
func (v ValidationErrors) Messages() []string {
	seen := make(map[string]struct{}, len(v))
	var msgs []string
	for _, err := range v {
		if _, ok := seen[err.Message]; ok {
			continue
		}
		seen[err.Message] = struct{}{}
		msgs = append(msgs, err.Message)
	}
	return msgs
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// IsValidDate parses a "YYYY-MM-DD" date.
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}
