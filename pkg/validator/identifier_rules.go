package validator

import (
	"fmt"
	"regexp"
	"strings"
)

var nicknameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidNickname validates a public user identifier: minLen-maxLen characters
// drawn from letters, digits, underscores, and hyphens. Spaces and any other
// punctuation are rejected, as is the empty string.
func ValidNickname(field, value string, minLen, maxLen int) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			if len(value) < minLen || len(value) > maxLen {
				return false
			}
			return nicknameRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be %d-%d characters long and contain only letters, numbers, underscores, and hyphens", minLen, maxLen),
			Value:   value,
		},
	}
}
