package validator

import (
	"fmt"
	"strings"
)

// InList validates that a value is a member of the allowed set. Used for
// closed enumerations such as user roles.
func InList[T comparable](field string, value T, allowed []T) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %v", allowed),
			Value:   value,
		},
	}
}

// InListString is the string specialization of InList with a friendlier
// message format.
func InListString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, a := range allowed {
				if value == a {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
			Value:   value,
		},
	}
}
