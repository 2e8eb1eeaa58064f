package validator

import (
	"fmt"
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// webSchemes is the scheme allowlist for user-supplied profile and
// hypermedia URLs.
var webSchemes = []string{"http", "https"}

// ValidEmail validates that a string is a valid email address. It combines
// the RFC 5322 parser with the stricter domain shape expected of addresses
// used on the web (a dot-separated domain with no empty labels).
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}

			addr, err := mail.ParseAddress(value)
			if err != nil {
				return false
			}

			local, domain, ok := strings.Cut(addr.Address, "@")
			if !ok || local == "" {
				return false
			}

			if !strings.Contains(domain, ".") {
				return false
			}
			for part := range strings.SplitSeq(domain, ".") {
				if part == "" {
					return false
				}
			}

			return true
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
			Value:   value,
		},
	}
}

// ValidURLWithScheme validates that a string parses as an absolute URL whose
// scheme is in the allowed set. Values like "http//host" (missing "://")
// fail to parse as absolute URLs and are rejected.
func ValidURLWithScheme(field, value string, schemes []string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			if u.Host == "" {
				return false
			}
			return slices.Contains(schemes, u.Scheme)
		},
		Error: ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be a valid URL with scheme: %s", strings.Join(schemes, ", ")),
			Value:   value,
		},
	}
}

// ValidWebURL validates a required http/https URL.
func ValidWebURL(field, value string) Rule {
	return ValidURLWithScheme(field, value, webSchemes)
}

// OptionalWebURL validates an optional http/https URL. A nil pointer means
// the field is absent, which is always valid; a present value must be a
// well-formed http or https URL.
func OptionalWebURL(field string, value *string) Rule {
	if value == nil {
		return Rule{
			Check: func() bool { return true },
			Error: ValidationError{Field: field},
		}
	}
	return ValidWebURL(field, *value)
}
