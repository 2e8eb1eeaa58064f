// Package validator provides small, composable validation rules for the
// record types served by the API: identifiers, email addresses, web URLs,
// role enumerations, pagination scalars, and passwords.
//
// Each exported function builds a Rule value pairing a boolean Check with
// the ValidationError reported on failure. Rules are evaluated with Apply,
// which never stops at the first failure: every failing field from one
// construction attempt is aggregated into a ValidationErrors slice that
// implements the error interface, so callers can surface all problems in a
// single response.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.ValidNickname("nickname", nickname, 3, 50),
//	    validator.ValidEmail("email", email),
//	    validator.OptionalWebURL("profile_picture_url", pictureURL),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // iterate over field-level messages
//	}
//
// The package holds no state. All rules are pure with respect to their
// input and safe for concurrent use.
package validator
