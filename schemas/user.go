package schemas

import (
	"github.com/dmitrymomot/userhub/pkg/validator"
)

// Bounds applied to user fields. Nickname limits match the public identifier
// rule: at least 3 characters, charset [A-Za-z0-9_-].
const (
	NicknameMinLen = 3
	NicknameMaxLen = 50
	NameMaxLen     = 100
	BioMaxLen      = 500
)

// UserBase carries the profile fields shared by create and response shapes.
// The URL fields are pointers: nil means absent, which is always valid; a
// present value must be a well-formed http or https URL.
type UserBase struct {
	Nickname          string  `json:"nickname"`
	Email             string  `json:"email"`
	FirstName         string  `json:"first_name,omitempty"`
	LastName          string  `json:"last_name,omitempty"`
	Role              Role    `json:"role"`
	Bio               string  `json:"bio,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	LinkedinURL       *string `json:"linkedin_profile_url,omitempty"`
	GithubURL         *string `json:"github_profile_url,omitempty"`
}

// Validate checks every field independently and returns the aggregated
// failures, or nil when the record is valid.
func (u UserBase) Validate() error {
	return validator.Apply(
		validator.ValidNickname("nickname", u.Nickname, NicknameMinLen, NicknameMaxLen),
		validator.ValidEmail("email", u.Email),
		validator.MaxLenString("first_name", u.FirstName, NameMaxLen),
		validator.MaxLenString("last_name", u.LastName, NameMaxLen),
		validator.InListString("role", string(u.Role), roleNames()),
		validator.MaxLenString("bio", u.Bio, BioMaxLen),
		validator.OptionalWebURL("profile_picture_url", u.ProfilePictureURL),
		validator.OptionalWebURL("linkedin_profile_url", u.LinkedinURL),
		validator.OptionalWebURL("github_profile_url", u.GithubURL),
	)
}

// UserCreate is the registration payload. The password rule here only
// requires a non-empty value; the strength policy is enforced by the auth
// service so the policy can differ per deployment.
type UserCreate struct {
	UserBase
	Password string `json:"password"`
}

func (u UserCreate) Validate() error {
	verrs := validator.ExtractValidationErrors(u.UserBase.Validate())

	if rule := validator.RequiredString("password", u.Password); !rule.Check() {
		err := rule.Error
		err.Value = nil // never echo passwords back
		verrs.Add(err)
	}

	if verrs.IsEmpty() {
		return nil
	}
	return verrs
}

// UserUpdate is a partial record: every field is optional, and only the
// present fields are validated and merged.
type UserUpdate struct {
	Nickname          *string `json:"nickname,omitempty"`
	Email             *string `json:"email,omitempty"`
	FirstName         *string `json:"first_name,omitempty"`
	LastName          *string `json:"last_name,omitempty"`
	Role              *Role   `json:"role,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
	LinkedinURL       *string `json:"linkedin_profile_url,omitempty"`
	GithubURL         *string `json:"github_profile_url,omitempty"`
}

func (u UserUpdate) Validate() error {
	var rules []validator.Rule

	if u.Nickname != nil {
		rules = append(rules, validator.ValidNickname("nickname", *u.Nickname, NicknameMinLen, NicknameMaxLen))
	}
	if u.Email != nil {
		rules = append(rules, validator.ValidEmail("email", *u.Email))
	}
	if u.FirstName != nil {
		rules = append(rules, validator.MaxLenString("first_name", *u.FirstName, NameMaxLen))
	}
	if u.LastName != nil {
		rules = append(rules, validator.MaxLenString("last_name", *u.LastName, NameMaxLen))
	}
	if u.Role != nil {
		rules = append(rules, validator.InListString("role", string(*u.Role), roleNames()))
	}
	if u.Bio != nil {
		rules = append(rules, validator.MaxLenString("bio", *u.Bio, BioMaxLen))
	}
	rules = append(rules,
		validator.OptionalWebURL("profile_picture_url", u.ProfilePictureURL),
		validator.OptionalWebURL("linkedin_profile_url", u.LinkedinURL),
		validator.OptionalWebURL("github_profile_url", u.GithubURL),
	)

	return validator.Apply(rules...)
}

// IsEmpty reports whether the update carries no fields at all.
func (u UserUpdate) IsEmpty() bool {
	return u.Nickname == nil && u.Email == nil && u.FirstName == nil &&
		u.LastName == nil && u.Role == nil && u.Bio == nil &&
		u.ProfilePictureURL == nil && u.LinkedinURL == nil && u.GithubURL == nil
}

// ApplyTo merges the present fields onto base and returns the result. The
// receiver and base are left untouched. The caller is expected to validate
// the update before merging.
func (u UserUpdate) ApplyTo(base UserBase) UserBase {
	merged := base

	if u.Nickname != nil {
		merged.Nickname = *u.Nickname
	}
	if u.Email != nil {
		merged.Email = *u.Email
	}
	if u.FirstName != nil {
		merged.FirstName = *u.FirstName
	}
	if u.LastName != nil {
		merged.LastName = *u.LastName
	}
	if u.Role != nil {
		merged.Role = *u.Role
	}
	if u.Bio != nil {
		merged.Bio = *u.Bio
	}
	if u.ProfilePictureURL != nil {
		merged.ProfilePictureURL = u.ProfilePictureURL
	}
	if u.LinkedinURL != nil {
		merged.LinkedinURL = u.LinkedinURL
	}
	if u.GithubURL != nil {
		merged.GithubURL = u.GithubURL
	}

	return merged
}

// ProfessionalStatus toggles the professional flag on a profile.
type ProfessionalStatus struct {
	IsProfessional bool `json:"is_professional"`
}

// LoginRequest is the credential payload consumed by the auth service.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	verrs := validator.ExtractValidationErrors(validator.Apply(
		validator.ValidEmail("email", r.Email),
	))

	if rule := validator.RequiredString("password", r.Password); !rule.Check() {
		err := rule.Error
		err.Value = nil
		verrs.Add(err)
	}

	if verrs.IsEmpty() {
		return nil
	}
	return verrs
}
