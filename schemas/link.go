package schemas

import "github.com/dmitrymomot/userhub/pkg/validator"

// Link is a hypermedia descriptor advertising a follow-up operation on a
// resource: relation name, optional target URL, HTTP action, and media type.
type Link struct {
	Rel    string  `json:"rel"`
	Href   *string `json:"href,omitempty"`
	Action string  `json:"action"`
	Type   string  `json:"type"`
}

// NewLink builds a link with a present href.
func NewLink(rel, href, action, mediaType string) Link {
	return Link{
		Rel:    rel,
		Href:   &href,
		Action: action,
		Type:   mediaType,
	}
}

// Validate rejects empty rel, action, or type; href is optional but must be
// an http/https URL when present.
func (l Link) Validate() error {
	return validator.Apply(
		validator.RequiredString("rel", l.Rel),
		validator.OptionalWebURL("href", l.Href),
		validator.RequiredString("action", l.Action),
		validator.RequiredString("type", l.Type),
	)
}
