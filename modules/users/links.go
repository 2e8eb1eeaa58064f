package users

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/userhub/schemas"
)

const mediaTypeJSON = "application/json"

// resourceLinks advertises the follow-up operations for one user resource.
func resourceLinks(baseURL string, id uuid.UUID) []schemas.Link {
	self := fmt.Sprintf("%s/users/%s", baseURL, id)
	return []schemas.Link{
		schemas.NewLink("self", self, "GET", mediaTypeJSON),
		schemas.NewLink("update", self, "PATCH", mediaTypeJSON),
		schemas.NewLink("delete", self, "DELETE", mediaTypeJSON),
	}
}
