package schemas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userhub/pkg/validator"
	"github.com/dmitrymomot/userhub/schemas"
)

func validLink() schemas.Link {
	return schemas.NewLink("self", "https://api.example.com/users/123", "GET", "application/json")
}

func TestLinkValidate(t *testing.T) {
	t.Run("valid link passes and keeps values", func(t *testing.T) {
		link := validLink()
		require.NoError(t, link.Validate())
		assert.Equal(t, "self", link.Rel)
		assert.Equal(t, "https://api.example.com/users/123", *link.Href)
		assert.Equal(t, "GET", link.Action)
		assert.Equal(t, "application/json", link.Type)
	})

	t.Run("empty rel rejected", func(t *testing.T) {
		link := validLink()
		link.Rel = ""

		verrs := validator.ExtractValidationErrors(link.Validate())
		require.Len(t, verrs, 1)
		assert.Equal(t, "rel", verrs[0].Field)
	})

	t.Run("empty action rejected", func(t *testing.T) {
		link := validLink()
		link.Action = ""

		verrs := validator.ExtractValidationErrors(link.Validate())
		require.Len(t, verrs, 1)
		assert.Equal(t, "action", verrs[0].Field)
	})

	t.Run("empty type rejected", func(t *testing.T) {
		link := validLink()
		link.Type = ""

		verrs := validator.ExtractValidationErrors(link.Validate())
		require.Len(t, verrs, 1)
		assert.Equal(t, "type", verrs[0].Field)
	})

	t.Run("valid hrefs", func(t *testing.T) {
		for _, href := range []*string{strPtr("http://valid.com"), strPtr("https://valid.com"), nil} {
			link := validLink()
			link.Href = href
			require.NoError(t, link.Validate())
			assert.Equal(t, href, link.Href)
		}
	})

	t.Run("invalid hrefs", func(t *testing.T) {
		for _, href := range []string{"ftp://invalid.com", "http//invalid", "https//invalid"} {
			link := validLink()
			link.Href = &href

			err := link.Validate()
			require.Error(t, err, href)
			assert.True(t, validator.ExtractValidationErrors(err).Has("href"))
		}
	})

	t.Run("multiple empty fields reported together", func(t *testing.T) {
		link := schemas.Link{}

		verrs := validator.ExtractValidationErrors(link.Validate())
		assert.Equal(t, []string{"rel", "action", "type"}, verrs.Fields())
	})
}
