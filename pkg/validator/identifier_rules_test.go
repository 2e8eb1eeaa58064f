package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/userhub/pkg/validator"
)

func TestValidNickname(t *testing.T) {
	t.Run("accepts letters digits underscore hyphen", func(t *testing.T) {
		for _, nickname := range []string{
			"test_user",
			"test-user",
			"testuser123",
			"123test",
			"john_doe_123",
		} {
			assert.True(t, validator.ValidNickname("nickname", nickname, 3, 50).Check(), nickname)
		}
	})

	t.Run("rejects spaces and punctuation", func(t *testing.T) {
		for _, nickname := range []string{
			"test user",
			"test?user",
			"test.user",
			"test@user",
		} {
			assert.False(t, validator.ValidNickname("nickname", nickname, 3, 50).Check(), nickname)
		}
	})

	t.Run("rejects values shorter than the minimum", func(t *testing.T) {
		assert.False(t, validator.ValidNickname("nickname", "us", 3, 50).Check())
		assert.False(t, validator.ValidNickname("nickname", "", 3, 50).Check())
	})

	t.Run("accepts the exact minimum length", func(t *testing.T) {
		assert.True(t, validator.ValidNickname("nickname", "abc", 3, 50).Check())
	})

	t.Run("rejects values longer than the maximum", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'a'
		}
		assert.False(t, validator.ValidNickname("nickname", string(long), 3, 50).Check())
	})

	t.Run("error describes the constraint", func(t *testing.T) {
		rule := validator.ValidNickname("nickname", "us", 3, 50)
		assert.Equal(t, "nickname", rule.Error.Field)
		assert.Equal(t, "must be 3-50 characters long and contain only letters, numbers, underscores, and hyphens", rule.Error.Message)
		assert.Equal(t, "us", rule.Error.Value)
	})
}
