package bookingservice

import (
	"strings"
	"testing"

	"github.com/StayNestPH/staynest/pkg/validate"
	"github.com/stretchr/testify/assert"
)

func TestNewConfirmationNumber(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		number, err := newConfirmationNumber()
		assert.NoError(t, err)
		assert.Len(t, number, len(confirmationPrefix)+confirmationDigits)
		assert.True(t, strings.HasPrefix(number, confirmationPrefix))

		digits := strings.TrimPrefix(number, confirmationPrefix)
		assert.True(t, validate.IsLuhn(digits), "digits should carry a valid check digit: %s", digits)
		seen[number] = true
	}
	assert.Greater(t, len(seen), 1)
}
