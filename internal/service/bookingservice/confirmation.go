package bookingservice

import (
	"github.com/ShiraazMoollatjie/goluhn"
)

const (
	confirmationPrefix = "RES"
	confirmationDigits = 12
)

// newConfirmationNumber formats a human-readable identifier. Uniqueness is
// not guaranteed here; the store's UNIQUE constraint is, and Create retries
// on collision. The digits carry a Luhn check digit so typos are caught on
// lookup.
func newConfirmationNumber() (string, error) {
	number := goluhn.Generate(confirmationDigits)
	return confirmationPrefix + number, nil
}
