package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    ReservationStatus
		to      ReservationStatus
		allowed bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to confirmed skips approval", StatusPending, StatusConfirmed, false},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"approved to confirmed", StatusApproved, StatusConfirmed, true},
		{"approved to cancelled", StatusApproved, StatusCancelled, true},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to approved", StatusConfirmed, StatusApproved, false},
		{"rejected is terminal", StatusRejected, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusApproved, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"self transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
}

func TestBlockingStatuses(t *testing.T) {
	blocking := BlockingStatuses()
	assert.ElementsMatch(t, []ReservationStatus{StatusPending, StatusApproved, StatusConfirmed}, blocking)
	for _, s := range []ReservationStatus{StatusRejected, StatusCompleted, StatusCancelled} {
		assert.NotContains(t, blocking, s)
	}
}

func TestPayoutMethodValid(t *testing.T) {
	assert.True(t, MethodBankTransfer.Valid())
	assert.True(t, MethodGcash.Valid())
	assert.True(t, MethodPaymaya.Valid())
	assert.False(t, PayoutMethod("paypal").Valid())
	assert.False(t, PayoutMethod("").Valid())
}
