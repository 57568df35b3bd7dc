package domain

// ReservationStatus is the single status vocabulary shared by every part of
// the engine; consumers must not compare raw strings outside this package.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusApproved  ReservationStatus = "approved"
	StatusRejected  ReservationStatus = "rejected"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

// transitions is the full lifecycle table. rejected, completed and cancelled
// are terminal.
var transitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s ReservationStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// BlockingStatuses are the statuses that hold a listing's dates. An approved
// request is a host commitment, so it blocks alongside pending and confirmed.
func BlockingStatuses() []ReservationStatus {
	return []ReservationStatus{StatusPending, StatusApproved, StatusConfirmed}
}

// CancellableStatuses are the states a guest may cancel from.
func CancellableStatuses() []ReservationStatus {
	return []ReservationStatus{StatusPending, StatusApproved, StatusConfirmed}
}

type RefundStatus string

const (
	RefundNone      RefundStatus = "none"
	RefundPending   RefundStatus = "pending"
	RefundCompleted RefundStatus = "completed"
)

type PayoutStatus string

const (
	PayoutPending    PayoutStatus = "pending"
	PayoutApproved   PayoutStatus = "approved"
	PayoutProcessing PayoutStatus = "processing"
	PayoutCompleted  PayoutStatus = "completed"
	PayoutRejected   PayoutStatus = "rejected"
	PayoutFailed     PayoutStatus = "failed"
)

type PayoutMethod string

const (
	MethodBankTransfer PayoutMethod = "bank_transfer"
	MethodGcash        PayoutMethod = "gcash"
	MethodPaymaya      PayoutMethod = "paymaya"
)

func (m PayoutMethod) Valid() bool {
	switch m {
	case MethodBankTransfer, MethodGcash, MethodPaymaya:
		return true
	}
	return false
}
