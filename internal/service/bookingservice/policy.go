package bookingservice

import (
	"math"
	"time"

	"github.com/StayNestPH/staynest/internal/domain"
)

const (
	fullRefundDays = 7
	halfRefundDays = 3
)

const (
	policyFullRefund = "Full refund: cancelled 7 or more days before check-in"
	policyHalfRefund = "50% refund: cancelled 3 to 6 days before check-in"
	policyNoRefund   = "No refund: cancelled less than 3 days before check-in"
)

// QuoteCancellation prices a cancellation against the stored total.
// Whole days are counted with a ceiling, so any fraction of a day counts as
// a full day remaining. A now past check-in goes negative and lands in the
// no-refund tier.
func QuoteCancellation(checkIn time.Time, totalAmount float64, now time.Time) domain.CancellationQuote {
	days := int(math.Ceil(checkIn.Sub(now).Hours() / 24))

	var percent int
	var policy string
	switch {
	case days >= fullRefundDays:
		percent = 100
		policy = policyFullRefund
	case days >= halfRefundDays:
		percent = 50
		policy = policyHalfRefund
	default:
		percent = 0
		policy = policyNoRefund
	}

	return domain.CancellationQuote{
		DaysUntilCheckIn: days,
		RefundPercent:    percent,
		RefundAmount:     round2(totalAmount * float64(percent) / 100),
		Policy:           policy,
	}
}
