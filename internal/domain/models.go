package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const (
	RoleHost  string = "host"
	RoleGuest string = "guest"
)

type Listing struct {
	ID           int       `db:"id"`
	HostID       int       `db:"host_id"`
	Title        string    `db:"title"`
	NightlyPrice float64   `db:"nightly_price"`
	CreatedAt    time.Time `db:"created_at"`
}

type PriceBreakdown struct {
	BasePrice   float64 `db:"base_price"`
	Nights      int     `db:"nights"`
	Subtotal    float64 `db:"subtotal"`
	ServiceFee  float64 `db:"service_fee"`
	CleaningFee float64 `db:"cleaning_fee"`
	Taxes       float64 `db:"taxes"`
	TotalAmount float64 `db:"total_amount"`
}

type Reservation struct {
	ID                 int               `db:"id"`
	ConfirmationNumber string            `db:"confirmation_number"`
	ListingID          int               `db:"listing_id"`
	GuestID            int               `db:"guest_id"`
	CheckIn            time.Time         `db:"check_in_date"`
	CheckOut           time.Time         `db:"check_out_date"`
	Status             ReservationStatus `db:"status"`
	Price              PriceBreakdown
	RefundAmount       float64      `db:"refund_amount"`
	RefundStatus       RefundStatus `db:"refund_status"`
	CreatedAt          time.Time    `db:"created_at"`
}

// Nights is derived from the half-open [CheckIn, CheckOut) range.
func (r *Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// CancellationQuote is computed fresh at cancellation time and never persisted.
type CancellationQuote struct {
	DaysUntilCheckIn int
	RefundPercent    int
	RefundAmount     float64
	Policy           string
}

// PayoutBalance is a derived per-host view recomputed on every query;
// the reservation and payout rows stay the source of truth.
type PayoutBalance struct {
	TotalEarned        float64 `db:"total_earned"`
	AvailableForPayout float64 `db:"available_for_payout"`
	PendingPayout      float64 `db:"pending_payout"`
	TotalWithdrawn     float64 `db:"total_withdrawn"`
	PendingRefunds     float64 `db:"pending_refunds"`
	CompletedRefunds   float64 `db:"completed_refunds"`
	NetEarnings        float64 `db:"net_earnings"`
}

type PayoutRequest struct {
	ID            int          `db:"id"`
	Reference     uuid.UUID    `db:"reference"`
	HostID        int          `db:"host_id"`
	Amount        float64      `db:"amount"`
	Fee           float64      `db:"fee"`
	NetAmount     float64      `db:"net_amount"`
	Method        PayoutMethod `db:"method"`
	BankCode      string       `db:"bank_code"`
	AccountNumber string       `db:"account_number"`
	AccountName   string       `db:"account_name"`
	MobileNumber  string       `db:"mobile_number"`
	Status        PayoutStatus `db:"status"`
	CreatedAt     time.Time    `db:"created_at"`
	ProcessedAt   *time.Time   `db:"processed_at"`
}
