package dto

import "time"

type CreateReservationRequestDTO struct {
	ListingID  int    `json:"listing_id" example:"42"`
	CheckIn    string `json:"check_in" example:"2026-01-10"`
	CheckOut   string `json:"check_out" example:"2026-01-15"`
	GuestCount int    `json:"guest_count" example:"2"`
}

type PriceBreakdownDTO struct {
	BasePrice   float64 `json:"base_price" example:"2500"`
	Nights      int     `json:"nights" example:"2"`
	Subtotal    float64 `json:"subtotal" example:"5000"`
	ServiceFee  float64 `json:"service_fee" example:"500"`
	CleaningFee float64 `json:"cleaning_fee" example:"50"`
	Taxes       float64 `json:"taxes" example:"600"`
	TotalAmount float64 `json:"total_amount" example:"6150"`
}

type ReservationResponseDTO struct {
	ID                 int               `json:"id" example:"7"`
	ConfirmationNumber string            `json:"confirmation_number" example:"RES237722562495"`
	ListingID          int               `json:"listing_id" example:"42"`
	CheckIn            string            `json:"check_in" example:"2026-01-10"`
	CheckOut           string            `json:"check_out" example:"2026-01-15"`
	Status             string            `json:"status" example:"pending"`
	Price              PriceBreakdownDTO `json:"price"`
	RefundAmount       float64           `json:"refund_amount,omitempty" example:"0"`
	CreatedAt          time.Time         `json:"created_at" example:"2025-12-09T16:09:57+08:00"`
}

type AvailabilityResponseDTO struct {
	ListingID int    `json:"listing_id" example:"42"`
	CheckIn   string `json:"check_in" example:"2026-01-15"`
	CheckOut  string `json:"check_out" example:"2026-01-18"`
	Available bool   `json:"available" example:"true"`
}

type PricingQuoteRequestDTO struct {
	ListingID  int `json:"listing_id" example:"42"`
	Nights     int `json:"nights" example:"2"`
	GuestCount int `json:"guest_count" example:"1"`
}

type TransitionRequestDTO struct {
	Action string `json:"action" example:"approve"`
}

type CancellationQuoteResponseDTO struct {
	DaysUntilCheckIn int     `json:"days_until_check_in" example:"8"`
	RefundPercent    int     `json:"refund_percent" example:"100"`
	RefundAmount     float64 `json:"refund_amount" example:"6150"`
	Policy           string  `json:"policy" example:"Full refund: cancelled 7 or more days before check-in"`
}
