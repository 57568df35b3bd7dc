package dto

import "time"

type BalanceResponseDTO struct {
	TotalEarned        float64 `json:"total_earned" example:"10000"`
	AvailableForPayout float64 `json:"available_for_payout" example:"3500"`
	PendingPayout      float64 `json:"pending_payout" example:"2000"`
	TotalWithdrawn     float64 `json:"total_withdrawn" example:"3000"`
	PendingRefunds     float64 `json:"pending_refunds" example:"500"`
	CompletedRefunds   float64 `json:"completed_refunds" example:"1000"`
	NetEarnings        float64 `json:"net_earnings" example:"9000"`
}

type CreatePayoutRequestDTO struct {
	Amount        float64 `json:"amount" example:"500"`
	Method        string  `json:"method" example:"bank_transfer"`
	BankCode      string  `json:"bank_code,omitempty" example:"BDO"`
	AccountNumber string  `json:"account_number,omitempty" example:"001234567890"`
	AccountName   string  `json:"account_name,omitempty" example:"Juan Dela Cruz"`
	MobileNumber  string  `json:"mobile_number,omitempty" example:"+639171234567"`
}

type PayoutResponseDTO struct {
	ID          int        `json:"id" example:"3"`
	Reference   string     `json:"reference" example:"8f14e45f-ceea-467f-abc1-0f5c4e1a2b3c"`
	Amount      float64    `json:"amount" example:"500"`
	Fee         float64    `json:"fee" example:"25"`
	NetAmount   float64    `json:"net_amount" example:"475"`
	Method      string     `json:"method" example:"bank_transfer"`
	Status      string     `json:"status" example:"pending"`
	CreatedAt   time.Time  `json:"created_at" example:"2025-12-09T16:09:57+08:00"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}
