package payouts

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/StayNestPH/staynest/internal/dto"
	"github.com/StayNestPH/staynest/pkg/auth"
	"github.com/StayNestPH/staynest/pkg/utils"
)

type Service interface {
	ComputeBalance(ctx context.Context, hostID int) (*domain.PayoutBalance, error)
	CreatePayoutRequest(ctx context.Context, request *domain.PayoutRequest) (*domain.PayoutRequest, error)
	GetPayoutRequests(ctx context.Context, hostID int) ([]domain.PayoutRequest, error)
}

type PayoutHandler struct {
	payoutService Service
}

func New(payoutService Service) *PayoutHandler {
	return &PayoutHandler{
		payoutService: payoutService,
	}
}

func toPayoutDTO(request *domain.PayoutRequest) dto.PayoutResponseDTO {
	return dto.PayoutResponseDTO{
		ID:          request.ID,
		Reference:   request.Reference.String(),
		Amount:      request.Amount,
		Fee:         request.Fee,
		NetAmount:   request.NetAmount,
		Method:      string(request.Method),
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
		ProcessedAt: request.ProcessedAt,
	}
}

// GetBalance godoc
//
//	@Summary		Get the host's payout balance
//	@Description	One consistent snapshot of earnings, refunds, pending payouts and the amount available for payout
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.BalanceResponseDTO
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/host/balance [get]
func (h *PayoutHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	hostID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.payoutService.ComputeBalance(r.Context(), hostID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{
		TotalEarned:        balance.TotalEarned,
		AvailableForPayout: balance.AvailableForPayout,
		PendingPayout:      balance.PendingPayout,
		TotalWithdrawn:     balance.TotalWithdrawn,
		PendingRefunds:     balance.PendingRefunds,
		CompletedRefunds:   balance.CompletedRefunds,
		NetEarnings:        balance.NetEarnings,
	})
}

// CreatePayout godoc
//
//	@Summary		Request a payout
//	@Description	Validate the request against the live balance and queue it for the admin workflow
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreatePayoutRequestDTO	true	"Payout request payload"
//	@Success		201		{object}	dto.PayoutResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		422		{object}	utils.ValidationResponse	"Every validation problem found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/host/payouts [post]
func (h *PayoutHandler) CreatePayout(w http.ResponseWriter, r *http.Request) {
	hostID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreatePayoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	request := &domain.PayoutRequest{
		HostID:        hostID,
		Amount:        req.Amount,
		Method:        domain.PayoutMethod(req.Method),
		BankCode:      req.BankCode,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		MobileNumber:  req.MobileNumber,
	}

	created, err := h.payoutService.CreatePayoutRequest(r.Context(), request)
	if err != nil {
		if errs, ok := domain.AsValidationErrors(err); ok {
			utils.RespondWithValidationErrors(w, "Payout request rejected", errs)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toPayoutDTO(created))
}

// GetPayouts godoc
//
//	@Summary		List the host's payout requests
//	@Tags			Payouts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.PayoutResponseDTO
//	@Failure		204	{object}	utils.Response	"No payout requests"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/host/payouts [get]
func (h *PayoutHandler) GetPayouts(w http.ResponseWriter, r *http.Request) {
	hostID := r.Context().Value(auth.UserIDKey).(int)

	requests, err := h.payoutService.GetPayoutRequests(r.Context(), hostID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch payout requests")
		return
	}
	if len(requests) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No payout requests")
		return
	}

	response := make([]dto.PayoutResponseDTO, len(requests))
	for i := range requests {
		response[i] = toPayoutDTO(&requests[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
