package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/StayNestPH/staynest/internal/dto"
	"github.com/StayNestPH/staynest/internal/service/bookingservice"
	"github.com/StayNestPH/staynest/pkg/auth"
	"github.com/StayNestPH/staynest/pkg/utils"
)

const dateLayout = "2006-01-02"

type Service interface {
	CheckAvailability(ctx context.Context, listingID int, checkIn, checkOut time.Time, excludeID int) (bool, error)
	QuotePricing(ctx context.Context, listingID, nights, guestCount int) (*domain.PriceBreakdown, error)
	Create(ctx context.Context, listingID, guestID int, checkIn, checkOut time.Time, guestCount int) (*domain.Reservation, error)
	Transition(ctx context.Context, reservationID int, action bookingservice.Action) (*domain.Reservation, error)
	Cancel(ctx context.Context, reservationID int, now time.Time) (*domain.CancellationQuote, error)
	GetGuestReservations(ctx context.Context, guestID int) ([]domain.Reservation, error)
}

type ReservationHandler struct {
	bookingService Service
}

func New(bookingService Service) *ReservationHandler {
	return &ReservationHandler{
		bookingService: bookingService,
	}
}

func respondServiceError(w http.ResponseWriter, err error) {
	if errs, ok := domain.AsValidationErrors(err); ok {
		utils.RespondWithValidationErrors(w, "Validation failed", errs)
		return
	}
	switch {
	case errors.Is(err, domain.ErrDatesUnavailable):
		utils.RespondWithError(w, http.StatusConflict, "Dates unavailable")
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrTransitionConflict):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bookingservice.ErrUnknownAction):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toReservationDTO(reservation *domain.Reservation) dto.ReservationResponseDTO {
	return dto.ReservationResponseDTO{
		ID:                 reservation.ID,
		ConfirmationNumber: reservation.ConfirmationNumber,
		ListingID:          reservation.ListingID,
		CheckIn:            reservation.CheckIn.Format(dateLayout),
		CheckOut:           reservation.CheckOut.Format(dateLayout),
		Status:             string(reservation.Status),
		Price: dto.PriceBreakdownDTO{
			BasePrice:   reservation.Price.BasePrice,
			Nights:      reservation.Price.Nights,
			Subtotal:    reservation.Price.Subtotal,
			ServiceFee:  reservation.Price.ServiceFee,
			CleaningFee: reservation.Price.CleaningFee,
			Taxes:       reservation.Price.Taxes,
			TotalAmount: reservation.Price.TotalAmount,
		},
		RefundAmount: reservation.RefundAmount,
		CreatedAt:    reservation.CreatedAt,
	}
}

// GetAvailability godoc
//
//	@Summary		Check availability of a date range
//	@Description	Reports whether the half-open range [check_in, check_out) is free of blocking reservations
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			listingID	path		int		true	"Listing ID"
//	@Param			check_in	query		string	true	"Check-in date (YYYY-MM-DD)"
//	@Param			check_out	query		string	true	"Check-out date (YYYY-MM-DD)"
//	@Param			exclude		query		int		false	"Reservation ID to exclude"
//	@Success		200			{object}	dto.AvailabilityResponseDTO
//	@Failure		400			{object}	utils.Response	"Malformed dates"
//	@Failure		422			{object}	utils.ValidationResponse
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/listings/{listingID}/availability [get]
func (h *ReservationHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	listingID, err := strconv.Atoi(chi.URLParam(r, "listingID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid listing id")
		return
	}
	checkIn, err := time.Parse(dateLayout, r.URL.Query().Get("check_in"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid check_in date")
		return
	}
	checkOut, err := time.Parse(dateLayout, r.URL.Query().Get("check_out"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid check_out date")
		return
	}
	excludeID := 0
	if raw := r.URL.Query().Get("exclude"); raw != "" {
		if excludeID, err = strconv.Atoi(raw); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid exclude id")
			return
		}
	}

	available, err := h.bookingService.CheckAvailability(r.Context(), listingID, checkIn, checkOut, excludeID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AvailabilityResponseDTO{
		ListingID: listingID,
		CheckIn:   checkIn.Format(dateLayout),
		CheckOut:  checkOut.Format(dateLayout),
		Available: available,
	})
}

// QuotePricing godoc
//
//	@Summary		Quote the price of a stay
//	@Description	Compute the full fee breakdown for a listing and stay length without booking
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PricingQuoteRequestDTO	true	"Pricing quote request"
//	@Success		200		{object}	dto.PriceBreakdownDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Listing not found"
//	@Failure		422		{object}	utils.ValidationResponse
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/pricing/quote [post]
func (h *ReservationHandler) QuotePricing(w http.ResponseWriter, r *http.Request) {
	var req dto.PricingQuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.GuestCount == 0 {
		req.GuestCount = 1
	}

	price, err := h.bookingService.QuotePricing(r.Context(), req.ListingID, req.Nights, req.GuestCount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PriceBreakdownDTO{
		BasePrice:   price.BasePrice,
		Nights:      price.Nights,
		Subtotal:    price.Subtotal,
		ServiceFee:  price.ServiceFee,
		CleaningFee: price.CleaningFee,
		Taxes:       price.Taxes,
		TotalAmount: price.TotalAmount,
	})
}

// CreateReservation godoc
//
//	@Summary		Request a reservation
//	@Description	Book a date range on a listing; the reservation starts in pending
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateReservationRequestDTO	true	"Reservation request"
//	@Success		201		{object}	dto.ReservationResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Listing not found"
//	@Failure		409		{object}	utils.Response	"Dates unavailable"
//	@Failure		422		{object}	utils.ValidationResponse
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations [post]
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	guestID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateReservationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	checkIn, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid check_in date")
		return
	}
	checkOut, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid check_out date")
		return
	}
	if req.GuestCount == 0 {
		req.GuestCount = 1
	}

	reservation, err := h.bookingService.Create(r.Context(), req.ListingID, guestID, checkIn, checkOut, req.GuestCount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toReservationDTO(reservation))
}

// GetReservations godoc
//
//	@Summary		List the caller's reservations
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ReservationResponseDTO
//	@Failure		204	{object}	utils.Response	"No reservations"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations [get]
func (h *ReservationHandler) GetReservations(w http.ResponseWriter, r *http.Request) {
	guestID := r.Context().Value(auth.UserIDKey).(int)

	reservations, err := h.bookingService.GetGuestReservations(r.Context(), guestID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(reservations) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No reservations")
		return
	}

	response := make([]dto.ReservationResponseDTO, len(reservations))
	for i := range reservations {
		response[i] = toReservationDTO(&reservations[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Transition godoc
//
//	@Summary		Apply a lifecycle action to a reservation
//	@Description	Approve, reject, confirm or complete a reservation per the transition table
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Reservation ID"
//	@Param			request	body		dto.TransitionRequestDTO	true	"Requested action"
//	@Success		200		{object}	dto.ReservationResponseDTO
//	@Failure		400		{object}	utils.Response	"Unknown action"
//	@Failure		404		{object}	utils.Response	"Reservation not found"
//	@Failure		409		{object}	utils.Response	"Illegal transition or concurrent change"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/{id}/transition [post]
func (h *ReservationHandler) Transition(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid reservation id")
		return
	}
	var req dto.TransitionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	reservation, err := h.bookingService.Transition(r.Context(), reservationID, bookingservice.Action(req.Action))
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReservationDTO(reservation))
}

// Cancel godoc
//
//	@Summary		Cancel a reservation
//	@Description	Cancel from pending, approved or confirmed; responds with the refund quote
//	@Tags			Reservations
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Reservation ID"
//	@Success		200	{object}	dto.CancellationQuoteResponseDTO
//	@Failure		404	{object}	utils.Response	"Reservation not found"
//	@Failure		409	{object}	utils.Response	"Illegal transition or concurrent change"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	reservationID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid reservation id")
		return
	}

	quote, err := h.bookingService.Cancel(r.Context(), reservationID, time.Now())
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CancellationQuoteResponseDTO{
		DaysUntilCheckIn: quote.DaysUntilCheckIn,
		RefundPercent:    quote.RefundPercent,
		RefundAmount:     quote.RefundAmount,
		Policy:           quote.Policy,
	})
}
