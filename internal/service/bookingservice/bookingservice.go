package bookingservice

import (
	"context"
	"errors"
	"time"

	"github.com/StayNestPH/staynest/internal/domain"
	"go.uber.org/zap"
)

type ReservationRepo interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	FindByID(ctx context.Context, id int) (*domain.Reservation, error)
	FindOverlapping(ctx context.Context, listingID int, checkIn, checkOut time.Time, statuses []domain.ReservationStatus, excludeID int) ([]domain.Reservation, error)
	FindByGuestID(ctx context.Context, guestID int) ([]domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int, from, to domain.ReservationStatus) (bool, error)
	RecordCancellation(ctx context.Context, id int, from domain.ReservationStatus, refundAmount float64, refundStatus domain.RefundStatus) (bool, error)
	FindDueForCompletion(ctx context.Context, asOf time.Time, limit uint32) ([]domain.Reservation, error)
	FindPendingRefunds(ctx context.Context, limit uint32) ([]domain.Reservation, error)
	UpdateRefundStatus(ctx context.Context, id int, from, to domain.RefundStatus) (bool, error)
}

type ListingRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Listing, error)
}

// StatusListener is invoked synchronously after every successful transition.
// The engine does not know who listens; notification delivery lives behind
// this hook.
type StatusListener func(reservation *domain.Reservation, oldStatus, newStatus domain.ReservationStatus)

// Action is a caller-requested lifecycle move. Cancellation has its own
// entry point because it returns a refund quote.
type Action string

const (
	ActionApprove  Action = "approve"
	ActionReject   Action = "reject"
	ActionConfirm  Action = "confirm"
	ActionComplete Action = "complete"
)

var actionTargets = map[Action]domain.ReservationStatus{
	ActionApprove:  domain.StatusApproved,
	ActionReject:   domain.StatusRejected,
	ActionConfirm:  domain.StatusConfirmed,
	ActionComplete: domain.StatusCompleted,
}

var ErrUnknownAction = errors.New("unknown transition action")

const createAttempts = 3

type Service struct {
	reservationRepo ReservationRepo
	listingRepo     ListingRepo
	listeners       []StatusListener
}

func New(reservationRepo ReservationRepo, listingRepo ListingRepo) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		listingRepo:     listingRepo,
	}
}

// OnStatusChange registers a listener. Registration is expected at wiring
// time, before the service starts taking requests.
func (s *Service) OnStatusChange(listener StatusListener) {
	s.listeners = append(s.listeners, listener)
}

func (s *Service) notify(reservation *domain.Reservation, oldStatus, newStatus domain.ReservationStatus) {
	for _, listener := range s.listeners {
		listener(reservation, oldStatus, newStatus)
	}
}

// truncateToDate drops the time of day; the engine works in calendar dates.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func validateRange(checkIn, checkOut time.Time) error {
	if !checkIn.Before(checkOut) {
		return domain.ValidationErrors{"check-out must be after check-in"}
	}
	return nil
}

// CheckAvailability reports whether the half-open range [checkIn, checkOut)
// is free of blocking reservations on the listing. excludeID skips one
// reservation, used when re-validating an edit. The result is advisory; the
// insert re-verifies under the store's exclusion constraint.
func (s *Service) CheckAvailability(ctx context.Context, listingID int, checkIn, checkOut time.Time, excludeID int) (bool, error) {
	checkIn, checkOut = truncateToDate(checkIn), truncateToDate(checkOut)
	if err := validateRange(checkIn, checkOut); err != nil {
		return false, err
	}

	conflicts, err := s.reservationRepo.FindOverlapping(ctx, listingID, checkIn, checkOut, domain.BlockingStatuses(), excludeID)
	if err != nil {
		zap.L().Error("failed to check availability", zap.Error(err))
		return false, err
	}
	return len(conflicts) == 0, nil
}

// Create books the range: availability, pricing, confirmation number, insert.
// The insert runs in a transaction that re-checks for conflicts, so the gap
// between the advisory check here and the write cannot double-book.
func (s *Service) Create(ctx context.Context, listingID, guestID int, checkIn, checkOut time.Time, guestCount int) (*domain.Reservation, error) {
	checkIn, checkOut = truncateToDate(checkIn), truncateToDate(checkOut)
	if err := validateRange(checkIn, checkOut); err != nil {
		return nil, err
	}

	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		zap.L().Error("failed to load listing", zap.Error(err))
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}

	available, err := s.CheckAvailability(ctx, listingID, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, domain.ErrDatesUnavailable
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	price, err := ComputePricing(listing.NightlyPrice, nights, guestCount)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		ListingID:    listingID,
		GuestID:      guestID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		Status:       domain.StatusPending,
		Price:        price,
		RefundStatus: domain.RefundNone,
		CreatedAt:    time.Now(),
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		reservation.ConfirmationNumber, err = newConfirmationNumber()
		if err != nil {
			zap.L().Error("failed to generate confirmation number", zap.Error(err))
			return nil, err
		}

		err = s.reservationRepo.Create(ctx, reservation)
		if errors.Is(err, domain.ErrConfirmationTaken) {
			continue
		}
		if err != nil {
			if !errors.Is(err, domain.ErrDatesUnavailable) {
				zap.L().Error("failed to create reservation", zap.Error(err))
			}
			return nil, err
		}

		zap.L().Info("reservation created",
			zap.Int("listing_id", listingID),
			zap.String("confirmation_number", reservation.ConfirmationNumber))
		return reservation, nil
	}

	return nil, domain.ErrConfirmationTaken
}

// Transition applies a host/system action against the lifecycle table using
// a compare-and-swap on the stored status. Two racing transitions cannot
// both win; the loser gets ErrTransitionConflict and should re-fetch.
func (s *Service) Transition(ctx context.Context, reservationID int, action Action) (*domain.Reservation, error) {
	target, ok := actionTargets[action]
	if !ok {
		return nil, ErrUnknownAction
	}

	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		zap.L().Error("failed to load reservation", zap.Error(err))
		return nil, err
	}
	if reservation == nil {
		return nil, domain.ErrReservationNotFound
	}

	current := reservation.Status
	if !current.CanTransitionTo(target) {
		return nil, domain.ErrInvalidTransition
	}

	applied, err := s.reservationRepo.UpdateStatus(ctx, reservationID, current, target)
	if err != nil {
		zap.L().Error("failed to update reservation status", zap.Error(err))
		return nil, err
	}
	if !applied {
		return nil, domain.ErrTransitionConflict
	}

	reservation.Status = target
	s.notify(reservation, current, target)
	return reservation, nil
}

// Cancel quotes the refund from the stored total and the clock, records it,
// and moves the reservation to cancelled, all guarded by the same
// compare-and-swap as Transition.
func (s *Service) Cancel(ctx context.Context, reservationID int, now time.Time) (*domain.CancellationQuote, error) {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		zap.L().Error("failed to load reservation", zap.Error(err))
		return nil, err
	}
	if reservation == nil {
		return nil, domain.ErrReservationNotFound
	}

	current := reservation.Status
	if !current.CanTransitionTo(domain.StatusCancelled) {
		return nil, domain.ErrInvalidTransition
	}

	quote := QuoteCancellation(reservation.CheckIn, reservation.Price.TotalAmount, now)

	refundStatus := domain.RefundNone
	if quote.RefundAmount > 0 {
		refundStatus = domain.RefundPending
	}

	applied, err := s.reservationRepo.RecordCancellation(ctx, reservationID, current, quote.RefundAmount, refundStatus)
	if err != nil {
		zap.L().Error("failed to cancel reservation", zap.Error(err))
		return nil, err
	}
	if !applied {
		return nil, domain.ErrTransitionConflict
	}

	reservation.Status = domain.StatusCancelled
	reservation.RefundAmount = quote.RefundAmount
	reservation.RefundStatus = refundStatus
	s.notify(reservation, current, domain.StatusCancelled)

	zap.L().Info("reservation cancelled",
		zap.Int("reservation_id", reservationID),
		zap.Float64("refund_amount", quote.RefundAmount))
	return &quote, nil
}

func (s *Service) GetGuestReservations(ctx context.Context, guestID int) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.FindByGuestID(ctx, guestID)
	if err != nil {
		zap.L().Error("failed to fetch reservations", zap.Error(err))
		return nil, err
	}
	return reservations, nil
}

// QuotePricing prices a stay on a listing without booking it.
func (s *Service) QuotePricing(ctx context.Context, listingID, nights, guestCount int) (*domain.PriceBreakdown, error) {
	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		zap.L().Error("failed to load listing", zap.Error(err))
		return nil, err
	}
	if listing == nil {
		return nil, domain.ErrListingNotFound
	}

	price, err := ComputePricing(listing.NightlyPrice, nights, guestCount)
	if err != nil {
		return nil, err
	}
	return &price, nil
}
