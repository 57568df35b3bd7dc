// Package lifecycle runs the time-driven parts of the reservation engine:
// completing confirmed stays once their checkout date passes, and settling
// cancelled reservations' refunds against the payment gateway.
package lifecycle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/StayNestPH/staynest/internal/config"
	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/StayNestPH/staynest/internal/service/bookingservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/StayNestPH/staynest/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

var inFlight sync.Map

// RefundResponse is the payment gateway's view of a refund.
type RefundResponse struct {
	Reservation string `json:"reservation"`
	Status      string `json:"status"`
}

const (
	refundStatusCompleted  = "COMPLETED"
	refundStatusProcessing = "PROCESSING"
	refundStatusFailed     = "FAILED"
)

// Booker is the slice of the booking service the sweeper drives.
type Booker interface {
	Transition(ctx context.Context, reservationID int, action bookingservice.Action) (*domain.Reservation, error)
}

type Service struct {
	url             string
	reservationRepo bookingservice.ReservationRepo
	booking         Booker
	client          clients.HTTPClientI
	limit           uint32
	workerPool      WorkerPoolI
	sweepInterval   time.Duration
}

func New(cfg *config.Config, reservationRepo bookingservice.ReservationRepo, booking Booker, client clients.HTTPClientI) *Service {
	return &Service{
		url:             cfg.GatewayAddress,
		reservationRepo: reservationRepo,
		booking:         booking,
		client:          client,
		limit:           1000,
		workerPool:      NewWorkerPool(10),
		sweepInterval:   time.Minute,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Lifecycle sweeper started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping sweeper")
			return
		case <-ticker.C:
			s.completeDueStays(ctx)
			s.settleRefunds(ctx)
		}
	}
}

// completeDueStays moves confirmed reservations past their checkout date to
// completed. The transition goes through the booking service so the
// compare-and-swap and status listeners apply as for any other transition.
func (s *Service) completeDueStays(ctx context.Context) {
	reservations, err := s.reservationRepo.FindDueForCompletion(ctx, time.Now(), atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch reservations due for completion", zap.Error(err))
		return
	}

	for _, reservation := range reservations {
		_, err := s.booking.Transition(ctx, reservation.ID, bookingservice.ActionComplete)
		switch {
		case err == nil:
			zap.L().Info("Reservation completed",
				zap.Int("reservation_id", reservation.ID),
				zap.String("confirmation_number", reservation.ConfirmationNumber))
		case errors.Is(err, domain.ErrTransitionConflict):
			// Lost the race to a concurrent transition; next sweep re-reads.
		default:
			zap.L().Error("Failed to complete reservation", zap.Int("reservation_id", reservation.ID), zap.Error(err))
		}
	}
}

// settleRefunds polls the gateway for every in-flight refund concurrently
// through the worker pool, deduping reservations already being handled.
func (s *Service) settleRefunds(ctx context.Context) {
	reservations, err := s.reservationRepo.FindPendingRefunds(ctx, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch pending refunds", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, reservation := range reservations {
		reservation := reservation

		if _, loaded := inFlight.LoadOrStore(reservation.ConfirmationNumber, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer inFlight.Delete(reservation.ConfirmationNumber)
				return s.handleRefund(ctx, reservation)
			})
			if err != nil {
				inFlight.Delete(reservation.ConfirmationNumber)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error settling refunds", zap.Error(err))
	}
}

func (s *Service) handleRefund(ctx context.Context, reservation domain.Reservation) error {
	url := s.url + "/api/refunds/" + reservation.ConfirmationNumber
	var err error
	var statusCode int
	var respBody []byte

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			statusCode, respBody, _, err = s.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return fmt.Errorf("failed to query refund %s after %d retries: %w", reservation.ConfirmationNumber, maxRetries, err)
			}

			switch statusCode {
			case http.StatusNoContent:
				// Gateway has not registered the refund yet.
				zap.L().Warn("Refund not found at gateway", zap.String("confirmation_number", reservation.ConfirmationNumber), zap.Int("attempt", attempt))
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return nil

			case http.StatusOK:
				return s.applyRefundStatus(ctx, reservation, respBody)

			default:
				zap.L().Error("Unexpected status code from gateway", zap.Int("status", statusCode), zap.String("confirmation_number", reservation.ConfirmationNumber))
				return errors.New("unexpected status code")
			}
		}
	}
	return nil
}

func (s *Service) applyRefundStatus(ctx context.Context, reservation domain.Reservation, respBody []byte) error {
	var response RefundResponse
	if err := json.Unmarshal(respBody, &response); err != nil {
		return fmt.Errorf("failed to parse gateway response: %w", err)
	}

	if response.Reservation != reservation.ConfirmationNumber {
		return fmt.Errorf("refund reservation mismatch: expected %s, got %s", reservation.ConfirmationNumber, response.Reservation)
	}

	switch response.Status {
	case refundStatusCompleted:
		applied, err := s.reservationRepo.UpdateRefundStatus(ctx, reservation.ID, domain.RefundPending, domain.RefundCompleted)
		if err != nil {
			return fmt.Errorf("failed to mark refund completed for reservation %d: %w", reservation.ID, err)
		}
		if applied {
			zap.L().Info("Refund settled",
				zap.Int("reservation_id", reservation.ID),
				zap.Float64("refund_amount", reservation.RefundAmount))
		}
	case refundStatusProcessing:
		zap.L().Info("Refund still processing", zap.String("confirmation_number", reservation.ConfirmationNumber))
	case refundStatusFailed:
		zap.L().Error("Gateway reports refund failed; leaving pending for retry",
			zap.String("confirmation_number", reservation.ConfirmationNumber))
	default:
		zap.L().Warn("Unrecognized refund status received",
			zap.String("confirmation_number", reservation.ConfirmationNumber),
			zap.String("status", response.Status))
	}
	return nil
}
