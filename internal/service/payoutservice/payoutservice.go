package payoutservice

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/StayNestPH/staynest/internal/pg"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PayoutRepo interface {
	// GetHostBalance aggregates the host's reservations and payout requests
	// in one statement, so the view is a consistent snapshot.
	GetHostBalance(ctx context.Context, hostID int) (*domain.PayoutBalance, error)
	// LockHost serializes payout creation per host; only meaningful inside a
	// transaction.
	LockHost(ctx context.Context, hostID int) error
	CreatePayoutRequest(ctx context.Context, request *domain.PayoutRequest) error
	FindByHostID(ctx context.Context, hostID int) ([]domain.PayoutRequest, error)
}

const MinimumPayout = 100.0

// Fees deducted from the requested amount at payout time; they do not enter
// the balance arithmetic.
const (
	bankTransferFee = 25.0
	walletFee       = 15.0
)

func payoutFee(method domain.PayoutMethod) float64 {
	if method == domain.MethodBankTransfer {
		return bankTransferFee
	}
	return walletFee
}

type Service struct {
	payoutRepo PayoutRepo
	txManager  pg.TXManager
}

func New(payoutRepo PayoutRepo, txManager pg.TXManager) *Service {
	return &Service{
		payoutRepo: payoutRepo,
		txManager:  txManager,
	}
}

func (s *Service) ComputeBalance(ctx context.Context, hostID int) (*domain.PayoutBalance, error) {
	balance, err := s.payoutRepo.GetHostBalance(ctx, hostID)
	if err != nil {
		zap.L().Error("failed to compute host balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// Validate collects every problem with the request against the given
// balance. An empty result means the request is acceptable.
func Validate(request *domain.PayoutRequest, balance *domain.PayoutBalance) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if request.Amount < MinimumPayout {
		errs.Add(fmt.Sprintf("amount must be at least %.0f", MinimumPayout))
	}
	if request.Amount > balance.AvailableForPayout {
		errs.Add("amount exceeds available balance")
	}

	switch request.Method {
	case domain.MethodBankTransfer:
		if request.BankCode == "" {
			errs.Add("bank_code is required for bank_transfer")
		}
		if request.AccountNumber == "" {
			errs.Add("account_number is required for bank_transfer")
		}
		if request.AccountName == "" {
			errs.Add("account_name is required for bank_transfer")
		}
	case domain.MethodGcash, domain.MethodPaymaya:
		if request.MobileNumber == "" {
			errs.Add(fmt.Sprintf("mobile_number is required for %s", request.Method))
		}
		if request.AccountName == "" {
			errs.Add(fmt.Sprintf("account_name is required for %s", request.Method))
		}
	default:
		errs.Add("unknown payment method")
	}

	return errs
}

// CreatePayoutRequest validates and inserts in one transaction holding a
// per-host lock, so two concurrent requests cannot both pass against the
// same stale balance and overdraw it together.
func (s *Service) CreatePayoutRequest(ctx context.Context, request *domain.PayoutRequest) (*domain.PayoutRequest, error) {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.payoutRepo.LockHost(ctx, request.HostID); err != nil {
			zap.L().Error("failed to lock host for payout", zap.Error(err))
			return err
		}

		balance, err := s.payoutRepo.GetHostBalance(ctx, request.HostID)
		if err != nil {
			zap.L().Error("failed to compute host balance", zap.Error(err))
			return err
		}

		if errs := Validate(request, balance); len(errs) > 0 {
			return errs
		}

		fee := payoutFee(request.Method)
		request.Reference = uuid.New()
		request.Fee = fee
		request.NetAmount = math.Round((request.Amount-fee)*100) / 100
		request.Status = domain.PayoutPending
		request.CreatedAt = time.Now()

		if err := s.payoutRepo.CreatePayoutRequest(ctx, request); err != nil {
			zap.L().Error("failed to create payout request", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("payout request created",
		zap.Int("host_id", request.HostID),
		zap.String("reference", request.Reference.String()),
		zap.Float64("amount", request.Amount))
	return request, nil
}

func (s *Service) GetPayoutRequests(ctx context.Context, hostID int) ([]domain.PayoutRequest, error) {
	requests, err := s.payoutRepo.FindByHostID(ctx, hostID)
	if err != nil {
		zap.L().Error("failed to fetch payout requests", zap.Error(err))
		return nil, err
	}
	return requests, nil
}
