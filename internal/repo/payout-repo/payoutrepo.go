package payoutrepo

import (
	"context"
	"math"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/StayNestPH/staynest/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// balanceQuery assembles every component of the host balance in a single
// statement, so one MVCC snapshot covers all of them; a payout submitted
// mid-read cannot produce a transiently inconsistent view.
const balanceQuery = `
        SELECT
            COALESCE((
                SELECT SUM(r.total_amount)
                FROM reservations r
                JOIN listings l ON l.id = r.listing_id
                WHERE l.host_id = $1 AND r.status IN ('approved', 'confirmed', 'completed')
            ), 0) AS total_earned,
            COALESCE((
                SELECT SUM(r.refund_amount)
                FROM reservations r
                JOIN listings l ON l.id = r.listing_id
                WHERE l.host_id = $1 AND r.status = 'cancelled' AND r.refund_status = 'pending'
            ), 0) AS pending_refunds,
            COALESCE((
                SELECT SUM(r.refund_amount)
                FROM reservations r
                JOIN listings l ON l.id = r.listing_id
                WHERE l.host_id = $1 AND r.status = 'cancelled' AND r.refund_status = 'completed'
            ), 0) AS completed_refunds,
            COALESCE((
                SELECT SUM(p.amount)
                FROM payout_requests p
                WHERE p.host_id = $1 AND p.status IN ('pending', 'approved', 'processing')
            ), 0) AS pending_payout,
            COALESCE((
                SELECT SUM(p.amount)
                FROM payout_requests p
                WHERE p.host_id = $1 AND p.status = 'completed'
            ), 0) AS total_withdrawn
    `

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (r *Repository) GetHostBalance(ctx context.Context, hostID int) (*domain.PayoutBalance, error) {
	var balance domain.PayoutBalance
	err := r.db.QueryRow(ctx, balanceQuery, hostID).Scan(
		&balance.TotalEarned,
		&balance.PendingRefunds,
		&balance.CompletedRefunds,
		&balance.PendingPayout,
		&balance.TotalWithdrawn,
	)
	if err != nil {
		zap.L().Error("failed to aggregate host balance", zap.Error(err))
		return nil, err
	}

	available := balance.TotalEarned - balance.PendingPayout - balance.TotalWithdrawn -
		balance.PendingRefunds - balance.CompletedRefunds
	if available < 0 {
		available = 0
	}
	balance.AvailableForPayout = round2(available)
	balance.NetEarnings = round2(balance.TotalEarned - balance.CompletedRefunds)

	return &balance, nil
}

// LockHost takes a transaction-scoped advisory lock keyed by host, held
// until the surrounding transaction ends. Callers must already be inside
// TXManager.Begin.
func (r *Repository) LockHost(ctx context.Context, hostID int) error {
	_, err := r.db.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, hostID)
	if err != nil {
		zap.L().Error("failed to acquire host payout lock", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) CreatePayoutRequest(ctx context.Context, request *domain.PayoutRequest) error {
	query := `
        INSERT INTO payout_requests (
            reference, host_id, amount, fee, net_amount, method,
            bank_code, account_number, account_name, mobile_number, status, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		request.Reference,
		request.HostID,
		request.Amount,
		request.Fee,
		request.NetAmount,
		request.Method,
		request.BankCode,
		request.AccountNumber,
		request.AccountName,
		request.MobileNumber,
		request.Status,
		request.CreatedAt,
	).Scan(&request.ID)
	if err != nil {
		zap.L().Error("can't save payout request", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByHostID(ctx context.Context, hostID int) ([]domain.PayoutRequest, error) {
	query := `
        SELECT id, reference, host_id, amount, fee, net_amount, method,
               bank_code, account_number, account_name, mobile_number, status,
               created_at, processed_at
        FROM payout_requests
        WHERE host_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		zap.L().Error("failed to fetch payout requests", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var requests []domain.PayoutRequest
	for rows.Next() {
		var req domain.PayoutRequest
		err := rows.Scan(
			&req.ID, &req.Reference, &req.HostID, &req.Amount, &req.Fee, &req.NetAmount,
			&req.Method, &req.BankCode, &req.AccountNumber, &req.AccountName,
			&req.MobileNumber, &req.Status, &req.CreatedAt, &req.ProcessedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan payout request row", zap.Error(err))
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
