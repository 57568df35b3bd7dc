package reservationrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/StayNestPH/staynest/internal/pg"
	"go.uber.org/zap"
)

const reservationColumns = `
	id, confirmation_number, listing_id, guest_id, check_in_date, check_out_date,
	status, base_price, nights, subtotal, service_fee, cleaning_fee, taxes,
	total_amount, refund_amount, refund_status, created_at
`

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func statusStrings(statuses []domain.ReservationStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func scanReservation(row pgx.Row) (*domain.Reservation, error) {
	var r domain.Reservation
	err := row.Scan(
		&r.ID, &r.ConfirmationNumber, &r.ListingID, &r.GuestID, &r.CheckIn, &r.CheckOut,
		&r.Status, &r.Price.BasePrice, &r.Price.Nights, &r.Price.Subtotal, &r.Price.ServiceFee,
		&r.Price.CleaningFee, &r.Price.Taxes, &r.Price.TotalAmount, &r.RefundAmount,
		&r.RefundStatus, &r.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts the reservation inside a transaction that re-checks for a
// conflicting row first; the table's exclusion constraint backstops the
// check, so a conflicting insert loses either way and surfaces as
// domain.ErrDatesUnavailable. A confirmation-number collision surfaces as
// domain.ErrConfirmationTaken so the caller can regenerate and retry.
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) error {
	const conflictQuery = `
        SELECT id
        FROM reservations
        WHERE listing_id = $1
          AND status = ANY($2)
          AND check_in_date < $4
          AND check_out_date > $3
        LIMIT 1
    `
	const insertQuery = `
        INSERT INTO reservations (
            confirmation_number, listing_id, guest_id, check_in_date, check_out_date,
            status, base_price, nights, subtotal, service_fee, cleaning_fee, taxes,
            total_amount, refund_amount, refund_status, created_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING id
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		var conflictID int
		err := r.db.QueryRow(ctx, conflictQuery,
			reservation.ListingID,
			statusStrings(domain.BlockingStatuses()),
			reservation.CheckIn,
			reservation.CheckOut,
		).Scan(&conflictID)
		if err == nil {
			return domain.ErrDatesUnavailable
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			zap.L().Error("can't check for conflicting reservations", zap.Error(err))
			return err
		}

		err = r.db.QueryRow(ctx, insertQuery,
			reservation.ConfirmationNumber,
			reservation.ListingID,
			reservation.GuestID,
			reservation.CheckIn,
			reservation.CheckOut,
			reservation.Status,
			reservation.Price.BasePrice,
			reservation.Price.Nights,
			reservation.Price.Subtotal,
			reservation.Price.ServiceFee,
			reservation.Price.CleaningFee,
			reservation.Price.Taxes,
			reservation.Price.TotalAmount,
			reservation.RefundAmount,
			reservation.RefundStatus,
			reservation.CreatedAt,
		).Scan(&reservation.ID)
		if err != nil {
			return translateInsertError(err)
		}
		return nil
	})
}

func translateInsertError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23P01": // exclusion_violation
			return domain.ErrDatesUnavailable
		case "23505": // unique_violation
			if pgErr.ConstraintName == "reservations_confirmation_number_key" {
				return domain.ErrConfirmationTaken
			}
		}
	}
	zap.L().Error("can't save reservation", zap.Error(err))
	return err
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE id = $1
    `
	reservation, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find reservation", zap.Error(err))
		return nil, err
	}
	return reservation, nil
}

// FindOverlapping returns reservations on the listing whose half-open date
// range intersects [checkIn, checkOut). Back-to-back stays do not overlap.
func (r *Repository) FindOverlapping(ctx context.Context, listingID int, checkIn, checkOut time.Time, statuses []domain.ReservationStatus, excludeID int) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE listing_id = $1
          AND status = ANY($2)
          AND check_in_date < $4
          AND check_out_date > $3
          AND ($5 = 0 OR id <> $5)
        ORDER BY check_in_date
    `
	rows, err := r.db.Query(ctx, query, listingID, statusStrings(statuses), checkIn, checkOut, excludeID)
	if err != nil {
		zap.L().Error("can't query overlapping reservations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *Repository) FindByGuestID(ctx context.Context, guestID int) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE guest_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, guestID)
	if err != nil {
		zap.L().Error("can't get reservations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectReservations(rows)
}

func collectReservations(rows pgx.Rows) ([]domain.Reservation, error) {
	var reservations []domain.Reservation
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			zap.L().Error("can't scan reservation row", zap.Error(err))
			return nil, err
		}
		reservations = append(reservations, *reservation)
	}
	return reservations, nil
}

// UpdateStatus is a compare-and-swap write: it only applies while the stored
// status still equals from. A false result means the row moved underneath
// the caller.
func (r *Repository) UpdateStatus(ctx context.Context, id int, from, to domain.ReservationStatus) (bool, error) {
	query := `
        UPDATE reservations
        SET status = $1
        WHERE id = $2 AND status = $3
    `
	var applied bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, to, id, from)
		if err != nil {
			zap.L().Error("failed to update reservation status", zap.Error(err))
			return err
		}
		applied = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// RecordCancellation moves the row to cancelled and stores the refund
// outcome in the same compare-and-swap write.
func (r *Repository) RecordCancellation(ctx context.Context, id int, from domain.ReservationStatus, refundAmount float64, refundStatus domain.RefundStatus) (bool, error) {
	query := `
        UPDATE reservations
        SET status = $1, refund_amount = $2, refund_status = $3
        WHERE id = $4 AND status = $5
    `
	var applied bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, domain.StatusCancelled, refundAmount, refundStatus, id, from)
		if err != nil {
			zap.L().Error("failed to record cancellation", zap.Error(err))
			return err
		}
		applied = tag.RowsAffected() > 0
		return nil
	})
	if err != nil {
		return false, err
	}
	return applied, nil
}

// FindDueForCompletion lists confirmed stays whose checkout date has passed,
// for the lifecycle sweeper.
func (r *Repository) FindDueForCompletion(ctx context.Context, asOf time.Time, limit uint32) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE status = 'confirmed' AND check_out_date <= $1
        ORDER BY check_out_date ASC
        LIMIT $2
    `
	rows, err := r.db.Query(ctx, query, asOf, int(limit))
	if err != nil {
		zap.L().Error("can't get reservations due for completion", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectReservations(rows)
}

// FindPendingRefunds lists cancelled reservations whose refund is still in
// flight at the payment gateway.
func (r *Repository) FindPendingRefunds(ctx context.Context, limit uint32) ([]domain.Reservation, error) {
	query := `
        SELECT ` + reservationColumns + `
        FROM reservations
        WHERE status = 'cancelled' AND refund_status = 'pending'
        ORDER BY created_at ASC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("can't get pending refunds", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *Repository) UpdateRefundStatus(ctx context.Context, id int, from, to domain.RefundStatus) (bool, error) {
	query := `
        UPDATE reservations
        SET refund_status = $1
        WHERE id = $2 AND refund_status = $3
    `
	tag, err := r.db.Exec(ctx, query, to, id, from)
	if err != nil {
		zap.L().Error("failed to update refund status", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
