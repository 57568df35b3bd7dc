package payoutrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var balanceColumns = []string{"total_earned", "pending_refunds", "completed_refunds", "pending_payout", "total_withdrawn"}

func TestRepository_GetHostBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expected  *domain.PayoutBalance
		expectErr bool
	}{
		{
			name: "Aggregates and derives the available amount",
			mockSetup: func() {
				rows := pgxmock.NewRows(balanceColumns).
					AddRow(10000.0, 500.0, 1000.0, 2000.0, 3000.0)
				mock.ExpectQuery(regexp.QuoteMeta("AS total_earned")).
					WithArgs(9).
					WillReturnRows(rows)
			},
			expected: &domain.PayoutBalance{
				TotalEarned:        10000,
				PendingRefunds:     500,
				CompletedRefunds:   1000,
				PendingPayout:      2000,
				TotalWithdrawn:     3000,
				AvailableForPayout: 3500,
				NetEarnings:        9000,
			},
		},
		{
			name: "Available is clamped at zero",
			mockSetup: func() {
				rows := pgxmock.NewRows(balanceColumns).
					AddRow(1000.0, 0.0, 900.0, 500.0, 0.0)
				mock.ExpectQuery(regexp.QuoteMeta("AS total_earned")).
					WithArgs(9).
					WillReturnRows(rows)
			},
			expected: &domain.PayoutBalance{
				TotalEarned:        1000,
				CompletedRefunds:   900,
				PendingPayout:      500,
				AvailableForPayout: 0,
				NetEarnings:        100,
			},
		},
		{
			name: "Host with no activity",
			mockSetup: func() {
				rows := pgxmock.NewRows(balanceColumns).
					AddRow(0.0, 0.0, 0.0, 0.0, 0.0)
				mock.ExpectQuery(regexp.QuoteMeta("AS total_earned")).
					WithArgs(9).
					WillReturnRows(rows)
			},
			expected: &domain.PayoutBalance{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("AS total_earned")).
					WithArgs(9).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			balance, err := repo.GetHostBalance(context.Background(), 9)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, balance)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockHost(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(9).
		WillReturnResult(pgxmock.NewResult("SELECT", 1))

	err := repo.LockHost(context.Background(), 9)
	assert.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(9).
		WillReturnError(errors.New("database error"))

	err = repo.LockHost(context.Background(), 9)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreatePayoutRequest(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reference := uuid.New()

	request := &domain.PayoutRequest{
		Reference:     reference,
		HostID:        9,
		Amount:        500,
		Fee:           25,
		NetAmount:     475,
		Method:        domain.MethodBankTransfer,
		BankCode:      "BDO",
		AccountNumber: "001234567890",
		AccountName:   "Juan Dela Cruz",
		Status:        domain.PayoutPending,
		CreatedAt:     now,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payout_requests")).
		WithArgs(reference, 9, 500.0, 25.0, 475.0, domain.MethodBankTransfer,
			"BDO", "001234567890", "Juan Dela Cruz", "", domain.PayoutPending, now).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(3))

	err := repo.CreatePayoutRequest(context.Background(), request)
	assert.NoError(t, err)
	assert.Equal(t, 3, request.ID)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO payout_requests")).
		WillReturnError(errors.New("database error"))

	err = repo.CreatePayoutRequest(context.Background(), request)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByHostID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	reference := uuid.New()

	columns := []string{
		"id", "reference", "host_id", "amount", "fee", "net_amount", "method",
		"bank_code", "account_number", "account_name", "mobile_number", "status",
		"created_at", "processed_at",
	}

	rows := pgxmock.NewRows(columns).AddRow(
		3, reference, 9, 500.0, 25.0, 475.0, domain.MethodBankTransfer,
		"BDO", "001234567890", "Juan Dela Cruz", "", domain.PayoutPending,
		now, (*time.Time)(nil),
	)
	mock.ExpectQuery(regexp.QuoteMeta("FROM payout_requests WHERE host_id = $1")).
		WithArgs(9).
		WillReturnRows(rows)

	requests, err := repo.FindByHostID(context.Background(), 9)
	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, reference, requests[0].Reference)
	assert.Equal(t, domain.PayoutPending, requests[0].Status)
	assert.Nil(t, requests[0].ProcessedAt)

	mock.ExpectQuery(regexp.QuoteMeta("FROM payout_requests WHERE host_id = $1")).
		WithArgs(9).
		WillReturnError(errors.New("database error"))

	_, err = repo.FindByHostID(context.Background(), 9)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
