package payoutservice

import (
	"context"
	"errors"
	"testing"

	"github.com/StayNestPH/staynest/internal/domain"
	"github.com/StayNestPH/staynest/internal/pg"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockPayoutRepo, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	payoutRepo := NewMockPayoutRepo(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(payoutRepo, txManager)
	defer ctrl.Finish()
	return service, payoutRepo, txManager
}

// passthroughTx runs the transactional closure directly.
func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		}).AnyTimes()
}

func TestComputeBalance(t *testing.T) {
	service, payoutRepo, _ := NewMock(t)

	expected := &domain.PayoutBalance{
		TotalEarned:        10000,
		PendingPayout:      2000,
		TotalWithdrawn:     3000,
		PendingRefunds:     500,
		CompletedRefunds:   1000,
		AvailableForPayout: 3500,
		NetEarnings:        9000,
	}

	tests := []struct {
		name            string
		prepareMock     func()
		expectedBalance *domain.PayoutBalance
		expectedError   error
	}{
		{
			name: "Balance snapshot is returned as-is",
			prepareMock: func() {
				payoutRepo.EXPECT().GetHostBalance(gomock.Any(), 9).Return(expected, nil)
			},
			expectedBalance: expected,
		},
		{
			name: "Repo failure",
			prepareMock: func() {
				payoutRepo.EXPECT().GetHostBalance(gomock.Any(), 9).Return(nil, errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			balance, err := service.ComputeBalance(context.Background(), 9)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBalance, balance)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	balance := &domain.PayoutBalance{AvailableForPayout: 3500}

	tests := []struct {
		name           string
		request        *domain.PayoutRequest
		expectedErrors []string
	}{
		{
			name: "Valid bank transfer",
			request: &domain.PayoutRequest{
				Amount:        500,
				Method:        domain.MethodBankTransfer,
				BankCode:      "BDO",
				AccountNumber: "001234567890",
				AccountName:   "Juan Dela Cruz",
			},
		},
		{
			name: "Valid gcash payout",
			request: &domain.PayoutRequest{
				Amount:       500,
				Method:       domain.MethodGcash,
				MobileNumber: "+639171234567",
				AccountName:  "Juan Dela Cruz",
			},
		},
		{
			name: "Below the minimum",
			request: &domain.PayoutRequest{
				Amount:       50,
				Method:       domain.MethodGcash,
				MobileNumber: "+639171234567",
				AccountName:  "Juan Dela Cruz",
			},
			expectedErrors: []string{"amount must be at least 100"},
		},
		{
			name: "More than the available balance",
			request: &domain.PayoutRequest{
				Amount:       5000,
				Method:       domain.MethodGcash,
				MobileNumber: "+639171234567",
				AccountName:  "Juan Dela Cruz",
			},
			expectedErrors: []string{"amount exceeds available balance"},
		},
		{
			name: "Bank transfer without bank details",
			request: &domain.PayoutRequest{
				Amount: 500,
				Method: domain.MethodBankTransfer,
			},
			expectedErrors: []string{
				"bank_code is required for bank_transfer",
				"account_number is required for bank_transfer",
				"account_name is required for bank_transfer",
			},
		},
		{
			name: "Wallet payout without mobile number",
			request: &domain.PayoutRequest{
				Amount:      500,
				Method:      domain.MethodPaymaya,
				AccountName: "Juan Dela Cruz",
			},
			expectedErrors: []string{"mobile_number is required for paymaya"},
		},
		{
			name: "Unknown method",
			request: &domain.PayoutRequest{
				Amount: 500,
				Method: domain.PayoutMethod("paypal"),
			},
			expectedErrors: []string{"unknown payment method"},
		},
		{
			name: "Every violation is reported at once",
			request: &domain.PayoutRequest{
				Amount: 50000,
				Method: domain.MethodBankTransfer,
			},
			expectedErrors: []string{
				"amount exceeds available balance",
				"bank_code is required for bank_transfer",
				"account_number is required for bank_transfer",
				"account_name is required for bank_transfer",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.request, balance)
			if len(tt.expectedErrors) > 0 {
				assert.Equal(t, tt.expectedErrors, []string(errs))
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestCreatePayoutRequest(t *testing.T) {
	service, payoutRepo, txManager := NewMock(t)
	passthroughTx(txManager)

	balance := &domain.PayoutBalance{AvailableForPayout: 3500}

	tests := []struct {
		name           string
		request        *domain.PayoutRequest
		prepareMock    func()
		expectedFee    float64
		expectedNet    float64
		expectedErrors []string
		expectedError  error
	}{
		{
			name: "Bank transfer deducts the bank fee",
			request: &domain.PayoutRequest{
				HostID:        9,
				Amount:        500,
				Method:        domain.MethodBankTransfer,
				BankCode:      "BDO",
				AccountNumber: "001234567890",
				AccountName:   "Juan Dela Cruz",
			},
			prepareMock: func() {
				payoutRepo.EXPECT().LockHost(gomock.Any(), 9).Return(nil)
				payoutRepo.EXPECT().GetHostBalance(gomock.Any(), 9).Return(balance, nil)
				payoutRepo.EXPECT().CreatePayoutRequest(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedFee: 25,
			expectedNet: 475,
		},
		{
			name: "Gcash deducts the wallet fee",
			request: &domain.PayoutRequest{
				HostID:       9,
				Amount:       200,
				Method:       domain.MethodGcash,
				MobileNumber: "+639171234567",
				AccountName:  "Juan Dela Cruz",
			},
			prepareMock: func() {
				payoutRepo.EXPECT().LockHost(gomock.Any(), 9).Return(nil)
				payoutRepo.EXPECT().GetHostBalance(gomock.Any(), 9).Return(balance, nil)
				payoutRepo.EXPECT().CreatePayoutRequest(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectedFee: 15,
			expectedNet: 185,
		},
		{
			name: "Validation failure rolls the transaction back",
			request: &domain.PayoutRequest{
				HostID: 9,
				Amount: 50,
				Method: domain.MethodGcash,
			},
			prepareMock: func() {
				payoutRepo.EXPECT().LockHost(gomock.Any(), 9).Return(nil)
				payoutRepo.EXPECT().GetHostBalance(gomock.Any(), 9).Return(balance, nil)
			},
			expectedErrors: []string{
				"amount must be at least 100",
				"mobile_number is required for gcash",
				"account_name is required for gcash",
			},
		},
		{
			name: "Lock failure aborts before reading the balance",
			request: &domain.PayoutRequest{
				HostID: 9,
				Amount: 500,
				Method: domain.MethodGcash,
			},
			prepareMock: func() {
				payoutRepo.EXPECT().LockHost(gomock.Any(), 9).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
		{
			name: "Insert failure",
			request: &domain.PayoutRequest{
				HostID:       9,
				Amount:       500,
				Method:       domain.MethodGcash,
				MobileNumber: "+639171234567",
				AccountName:  "Juan Dela Cruz",
			},
			prepareMock: func() {
				payoutRepo.EXPECT().LockHost(gomock.Any(), 9).Return(nil)
				payoutRepo.EXPECT().GetHostBalance(gomock.Any(), 9).Return(balance, nil)
				payoutRepo.EXPECT().CreatePayoutRequest(gomock.Any(), gomock.Any()).Return(errors.New("some error"))
			},
			expectedError: errors.New("some error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			created, err := service.CreatePayoutRequest(context.Background(), tt.request)
			switch {
			case len(tt.expectedErrors) > 0:
				assert.Nil(t, created)
				errs, ok := domain.AsValidationErrors(err)
				assert.True(t, ok)
				assert.Equal(t, tt.expectedErrors, []string(errs))
			case tt.expectedError != nil:
				assert.Nil(t, created)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			default:
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedFee, created.Fee)
				assert.Equal(t, tt.expectedNet, created.NetAmount)
				assert.Equal(t, domain.PayoutPending, created.Status)
				assert.NotEqual(t, uuid.Nil, created.Reference)
				assert.False(t, created.CreatedAt.IsZero())
			}
		})
	}
}

func TestGetPayoutRequests(t *testing.T) {
	service, payoutRepo, _ := NewMock(t)

	expected := []domain.PayoutRequest{{ID: 1, HostID: 9}, {ID: 2, HostID: 9}}
	payoutRepo.EXPECT().FindByHostID(gomock.Any(), 9).Return(expected, nil)

	requests, err := service.GetPayoutRequests(context.Background(), 9)
	assert.NoError(t, err)
	assert.Equal(t, expected, requests)

	payoutRepo.EXPECT().FindByHostID(gomock.Any(), 9).Return(nil, errors.New("some error"))
	_, err = service.GetPayoutRequests(context.Background(), 9)
	assert.Error(t, err)
}
