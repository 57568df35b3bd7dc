package service

import (
	"testing"

	"github.com/StayNestPH/staynest/internal/pg"
	"github.com/StayNestPH/staynest/internal/repo"
	"github.com/StayNestPH/staynest/internal/service/authservice"
	"github.com/StayNestPH/staynest/internal/service/bookingservice"
	"github.com/StayNestPH/staynest/internal/service/payoutservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := authservice.NewMockRepo(ctrl)
	mockListingRepo := bookingservice.NewMockListingRepo(ctrl)
	mockReservationRepo := bookingservice.NewMockReservationRepo(ctrl)
	mockPayoutRepo := payoutservice.NewMockPayoutRepo(ctrl)
	mockTxManager := pg.NewMockTXManager(ctrl)

	repos := &repo.Repositories{
		UserRepo:        mockUserRepo,
		ListingRepo:     mockListingRepo,
		ReservationRepo: mockReservationRepo,
		PayoutRepo:      mockPayoutRepo,
	}

	services := New(repos, mockTxManager)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.BookingService)
	assert.NotNil(t, services.PayoutService)
	assert.Same(t, services.BookingService, services.Booking)
}
