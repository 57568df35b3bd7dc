package repo

import (
	"testing"

	"github.com/StayNestPH/staynest/internal/pg"
	listingrepo "github.com/StayNestPH/staynest/internal/repo/listing-repo"
	payoutrepo "github.com/StayNestPH/staynest/internal/repo/payout-repo"
	reservationrepo "github.com/StayNestPH/staynest/internal/repo/reservation-repo"
	userrepo "github.com/StayNestPH/staynest/internal/repo/user-repo"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.UserRepo)
	assert.NotNil(t, repo.ListingRepo)
	assert.NotNil(t, repo.ReservationRepo)
	assert.NotNil(t, repo.PayoutRepo)

	assert.IsType(t, &userrepo.Repository{}, repo.UserRepo)
	assert.IsType(t, &listingrepo.Repository{}, repo.ListingRepo)
	assert.IsType(t, &reservationrepo.Repository{}, repo.ReservationRepo)
	assert.IsType(t, &payoutrepo.Repository{}, repo.PayoutRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
