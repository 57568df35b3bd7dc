package repo

import (
	"github.com/StayNestPH/staynest/internal/pg"
	listingrepo "github.com/StayNestPH/staynest/internal/repo/listing-repo"
	payoutrepo "github.com/StayNestPH/staynest/internal/repo/payout-repo"
	reservationrepo "github.com/StayNestPH/staynest/internal/repo/reservation-repo"
	userrepo "github.com/StayNestPH/staynest/internal/repo/user-repo"
	"github.com/StayNestPH/staynest/internal/service/authservice"
	"github.com/StayNestPH/staynest/internal/service/bookingservice"
	"github.com/StayNestPH/staynest/internal/service/payoutservice"
)

type Repositories struct {
	UserRepo        authservice.Repo
	ListingRepo     bookingservice.ListingRepo
	ReservationRepo bookingservice.ReservationRepo
	PayoutRepo      payoutservice.PayoutRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	listingRepo := listingrepo.New(conn)
	reservationRepo := reservationrepo.New(conn, txManager)
	payoutRepo := payoutrepo.New(conn)

	return &Repositories{
		UserRepo:        userRepo,
		ListingRepo:     listingRepo,
		ReservationRepo: reservationRepo,
		PayoutRepo:      payoutRepo,
	}
}
