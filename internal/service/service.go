package service

import (
	"github.com/StayNestPH/staynest/internal/handlers/auth"
	"github.com/StayNestPH/staynest/internal/handlers/payouts"
	"github.com/StayNestPH/staynest/internal/handlers/reservations"

	pkgauth "github.com/StayNestPH/staynest/pkg/auth"

	"github.com/StayNestPH/staynest/internal/pg"
	"github.com/StayNestPH/staynest/internal/repo"
	authservice "github.com/StayNestPH/staynest/internal/service/authservice"
	bookingservice "github.com/StayNestPH/staynest/internal/service/bookingservice"
	payoutservice "github.com/StayNestPH/staynest/internal/service/payoutservice"
)

type Services struct {
	AuthService    auth.Service
	BookingService reservations.Service
	PayoutService  payouts.Service

	// Booking keeps the concrete type visible for wiring status listeners
	// and the lifecycle sweeper.
	Booking *bookingservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager) *Services {
	bookingService := bookingservice.New(repo.ReservationRepo, repo.ListingRepo)
	payoutService := payoutservice.New(repo.PayoutRepo, txManager)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:    authService,
		BookingService: bookingService,
		PayoutService:  payoutService,
		Booking:        bookingService,
	}
}
