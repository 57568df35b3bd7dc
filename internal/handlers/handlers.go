package handlers

import (
	"net/http"

	_ "github.com/StayNestPH/staynest/docs"
	authhandlers "github.com/StayNestPH/staynest/internal/handlers/auth"
	payouthandlers "github.com/StayNestPH/staynest/internal/handlers/payouts"
	reservationhandlers "github.com/StayNestPH/staynest/internal/handlers/reservations"
	"github.com/StayNestPH/staynest/internal/metrics"
	"github.com/StayNestPH/staynest/internal/service"
	"github.com/StayNestPH/staynest/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ReservationHandler interface {
	GetAvailability(w http.ResponseWriter, r *http.Request)
	QuotePricing(w http.ResponseWriter, r *http.Request)
	CreateReservation(w http.ResponseWriter, r *http.Request)
	GetReservations(w http.ResponseWriter, r *http.Request)
	Transition(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type PayoutHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	CreatePayout(w http.ResponseWriter, r *http.Request)
	GetPayouts(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	ReservationHandler ReservationHandler
	PayoutHandler      PayoutHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		ReservationHandler: reservationhandlers.New(s.BookingService),
		PayoutHandler:      payouthandlers.New(s.PayoutService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)

			r.Get("/listings/{listingID}/availability", h.ReservationHandler.GetAvailability)
			r.Post("/pricing/quote", h.ReservationHandler.QuotePricing)

			r.Route("/reservations", func(r chi.Router) {
				r.Post("/", h.ReservationHandler.CreateReservation)
				r.Get("/", h.ReservationHandler.GetReservations)
				r.Post("/{id}/transition", h.ReservationHandler.Transition)
				r.Post("/{id}/cancel", h.ReservationHandler.Cancel)
			})

			r.Route("/host", func(r chi.Router) {
				r.Get("/balance", h.PayoutHandler.GetBalance)
				r.Post("/payouts", h.PayoutHandler.CreatePayout)
				r.Get("/payouts", h.PayoutHandler.GetPayouts)
			})
		})
	})

	return r
}
