package api

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"jobunyacar-backend/internal/service"
)

// Handlers bundles the per-resource HTTP handlers the router mounts.
type Handlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Vehicles      *VehicleHandler
	Bookings      *BookingHandler
	DamageReports *DamageReportHandler
	Locations     *LocationHandler
}

func NewHandlers(
	authSvc service.AuthService,
	userSvc service.UserService,
	vehicleSvc service.VehicleService,
	bookingSvc service.BookingService,
	reportSvc service.DamageReportService,
	locationSvc service.LocationService,
) *Handlers {
	return &Handlers{
		Auth:          NewAuthHandler(authSvc),
		Users:         NewUserHandler(userSvc),
		Vehicles:      NewVehicleHandler(vehicleSvc),
		Bookings:      NewBookingHandler(bookingSvc),
		DamageReports: NewDamageReportHandler(reportSvc),
		Locations:     NewLocationHandler(locationSvc),
	}
}

// NewRouter mounts all routes in three tiers: public, authenticated
// and admin. The authenticator runs on everything so public handlers
// can still see who is asking when a token happens to be present.
func NewRouter(h *Handlers, auth *Authenticator, frontendURL string) http.Handler {
	r := mux.NewRouter()
	r.Use(auth.Attach)

	api := r.PathPrefix("/api").Subrouter()

	// Public.
	api.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	api.HandleFunc("/verify-email", h.Auth.VerifyEmail).Methods(http.MethodGet)
	api.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	api.HandleFunc("/token/refresh", h.Auth.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	api.HandleFunc("/password-reset", h.Auth.RequestPasswordReset).Methods(http.MethodPost)
	api.HandleFunc("/password-reset/confirm", h.Auth.ConfirmPasswordReset).Methods(http.MethodPost)
	api.HandleFunc("/vehicles", h.Vehicles.List).Methods(http.MethodGet)
	api.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicles.Get).Methods(http.MethodGet)
	api.HandleFunc("/locations", h.Locations.List).Methods(http.MethodGet)

	// Authenticated.
	authed := api.NewRoute().Subrouter()
	authed.Use(RequireAuth)
	authed.HandleFunc("/password-change", h.Auth.ChangePassword).Methods(http.MethodPost)
	authed.HandleFunc("/me", h.Users.Me).Methods(http.MethodGet)
	authed.HandleFunc("/bookings", h.Bookings.Create).Methods(http.MethodPost)
	authed.HandleFunc("/my-bookings", h.Bookings.ListMine).Methods(http.MethodGet)
	authed.HandleFunc("/damage-reports", h.DamageReports.Create).Methods(http.MethodPost)
	authed.HandleFunc("/damage-reports", h.DamageReports.ListMine).Methods(http.MethodGet)

	// Admin.
	admin := api.NewRoute().Subrouter()
	admin.Use(RequireAdmin)
	admin.HandleFunc("/admin/users", h.Users.ListUsers).Methods(http.MethodGet)
	admin.HandleFunc("/vehicles", h.Vehicles.Create).Methods(http.MethodPost)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicles.Update).Methods(http.MethodPut)
	admin.HandleFunc("/vehicles/{id:[0-9]+}", h.Vehicles.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/vehicles/{id:[0-9]+}/images", h.Vehicles.AddImage).Methods(http.MethodPost)
	admin.HandleFunc("/all-bookings", h.Bookings.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id:[0-9]+}/status", h.Bookings.UpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/admin/damage-reports", h.DamageReports.ListAll).Methods(http.MethodGet)
	admin.HandleFunc("/admin/damage-reports/{id:[0-9]+}", h.DamageReports.Get).Methods(http.MethodGet)
	admin.HandleFunc("/admin/damage-reports/{id:[0-9]+}", h.DamageReports.UpdateStatus).Methods(http.MethodPut)
	admin.HandleFunc("/locations", h.Locations.Create).Methods(http.MethodPost)
	admin.HandleFunc("/locations/{id:[0-9]+}", h.Locations.Update).Methods(http.MethodPut)
	admin.HandleFunc("/locations/{id:[0-9]+}", h.Locations.Delete).Methods(http.MethodDelete)

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{frontendURL}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	return handlers.RecoveryHandler()(cors(handlers.LoggingHandler(os.Stdout, r)))
}
