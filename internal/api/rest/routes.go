package rest

import (
	"net/http"

	"edufleet-backend/internal/security"
	"edufleet-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the HTTP layer needs.
type Services struct {
	Auth         service.AuthService
	Student      service.StudentService
	Exam         service.ExamService
	Car          service.CarService
	Booking      service.BookingService
	Wallet       service.WalletService
	Notification service.NotificationService
}

// NewRouter wires every handler onto a gorilla/mux router. Routes under
// /api/v1 require a bearer token except the auth and health endpoints;
// school administration and fleet mutation routes additionally require
// the ADMIN role.
func NewRouter(svcs Services, tokenManager security.TokenManager) *mux.Router {
	authMw := NewAuthMiddleware(tokenManager)

	authHandler := NewAuthHandler(svcs.Auth)
	studentHandler := NewStudentHandler(svcs.Student)
	examHandler := NewExamHandler(svcs.Exam)
	carHandler := NewCarHandler(svcs.Car)
	bookingHandler := NewBookingHandler(svcs.Booking)
	walletHandler := NewWalletHandler(svcs.Wallet)
	notificationHandler := NewNotificationHandler(svcs.Notification)

	r := mux.NewRouter()
	r.HandleFunc("/health", healthCheck).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public auth endpoints.
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	// Everything below requires a valid access token.
	authed := api.NewRoute().Subrouter()
	authed.Use(authMw.Authenticate)

	authed.HandleFunc("/cars", carHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/cars/{id:[0-9]+}", carHandler.Get).Methods(http.MethodGet)

	authed.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	authed.HandleFunc("/bookings", bookingHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/bookings/{id:[0-9]+}/pay", bookingHandler.Pay).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id:[0-9]+}/extend", bookingHandler.Extend).Methods(http.MethodPost)
	authed.HandleFunc("/bookings/{id:[0-9]+}/cancel", bookingHandler.Cancel).Methods(http.MethodPost)

	authed.HandleFunc("/wallet/credit", walletHandler.Credit).Methods(http.MethodPost)
	authed.HandleFunc("/wallet/balance", walletHandler.Balance).Methods(http.MethodGet)
	authed.HandleFunc("/wallet/transactions", walletHandler.Transactions).Methods(http.MethodGet)

	authed.HandleFunc("/notifications", notificationHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", notificationHandler.MarkAsRead).Methods(http.MethodPost)

	// Admin-only surface: roster and exam management, fleet mutation,
	// booking lifecycle transitions.
	admin := api.NewRoute().Subrouter()
	admin.Use(authMw.Authenticate, authMw.RequireAdmin)

	admin.HandleFunc("/students", studentHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/students", studentHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/students/{id:[0-9]+}", studentHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/students/{id:[0-9]+}", studentHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/students/{id:[0-9]+}", studentHandler.Delete).Methods(http.MethodDelete)
	admin.HandleFunc("/classes/{classId:[0-9]+}/sections/{sectionId:[0-9]+}/students", studentHandler.Roster).Methods(http.MethodGet)

	admin.HandleFunc("/exams", examHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/exams", examHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/exams/{id:[0-9]+}", examHandler.Get).Methods(http.MethodGet)
	admin.HandleFunc("/exams/{id:[0-9]+}/seat-plan", examHandler.GenerateSeatPlan).Methods(http.MethodPost)
	admin.HandleFunc("/exams/{id:[0-9]+}/seat-plan", examHandler.GetSeatPlan).Methods(http.MethodGet)

	admin.HandleFunc("/cars", carHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/cars/{id:[0-9]+}", carHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/cars/{id:[0-9]+}", carHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/bookings/{id:[0-9]+}/confirm", bookingHandler.Confirm).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id:[0-9]+}/start", bookingHandler.Start).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id:[0-9]+}/complete", bookingHandler.Complete).Methods(http.MethodPost)

	return r
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
