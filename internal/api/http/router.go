package http

import (
	"net/http"

	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handlers bundles the resource handlers the router mounts.
type Handlers struct {
	Auth         *AuthHandler
	Profile      *ProfileHandler
	Opportunity  *OpportunityHandler
	Application  *ApplicationHandler
	Attendance   *AttendanceHandler
	Moderation   *ModerationHandler
	Notification *NotificationHandler
}

// NewHandlers constructs every handler over the given services with a shared
// validator instance.
func NewHandlers(
	authSvc service.AuthService,
	volSvc service.VolunteerService,
	charitySvc service.CharityService,
	oppSvc service.OpportunityService,
	appSvc service.ApplicationService,
	matchSvc service.MatchingService,
	attSvc service.AttendanceService,
	modSvc service.ModerationService,
	noteSvc service.NotificationService,
) *Handlers {
	validate := validator.New()
	return &Handlers{
		Auth:         NewAuthHandler(authSvc, validate),
		Profile:      NewProfileHandler(volSvc, charitySvc, validate),
		Opportunity:  NewOpportunityHandler(oppSvc, matchSvc, validate),
		Application:  NewApplicationHandler(appSvc, validate),
		Attendance:   NewAttendanceHandler(attSvc, validate),
		Moderation:   NewModerationHandler(modSvc, validate),
		Notification: NewNotificationHandler(noteSvc),
	}
}

// NewRouter builds the full API surface under /api/v1.
func NewRouter(h *Handlers, tokens security.TokenManager) *mux.Router {
	root := mux.NewRouter()
	root.Use(RequestLogging)

	api := root.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/signup", h.Auth.Signup).Methods("POST")
	api.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	api.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods("POST")
	api.HandleFunc("/opportunities", h.Opportunity.Search).Methods("GET")
	api.HandleFunc("/opportunities/{id:[0-9]+}", h.Opportunity.Get).Methods("GET")
	api.HandleFunc("/charities/{id:[0-9]+}", h.Profile.GetCharity).Methods("GET")

	// Authenticated routes
	auth := api.NewRoute().Subrouter()
	auth.Use(NewAuthMiddleware(tokens).Require)

	// Profiles
	auth.HandleFunc("/volunteers", h.Profile.CreateVolunteer).Methods("POST")
	auth.HandleFunc("/volunteers/me", h.Profile.GetOwnVolunteer).Methods("GET")
	auth.HandleFunc("/volunteers/me", h.Profile.UpdateVolunteer).Methods("PUT")
	auth.HandleFunc("/volunteers/{id:[0-9]+}", h.Profile.GetVolunteer).Methods("GET")
	auth.HandleFunc("/charities", h.Profile.CreateCharity).Methods("POST")
	auth.HandleFunc("/charities/me", h.Profile.GetOwnCharity).Methods("GET")
	auth.HandleFunc("/charities/me", h.Profile.UpdateCharity).Methods("PUT")
	auth.HandleFunc("/charities/{id:[0-9]+}/opportunities", h.Opportunity.ListByCharity).Methods("GET")

	// Opportunity lifecycle
	auth.HandleFunc("/opportunities", h.Opportunity.Create).Methods("POST")
	auth.HandleFunc("/opportunities/{id:[0-9]+}", h.Opportunity.Update).Methods("PUT")
	auth.HandleFunc("/opportunities/{id:[0-9]+}", h.Opportunity.Delete).Methods("DELETE")
	auth.HandleFunc("/opportunities/{id:[0-9]+}/publish", h.Opportunity.Publish).Methods("POST")
	auth.HandleFunc("/opportunities/{id:[0-9]+}/suspend", h.Opportunity.Suspend).Methods("POST")
	auth.HandleFunc("/opportunities/{id:[0-9]+}/resume", h.Opportunity.Resume).Methods("POST")
	auth.HandleFunc("/opportunities/{id:[0-9]+}/close", h.Opportunity.Close).Methods("POST")
	auth.HandleFunc("/opportunities/{id:[0-9]+}/moderate", h.Opportunity.Moderate).Methods("POST")
	auth.HandleFunc("/opportunities/{id:[0-9]+}/matches", h.Opportunity.FindMatches).Methods("GET")
	auth.HandleFunc("/opportunities/{id:[0-9]+}/applications", h.Application.ListByOpportunity).Methods("GET")
	auth.HandleFunc("/opportunities/{id:[0-9]+}/attendance", h.Attendance.ListByOpportunity).Methods("GET")

	// Application workflow
	auth.HandleFunc("/applications", h.Application.Submit).Methods("POST")
	auth.HandleFunc("/applications", h.Application.ListMine).Methods("GET")
	auth.HandleFunc("/applications/{id:[0-9]+}", h.Application.Get).Methods("GET")
	auth.HandleFunc("/applications/{id:[0-9]+}/request-info", h.Application.RequestInfo).Methods("POST")
	auth.HandleFunc("/applications/{id:[0-9]+}/provide-info", h.Application.ProvideInfo).Methods("POST")
	auth.HandleFunc("/applications/{id:[0-9]+}/approve", h.Application.Approve).Methods("POST")
	auth.HandleFunc("/applications/{id:[0-9]+}/reject", h.Application.Reject).Methods("POST")
	auth.HandleFunc("/applications/{id:[0-9]+}/confirm", h.Application.Confirm).Methods("POST")
	auth.HandleFunc("/applications/{id:[0-9]+}/withdraw", h.Application.Withdraw).Methods("POST")
	auth.HandleFunc("/applications/{id:[0-9]+}/require-background-check", h.Application.RequireBackgroundCheck).Methods("POST")
	auth.HandleFunc("/applications/{id:[0-9]+}/flag", h.Application.Flag).Methods("POST")
	auth.HandleFunc("/applications/{id:[0-9]+}/resolve-review", h.Application.ResolveReview).Methods("POST")

	// Attendance
	auth.HandleFunc("/attendance", h.Attendance.Record).Methods("POST")
	auth.HandleFunc("/attendance/mine", h.Attendance.ListMine).Methods("GET")
	auth.HandleFunc("/attendance/{id:[0-9]+}/rate-volunteer", h.Attendance.RateVolunteer).Methods("POST")
	auth.HandleFunc("/attendance/{id:[0-9]+}/rate-charity", h.Attendance.RateCharity).Methods("POST")

	// Moderation
	auth.HandleFunc("/moderation/charities/pending", h.Moderation.ListPendingCharities).Methods("GET")
	auth.HandleFunc("/moderation/charities/{id:[0-9]+}/review", h.Moderation.ReviewCharity).Methods("POST")
	auth.HandleFunc("/moderation/volunteers/{id:[0-9]+}/review", h.Moderation.ReviewVolunteer).Methods("POST")

	// Reports
	auth.HandleFunc("/reports", h.Moderation.CreateReport).Methods("POST")
	auth.HandleFunc("/reports", h.Moderation.ListReports).Methods("GET")
	auth.HandleFunc("/reports/{id:[0-9]+}", h.Moderation.GetReport).Methods("GET")
	auth.HandleFunc("/reports/{id:[0-9]+}/start-review", h.Moderation.StartReview).Methods("POST")
	auth.HandleFunc("/reports/{id:[0-9]+}/resolve", h.Moderation.ResolveReport).Methods("POST")
	auth.HandleFunc("/reports/{id:[0-9]+}/dismiss", h.Moderation.DismissReport).Methods("POST")

	// Notifications
	auth.HandleFunc("/notifications", h.Notification.List).Methods("GET")
	auth.HandleFunc("/notifications/unread-count", h.Notification.UnreadCount).Methods("GET")
	auth.HandleFunc("/notifications/{id:[0-9]+}/read", h.Notification.MarkAsRead).Methods("POST")

	root.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	return root
}
