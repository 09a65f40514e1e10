package http

import (
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

// ApplicationHandler handles the application workflow endpoints
type ApplicationHandler struct {
	appSvc   service.ApplicationService
	validate *validator.Validate
}

func NewApplicationHandler(appSvc service.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{appSvc: appSvc, validate: validate}
}

type submitApplicationRequest struct {
	OpportunityID  int32  `json:"opportunity_id" validate:"required,gt=0"`
	CoverMessage   string `json:"cover_message"`
	HoursCommitted int32  `json:"hours_committed" validate:"gte=0"`
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitApplicationRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	app, err := h.appSvc.Submit(r.Context(), actorFrom(r), req.OpportunityID, req.CoverMessage, req.HoursCommitted)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, app)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.Get(r.Context(), actorFrom(r), id)
	})
}

type requestInfoRequest struct {
	Fields  []string `json:"fields" validate:"required,min=1"`
	Message string   `json:"message"`
}

func (h *ApplicationHandler) RequestInfo(w http.ResponseWriter, r *http.Request) {
	var req requestInfoRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.RequestInfo(r.Context(), actorFrom(r), id, req.Fields, req.Message)
	})
}

type provideInfoRequest struct {
	Answers map[string]string `json:"answers" validate:"required,min=1"`
}

func (h *ApplicationHandler) ProvideInfo(w http.ResponseWriter, r *http.Request) {
	var req provideInfoRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.ProvideInfo(r.Context(), actorFrom(r), id, req.Answers)
	})
}

type reviewNotesRequest struct {
	Notes string `json:"notes"`
}

func (h *ApplicationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req reviewNotesRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.Approve(r.Context(), actorFrom(r), id, req.Notes)
	})
}

func (h *ApplicationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req reviewNotesRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.Reject(r.Context(), actorFrom(r), id, req.Notes)
	})
}

type confirmRequest struct {
	CommittedHours int32 `json:"committed_hours" validate:"required,gt=0"`
}

func (h *ApplicationHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.Confirm(r.Context(), actorFrom(r), id, req.CommittedHours)
	})
}

type withdrawRequest struct {
	Reason string `json:"reason"`
}

func (h *ApplicationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req withdrawRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.Withdraw(r.Context(), actorFrom(r), id, req.Reason)
	})
}

func (h *ApplicationHandler) RequireBackgroundCheck(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.RequireBackgroundCheck(r.Context(), actorFrom(r), id)
	})
}

func (h *ApplicationHandler) Flag(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.FlagForModeration(r.Context(), actorFrom(r), id)
	})
}

type resolveReviewRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
}

func (h *ApplicationHandler) ResolveReview(w http.ResponseWriter, r *http.Request) {
	var req resolveReviewRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Application, error) {
		return h.appSvc.ResolveModeratorReview(r.Context(), actorFrom(r), id, domain.ModeratorReviewStatus(req.Decision))
	})
}

func (h *ApplicationHandler) transition(w http.ResponseWriter, r *http.Request, fn func(id int32) (*domain.Application, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	app, err := fn(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

// ListMine returns the acting volunteer's applications.
func (h *ApplicationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	apps, total, err := h.appSvc.ListByVolunteer(r.Context(), actorFrom(r), r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listEnvelope{Items: apps, TotalCount: total, Page: page, PageSize: pageSize})
}

// ListByOpportunity returns applications for the charity's opportunity.
func (h *ApplicationHandler) ListByOpportunity(w http.ResponseWriter, r *http.Request) {
	opportunityID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	page, pageSize := pagination(r)
	apps, total, err := h.appSvc.ListByOpportunity(r.Context(), actorFrom(r), opportunityID, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listEnvelope{Items: apps, TotalCount: total, Page: page, PageSize: pageSize})
}
