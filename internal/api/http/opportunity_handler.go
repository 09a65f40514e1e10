package http

import (
	"net/http"
	"strconv"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

// OpportunityHandler handles the opportunity lifecycle and search endpoints
type OpportunityHandler struct {
	oppSvc   service.OpportunityService
	matchSvc service.MatchingService
	validate *validator.Validate
}

func NewOpportunityHandler(oppSvc service.OpportunityService, matchSvc service.MatchingService, validate *validator.Validate) *OpportunityHandler {
	return &OpportunityHandler{oppSvc: oppSvc, matchSvc: matchSvc, validate: validate}
}

type opportunityRequest struct {
	Title              string    `json:"title" validate:"required"`
	Description        string    `json:"description"`
	Category           string    `json:"category"`
	RequiredSkills     []string  `json:"required_skills"`
	NumberOfVolunteers int32     `json:"number_of_volunteers" validate:"required,gt=0"`
	LocationType       string    `json:"location_type" validate:"omitempty,oneof=IN_PERSON VIRTUAL HYBRID"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	StartDate          time.Time `json:"start_date" validate:"required"`
	EndDate            time.Time `json:"end_date" validate:"required"`
	Visibility         string    `json:"visibility" validate:"omitempty,oneof=PUBLIC PRIVATE INVITE_ONLY"`
}

func (req *opportunityRequest) toDomain() *domain.Opportunity {
	return &domain.Opportunity{
		Title:              req.Title,
		Description:        req.Description,
		Category:           req.Category,
		RequiredSkills:     req.RequiredSkills,
		NumberOfVolunteers: req.NumberOfVolunteers,
		LocationType:       domain.LocationType(req.LocationType),
		City:               req.City,
		State:              req.State,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Visibility:         domain.OpportunityVisibility(req.Visibility),
	}
}

func (h *OpportunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req opportunityRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	opp := req.toDomain()
	if err := h.oppSvc.Create(r.Context(), actorFrom(r), opp); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, opp)
}

func (h *OpportunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	opp, err := h.oppSvc.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, opp)
}

func (h *OpportunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req opportunityRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	opp := req.toDomain()
	opp.ID = id
	if err := h.oppSvc.Update(r.Context(), actorFrom(r), opp); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, opp)
}

func (h *OpportunityHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int32) (*domain.Opportunity, error) {
		return h.oppSvc.Publish(r.Context(), actorFrom(r), id)
	})
}

type reasonRequest struct {
	Reason string `json:"reason"`
}

func (h *OpportunityHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	var req reasonRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Opportunity, error) {
		return h.oppSvc.Suspend(r.Context(), actorFrom(r), id, req.Reason)
	})
}

func (h *OpportunityHandler) Resume(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, func(id int32) (*domain.Opportunity, error) {
		return h.oppSvc.Resume(r.Context(), actorFrom(r), id)
	})
}

type closeRequest struct {
	Status string `json:"status" validate:"required,oneof=COMPLETED CANCELLED"`
	Notes  string `json:"notes"`
}

func (h *OpportunityHandler) Close(w http.ResponseWriter, r *http.Request) {
	var req closeRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Opportunity, error) {
		return h.oppSvc.Close(r.Context(), actorFrom(r), id, domain.OpportunityStatus(req.Status), req.Notes)
	})
}

func (h *OpportunityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.oppSvc.Delete(r.Context(), actorFrom(r), id, r.URL.Query().Get("reason")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type moderateRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	Notes    string `json:"notes"`
}

func (h *OpportunityHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	var req moderateRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.transition(w, r, func(id int32) (*domain.Opportunity, error) {
		return h.oppSvc.Moderate(r.Context(), actorFrom(r), id, domain.VerificationStatus(req.Decision), req.Notes)
	})
}

func (h *OpportunityHandler) transition(w http.ResponseWriter, r *http.Request, fn func(id int32) (*domain.Opportunity, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	opp, err := fn(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, opp)
}

func (h *OpportunityHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := pagination(r)
	opps, total, err := h.oppSvc.Search(r.Context(),
		q.Get("q"), q.Get("city"), q.Get("state"), q.Get("category"), q.Get("status"),
		page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listEnvelope{Items: opps, TotalCount: total, Page: page, PageSize: pageSize})
}

func (h *OpportunityHandler) ListByCharity(w http.ResponseWriter, r *http.Request) {
	charityID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	page, pageSize := pagination(r)
	opps, total, err := h.oppSvc.ListByCharity(r.Context(), charityID, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listEnvelope{Items: opps, TotalCount: total, Page: page, PageSize: pageSize})
}

// FindMatches returns the ranked volunteer candidates for the opportunity.
func (h *OpportunityHandler) FindMatches(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	opts := service.MatchOptions{}
	if raw := r.URL.Query().Get("min_score"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v >= 0 && v <= 100 {
			opts.MinScore = v
		}
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 && v <= 100 {
			opts.Limit = v
		}
	}

	results, summary, err := h.matchSvc.FindMatches(r.Context(), actorFrom(r), id, opts)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, struct {
		Matches []domain.MatchResult `json:"matches"`
		Summary domain.MatchSummary  `json:"summary"`
	}{Matches: results, Summary: summary})
}
