package http

import (
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

// ModerationHandler handles profile review and report endpoints
type ModerationHandler struct {
	modSvc   service.ModerationService
	validate *validator.Validate
}

func NewModerationHandler(modSvc service.ModerationService, validate *validator.Validate) *ModerationHandler {
	return &ModerationHandler{modSvc: modSvc, validate: validate}
}

type reviewDecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=APPROVED REJECTED"`
	Notes    string `json:"notes"`
}

func (h *ModerationHandler) ReviewCharity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req reviewDecisionRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	charity, err := h.modSvc.ReviewCharity(r.Context(), actorFrom(r), id, domain.VerificationStatus(req.Decision), req.Notes)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, charity)
}

func (h *ModerationHandler) ReviewVolunteer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req reviewDecisionRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	vol, err := h.modSvc.ReviewVolunteer(r.Context(), actorFrom(r), id, domain.VerificationStatus(req.Decision))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vol)
}

func (h *ModerationHandler) ListPendingCharities(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	charities, total, err := h.modSvc.ListPendingCharities(r.Context(), actorFrom(r), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listEnvelope{Items: charities, TotalCount: total, Page: page, PageSize: pageSize})
}

type createReportRequest struct {
	ReportedEntityType string `json:"reported_entity_type" validate:"required,oneof=USER CHARITY OPPORTUNITY COMMENT"`
	ReportedEntityID   int32  `json:"reported_entity_id" validate:"required,gt=0"`
	Reason             string `json:"reason" validate:"required,oneof=SPAM INAPPROPRIATE FRAUD HARASSMENT OTHER"`
	Details            string `json:"details"`
}

func (h *ModerationHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	report := &domain.Report{
		ReportedEntityType: domain.ReportedEntityType(req.ReportedEntityType),
		ReportedEntityID:   req.ReportedEntityID,
		Reason:             domain.ReportReason(req.Reason),
		Details:            req.Details,
	}
	if err := h.modSvc.CreateReport(r.Context(), actorFrom(r), report); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, report)
}

func (h *ModerationHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	h.reportTransition(w, r, func(id int32) (*domain.Report, error) {
		return h.modSvc.GetReport(r.Context(), actorFrom(r), id)
	})
}

func (h *ModerationHandler) StartReview(w http.ResponseWriter, r *http.Request) {
	h.reportTransition(w, r, func(id int32) (*domain.Report, error) {
		return h.modSvc.StartReview(r.Context(), actorFrom(r), id)
	})
}

type resolveReportRequest struct {
	Resolution  string `json:"resolution" validate:"required"`
	ActionTaken string `json:"action_taken"`
}

func (h *ModerationHandler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	var req resolveReportRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.reportTransition(w, r, func(id int32) (*domain.Report, error) {
		return h.modSvc.Resolve(r.Context(), actorFrom(r), id, req.Resolution, req.ActionTaken)
	})
}

type dismissReportRequest struct {
	Resolution string `json:"resolution"`
}

func (h *ModerationHandler) DismissReport(w http.ResponseWriter, r *http.Request) {
	var req dismissReportRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}
	h.reportTransition(w, r, func(id int32) (*domain.Report, error) {
		return h.modSvc.Dismiss(r.Context(), actorFrom(r), id, req.Resolution)
	})
}

func (h *ModerationHandler) reportTransition(w http.ResponseWriter, r *http.Request, fn func(id int32) (*domain.Report, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	report, err := fn(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (h *ModerationHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	reports, total, err := h.modSvc.ListReports(r.Context(), actorFrom(r), r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listEnvelope{Items: reports, TotalCount: total, Page: page, PageSize: pageSize})
}
