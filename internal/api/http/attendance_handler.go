package http

import (
	"context"
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

// AttendanceHandler handles attendance recording and rating endpoints
type AttendanceHandler struct {
	attSvc   service.AttendanceService
	validate *validator.Validate
}

func NewAttendanceHandler(attSvc service.AttendanceService, validate *validator.Validate) *AttendanceHandler {
	return &AttendanceHandler{attSvc: attSvc, validate: validate}
}

type recordAttendanceRequest struct {
	OpportunityID int32  `json:"opportunity_id" validate:"required,gt=0"`
	VolunteerID   int32  `json:"volunteer_id" validate:"required,gt=0"`
	Status        string `json:"status" validate:"required,oneof=PRESENT ABSENT LATE EXCUSED"`
	HoursWorked   int32  `json:"hours_worked" validate:"gte=0"`
}

func (h *AttendanceHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req recordAttendanceRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	att, err := h.attSvc.Record(r.Context(), actorFrom(r), req.OpportunityID, req.VolunteerID,
		domain.AttendanceStatus(req.Status), req.HoursWorked)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, att)
}

type ratingRequest struct {
	Rating int32 `json:"rating" validate:"required,gte=1,lte=5"`
}

func (h *AttendanceHandler) RateVolunteer(w http.ResponseWriter, r *http.Request) {
	h.rate(w, r, h.attSvc.RateVolunteer)
}

func (h *AttendanceHandler) RateCharity(w http.ResponseWriter, r *http.Request) {
	h.rate(w, r, h.attSvc.RateCharity)
}

func (h *AttendanceHandler) rate(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, actor service.Actor, attendanceID int32, rating int32) (*domain.Attendance, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	var req ratingRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	att, err := fn(r.Context(), actorFrom(r), id, req.Rating)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, att)
}

func (h *AttendanceHandler) ListByOpportunity(w http.ResponseWriter, r *http.Request) {
	opportunityID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	atts, err := h.attSvc.ListByOpportunity(r.Context(), actorFrom(r), opportunityID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, atts)
}

func (h *AttendanceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	atts, total, err := h.attSvc.ListByVolunteer(r.Context(), actorFrom(r), page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, listEnvelope{Items: atts, TotalCount: total, Page: page, PageSize: pageSize})
}
