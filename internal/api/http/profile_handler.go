package http

import (
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

// ProfileHandler handles volunteer and charity profile endpoints
type ProfileHandler struct {
	volSvc     service.VolunteerService
	charitySvc service.CharityService
	validate   *validator.Validate
}

func NewProfileHandler(volSvc service.VolunteerService, charitySvc service.CharityService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{volSvc: volSvc, charitySvc: charitySvc, validate: validate}
}

type volunteerProfileRequest struct {
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	Availability []string `json:"availability"`
	City         string   `json:"city"`
	State        string   `json:"state"`
}

func (req *volunteerProfileRequest) toDomain() *domain.Volunteer {
	return &domain.Volunteer{
		Skills:       req.Skills,
		Interests:    req.Interests,
		Availability: req.Availability,
		City:         req.City,
		State:        req.State,
	}
}

func (h *ProfileHandler) CreateVolunteer(w http.ResponseWriter, r *http.Request) {
	var req volunteerProfileRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	vol := req.toDomain()
	if err := h.volSvc.CreateProfile(r.Context(), actorFrom(r), vol); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, vol)
}

func (h *ProfileHandler) GetOwnVolunteer(w http.ResponseWriter, r *http.Request) {
	vol, err := h.volSvc.GetOwnProfile(r.Context(), actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vol)
}

func (h *ProfileHandler) GetVolunteer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	vol, err := h.volSvc.GetProfile(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vol)
}

func (h *ProfileHandler) UpdateVolunteer(w http.ResponseWriter, r *http.Request) {
	var req volunteerProfileRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	vol := req.toDomain()
	if err := h.volSvc.UpdateProfile(r.Context(), actorFrom(r), vol); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, vol)
}

type charityProfileRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	City        string `json:"city"`
	State       string `json:"state"`
}

func (req *charityProfileRequest) toDomain() *domain.Charity {
	return &domain.Charity{
		Name:        req.Name,
		Description: req.Description,
		City:        req.City,
		State:       req.State,
	}
}

func (h *ProfileHandler) CreateCharity(w http.ResponseWriter, r *http.Request) {
	var req charityProfileRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	charity := req.toDomain()
	if err := h.charitySvc.CreateProfile(r.Context(), actorFrom(r), charity); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, charity)
}

func (h *ProfileHandler) GetOwnCharity(w http.ResponseWriter, r *http.Request) {
	charity, err := h.charitySvc.GetOwnProfile(r.Context(), actorFrom(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, charity)
}

func (h *ProfileHandler) GetCharity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	charity, err := h.charitySvc.GetProfile(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, charity)
}

func (h *ProfileHandler) UpdateCharity(w http.ResponseWriter, r *http.Request) {
	var req charityProfileRequest
	if err := decodeAndValidate(r, h.validate, &req); err != nil {
		respondError(w, err)
		return
	}

	charity := req.toDomain()
	if err := h.charitySvc.UpdateProfile(r.Context(), actorFrom(r), charity); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, charity)
}
