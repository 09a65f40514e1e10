package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/logger"
	"volunteerhub-backend/internal/security"
	"volunteerhub-backend/internal/service"

	"github.com/go-playground/validator/v10"
)

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Current string `json:"current_state,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps the domain error taxonomy onto HTTP status codes. State
// conflicts are 409s with distinct codes so clients can tell "full" from
// "already applied" from "wrong state".
func respondError(w http.ResponseWriter, err error) {
	var valErr *domain.ValidationError
	var stateErr *domain.StateError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.As(err, &valErr):
		respondJSON(w, http.StatusBadRequest, errorBody{errorDetail{
			Code: "validation_error", Message: valErr.Msg, Field: valErr.Field,
		}})
	case errors.As(err, &fieldErrs):
		detail := errorDetail{Code: "validation_error", Message: "invalid request"}
		if len(fieldErrs) > 0 {
			detail.Field = fieldErrs[0].Field()
			detail.Message = "failed on the '" + fieldErrs[0].Tag() + "' rule"
		}
		respondJSON(w, http.StatusBadRequest, errorBody{detail})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, security.ErrInvalidToken),
		errors.Is(err, security.ErrExpiredToken),
		errors.Is(err, security.ErrWrongTokenType):
		respondJSON(w, http.StatusUnauthorized, errorBody{errorDetail{
			Code: "unauthorized", Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrActorNotApproved):
		respondJSON(w, http.StatusForbidden, errorBody{errorDetail{
			Code: "forbidden", Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorBody{errorDetail{
			Code: "not_found", Message: err.Error(),
		}})
	case errors.As(err, &stateErr):
		respondJSON(w, http.StatusConflict, errorBody{errorDetail{
			Code: "invalid_transition", Message: stateErr.Error(), Current: stateErr.Current,
		}})
	case errors.Is(err, domain.ErrDuplicateApplication):
		respondJSON(w, http.StatusConflict, errorBody{errorDetail{
			Code: "duplicate_application", Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrCapacityFull):
		respondJSON(w, http.StatusConflict, errorBody{errorDetail{
			Code: "opportunity_full", Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrDuplicateAttendance):
		respondJSON(w, http.StatusConflict, errorBody{errorDetail{
			Code: "duplicate_attendance", Message: err.Error(),
		}})
	default:
		logger.Error("Unhandled error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorBody{errorDetail{
			Code: "internal_error", Message: "internal server error",
		}})
	}
}

// listEnvelope is the shared pagination wrapper for list endpoints.
type listEnvelope struct {
	Items      any   `json:"items"`
	TotalCount int32 `json:"total_count"`
	Page       int32 `json:"page"`
	PageSize   int32 `json:"page_size"`
}

func decodeAndValidate(r *http.Request, validate *validator.Validate, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return domain.NewValidationError("", "malformed request body")
	}
	return validate.Struct(dst)
}
