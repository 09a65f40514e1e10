package domain

import "time"

type ApplicationStatus string

const (
	ApplicationStatusPending            ApplicationStatus = "PENDING"
	ApplicationStatusUnderReview        ApplicationStatus = "UNDER_REVIEW"
	ApplicationStatusInfoRequested      ApplicationStatus = "ADDITIONAL_INFO_REQUESTED"
	ApplicationStatusApproved           ApplicationStatus = "APPROVED"
	ApplicationStatusConfirmed          ApplicationStatus = "CONFIRMED"
	ApplicationStatusRejected           ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn          ApplicationStatus = "WITHDRAWN"
	ApplicationStatusBackgroundRequired ApplicationStatus = "BACKGROUND_CHECK_REQUIRED"
	ApplicationStatusModeratorReview    ApplicationStatus = "MODERATOR_REVIEW"

	// Legacy value still present in old rows. Normalized to APPROVED on read,
	// never written.
	applicationStatusAccepted ApplicationStatus = "ACCEPTED"
)

// NormalizeApplicationStatus maps legacy stored values onto the current enum.
func NormalizeApplicationStatus(s ApplicationStatus) ApplicationStatus {
	if s == applicationStatusAccepted {
		return ApplicationStatusApproved
	}
	return s
}

// IsTerminal reports whether the primary lifecycle accepts no further events.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusRejected || s == ApplicationStatusWithdrawn
}

type ModeratorReviewStatus string

const (
	ModeratorReviewNone     ModeratorReviewStatus = "NONE"
	ModeratorReviewPending  ModeratorReviewStatus = "PENDING"
	ModeratorReviewApproved ModeratorReviewStatus = "APPROVED"
	ModeratorReviewRejected ModeratorReviewStatus = "REJECTED"
)

// InfoRequest is the structured payload a charity attaches when asking the
// volunteer for additional information.
type InfoRequest struct {
	ID          string    `json:"id"`
	Fields      []string  `json:"fields"`
	Message     string    `json:"message"`
	RequestedBy int32     `json:"requested_by"`
	RequestedOn time.Time `json:"requested_on"`
}

// InfoResponse is the volunteer's answer to an InfoRequest.
type InfoResponse struct {
	RequestID  string            `json:"request_id"`
	Answers    map[string]string `json:"answers"`
	ProvidedOn time.Time         `json:"provided_on"`
}

type Application struct {
	ID            int32             `json:"id"`
	OpportunityID int32             `json:"opportunity_id"`
	VolunteerID   int32             `json:"volunteer_id"`
	Status        ApplicationStatus `json:"status"`
	CoverMessage  string            `json:"cover_message,omitempty"`

	// Set only when the application came through the match suggestion flow.
	MatchScore *float64 `json:"match_score,omitempty"`

	HoursCommitted int32 `json:"hours_committed"`
	HoursWorked    int32 `json:"hours_worked"`

	InfoRequested *InfoRequest  `json:"additional_info_requested,omitempty"`
	InfoProvided  *InfoResponse `json:"additional_info_provided,omitempty"`

	ReviewedBy  *int32     `json:"reviewed_by,omitempty"`
	ReviewedOn  *time.Time `json:"reviewed_on,omitempty"`
	ReviewNotes string     `json:"review_notes,omitempty"`

	ConfirmedOn     *time.Time `json:"confirmed_on,omitempty"`
	WithdrawnOn     *time.Time `json:"withdrawn_on,omitempty"`
	WithdrawnReason string     `json:"withdrawn_reason,omitempty"`

	// Secondary escalation track, orthogonal to Status.
	FlaggedForModeration  bool                  `json:"flagged_for_moderation"`
	ModeratorReviewStatus ModeratorReviewStatus `json:"moderator_review_status"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}
