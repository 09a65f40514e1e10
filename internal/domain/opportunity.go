package domain

import "time"

type OpportunityStatus string

const (
	OpportunityStatusDraft      OpportunityStatus = "DRAFT"
	OpportunityStatusPublished  OpportunityStatus = "PUBLISHED"
	OpportunityStatusActive     OpportunityStatus = "ACTIVE"
	OpportunityStatusInProgress OpportunityStatus = "IN_PROGRESS"
	OpportunityStatusSuspended  OpportunityStatus = "SUSPENDED"
	OpportunityStatusCompleted  OpportunityStatus = "COMPLETED"
	OpportunityStatusCancelled  OpportunityStatus = "CANCELLED"
)

// IsTerminal reports whether no further lifecycle transitions are accepted.
func (s OpportunityStatus) IsTerminal() bool {
	return s == OpportunityStatusCompleted || s == OpportunityStatusCancelled
}

type LocationType string

const (
	LocationTypeInPerson LocationType = "IN_PERSON"
	LocationTypeVirtual  LocationType = "VIRTUAL"
	LocationTypeHybrid   LocationType = "HYBRID"
)

type OpportunityVisibility string

const (
	VisibilityPublic     OpportunityVisibility = "PUBLIC"
	VisibilityPrivate    OpportunityVisibility = "PRIVATE"
	VisibilityInviteOnly OpportunityVisibility = "INVITE_ONLY"
)

type Opportunity struct {
	ID                 int32                 `json:"id"`
	CharityID          int32                 `json:"charity_id"`
	Title              string                `json:"title"`
	Description        string                `json:"description"`
	Category           string                `json:"category"`
	RequiredSkills     []string              `json:"required_skills"`
	NumberOfVolunteers int32                 `json:"number_of_volunteers"`
	VolunteersConfirmed int32                `json:"volunteers_confirmed"`
	LocationType       LocationType          `json:"location_type"`
	City               string                `json:"city"`
	State              string                `json:"state"`
	StartDate          time.Time             `json:"start_date"`
	EndDate            time.Time             `json:"end_date"`
	Status             OpportunityStatus     `json:"status"`
	ModerationStatus   VerificationStatus    `json:"moderation_status"`
	Visibility         OpportunityVisibility `json:"visibility"`

	// Suspension bookkeeping. PreviousStatus is what resume() restores.
	PreviousStatus  *OpportunityStatus `json:"previous_status,omitempty"`
	SuspendedOn     *time.Time         `json:"suspended_on,omitempty"`
	SuspendedBy     *int32             `json:"suspended_by,omitempty"`
	SuspendedReason string             `json:"suspended_reason,omitempty"`
	ResumedOn       *time.Time         `json:"resumed_on,omitempty"`
	ResumedBy       *int32             `json:"resumed_by,omitempty"`

	ClosedOn     *time.Time `json:"closed_on,omitempty"`
	ClosureNotes string     `json:"closure_notes,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Open reports whether the opportunity accepts new applications.
func (o *Opportunity) Open() bool {
	return o.Status == OpportunityStatusPublished &&
		o.ModerationStatus == VerificationStatusApproved
}

// Full reports whether every slot is already confirmed. The authoritative
// capacity check happens in the store's conditional update; this is the
// read-model mirror used to reject applications early.
func (o *Opportunity) Full() bool {
	return o.VolunteersConfirmed >= o.NumberOfVolunteers
}
