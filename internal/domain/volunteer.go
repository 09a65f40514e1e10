package domain

import "time"

type BackgroundCheckStatus string

const (
	BackgroundCheckNotRequested BackgroundCheckStatus = "NOT_REQUESTED"
	BackgroundCheckPending      BackgroundCheckStatus = "PENDING"
	BackgroundCheckCleared      BackgroundCheckStatus = "CLEARED"
	BackgroundCheckFailed       BackgroundCheckStatus = "FAILED"
)

// Availability windows a volunteer can declare. Coarse on purpose: the match
// scorer does a window overlap check, not a calendar intersection.
const (
	AvailabilityWeekdays = "WEEKDAYS"
	AvailabilityWeekends = "WEEKENDS"
	AvailabilityEvenings = "EVENINGS"
)

type Volunteer struct {
	ID                    int32                 `json:"id"`
	UserID                int32                 `json:"user_id"`
	Skills                []string              `json:"skills"`
	Interests             []string              `json:"interests"`
	Availability          []string              `json:"availability"`
	City                  string                `json:"city"`
	State                 string                `json:"state"`
	ApprovalStatus        VerificationStatus    `json:"approval_status"`
	BackgroundCheckStatus BackgroundCheckStatus `json:"background_check_status"`
	TotalHoursVolunteered int32                 `json:"total_hours_volunteered"`
	IsActive              bool                  `json:"is_active"`
	CreatedOn             time.Time             `json:"created_on"`
	UpdatedOn             time.Time             `json:"updated_on"`
}

func (v *Volunteer) CanAct() bool {
	return v.IsActive && v.ApprovalStatus == VerificationStatusApproved
}
