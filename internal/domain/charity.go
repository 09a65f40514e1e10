package domain

import "time"

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "PENDING"
	VerificationStatusApproved VerificationStatus = "APPROVED"
	VerificationStatusRejected VerificationStatus = "REJECTED"
)

// Charity is the organization profile owned 1:1 by a user with the CHARITY role.
// A charity may publish opportunities only while verified and active.
type Charity struct {
	ID                 int32              `json:"id"`
	UserID             int32              `json:"user_id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	City               string             `json:"city"`
	State              string             `json:"state"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	VerificationNotes  string             `json:"verification_notes,omitempty"`
	IsActive           bool               `json:"is_active"`
	CreatedOn          time.Time          `json:"created_on"`
	UpdatedOn          time.Time          `json:"updated_on"`
}

func (c *Charity) CanAct() bool {
	return c.IsActive && c.VerificationStatus == VerificationStatusApproved
}
