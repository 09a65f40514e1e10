package domain

import "time"

type ReportedEntityType string

const (
	ReportedEntityUser        ReportedEntityType = "USER"
	ReportedEntityCharity     ReportedEntityType = "CHARITY"
	ReportedEntityOpportunity ReportedEntityType = "OPPORTUNITY"
	ReportedEntityComment     ReportedEntityType = "COMMENT"
)

type ReportReason string

const (
	ReportReasonSpam          ReportReason = "SPAM"
	ReportReasonInappropriate ReportReason = "INAPPROPRIATE"
	ReportReasonFraud         ReportReason = "FRAUD"
	ReportReasonHarassment    ReportReason = "HARASSMENT"
	ReportReasonOther         ReportReason = "OTHER"
)

type ReportStatus string

const (
	ReportStatusPending     ReportStatus = "PENDING"
	ReportStatusUnderReview ReportStatus = "UNDER_REVIEW"
	ReportStatusResolved    ReportStatus = "RESOLVED"
	ReportStatusDismissed   ReportStatus = "DISMISSED"
)

func (s ReportStatus) IsTerminal() bool {
	return s == ReportStatusResolved || s == ReportStatusDismissed
}

type Report struct {
	ID                 int32              `json:"id"`
	ReporterID         int32              `json:"reporter_id"`
	ReportedEntityType ReportedEntityType `json:"reported_entity_type"`
	ReportedEntityID   int32              `json:"reported_entity_id"`
	Reason             ReportReason       `json:"reason"`
	Details            string             `json:"details,omitempty"`
	Status             ReportStatus       `json:"status"`
	Resolution         string             `json:"resolution,omitempty"`
	ActionTaken        string             `json:"action_taken,omitempty"`
	ResolvedBy         *int32             `json:"resolved_by,omitempty"`
	ResolvedOn         *time.Time         `json:"resolved_on,omitempty"`
	CreatedOn          time.Time          `json:"created_on"`
	UpdatedOn          time.Time          `json:"updated_on"`
}
