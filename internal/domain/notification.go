package domain

import "time"

type NotificationType string

const (
	NotifyApplicationSubmitted     NotificationType = "APPLICATION_SUBMITTED"
	NotifyApplicationInfoRequested NotificationType = "APPLICATION_INFO_REQUESTED"
	NotifyApplicationInfoProvided  NotificationType = "APPLICATION_INFO_PROVIDED"
	NotifyApplicationApproved      NotificationType = "APPLICATION_APPROVED"
	NotifyApplicationRejected      NotificationType = "APPLICATION_REJECTED"
	NotifyApplicationConfirmed     NotificationType = "APPLICATION_CONFIRMED"
	NotifyApplicationWithdrawn     NotificationType = "APPLICATION_WITHDRAWN"
	NotifyApplicationFlagged       NotificationType = "APPLICATION_FLAGGED"
	NotifyBackgroundCheckRequired  NotificationType = "BACKGROUND_CHECK_REQUIRED"
	NotifyOpportunityPublished     NotificationType = "OPPORTUNITY_PUBLISHED"
	NotifyOpportunitySuspended     NotificationType = "OPPORTUNITY_SUSPENDED"
	NotifyOpportunityResumed       NotificationType = "OPPORTUNITY_RESUMED"
	NotifyOpportunityClosed        NotificationType = "OPPORTUNITY_CLOSED"
	NotifyOpportunityModerated     NotificationType = "OPPORTUNITY_MODERATED"
	NotifyOpportunityReminder      NotificationType = "OPPORTUNITY_REMINDER"
	NotifyAttendanceRecorded       NotificationType = "ATTENDANCE_RECORDED"
	NotifyAccountStatusChanged     NotificationType = "ACCOUNT_STATUS_CHANGED"
	NotifyReportResolved           NotificationType = "REPORT_RESOLVED"
	NotifyReportReceived           NotificationType = "REPORT_RECEIVED"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "LOW"
	PriorityNormal NotificationPriority = "NORMAL"
	PriorityHigh   NotificationPriority = "HIGH"
)

type Notification struct {
	ID         int32                `json:"id"`
	UserID     int32                `json:"user_id"`
	Type       NotificationType     `json:"type"`
	Title      string               `json:"title"`
	Message    string               `json:"message"`
	IsRead     bool                 `json:"is_read"`
	Priority   NotificationPriority `json:"priority"`
	Attributes map[string]string    `json:"attributes,omitempty"`
	CreatedOn  time.Time            `json:"created_on"`
}
