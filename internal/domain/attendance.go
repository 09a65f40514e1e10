package domain

import "time"

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "PRESENT"
	AttendanceStatusAbsent  AttendanceStatus = "ABSENT"
	AttendanceStatusLate    AttendanceStatus = "LATE"
	AttendanceStatusExcused AttendanceStatus = "EXCUSED"
)

// Attendance is the post-hoc record of whether a confirmed volunteer showed
// up. Keyed by the same (opportunity, volunteer) pair as Application but with
// its own lifecycle; hours recorded here feed the volunteer's cached total.
type Attendance struct {
	ID              int32            `json:"id"`
	OpportunityID   int32            `json:"opportunity_id"`
	VolunteerID     int32            `json:"volunteer_id"`
	Status          AttendanceStatus `json:"status"`
	HoursWorked     int32            `json:"hours_worked"`
	CharityRating   *int32           `json:"charity_rating,omitempty"`
	VolunteerRating *int32           `json:"volunteer_rating,omitempty"`
	RecordedBy      *int32           `json:"recorded_by,omitempty"`
	CreatedOn       time.Time        `json:"created_on"`
	UpdatedOn       time.Time        `json:"updated_on"`
}
