package student

import (
	"time"

	"github.com/brainaspire/academia/core"
	"github.com/brainaspire/academia/core/fee"
	"github.com/brainaspire/academia/core/user"
)

// Coaching modes (delivery formats).
const (
	ModeOnline   = "online"
	ModeOffline  = "offline"
	ModeOneOnOne = "personalised_one_on_one"
)

type WeakSubject struct {
	Subject       string `json:"subject" validate:"required"`
	MaxMarks      int    `json:"max_marks"`
	MarksObtained int    `json:"marks_obtained"`
	Details       string `json:"details"`
}

// Student is the persisted profile. CoachingModeID and FeeTypeID are the
// resolved configuration ids, not the client-sent labels.
type Student struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Email              string              `json:"email"`
	ContactNumber      string              `json:"contact_number"`
	Address            string              `json:"address"`
	Gender             string              `json:"gender"`
	GuardianParentName string              `json:"guardian_parent_name"`
	DOB                time.Time           `json:"dob"`
	Grade              int                 `json:"grade"`
	SchoolName         string              `json:"school_name"`
	CoachingModeID     string              `json:"coaching_modeID"`
	FeeTypeID          string              `json:"fee_typeID"`
	PrevYearResults    fee.PrevYearResults `json:"prev_year_results"`
	WeakSubjects       []WeakSubject       `json:"weak_subjects,omitempty"`
	DateJoined         time.Time           `json:"date_joined"`
	CreatedAt          time.Time           `json:"created_at"` // UTC
}

// Profile is the client-sent student profile.
type Profile struct {
	Name               string              `json:"name" validate:"required"`
	Email              string              `json:"email" validate:"required,email"`
	ContactNumber      string              `json:"contact_number" validate:"required,contactnumber"`
	Address            string              `json:"address" validate:"required"`
	Gender             string              `json:"gender" validate:"required,oneof=male female other"`
	GuardianParentName string              `json:"guardian_parent_name" validate:"required"`
	DOB                time.Time           `json:"dob" validate:"required"`
	Grade              int                 `json:"grade" validate:"required"`
	SchoolName         string              `json:"school_name" validate:"required"`
	CoachingMode       string              `json:"coaching_mode" validate:"required,oneof=online offline personalised_one_on_one"`
	FeeType            string              `json:"fee_type" validate:"required,oneof=one-time two-time four-time"`
	PrevYearResults    fee.PrevYearResults `json:"prev_year_results"`
	WeakSubjects       []WeakSubject       `json:"weak_subjects" validate:"omitempty,dive"`
	DateJoined         time.Time           `json:"date_joined" validate:"required"`
}

// NewStudent is the full onboarding request.
type NewStudent struct {
	UserID           string               `json:"userID" validate:"required,min=4,alphanum_"`
	UserPassword     string               `json:"userPassword" validate:"required,min=8"`
	Profile          Profile              `json:"studentProfile" validate:"required"`
	SelectedSubjects []string             `json:"selectedSubjects" validate:"required,min=1"`
	Installments     []fee.NewInstallment `json:"installments" validate:"required,min=1"`
}

func (ns *NewStudent) Validate() error {
	ns.UserID = core.CleanString(ns.UserID, true /* lower */)
	ns.Profile.Email = core.CleanString(ns.Profile.Email, true /* lower */)
	ns.Profile.CoachingMode = core.CleanString(ns.Profile.CoachingMode, true /* lower */)
	ns.Profile.FeeType = core.CleanString(ns.Profile.FeeType, true /* lower */)
	return core.Validate.Struct(ns)
}

func (ns *NewStudent) credentials() user.NewUser {
	return user.NewUser{Username: ns.UserID, Password: ns.UserPassword}
}

// Tracker models: one performance tracker per (student, subject) per batch
// year, created empty at onboarding and filled in month by month.

type Remark struct {
	TeacherID string    `json:"teacherID"`
	Title     string    `json:"title"`
	Remarks   string    `json:"remarks"`
	Timestamp time.Time `json:"timestamp"`
}

type Attendance struct {
	TotalClasses    int         `json:"total_classes"`
	AttendedClasses int         `json:"attended_classes"`
	DatesOfAbsence  []time.Time `json:"dates_of_absence"`
}

type PerformanceTracker struct {
	ID                string                `json:"id"`
	StudentID         string                `json:"studentID"`
	Grade             int                   `json:"grade"`
	SubjectID         string                `json:"subjectID"`
	MonthlyRemarks    map[string]Remark     `json:"monthly_remarks"`    // keyed by month number
	MonthlyAttendance map[string]Attendance `json:"monthly_attendance"` // keyed by month number
	YearBatch         int                   `json:"year_batch"`
}
