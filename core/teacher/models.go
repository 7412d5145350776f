package teacher

import (
	"time"

	"github.com/brainaspire/academia/core"
	"github.com/brainaspire/academia/core/user"
)

// Teacher is the persisted profile.
type Teacher struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	ContactNumber      string    `json:"contact_number"`
	Address            string    `json:"address"`
	TeachingExperience int       `json:"teaching_experience"` // years
	Qualifications     []string  `json:"qualifications"`
	Achievements       []string  `json:"achievements"`
	DateJoined         time.Time `json:"date_joined"`
	CreatedAt          time.Time `json:"created_at"` // UTC
}

// Profile is the client-sent teacher profile.
type Profile struct {
	Name               string    `json:"name" validate:"required"`
	Email              string    `json:"email" validate:"required,email"`
	ContactNumber      string    `json:"contact_number" validate:"required,contactnumber"`
	Address            string    `json:"address" validate:"required"`
	TeachingExperience int       `json:"teaching_experience" validate:"min=0"`
	Qualifications     []string  `json:"qualifications" validate:"required,min=1"`
	Achievements       []string  `json:"achievements"`
	DateJoined         time.Time `json:"date_joined" validate:"required"`
}

// NewTeacher is the full onboarding request. TeachingSubjects maps a grade to
// the subject names taught at that grade.
type NewTeacher struct {
	UserID           string           `json:"userID" validate:"required,min=4,alphanum_"`
	UserPassword     string           `json:"userPassword" validate:"required,min=8"`
	Profile          Profile          `json:"teacherProfile" validate:"required"`
	TeachingSubjects map[int][]string `json:"teachingSubjects" validate:"required,min=1"`
}

func (nt *NewTeacher) Validate() error {
	nt.UserID = core.CleanString(nt.UserID, true /* lower */)
	nt.Profile.Email = core.CleanString(nt.Profile.Email, true /* lower */)
	return core.Validate.Struct(nt)
}

func (nt *NewTeacher) credentials() user.NewUser {
	return user.NewUser{Username: nt.UserID, Password: nt.UserPassword}
}
