package user

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/brainaspire/academia/core"
)

// Roles. Students carry no role record; anything with a role is staff.
const (
	RoleAdmin     = "admin"
	RoleTeacher   = "teacher"
	RoleDeveloper = "developer"
)

var AllRoles = []string{RoleAdmin, RoleTeacher, RoleDeveloper}

// User is a credential record. Username is the login id handed to the
// student/teacher at onboarding.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"user_id"`
	IsActive     *bool     `json:"is_active"`
	Roles        []string  `json:"roles,omitempty"`
	PasswordHash []byte    `json:"-"`
	LastLogin    time.Time `json:"last_login"` // UTC
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) SetActive(active bool) { u.IsActive = &active }

func (u *User) Active() bool { return u.IsActive != nil && *u.IsActive }

func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool   { return u.HasRole(RoleAdmin) || u.HasRole(RoleDeveloper) }
func (u *User) IsTeacher() bool { return u.HasRole(RoleTeacher) }
func (u *User) IsStudent() bool { return len(u.Roles) == 0 }

// NewUser contains information needed to create a new credential record.
type NewUser struct {
	Username string `json:"user_id" validate:"required,min=4,alphanum_"`
	Password string `json:"password" validate:"required,min=8"`
}

func (nu *NewUser) Validate() error {
	nu.Username = core.CleanString(nu.Username, true /* lower */)
	return core.Validate.Struct(nu)
}
