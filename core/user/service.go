package user

import (
	"context"
	"errors"
	"time"

	"github.com/brainaspire/academia/core"
)

var (
	// errors
	ErrNotFound           = errors.New("user does not exist")
	ErrUserExists         = errors.New("a user with this user id already exists")
	ErrInvalidCredentials = errors.New("wrong password")
	ErrAccountDeactivated = errors.New("user is no longer active or has been blocked by the admin")
)

type (
	Repository interface {
		CreateUser(ctx context.Context, usr User) (User, error)
		GetUserByID(ctx context.Context, id string) (User, error)
		GetUserByUsername(ctx context.Context, username string) (User, error)
		UpdateUser(ctx context.Context, usr User) (User, error)
		SetLastLogin(ctx context.Context, id string, t time.Time) error
		AddUserRole(ctx context.Context, userID, role string) error
		RemoveUserRole(ctx context.Context, userID, role string) error
		DeleteUser(ctx context.Context, id string) error
	}

	Service interface {
		// Authenticate checks a login attempt. Failures are distinct:
		// ErrNotFound, ErrAccountDeactivated, ErrInvalidCredentials.
		Authenticate(ctx context.Context, username, pwd string) (User, error)
		CreateCredentials(ctx context.Context, nu NewUser, active bool) (User, error)
		GetByID(ctx context.Context, id string) (User, error)
		GetByUsername(ctx context.Context, username string) (User, error)
		AssignRole(ctx context.Context, userID, role string) error
		RevokeRole(ctx context.Context, userID, role string) error
		DeleteCredentials(ctx context.Context, id string) error
	}

	service struct {
		repo   Repository
		logger core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, logger core.Logger) *service {
	return &service{repo: repo, logger: logger}
}

func (svc *service) Authenticate(ctx context.Context, username, pwd string) (User, error) {
	usr, err := svc.repo.GetUserByUsername(ctx, core.CleanString(username, true /* lower */))
	if err != nil {
		return User{}, err
	}
	if !usr.Active() {
		return User{}, ErrAccountDeactivated
	}
	if err = usr.CheckPassword(pwd); err != nil {
		return User{}, ErrInvalidCredentials
	}
	if err = svc.repo.SetLastLogin(ctx, usr.ID, time.Now().UTC()); err != nil {
		svc.logger.Warn("setting last login", err, usr)
	}
	return usr, nil
}

func (svc *service) CreateCredentials(ctx context.Context, nu NewUser, active bool) (User, error) {
	if err := nu.Validate(); err != nil {
		return User{}, err
	}
	if _, err := svc.repo.GetUserByUsername(ctx, nu.Username); err == nil {
		return User{}, core.NewValidationError(ErrUserExists, core.FieldError{Field: "user_id", Error: ErrUserExists.Error()})
	} else if err != ErrNotFound {
		return User{}, err
	}

	now := time.Now().UTC()
	usr := User{
		Username:  nu.Username,
		LastLogin: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	usr.SetActive(active)
	if err := usr.SetPassword(nu.Password); err != nil {
		return User{}, err
	}
	return svc.repo.CreateUser(ctx, usr)
}

func (svc *service) GetByID(ctx context.Context, id string) (User, error) {
	return svc.repo.GetUserByID(ctx, id)
}

func (svc *service) GetByUsername(ctx context.Context, username string) (User, error) {
	return svc.repo.GetUserByUsername(ctx, core.CleanString(username, true /* lower */))
}

func (svc *service) AssignRole(ctx context.Context, userID, role string) error {
	return svc.repo.AddUserRole(ctx, userID, role)
}

func (svc *service) RevokeRole(ctx context.Context, userID, role string) error {
	return svc.repo.RemoveUserRole(ctx, userID, role)
}

func (svc *service) DeleteCredentials(ctx context.Context, id string) error {
	return svc.repo.DeleteUser(ctx, id)
}
