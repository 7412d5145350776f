package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/brainaspire/academia/core/user"
)

type userRepository struct {
	db *sqlx.DB
}

var _ user.Repository = (*userRepository)(nil) // interface compliance check

func NewUserRepository(db *sqlx.DB) *userRepository {
	return &userRepository{db: db}
}

type userRow struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	PasswordHash []byte    `db:"password_hash"`
	IsActive     bool      `db:"is_active"`
	LastLogin    null.Time `db:"last_login"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (repo userRepository) row(usr user.User) userRow {
	return userRow{
		ID:           usr.ID,
		Username:     usr.Username,
		PasswordHash: usr.PasswordHash,
		IsActive:     usr.Active(),
		LastLogin:    null.NewTime(usr.LastLogin.UTC(), !usr.LastLogin.IsZero()),
		CreatedAt:    usr.CreatedAt.UTC(),
		UpdatedAt:    usr.UpdatedAt.UTC(),
	}
}

func (repo userRepository) unrow(ctx context.Context, row userRow) (user.User, error) {
	usr := user.User{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		LastLogin:    row.LastLogin.Time,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	usr.SetActive(row.IsActive)

	var roles []string
	if err := repo.db.SelectContext(ctx, &roles, `SELECT role FROM user_role WHERE user_id = $1 ORDER BY role`, row.ID); err != nil {
		return user.User{}, errors.Wrap(err, "loading user roles")
	}
	usr.Roles = roles
	return usr, nil
}

func (repo userRepository) CreateUser(ctx context.Context, usr user.User) (user.User, error) {
	if usr.ID == "" {
		usr.ID = uuid.New().String()
	}
	row := repo.row(usr)
	_, err := repo.db.NamedExecContext(ctx, `
		INSERT INTO auth_user (id, username, password_hash, is_active, last_login, created_at, updated_at)
		VALUES (:id, :username, :password_hash, :is_active, :last_login, :created_at, :updated_at)`, row)
	if err != nil {
		return user.User{}, errors.Wrap(err, "inserting user")
	}
	return usr, nil
}

func (repo userRepository) get(ctx context.Context, query string, arg interface{}) (user.User, error) {
	var row userRow
	if err := repo.db.GetContext(ctx, &row, query, arg); err != nil {
		if err == sql.ErrNoRows {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, errors.Wrap(err, "querying user")
	}
	return repo.unrow(ctx, row)
}

func (repo userRepository) GetUserByID(ctx context.Context, id string) (user.User, error) {
	return repo.get(ctx, `SELECT * FROM auth_user WHERE id = $1`, id)
}

func (repo userRepository) GetUserByUsername(ctx context.Context, username string) (user.User, error) {
	return repo.get(ctx, `SELECT * FROM auth_user WHERE username = $1`, username)
}

func (repo userRepository) UpdateUser(ctx context.Context, usr user.User) (user.User, error) {
	usr.UpdatedAt = time.Now().UTC()
	row := repo.row(usr)
	res, err := repo.db.NamedExecContext(ctx, `
		UPDATE auth_user
		SET username = :username, password_hash = :password_hash, is_active = :is_active, updated_at = :updated_at
		WHERE id = :id`, row)
	if err != nil {
		return user.User{}, errors.Wrap(err, "updating user")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func (repo userRepository) SetLastLogin(ctx context.Context, id string, t time.Time) error {
	_, err := repo.db.ExecContext(ctx, `UPDATE auth_user SET last_login = $1 WHERE id = $2`, t.UTC(), id)
	return errors.Wrap(err, "updating last login")
}

func (repo userRepository) AddUserRole(ctx context.Context, userID, role string) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO user_role (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`, userID, role)
	return errors.Wrap(err, "inserting user role")
}

func (repo userRepository) RemoveUserRole(ctx context.Context, userID, role string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM user_role WHERE user_id = $1 AND role = $2`, userID, role)
	return errors.Wrap(err, "deleting user role")
}

func (repo userRepository) DeleteUser(ctx context.Context, id string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM auth_user WHERE id = $1`, id)
	return errors.Wrap(err, "deleting user")
}
