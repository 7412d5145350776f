package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"
	"github.com/pkg/errors"

	"github.com/brainaspire/academia/core/teacher"
)

type teacherRepository struct {
	db *sqlx.DB
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *sqlx.DB) *teacherRepository {
	return &teacherRepository{db: db}
}

type teacherRow struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Email              string         `db:"email"`
	ContactNumber      string         `db:"contact_number"`
	Address            string         `db:"address"`
	TeachingExperience int            `db:"teaching_experience"`
	Qualifications     types.JSONText `db:"qualifications"`
	Achievements       types.JSONText `db:"achievements"`
	DateJoined         time.Time      `db:"date_joined"`
	CreatedAt          time.Time      `db:"created_at"`
}

func (repo teacherRepository) CreateTeacher(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	qualifications, err := json.Marshal(t.Qualifications)
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "encoding qualifications")
	}
	achievements, err := json.Marshal(t.Achievements)
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "encoding achievements")
	}

	row := teacherRow{
		ID:                 t.ID,
		Name:               t.Name,
		Email:              t.Email,
		ContactNumber:      t.ContactNumber,
		Address:            t.Address,
		TeachingExperience: t.TeachingExperience,
		Qualifications:     qualifications,
		Achievements:       achievements,
		DateJoined:         t.DateJoined,
		CreatedAt:          t.CreatedAt.UTC(),
	}
	_, err = repo.db.NamedExecContext(ctx, `
		INSERT INTO teacher (
			id, name, email, contact_number, address, teaching_experience,
			qualifications, achievements, date_joined, created_at
		) VALUES (
			:id, :name, :email, :contact_number, :address, :teaching_experience,
			:qualifications, :achievements, :date_joined, :created_at
		)`, row)
	if err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "inserting teacher")
	}
	return t, nil
}

func (repo teacherRepository) GetTeacherByID(ctx context.Context, id string) (teacher.Teacher, error) {
	var row teacherRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM teacher WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return teacher.Teacher{}, errors.New("teacher does not exist")
		}
		return teacher.Teacher{}, errors.Wrap(err, "querying teacher")
	}

	t := teacher.Teacher{
		ID:                 row.ID,
		Name:               row.Name,
		Email:              row.Email,
		ContactNumber:      row.ContactNumber,
		Address:            row.Address,
		TeachingExperience: row.TeachingExperience,
		DateJoined:         row.DateJoined,
		CreatedAt:          row.CreatedAt,
	}
	if err := json.Unmarshal(row.Qualifications, &t.Qualifications); err != nil {
		return teacher.Teacher{}, errors.Wrap(err, "decoding qualifications")
	}
	if len(row.Achievements) > 0 {
		if err := json.Unmarshal(row.Achievements, &t.Achievements); err != nil {
			return teacher.Teacher{}, errors.Wrap(err, "decoding achievements")
		}
	}
	return t, nil
}

func (repo teacherRepository) DeleteTeacher(ctx context.Context, id string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM teacher WHERE id = $1`, id)
	return errors.Wrap(err, "deleting teacher")
}

func (repo teacherRepository) MapSubjects(ctx context.Context, teacherID string, subjectIDs []string) ([]string, error) {
	ids := make([]string, 0, len(subjectIDs))
	for _, subjectID := range subjectIDs {
		id := uuid.New().String()
		_, err := repo.db.ExecContext(ctx,
			`INSERT INTO teacher_subject (id, teacher_id, subject_id) VALUES ($1, $2, $3)`,
			id, teacherID, subjectID)
		if err != nil {
			return nil, errors.Wrap(err, "inserting teacher subject mapping")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (repo teacherRepository) DeleteSubjectMappings(ctx context.Context, teacherID string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM teacher_subject WHERE teacher_id = $1`, teacherID)
	return errors.Wrap(err, "deleting teacher subject mappings")
}
