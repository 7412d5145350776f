package sqlxrepos

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/brainaspire/academia/core/subject"
)

type subjectRepository struct {
	db *sqlx.DB
}

var _ subject.Repository = (*subjectRepository)(nil) // interface compliance check

func NewSubjectRepository(db *sqlx.DB) *subjectRepository {
	return &subjectRepository{db: db}
}

type subjectRow struct {
	ID    string `db:"id"`
	Name  string `db:"name"`
	Grade int    `db:"grade"`
}

func (repo subjectRepository) FindByGradeNames(ctx context.Context, gradeSubjects map[int][]string) ([]subject.Subject, error) {
	var (
		clauses []string
		args    []interface{}
	)
	for grade, names := range gradeSubjects {
		if len(names) == 0 {
			continue
		}
		clauses = append(clauses, "(grade = ? AND name IN (?))")
		args = append(args, grade, names)
	}
	if len(clauses) == 0 {
		return nil, nil
	}

	query, inArgs, err := sqlx.In(
		`SELECT id, name, grade FROM subject WHERE `+strings.Join(clauses, " OR ")+` ORDER BY grade, name`,
		args...)
	if err != nil {
		return nil, errors.Wrap(err, "building subject query")
	}
	query = repo.db.Rebind(query)

	var rows []subjectRow
	if err := repo.db.SelectContext(ctx, &rows, query, inArgs...); err != nil {
		return nil, errors.Wrap(err, "querying subjects")
	}

	subjects := make([]subject.Subject, 0, len(rows))
	for _, row := range rows {
		subjects = append(subjects, subject.Subject{ID: row.ID, Name: row.Name, Grade: row.Grade})
	}
	return subjects, nil
}

func (repo subjectRepository) CreateSubject(ctx context.Context, sub subject.Subject) (subject.Subject, error) {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO subject (id, name, grade) VALUES ($1, $2, $3) ON CONFLICT (id) DO UPDATE SET name = $2, grade = $3`,
		sub.ID, sub.Name, sub.Grade)
	if err != nil {
		return subject.Subject{}, errors.Wrap(err, "inserting subject")
	}
	return sub, nil
}
