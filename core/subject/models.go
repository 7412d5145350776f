package subject

import (
	"context"
	"errors"

	"github.com/brainaspire/academia/core"
)

// ErrNoMatchingSubjects is returned when a grade/name lookup resolves to an
// empty set - either the grade has no catalog or none of the names matched.
var ErrNoMatchingSubjects = errors.New("no matching subjects for grade")

// Subject is a catalog entry. ID is a unique subject code, e.g. ENG006.
type Subject struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Grade int    `json:"grade"`
}

type Repository interface {
	// FindByGradeNames returns the subjects matching any (grade, name) pair
	// in gradeSubjects. An empty result is not an error at this layer.
	FindByGradeNames(ctx context.Context, gradeSubjects map[int][]string) ([]Subject, error)
	CreateSubject(ctx context.Context, sub Subject) (Subject, error)
}

// Resolve maps grade/subject-name selections to catalog ids; an empty
// resolution fails with ErrNoMatchingSubjects as a client-input error.
func Resolve(ctx context.Context, repo Repository, gradeSubjects map[int][]string) ([]string, error) {
	subjects, err := repo.FindByGradeNames(ctx, gradeSubjects)
	if err != nil {
		return nil, err
	}
	if len(subjects) == 0 {
		return nil, core.NewValidationError(ErrNoMatchingSubjects, core.FieldError{Field: "selectedSubjects", Error: ErrNoMatchingSubjects.Error()})
	}
	ids := make([]string, 0, len(subjects))
	for _, sub := range subjects {
		ids = append(ids, sub.ID)
	}
	return ids, nil
}
