package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/brainaspire/academia/core/subject"
)

type subjectRepository struct {
	db *DB
}

var _ subject.Repository = (*subjectRepository)(nil)

func NewSubjectRepository(db *DB) *subjectRepository {
	return &subjectRepository{db: db}
}

func (repo *subjectRepository) FindByGradeNames(ctx context.Context, gradeSubjects map[int][]string) ([]subject.Subject, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var subjects []subject.Subject
	for _, sub := range repo.db.subjects {
		names, ok := gradeSubjects[sub.Grade]
		if !ok {
			continue
		}
		for _, name := range names {
			if sub.Name == name {
				subjects = append(subjects, *sub)
				break
			}
		}
	}
	return subjects, nil
}

func (repo *subjectRepository) CreateSubject(ctx context.Context, sub subject.Subject) (subject.Subject, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if sub.ID == "" {
		sub.ID = uuid.New().String()
	}
	repo.db.subjects[sub.ID] = &sub
	return sub, nil
}
