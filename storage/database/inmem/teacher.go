package inmemdb

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/brainaspire/academia/core/teacher"
)

type teacherRepository struct {
	db *DB
}

var _ teacher.Repository = (*teacherRepository)(nil)

func NewTeacherRepository(db *DB) *teacherRepository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) CreateTeacher(ctx context.Context, t teacher.Teacher) (teacher.Teacher, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	repo.db.teachers[t.ID] = &t
	return t, nil
}

func (repo *teacherRepository) GetTeacherByID(ctx context.Context, id string) (teacher.Teacher, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if t, ok := repo.db.teachers[id]; ok {
		return *t, nil
	}
	return teacher.Teacher{}, errors.New("teacher does not exist")
}

func (repo *teacherRepository) DeleteTeacher(ctx context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	delete(repo.db.teachers, id)
	return nil
}

func (repo *teacherRepository) MapSubjects(ctx context.Context, teacherID string, subjectIDs []string) ([]string, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	ids := make([]string, 0, len(subjectIDs))
	for _, subjectID := range subjectIDs {
		id := uuid.New().String()
		repo.db.teacherSubjects[id] = subjectMapping{ownerID: teacherID, subjectID: subjectID}
		ids = append(ids, id)
	}
	return ids, nil
}

func (repo *teacherRepository) DeleteSubjectMappings(ctx context.Context, teacherID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for id, m := range repo.db.teacherSubjects {
		if m.ownerID == teacherID {
			delete(repo.db.teacherSubjects, id)
		}
	}
	return nil
}
