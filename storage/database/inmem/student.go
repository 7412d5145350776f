package inmemdb

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/brainaspire/academia/core/fee"
	"github.com/brainaspire/academia/core/student"
)

type studentRepository struct {
	db *DB
}

var _ student.Repository = (*studentRepository)(nil)

func NewStudentRepository(db *DB) *studentRepository {
	return &studentRepository{db: db}
}

func (repo *studentRepository) CreateStudent(ctx context.Context, st student.Student) (student.Student, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	repo.db.students[st.ID] = &st
	return st, nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if st, ok := repo.db.students[id]; ok {
		return *st, nil
	}
	return student.Student{}, errors.New("student does not exist")
}

func (repo *studentRepository) DeleteStudent(ctx context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	delete(repo.db.students, id)
	return nil
}

func (repo *studentRepository) GetCoachingModeID(ctx context.Context, mode string) (string, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return repo.db.coachingModes[mode], nil
}

func (repo *studentRepository) MapSubjects(ctx context.Context, studentID string, subjectIDs []string) ([]string, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	ids := make([]string, 0, len(subjectIDs))
	for _, subjectID := range subjectIDs {
		id := uuid.New().String()
		repo.db.studentSubjects[id] = subjectMapping{ownerID: studentID, subjectID: subjectID}
		ids = append(ids, id)
	}
	return ids, nil
}

func (repo *studentRepository) DeleteSubjectMappings(ctx context.Context, studentID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for id, m := range repo.db.studentSubjects {
		if m.ownerID == studentID {
			delete(repo.db.studentSubjects, id)
		}
	}
	return nil
}

func (repo *studentRepository) CreateTrackers(ctx context.Context, trackers []student.PerformanceTracker) ([]string, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	ids := make([]string, 0, len(trackers))
	for _, tracker := range trackers {
		if tracker.ID == "" {
			tracker.ID = uuid.New().String()
		}
		tracker := tracker
		repo.db.trackers[tracker.ID] = &tracker
		ids = append(ids, tracker.ID)
	}
	return ids, nil
}

func (repo *studentRepository) DeleteTrackers(ctx context.Context, studentID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for id, tracker := range repo.db.trackers {
		if tracker.StudentID == studentID {
			delete(repo.db.trackers, id)
		}
	}
	return nil
}

func (repo *studentRepository) CreateInstallments(ctx context.Context, installments []fee.Installment) ([]string, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	ids := make([]string, 0, len(installments))
	for _, inst := range installments {
		if inst.ID == "" {
			inst.ID = uuid.New().String()
		}
		inst := inst
		repo.db.installments[inst.ID] = &inst
		ids = append(ids, inst.ID)
	}
	return ids, nil
}

func (repo *studentRepository) DeleteInstallments(ctx context.Context, studentID string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for id, inst := range repo.db.installments {
		if inst.StudentID == studentID {
			delete(repo.db.installments, id)
		}
	}
	return nil
}
