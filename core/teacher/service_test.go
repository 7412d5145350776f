package teacher_test

import (
	"context"
	"errors"
	"net/mail"
	"testing"
	"time"

	"github.com/brainaspire/academia/core"
	"github.com/brainaspire/academia/core/subject"
	"github.com/brainaspire/academia/core/teacher"
	"github.com/brainaspire/academia/core/user"
	emailsvc "github.com/brainaspire/academia/services/email"
	inmemdb "github.com/brainaspire/academia/storage/database/inmem"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func testConf() *core.Config {
	return &core.Config{
		AppName:          "academia",
		TestMode:         true,
		DefaultFromEmail: mail.Address{Name: "Academia", Address: "noreply@academia.test"},
	}
}

func setup(t *testing.T) (*inmemdb.DB, teacher.Repository, subject.Repository, user.Service) {
	t.Helper()

	db := inmemdb.NewDB()
	subjectRepo := inmemdb.NewSubjectRepository(db)
	for _, sub := range []subject.Subject{
		{ID: "MAT009", Name: "maths", Grade: 9},
		{ID: "MAT010", Name: "maths", Grade: 10},
		{ID: "PHY010", Name: "physics", Grade: 10},
	} {
		if _, err := subjectRepo.CreateSubject(context.Background(), sub); err != nil {
			t.Fatalf("CreateSubject() failed, %v", err)
		}
	}
	return db, inmemdb.NewTeacherRepository(db), subjectRepo, user.NewService(inmemdb.NewUserRepository(db), nopLogger{})
}

func newTeacherRequest() teacher.NewTeacher {
	return teacher.NewTeacher{
		UserID:       "teach001",
		UserPassword: "strongpwd",
		Profile: teacher.Profile{
			Name:               "M Iyer",
			Email:              "iyer@example.com",
			ContactNumber:      "9876501234",
			Address:            "4 Hill Street",
			TeachingExperience: 6,
			Qualifications:     []string{"MSc Mathematics", "BEd"},
			DateJoined:         time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		TeachingSubjects: map[int][]string{
			9:  {"maths"},
			10: {"maths", "physics"},
		},
	}
}

func TestService_Create(t *testing.T) {
	_, teacherRepo, subjectRepo, userSvc := setup(t)
	mailSvc := emailsvc.NewConsoleServiceMock(testConf())

	svc := teacher.NewService(teacherRepo, subjectRepo, userSvc, mailSvc, nopLogger{})

	created, err := svc.Create(context.Background(), newTeacherRequest())
	if err != nil {
		t.Fatalf("Create() failed, %v", err)
	}
	if len(created.SubjectIDs) != 3 {
		t.Errorf("SubjectIDs = %v, want 3 mappings", created.SubjectIDs)
	}

	usr, err := userSvc.Authenticate(context.Background(), "teach001", "strongpwd")
	if err != nil {
		t.Fatalf("Authenticate() failed, %v", err)
	}
	if !usr.IsTeacher() {
		t.Error("expected teacher role")
	}

	tch, err := teacherRepo.GetTeacherByID(context.Background(), created.TeacherID)
	if err != nil {
		t.Fatalf("GetTeacherByID() failed, %v", err)
	}
	if tch.Name != "M Iyer" {
		t.Errorf("Name = %v, want M Iyer", tch.Name)
	}
}

func TestService_Create_noMatchingSubjectsCompensates(t *testing.T) {
	_, teacherRepo, subjectRepo, userSvc := setup(t)
	mailSvc := emailsvc.NewConsoleServiceMock(testConf())
	svc := teacher.NewService(teacherRepo, subjectRepo, userSvc, mailSvc, nopLogger{})

	nt := newTeacherRequest()
	nt.TeachingSubjects = map[int][]string{12: {"history"}}

	_, err := svc.Create(context.Background(), nt)
	if !errors.Is(err, subject.ErrNoMatchingSubjects) {
		t.Fatalf("Create() error = %v, want %v", err, subject.ErrNoMatchingSubjects)
	}

	// credentials and the teacher role must have been rolled back
	if _, err := userSvc.GetByUsername(context.Background(), nt.UserID); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("expected credentials to be rolled back, got err %v", err)
	}
}

func TestService_Create_duplicateUserID(t *testing.T) {
	_, teacherRepo, subjectRepo, userSvc := setup(t)
	mailSvc := emailsvc.NewConsoleServiceMock(testConf())
	svc := teacher.NewService(teacherRepo, subjectRepo, userSvc, mailSvc, nopLogger{})

	if _, err := svc.Create(context.Background(), newTeacherRequest()); err != nil {
		t.Fatalf("Create() failed, %v", err)
	}

	_, err := svc.Create(context.Background(), newTeacherRequest())
	if err == nil {
		t.Fatal("Create() expected error for duplicate user id")
	}
	var vErr *core.ValidationError
	if !errors.As(err, &vErr) {
		t.Errorf("Create() error = %T, want *core.ValidationError", err)
	}
}
