package teacher

import (
	"context"
	"net/mail"
	"time"

	"github.com/brainaspire/academia/core"
	"github.com/brainaspire/academia/core/subject"
	"github.com/brainaspire/academia/core/user"
)

type (
	Repository interface {
		CreateTeacher(ctx context.Context, t Teacher) (Teacher, error)
		GetTeacherByID(ctx context.Context, id string) (Teacher, error)
		DeleteTeacher(ctx context.Context, id string) error
		MapSubjects(ctx context.Context, teacherID string, subjectIDs []string) ([]string, error)
		DeleteSubjectMappings(ctx context.Context, teacherID string) error
	}

	Service interface {
		Create(ctx context.Context, nt NewTeacher) (Created, error)
	}

	Created struct {
		TeacherID  string   `json:"teacher_id"`
		UserID     string   `json:"teacher_user_id"`
		SubjectIDs []string `json:"subject_ids"`
	}

	service struct {
		repo     Repository
		subjects subject.Repository
		users    user.Service
		mailSvc  core.EmailService
		logger   core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(
	repo Repository,
	subjects subject.Repository,
	users user.Service,
	mailSvc core.EmailService,
	logger core.Logger,
) *service {
	return &service{repo: repo, subjects: subjects, users: users, mailSvc: mailSvc, logger: logger}
}

// Create onboards a teacher: credentials, teacher role, profile and subject
// mappings. Same non-transactional sequence as student onboarding; collected
// compensating actions run in reverse on failure.
func (svc *service) Create(ctx context.Context, nt NewTeacher) (Created, error) {
	if err := nt.Validate(); err != nil {
		return Created{}, err
	}

	var undo []func(context.Context) error
	fail := func(err error) (Created, error) {
		svc.compensate(ctx, undo)
		return Created{}, err
	}

	usr, err := svc.users.CreateCredentials(ctx, nt.credentials(), true)
	if err != nil {
		return Created{}, err
	}
	undo = append(undo, func(ctx context.Context) error { return svc.users.DeleteCredentials(ctx, usr.ID) })

	if err = svc.users.AssignRole(ctx, usr.ID, user.RoleTeacher); err != nil {
		return fail(core.NewUnavailableError("failed to add teacher role", err))
	}
	undo = append(undo, func(ctx context.Context) error { return svc.users.RevokeRole(ctx, usr.ID, user.RoleTeacher) })

	t, err := svc.repo.CreateTeacher(ctx, Teacher{
		ID:                 usr.ID,
		Name:               nt.Profile.Name,
		Email:              nt.Profile.Email,
		ContactNumber:      nt.Profile.ContactNumber,
		Address:            nt.Profile.Address,
		TeachingExperience: nt.Profile.TeachingExperience,
		Qualifications:     nt.Profile.Qualifications,
		Achievements:       nt.Profile.Achievements,
		DateJoined:         nt.Profile.DateJoined,
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		return fail(core.NewUnavailableError("failed to create new teacher profile", err))
	}
	undo = append(undo, func(ctx context.Context) error { return svc.repo.DeleteTeacher(ctx, t.ID) })

	subjectIDs, err := subject.Resolve(ctx, svc.subjects, nt.TeachingSubjects)
	if err != nil {
		return fail(err)
	}
	if _, err = svc.repo.MapSubjects(ctx, t.ID, subjectIDs); err != nil {
		return fail(core.NewUnavailableError("failed to map teacher subjects", err))
	}

	svc.sendWelcomeMail(t.Name, t.Email, nt.UserID)

	return Created{TeacherID: t.ID, UserID: nt.UserID, SubjectIDs: subjectIDs}, nil
}

func (svc *service) compensate(ctx context.Context, undo []func(context.Context) error) {
	for i := len(undo) - 1; i >= 0; i-- {
		if err := undo[i](ctx); err != nil {
			svc.logger.Error("teacher onboarding compensation failed; manual reconciliation required", err)
		}
	}
}

func (svc *service) sendWelcomeMail(name, email, userID string) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: name, Address: email}},
		Subject: "Your teacher account is ready",
		TextContent: "Hi " + name + ",\n\n" +
			"Your teacher account is active. Your login id is " + userID + ".\n" +
			"Use the password you registered with to sign in.\n",
	})
}
