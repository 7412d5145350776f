package student

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/brainaspire/academia/core"
	"github.com/brainaspire/academia/core/fee"
	"github.com/brainaspire/academia/core/subject"
	"github.com/brainaspire/academia/core/user"
)

// ErrCoachingModeNotConfigured indicates a coaching mode accepted by request
// validation that has no configuration record - a deployment problem.
var ErrCoachingModeNotConfigured = errors.New("coaching mode not configured")

type (
	Repository interface {
		CreateStudent(ctx context.Context, st Student) (Student, error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
		DeleteStudent(ctx context.Context, id string) error
		// GetCoachingModeID resolves a mode label to its configuration id;
		// absence is reported as an empty id, not an error.
		GetCoachingModeID(ctx context.Context, mode string) (string, error)
		MapSubjects(ctx context.Context, studentID string, subjectIDs []string) ([]string, error)
		DeleteSubjectMappings(ctx context.Context, studentID string) error
		CreateTrackers(ctx context.Context, trackers []PerformanceTracker) ([]string, error)
		DeleteTrackers(ctx context.Context, studentID string) error
		CreateInstallments(ctx context.Context, installments []fee.Installment) ([]string, error)
		DeleteInstallments(ctx context.Context, studentID string) error
	}

	Service interface {
		Create(ctx context.Context, ns NewStudent) (Created, error)
	}

	// Created reports the ids of a successful onboarding.
	Created struct {
		StudentID      string   `json:"student_id"`
		UserID         string   `json:"student_user_id"`
		SubjectIDs     []string `json:"subject_ids"`
		InstallmentIDs []string `json:"installment_ids"`
	}

	service struct {
		repo     Repository
		subjects subject.Repository
		users    user.Service
		fees     fee.Service
		mailSvc  core.EmailService
		logger   core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(
	repo Repository,
	subjects subject.Repository,
	users user.Service,
	fees fee.Service,
	mailSvc core.EmailService,
	logger core.Logger,
) *service {
	return &service{
		repo:     repo,
		subjects: subjects,
		users:    users,
		fees:     fees,
		mailSvc:  mailSvc,
		logger:   logger,
	}
}

// Create onboards a student: credentials, profile, subject mappings,
// performance trackers and installments, in that order. The sequence spans
// multiple dependent writes with no store-level transaction; compensating
// actions are collected along the way and executed in reverse when a later
// step fails. A failed compensation is logged for manual reconciliation.
func (svc *service) Create(ctx context.Context, ns NewStudent) (Created, error) {
	if err := ns.Validate(); err != nil {
		return Created{}, err
	}

	// all validations that need no prior write happen before the first write
	feeTypeID, err := fee.TypeID(ns.Profile.FeeType)
	if err != nil {
		return Created{}, err
	}
	feeType, err := svc.fees.GetFeeType(ctx, feeTypeID)
	if err != nil {
		return Created{}, err
	}
	if err = fee.ValidateInstallments(feeType, ns.Installments); err != nil {
		return Created{}, err
	}

	modeID, err := svc.repo.GetCoachingModeID(ctx, ns.Profile.CoachingMode)
	if err != nil {
		return Created{}, err
	}
	if modeID == "" {
		return Created{}, fmt.Errorf("%w: %s", ErrCoachingModeNotConfigured, ns.Profile.CoachingMode)
	}

	var undo []func(context.Context) error
	fail := func(err error) (Created, error) {
		svc.compensate(ctx, undo)
		return Created{}, err
	}

	usr, err := svc.users.CreateCredentials(ctx, ns.credentials(), true)
	if err != nil {
		return Created{}, err
	}
	undo = append(undo, func(ctx context.Context) error { return svc.users.DeleteCredentials(ctx, usr.ID) })

	st, err := svc.repo.CreateStudent(ctx, Student{
		ID:                 usr.ID,
		Name:               ns.Profile.Name,
		Email:              ns.Profile.Email,
		ContactNumber:      ns.Profile.ContactNumber,
		Address:            ns.Profile.Address,
		Gender:             ns.Profile.Gender,
		GuardianParentName: ns.Profile.GuardianParentName,
		DOB:                ns.Profile.DOB,
		Grade:              ns.Profile.Grade,
		SchoolName:         ns.Profile.SchoolName,
		CoachingModeID:     modeID,
		FeeTypeID:          feeTypeID,
		PrevYearResults:    ns.Profile.PrevYearResults,
		WeakSubjects:       ns.Profile.WeakSubjects,
		DateJoined:         ns.Profile.DateJoined,
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		return fail(core.NewUnavailableError("failed to create new student", err))
	}
	undo = append(undo, func(ctx context.Context) error { return svc.repo.DeleteStudent(ctx, st.ID) })

	subjectIDs, err := subject.Resolve(ctx, svc.subjects, map[int][]string{ns.Profile.Grade: ns.SelectedSubjects})
	if err != nil {
		return fail(err)
	}

	if _, err = svc.repo.MapSubjects(ctx, st.ID, subjectIDs); err != nil {
		return fail(core.NewUnavailableError("failed to map student subjects", err))
	}
	undo = append(undo, func(ctx context.Context) error { return svc.repo.DeleteSubjectMappings(ctx, st.ID) })

	trackers := make([]PerformanceTracker, 0, len(subjectIDs))
	for _, subjectID := range subjectIDs {
		trackers = append(trackers, PerformanceTracker{
			StudentID:         st.ID,
			Grade:             st.Grade,
			SubjectID:         subjectID,
			MonthlyRemarks:    map[string]Remark{},
			MonthlyAttendance: map[string]Attendance{},
			YearBatch:         st.DateJoined.Year(),
		})
	}
	if _, err = svc.repo.CreateTrackers(ctx, trackers); err != nil {
		return fail(core.NewUnavailableError("failed to map student performance tracker", err))
	}
	undo = append(undo, func(ctx context.Context) error { return svc.repo.DeleteTrackers(ctx, st.ID) })

	installments := make([]fee.Installment, 0, len(ns.Installments))
	for _, inst := range ns.Installments {
		installments = append(installments, fee.Installment{
			StudentID:         st.ID,
			InstallmentNumber: inst.InstallmentNumber,
			TotalAmountToPay:  inst.TotalAmountToPay,
			PaymentWindow:     inst.PaymentWindow,
			PaymentStatus:     inst.PaymentStatus,
		})
	}
	installmentIDs, err := svc.repo.CreateInstallments(ctx, installments)
	if err != nil {
		return fail(core.NewUnavailableError("failed to add installments", err))
	}

	svc.sendWelcomeMail(st.Name, st.Email, ns.UserID)

	return Created{
		StudentID:      st.ID,
		UserID:         ns.UserID,
		SubjectIDs:     subjectIDs,
		InstallmentIDs: installmentIDs,
	}, nil
}

func (svc *service) compensate(ctx context.Context, undo []func(context.Context) error) {
	for i := len(undo) - 1; i >= 0; i-- {
		if err := undo[i](ctx); err != nil {
			svc.logger.Error("student onboarding compensation failed; manual reconciliation required", err)
		}
	}
}

func (svc *service) sendWelcomeMail(name, email, userID string) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: name, Address: email}},
		Subject: "Welcome to the coaching program",
		TextContent: "Hi " + name + ",\n\n" +
			"Your student account is active. Your login id is " + userID + ".\n" +
			"Use the password you registered with to sign in.\n",
	})
}
