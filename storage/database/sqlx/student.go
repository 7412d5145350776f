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
	"github.com/volatiletech/null/v8"

	"github.com/brainaspire/academia/core/fee"
	"github.com/brainaspire/academia/core/student"
)

type studentRepository struct {
	db *sqlx.DB
}

var _ student.Repository = (*studentRepository)(nil) // interface compliance check

func NewStudentRepository(db *sqlx.DB) *studentRepository {
	return &studentRepository{db: db}
}

type studentRow struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Email              string         `db:"email"`
	ContactNumber      string         `db:"contact_number"`
	Address            string         `db:"address"`
	Gender             string         `db:"gender"`
	GuardianParentName string         `db:"guardian_parent_name"`
	DOB                time.Time      `db:"dob"`
	Grade              int            `db:"grade"`
	SchoolName         string         `db:"school_name"`
	CoachingModeID     string         `db:"coaching_mode_id"`
	FeeTypeID          string         `db:"fee_type_id"`
	PrevYearResults    types.JSONText `db:"prev_year_results"`
	WeakSubjects       types.JSONText `db:"weak_subjects"`
	DateJoined         time.Time      `db:"date_joined"`
	CreatedAt          time.Time      `db:"created_at"`
}

func (repo studentRepository) CreateStudent(ctx context.Context, st student.Student) (student.Student, error) {
	if st.ID == "" {
		st.ID = uuid.New().String()
	}
	results, err := json.Marshal(st.PrevYearResults)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "encoding prev year results")
	}
	weak, err := json.Marshal(st.WeakSubjects)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "encoding weak subjects")
	}

	row := studentRow{
		ID:                 st.ID,
		Name:               st.Name,
		Email:              st.Email,
		ContactNumber:      st.ContactNumber,
		Address:            st.Address,
		Gender:             st.Gender,
		GuardianParentName: st.GuardianParentName,
		DOB:                st.DOB,
		Grade:              st.Grade,
		SchoolName:         st.SchoolName,
		CoachingModeID:     st.CoachingModeID,
		FeeTypeID:          st.FeeTypeID,
		PrevYearResults:    results,
		WeakSubjects:       weak,
		DateJoined:         st.DateJoined,
		CreatedAt:          st.CreatedAt.UTC(),
	}
	_, err = repo.db.NamedExecContext(ctx, `
		INSERT INTO student (
			id, name, email, contact_number, address, gender, guardian_parent_name,
			dob, grade, school_name, coaching_mode_id, fee_type_id,
			prev_year_results, weak_subjects, date_joined, created_at
		) VALUES (
			:id, :name, :email, :contact_number, :address, :gender, :guardian_parent_name,
			:dob, :grade, :school_name, :coaching_mode_id, :fee_type_id,
			:prev_year_results, :weak_subjects, :date_joined, :created_at
		)`, row)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "inserting student")
	}
	return st, nil
}

func (repo studentRepository) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	var row studentRow
	if err := repo.db.GetContext(ctx, &row, `SELECT * FROM student WHERE id = $1`, id); err != nil {
		if err == sql.ErrNoRows {
			return student.Student{}, errors.New("student does not exist")
		}
		return student.Student{}, errors.Wrap(err, "querying student")
	}

	st := student.Student{
		ID:                 row.ID,
		Name:               row.Name,
		Email:              row.Email,
		ContactNumber:      row.ContactNumber,
		Address:            row.Address,
		Gender:             row.Gender,
		GuardianParentName: row.GuardianParentName,
		DOB:                row.DOB,
		Grade:              row.Grade,
		SchoolName:         row.SchoolName,
		CoachingModeID:     row.CoachingModeID,
		FeeTypeID:          row.FeeTypeID,
		DateJoined:         row.DateJoined,
		CreatedAt:          row.CreatedAt,
	}
	if err := json.Unmarshal(row.PrevYearResults, &st.PrevYearResults); err != nil {
		return student.Student{}, errors.Wrap(err, "decoding prev year results")
	}
	if len(row.WeakSubjects) > 0 {
		if err := json.Unmarshal(row.WeakSubjects, &st.WeakSubjects); err != nil {
			return student.Student{}, errors.Wrap(err, "decoding weak subjects")
		}
	}
	return st, nil
}

func (repo studentRepository) DeleteStudent(ctx context.Context, id string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM student WHERE id = $1`, id)
	return errors.Wrap(err, "deleting student")
}

func (repo studentRepository) GetCoachingModeID(ctx context.Context, mode string) (string, error) {
	var id string
	if err := repo.db.GetContext(ctx, &id, `SELECT id FROM coaching_mode WHERE name = $1`, mode); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", errors.Wrap(err, "querying coaching mode")
	}
	return id, nil
}

func (repo studentRepository) MapSubjects(ctx context.Context, studentID string, subjectIDs []string) ([]string, error) {
	ids := make([]string, 0, len(subjectIDs))
	for _, subjectID := range subjectIDs {
		id := uuid.New().String()
		_, err := repo.db.ExecContext(ctx,
			`INSERT INTO student_subject (id, student_id, subject_id) VALUES ($1, $2, $3)`,
			id, studentID, subjectID)
		if err != nil {
			return nil, errors.Wrap(err, "inserting student subject mapping")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (repo studentRepository) DeleteSubjectMappings(ctx context.Context, studentID string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM student_subject WHERE student_id = $1`, studentID)
	return errors.Wrap(err, "deleting student subject mappings")
}

func (repo studentRepository) CreateTrackers(ctx context.Context, trackers []student.PerformanceTracker) ([]string, error) {
	ids := make([]string, 0, len(trackers))
	for _, tracker := range trackers {
		if tracker.ID == "" {
			tracker.ID = uuid.New().String()
		}
		remarks, err := json.Marshal(tracker.MonthlyRemarks)
		if err != nil {
			return nil, errors.Wrap(err, "encoding monthly remarks")
		}
		attendance, err := json.Marshal(tracker.MonthlyAttendance)
		if err != nil {
			return nil, errors.Wrap(err, "encoding monthly attendance")
		}
		_, err = repo.db.ExecContext(ctx, `
			INSERT INTO performance_tracker (id, student_id, grade, subject_id, monthly_remarks, monthly_attendance, year_batch)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			tracker.ID, tracker.StudentID, tracker.Grade, tracker.SubjectID,
			types.JSONText(remarks), types.JSONText(attendance), tracker.YearBatch)
		if err != nil {
			return nil, errors.Wrap(err, "inserting performance tracker")
		}
		ids = append(ids, tracker.ID)
	}
	return ids, nil
}

func (repo studentRepository) DeleteTrackers(ctx context.Context, studentID string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM performance_tracker WHERE student_id = $1`, studentID)
	return errors.Wrap(err, "deleting performance trackers")
}

func (repo studentRepository) CreateInstallments(ctx context.Context, installments []fee.Installment) ([]string, error) {
	ids := make([]string, 0, len(installments))
	for _, inst := range installments {
		if inst.ID == "" {
			inst.ID = uuid.New().String()
		}
		_, err := repo.db.ExecContext(ctx, `
			INSERT INTO installment (id, student_id, installment_number, total_amount_to_pay, amount_paid,
				window_start, window_end, date_of_payment, payment_status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			inst.ID, inst.StudentID, inst.InstallmentNumber, inst.TotalAmountToPay, inst.AmountPaid,
			inst.PaymentWindow.StartDate, inst.PaymentWindow.EndDate,
			null.TimeFromPtr(inst.DateOfPayment), inst.PaymentStatus)
		if err != nil {
			return nil, errors.Wrap(err, "inserting installment")
		}
		ids = append(ids, inst.ID)
	}
	return ids, nil
}

func (repo studentRepository) DeleteInstallments(ctx context.Context, studentID string) error {
	_, err := repo.db.ExecContext(ctx, `DELETE FROM installment WHERE student_id = $1`, studentID)
	return errors.Wrap(err, "deleting installments")
}
