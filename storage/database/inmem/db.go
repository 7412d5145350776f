package inmemdb

import (
	"sync"

	"github.com/brainaspire/academia/core/fee"
	"github.com/brainaspire/academia/core/student"
	"github.com/brainaspire/academia/core/subject"
	"github.com/brainaspire/academia/core/teacher"
	"github.com/brainaspire/academia/core/user"
)

// DB is a mutex-guarded in-memory store backing the repository
// implementations used in tests and local development.
type DB struct {
	mutex sync.RWMutex

	users    map[string]*user.User
	students map[string]*student.Student
	teachers map[string]*teacher.Teacher
	subjects map[string]*subject.Subject

	studentSubjects map[string]subjectMapping // id -> (student, subject)
	teacherSubjects map[string]subjectMapping // id -> (teacher, subject)
	trackers        map[string]*student.PerformanceTracker
	installments    map[string]*fee.Installment

	coachingModes map[string]string // name -> id

	feeConfig      *fee.Config
	discountConfig *fee.DiscountConfig
	typeConfig     *fee.TypeConfig
}

type subjectMapping struct {
	ownerID   string
	subjectID string
}

func NewDB() *DB {
	return &DB{
		users:           make(map[string]*user.User),
		students:        make(map[string]*student.Student),
		teachers:        make(map[string]*teacher.Teacher),
		subjects:        make(map[string]*subject.Subject),
		studentSubjects: make(map[string]subjectMapping),
		teacherSubjects: make(map[string]subjectMapping),
		trackers:        make(map[string]*student.PerformanceTracker),
		installments:    make(map[string]*fee.Installment),
		coachingModes:   make(map[string]string),
	}
}

// SetCoachingMode registers a coaching mode; a test/seed helper.
func (db *DB) SetCoachingMode(id, name string) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.coachingModes[name] = id
}

// SetConfigs installs the fee configuration documents; a test/seed helper.
// Nil values clear the corresponding document.
func (db *DB) SetConfigs(feeCfg *fee.Config, discountCfg *fee.DiscountConfig, typeCfg *fee.TypeConfig) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.feeConfig = feeCfg
	db.discountConfig = discountCfg
	db.typeConfig = typeCfg
}
