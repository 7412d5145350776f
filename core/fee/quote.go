package fee

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"

	"github.com/brainaspire/academia/core"
)

var (
	// configuration errors - deployment misconfiguration, not client input
	ErrFeeConfigNotFound      = errors.New("failed to get course fee config from the db")
	ErrDiscountConfigNotFound = errors.New("failed to get discount config from the db")
	ErrTypeConfigNotFound     = errors.New("failed to get fee type config from the db")
	ErrSubjectFeeNotFound     = errors.New("subject count missing from subject preference fee configuration")

	// ErrUnknownGrade is returned when a grade has no fee structure or end
	// date configured.
	ErrUnknownGrade = errors.New("no fee structure configured for grade")
)

type (
	// ConfigRepository provides the fee configuration documents. Absence is
	// reported as a nil document, not an error; the service translates it
	// into its own typed failure.
	ConfigRepository interface {
		GetFeeConfig(ctx context.Context) (*Config, error)
		GetDiscountConfig(ctx context.Context) (*DiscountConfig, error)
		GetTypeConfig(ctx context.Context) (*TypeConfig, error)
	}

	Service interface {
		CalculateCourseFee(ctx context.Context, req QuoteRequest) (Quote, error)
		GetFeeType(ctx context.Context, typeID string) (FeeType, error)
	}

	service struct {
		repo           ConfigRepository
		courseEndDates map[int]time.Time
		logger         core.Logger
	}
)

var _ Service = (*service)(nil)

func NewService(repo ConfigRepository, courseEndDates map[int]time.Time, logger core.Logger) *service {
	return &service{repo: repo, courseEndDates: courseEndDates, logger: logger}
}

// CalculateCourseFee assembles a fee quote: pro-rated tuition adjusted by the
// subject preference multiplier, plus admission and fixed fees, minus the
// resolved discounts applied to the tuition component only. All-or-nothing:
// no partial quote is ever returned.
func (svc *service) CalculateCourseFee(ctx context.Context, req QuoteRequest) (Quote, error) {
	if err := req.Validate(); err != nil {
		return Quote{}, err
	}

	feeCfg, err := svc.repo.GetFeeConfig(ctx)
	if err != nil {
		return Quote{}, pkgerrors.Wrap(err, "fetching fee config")
	}
	if feeCfg == nil {
		return Quote{}, ErrFeeConfigNotFound
	}

	structure, ok := feeCfg.Fees[req.Grade]
	if !ok {
		return Quote{}, core.NewValidationError(ErrUnknownGrade, core.FieldError{Field: "grade", Error: ErrUnknownGrade.Error()})
	}
	endDate, ok := svc.courseEndDates[req.Grade]
	if !ok {
		return Quote{}, core.NewValidationError(ErrUnknownGrade, core.FieldError{Field: "grade", Error: ErrUnknownGrade.Error()})
	}

	subjectPct, err := subjectPreferenceFee(feeCfg.SubjectPreferenceFee, len(req.SelectedSubjects))
	if err != nil {
		return Quote{}, err
	}

	discountCfg, err := svc.repo.GetDiscountConfig(ctx)
	if err != nil {
		return Quote{}, pkgerrors.Wrap(err, "fetching discount config")
	}
	if discountCfg == nil {
		return Quote{}, ErrDiscountConfigNotFound
	}

	discounts, err := ResolveDiscounts(*discountCfg, req.PaymentType, req.CoachingMode, req.PrevYearResults.Percentage)
	if err != nil {
		return Quote{}, err
	}

	tuition := AccrueTuition(req.DateJoined, endDate, structure.MonthlyFee) * (subjectPct / 100)
	totalFee := structure.AdmissionFee + structure.FixedAmt + tuition
	totalDiscount := discounts.Total()
	finalFee := totalFee - tuition*(totalDiscount/100)

	return Quote{
		AdmissionFee: structure.AdmissionFee,
		FixedAmt:     structure.FixedAmt,
		TuitionFee:   tuition,
		Discount: Discount{
			TotalDiscount:    totalDiscount,
			DiscountsApplied: discounts,
		},
		TotalFee: totalFee,
		FinalFee: finalFee,
	}, nil
}

func (svc *service) GetFeeType(ctx context.Context, typeID string) (FeeType, error) {
	cfg, err := svc.repo.GetTypeConfig(ctx)
	if err != nil {
		return FeeType{}, pkgerrors.Wrap(err, "fetching fee type config")
	}
	if cfg == nil {
		return FeeType{}, ErrTypeConfigNotFound
	}
	ft, ok := cfg.Types[typeID]
	if !ok {
		return FeeType{}, pkgerrors.Wrapf(ErrTypeConfigNotFound, "fee type %q", typeID)
	}
	return ft, nil
}

// subjectPreferenceFee looks up the tuition multiplier for a subject count,
// clamped to the max configured key.
func subjectPreferenceFee(prefs map[int]float64, count int) (float64, error) {
	maxKey := 0
	for k := range prefs {
		if k > maxKey {
			maxKey = k
		}
	}
	if count > maxKey {
		count = maxKey
	}
	pct, ok := prefs[count]
	if !ok {
		return 0, pkgerrors.Wrapf(ErrSubjectFeeNotFound, "count %d", count)
	}
	return pct, nil
}
