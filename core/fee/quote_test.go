package fee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brainaspire/academia/core"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

type stubConfigRepo struct {
	feeCfg      *Config
	discountCfg *DiscountConfig
	typeCfg     *TypeConfig
	err         error
}

func (r stubConfigRepo) GetFeeConfig(ctx context.Context) (*Config, error) {
	return r.feeCfg, r.err
}

func (r stubConfigRepo) GetDiscountConfig(ctx context.Context) (*DiscountConfig, error) {
	return r.discountCfg, r.err
}

func (r stubConfigRepo) GetTypeConfig(ctx context.Context) (*TypeConfig, error) {
	return r.typeCfg, r.err
}

var testCourseEndDates = map[int]time.Time{
	6:  date(2026, time.February, 28),
	7:  date(2026, time.February, 28),
	8:  date(2026, time.February, 28),
	9:  date(2026, time.February, 28),
	10: date(2026, time.February, 28),
}

func testFeeConfig() *Config {
	return &Config{
		Fees: map[int]FeeStructure{
			9: {AdmissionFee: 1000, FixedAmt: 500, MonthlyFee: 1000, CourseDuration: 12},
		},
		SubjectPreferenceFee: map[int]float64{1: 40, 2: 60, 3: 80, 4: 90, 5: 100},
	}
}

func testDiscountConfig() *DiscountConfig {
	return &DiscountConfig{
		PaymentTypeDiscount:  map[string]float64{"one_time": 5, "two_time": 3, "four_time": 0},
		CoachingModeDiscount: map[string]float64{"online": 3, "offline": 0},
		ScholarshipDiscount:  map[string]float64{TierHigh: 10, TierMedium: 7, TierLow: 5, TierNone: 0},
	}
}

func testQuoteRequest() QuoteRequest {
	return QuoteRequest{
		Grade:            9,
		DateJoined:       date(2025, time.September, 15),
		PrevYearResults:  PrevYearResults{Percentage: 92, Year: 2025, Board: "CBSE"},
		SelectedSubjects: []string{"maths", "physics", "chemistry", "biology", "english"},
		PaymentType:      "one_time",
		CoachingMode:     "online",
	}
}

func TestCalculateCourseFee(t *testing.T) {
	repo := stubConfigRepo{feeCfg: testFeeConfig(), discountCfg: testDiscountConfig()}
	svc := NewService(repo, testCourseEndDates, nopLogger{})

	quote, err := svc.CalculateCourseFee(context.Background(), testQuoteRequest())
	if err != nil {
		t.Fatalf("CalculateCourseFee() unexpected error = %v", err)
	}

	// Sep 15 2025 -> Feb 28 2026 at 1000/month, 5 subjects = 100%
	wantTuition := (16.0/30.0)*1000 + 4*1000 + (1.0/28.0)*1000
	wantTotal := 1000 + 500 + wantTuition
	wantFinal := wantTotal - wantTuition*0.18 // 5 + 3 + 10

	if !almostEqual(quote.TuitionFee, wantTuition) {
		t.Errorf("TuitionFee = %v, want %v", quote.TuitionFee, wantTuition)
	}
	if quote.AdmissionFee != 1000 || quote.FixedAmt != 500 {
		t.Errorf("AdmissionFee/FixedAmt = %v/%v, want 1000/500", quote.AdmissionFee, quote.FixedAmt)
	}
	if !almostEqual(quote.TotalFee, wantTotal) {
		t.Errorf("TotalFee = %v, want %v", quote.TotalFee, wantTotal)
	}
	if quote.Discount.TotalDiscount != 18 {
		t.Errorf("TotalDiscount = %v, want 18", quote.Discount.TotalDiscount)
	}
	if !almostEqual(quote.FinalFee, wantFinal) {
		t.Errorf("FinalFee = %v, want %v", quote.FinalFee, wantFinal)
	}
}

// The discount only ever applies to tuition; admission and fixed fees are
// always paid in full.
func TestCalculateCourseFee_discountAppliesToTuitionOnly(t *testing.T) {
	repo := stubConfigRepo{feeCfg: testFeeConfig(), discountCfg: testDiscountConfig()}
	svc := NewService(repo, testCourseEndDates, nopLogger{})

	quote, err := svc.CalculateCourseFee(context.Background(), testQuoteRequest())
	if err != nil {
		t.Fatalf("CalculateCourseFee() unexpected error = %v", err)
	}

	undiscounted := quote.TotalFee - quote.FinalFee
	if !almostEqual(undiscounted, quote.TuitionFee*quote.Discount.TotalDiscount/100) {
		t.Errorf("discounted amount = %v, want %v", undiscounted, quote.TuitionFee*quote.Discount.TotalDiscount/100)
	}
	if quote.FinalFee < quote.AdmissionFee+quote.FixedAmt {
		t.Errorf("FinalFee = %v must cover admission + fixed fees %v", quote.FinalFee, quote.AdmissionFee+quote.FixedAmt)
	}
}

func TestCalculateCourseFee_zeroDiscountLeavesTotalUntouched(t *testing.T) {
	repo := stubConfigRepo{feeCfg: testFeeConfig(), discountCfg: testDiscountConfig()}
	svc := NewService(repo, testCourseEndDates, nopLogger{})

	req := testQuoteRequest()
	// four_time, offline and a tier-none score all carry a 0% discount
	req.PaymentType = "four_time"
	req.CoachingMode = "offline"
	req.PrevYearResults = PrevYearResults{Percentage: 60, Year: 2025}

	quote, err := svc.CalculateCourseFee(context.Background(), req)
	if err != nil {
		t.Fatalf("CalculateCourseFee() unexpected error = %v", err)
	}
	if quote.Discount.TotalDiscount != 0 {
		t.Errorf("TotalDiscount = %v, want 0", quote.Discount.TotalDiscount)
	}
	if quote.FinalFee != quote.TotalFee {
		t.Errorf("FinalFee = %v, want TotalFee %v", quote.FinalFee, quote.TotalFee)
	}
}

func TestCalculateCourseFee_subjectCountClampsToMaxKey(t *testing.T) {
	repo := stubConfigRepo{feeCfg: testFeeConfig(), discountCfg: testDiscountConfig()}
	svc := NewService(repo, testCourseEndDates, nopLogger{})

	req := testQuoteRequest()
	req.SelectedSubjects = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} // clamp 10 -> 5

	quote, err := svc.CalculateCourseFee(context.Background(), req)
	if err != nil {
		t.Fatalf("CalculateCourseFee() unexpected error = %v", err)
	}
	wantTuition := (16.0/30.0)*1000 + 4*1000 + (1.0/28.0)*1000 // 100% multiplier
	if !almostEqual(quote.TuitionFee, wantTuition) {
		t.Errorf("TuitionFee = %v, want %v", quote.TuitionFee, wantTuition)
	}
}

func TestCalculateCourseFee_subjectMultiplierScalesTuition(t *testing.T) {
	repo := stubConfigRepo{feeCfg: testFeeConfig(), discountCfg: testDiscountConfig()}
	svc := NewService(repo, testCourseEndDates, nopLogger{})

	req := testQuoteRequest()
	req.SelectedSubjects = []string{"maths", "physics"} // 60%

	quote, err := svc.CalculateCourseFee(context.Background(), req)
	if err != nil {
		t.Fatalf("CalculateCourseFee() unexpected error = %v", err)
	}
	wantTuition := ((16.0/30.0)*1000 + 4*1000 + (1.0/28.0)*1000) * 0.6
	if !almostEqual(quote.TuitionFee, wantTuition) {
		t.Errorf("TuitionFee = %v, want %v", quote.TuitionFee, wantTuition)
	}
}

func TestCalculateCourseFee_errors(t *testing.T) {
	tests := []struct {
		name     string
		repo     ConfigRepository
		mutate   func(*QuoteRequest)
		wantErr  error
		wantVErr bool
	}{
		{
			name:    "missing fee config",
			repo:    stubConfigRepo{discountCfg: testDiscountConfig()},
			wantErr: ErrFeeConfigNotFound,
		},
		{
			name:    "missing discount config",
			repo:    stubConfigRepo{feeCfg: testFeeConfig()},
			wantErr: ErrDiscountConfigNotFound,
		},
		{
			name:     "unknown grade",
			repo:     stubConfigRepo{feeCfg: testFeeConfig(), discountCfg: testDiscountConfig()},
			mutate:   func(req *QuoteRequest) { req.Grade = 12 },
			wantErr:  ErrUnknownGrade,
			wantVErr: true,
		},
		{
			name:   "invalid payment type",
			repo:   stubConfigRepo{feeCfg: testFeeConfig(), discountCfg: testDiscountConfig()},
			mutate: func(req *QuoteRequest) { req.PaymentType = "weekly" },
		},
		{
			name:   "no subjects selected",
			repo:   stubConfigRepo{feeCfg: testFeeConfig(), discountCfg: testDiscountConfig()},
			mutate: func(req *QuoteRequest) { req.SelectedSubjects = nil },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.repo, testCourseEndDates, nopLogger{})
			req := testQuoteRequest()
			if tt.mutate != nil {
				tt.mutate(&req)
			}

			_, err := svc.CalculateCourseFee(context.Background(), req)
			if err == nil {
				t.Fatal("CalculateCourseFee() expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("CalculateCourseFee() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantVErr {
				var vErr *core.ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("CalculateCourseFee() error = %T, want *core.ValidationError", err)
				}
			}
		})
	}
}

func TestGetFeeType(t *testing.T) {
	typeCfg := &TypeConfig{Types: map[string]FeeType{
		TypeIDOneTime:  {Label: PlanOneTime, Installments: 1},
		TypeIDFourTime: {Label: PlanFourTime, Installments: 4},
	}}

	svc := NewService(stubConfigRepo{typeCfg: typeCfg}, testCourseEndDates, nopLogger{})

	ft, err := svc.GetFeeType(context.Background(), TypeIDFourTime)
	if err != nil {
		t.Fatalf("GetFeeType() unexpected error = %v", err)
	}
	if ft.Installments != 4 {
		t.Errorf("Installments = %v, want 4", ft.Installments)
	}

	if _, err = svc.GetFeeType(context.Background(), "FEE99"); !errors.Is(err, ErrTypeConfigNotFound) {
		t.Errorf("GetFeeType() error = %v, want %v", err, ErrTypeConfigNotFound)
	}

	svc = NewService(stubConfigRepo{}, testCourseEndDates, nopLogger{})
	if _, err = svc.GetFeeType(context.Background(), TypeIDOneTime); !errors.Is(err, ErrTypeConfigNotFound) {
		t.Errorf("GetFeeType() error = %v, want %v", err, ErrTypeConfigNotFound)
	}
}
