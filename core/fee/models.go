package fee

import (
	"time"

	"github.com/brainaspire/academia/core"
)

// FeeStructure is the per-grade reference fee data.
type FeeStructure struct {
	AdmissionFee   float64 `json:"admission_fee"`
	FixedAmt       float64 `json:"fixed_amt"`
	MonthlyFee     float64 `json:"monthly_fee"`
	CourseDuration int     `json:"course_duration"` // months
}

// Config is the course-fee configuration document.
// SubjectPreferenceFee maps a subject count to a percentage multiplier
// applied to tuition (100 = no adjustment); lookups clamp the count to the
// max configured key.
type Config struct {
	Fees                 map[int]FeeStructure `json:"fees"`
	SubjectPreferenceFee map[int]float64      `json:"subject_preference_fee"`
}

// DiscountConfig is the discount configuration document. All values are
// percentages (0-100).
type DiscountConfig struct {
	PaymentTypeDiscount  map[string]float64 `json:"payment_type_discount"`
	CoachingModeDiscount map[string]float64 `json:"coaching_mode_discount"`
	ScholarshipDiscount  map[string]float64 `json:"scholarship_discount"` // keys: high, medium, low, none
}

// FeeType governs how many installments a student's tuition is split into.
type FeeType struct {
	Label        string `json:"label"`
	Installments int    `json:"installments"`
	Notes        string `json:"notes"`
}

// TypeConfig is the fee-type configuration document, keyed by fee-type id
// (FEE01, FEE02, FEE04).
type TypeConfig struct {
	Types map[string]FeeType `json:"types"`
}

type PrevYearResults struct {
	Percentage float64 `json:"percentage" validate:"required"`
	Year       int     `json:"year" validate:"required"`
	Board      string  `json:"board"`
}

type DiscountsApplied struct {
	PaymentTypeDiscount  float64 `json:"payment_type_discount"`
	CoachingModeDiscount float64 `json:"coaching_mode_discount"`
	ScholarshipDiscount  float64 `json:"scholarship_discount"`
}

func (d DiscountsApplied) Total() float64 {
	return d.PaymentTypeDiscount + d.CoachingModeDiscount + d.ScholarshipDiscount
}

type Discount struct {
	TotalDiscount    float64          `json:"total_discount"`
	DiscountsApplied DiscountsApplied `json:"discounts_applied"`
}

// Quote is the assembled fee quote. The discount applies only to the tuition
// component, never to admission or fixed fees.
type Quote struct {
	AdmissionFee float64  `json:"admission_fee"`
	FixedAmt     float64  `json:"fixed_amt"`
	TuitionFee   float64  `json:"tuition_fee"`
	Discount     Discount `json:"discount"`
	TotalFee     float64  `json:"total_fee"`
	FinalFee     float64  `json:"final_fee"`
}

// QuoteRequest carries the details needed to quote a course fee.
type QuoteRequest struct {
	Grade            int             `json:"grade" validate:"required"`
	DateJoined       time.Time       `json:"date_joined" validate:"required"`
	PrevYearResults  PrevYearResults `json:"prev_year_results"`
	SelectedSubjects []string        `json:"selectedSubjects" validate:"required,min=1"`
	PaymentType      string          `json:"payment_type" validate:"required,oneof=one_time two_time four_time"`
	CoachingMode     string          `json:"coaching_mode" validate:"required,oneof=online offline"`
}

func (qr *QuoteRequest) Validate() error {
	qr.PaymentType = core.CleanString(qr.PaymentType, true /* lower */)
	qr.CoachingMode = core.CleanString(qr.CoachingMode, true /* lower */)
	return core.Validate.Struct(qr)
}
