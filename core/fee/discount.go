package fee

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Scholarship tiers, derived from the previous year's percentage score.
const (
	TierHigh   = "high"
	TierMedium = "medium"
	TierLow    = "low"
	TierNone   = "none"
)

var (
	// configuration errors: a missing discount key is never silently
	// treated as 0%
	ErrUnknownPaymentType     = errors.New("payment type missing from discount configuration")
	ErrUnknownCoachingMode    = errors.New("coaching mode missing from discount configuration")
	ErrUnknownScholarshipTier = errors.New("scholarship tier missing from discount configuration")
)

// ScholarshipTier resolves a percentage score to a discount tier.
// Thresholds are evaluated in descending order; first match wins. Any score
// below all thresholds (including negative or >100) falls through to "none".
func ScholarshipTier(score float64) string {
	switch {
	case score >= 90:
		return TierHigh
	case score >= 85:
		return TierMedium
	case score >= 80:
		return TierLow
	default:
		return TierNone
	}
}

// ResolveDiscounts looks up the three independent discount percentages for a
// payment plan, coaching mode and prior score. Pure computation over cfg.
func ResolveDiscounts(cfg DiscountConfig, paymentType, coachingMode string, priorScore float64) (DiscountsApplied, error) {
	ptd, ok := cfg.PaymentTypeDiscount[paymentType]
	if !ok {
		return DiscountsApplied{}, pkgerrors.Wrapf(ErrUnknownPaymentType, "%q", paymentType)
	}
	cmd, ok := cfg.CoachingModeDiscount[coachingMode]
	if !ok {
		return DiscountsApplied{}, pkgerrors.Wrapf(ErrUnknownCoachingMode, "%q", coachingMode)
	}
	tier := ScholarshipTier(priorScore)
	sd, ok := cfg.ScholarshipDiscount[tier]
	if !ok {
		return DiscountsApplied{}, pkgerrors.Wrapf(ErrUnknownScholarshipTier, "%q", tier)
	}
	return DiscountsApplied{
		PaymentTypeDiscount:  ptd,
		CoachingModeDiscount: cmd,
		ScholarshipDiscount:  sd,
	}, nil
}
