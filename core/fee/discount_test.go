package fee

import (
	"testing"

	"github.com/pkg/errors"
)

func TestScholarshipTier(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{score: 100, want: TierHigh},
		{score: 90, want: TierHigh},
		{score: 89.99, want: TierMedium},
		{score: 85, want: TierMedium},
		{score: 84.99, want: TierLow},
		{score: 80, want: TierLow},
		{score: 79.99, want: TierNone},
		{score: 0, want: TierNone},
		{score: -5, want: TierNone},
		{score: 120, want: TierHigh},
	}
	for _, tt := range tests {
		if got := ScholarshipTier(tt.score); got != tt.want {
			t.Errorf("ScholarshipTier(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestResolveDiscounts(t *testing.T) {
	cfg := DiscountConfig{
		PaymentTypeDiscount:  map[string]float64{"one_time": 5, "two_time": 3, "four_time": 0},
		CoachingModeDiscount: map[string]float64{"online": 3, "offline": 0},
		ScholarshipDiscount:  map[string]float64{TierHigh: 10, TierMedium: 7, TierLow: 5, TierNone: 0},
	}

	tests := []struct {
		name         string
		paymentType  string
		coachingMode string
		priorScore   float64
		want         DiscountsApplied
		wantErr      error
	}{
		{
			name: "all discounts stack", paymentType: "one_time", coachingMode: "online", priorScore: 92,
			want: DiscountsApplied{PaymentTypeDiscount: 5, CoachingModeDiscount: 3, ScholarshipDiscount: 10},
		},
		{
			name: "no scholarship", paymentType: "four_time", coachingMode: "offline", priorScore: 60,
			want: DiscountsApplied{},
		},
		{name: "unknown payment type", paymentType: "weekly", coachingMode: "online", priorScore: 92, wantErr: ErrUnknownPaymentType},
		{name: "unknown coaching mode", paymentType: "one_time", coachingMode: "hybrid", priorScore: 92, wantErr: ErrUnknownCoachingMode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveDiscounts(cfg, tt.paymentType, tt.coachingMode, tt.priorScore)
			if tt.wantErr != nil {
				if errors.Cause(err) != tt.wantErr {
					t.Fatalf("ResolveDiscounts() error = %v, wantErr %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResolveDiscounts() unexpected error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ResolveDiscounts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveDiscounts_missingTierConfig(t *testing.T) {
	cfg := DiscountConfig{
		PaymentTypeDiscount:  map[string]float64{"one_time": 5},
		CoachingModeDiscount: map[string]float64{"online": 3},
		ScholarshipDiscount:  map[string]float64{TierHigh: 10}, // "none" missing
	}
	_, err := ResolveDiscounts(cfg, "one_time", "online", 50)
	if errors.Cause(err) != ErrUnknownScholarshipTier {
		t.Errorf("ResolveDiscounts() error = %v, want %v", err, ErrUnknownScholarshipTier)
	}
}

func TestDiscountsApplied_Total(t *testing.T) {
	d := DiscountsApplied{PaymentTypeDiscount: 5, CoachingModeDiscount: 3, ScholarshipDiscount: 10}
	if got := d.Total(); got != 18 {
		t.Errorf("Total() = %v, want 18", got)
	}
}
