package fee

import (
	"errors"
	"testing"
	"time"

	"github.com/brainaspire/academia/core"
)

func TestTypeID(t *testing.T) {
	tests := []struct {
		plan    string
		want    string
		wantErr bool
	}{
		{plan: PlanOneTime, want: TypeIDOneTime},
		{plan: PlanTwoTime, want: TypeIDTwoTime},
		{plan: PlanFourTime, want: TypeIDFourTime},
		{plan: "monthly", wantErr: true},
		{plan: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := TypeID(tt.plan)
		if tt.wantErr {
			if err == nil {
				t.Errorf("TypeID(%q) expected error", tt.plan)
			}
			var vErr *core.ValidationError
			if !errors.As(err, &vErr) {
				t.Errorf("TypeID(%q) error = %T, want *core.ValidationError", tt.plan, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("TypeID(%q) unexpected error = %v", tt.plan, err)
		}
		if got != tt.want {
			t.Errorf("TypeID(%q) = %v, want %v", tt.plan, got, tt.want)
		}
	}
}

func TestValidateInstallments(t *testing.T) {
	window := func(start, end time.Time) PaymentWindow {
		return PaymentWindow{StartDate: start, EndDate: end}
	}
	okWindow := window(date(2025, time.September, 1), date(2025, time.October, 1))
	fourTime := FeeType{Label: PlanFourTime, Installments: 4}

	tests := []struct {
		name         string
		installments []NewInstallment
		wantErr      error
	}{
		{
			name: "valid batch",
			installments: []NewInstallment{
				{InstallmentNumber: 1, TotalAmountToPay: 500, PaymentWindow: okWindow},
				{InstallmentNumber: 4, TotalAmountToPay: 500, PaymentWindow: okWindow},
			},
		},
		{
			name: "number above fee type installment count",
			installments: []NewInstallment{
				{InstallmentNumber: 5, TotalAmountToPay: 500, PaymentWindow: okWindow},
			},
			wantErr: ErrInvalidInstallmentIndex,
		},
		{
			name: "negative amount",
			installments: []NewInstallment{
				{InstallmentNumber: 1, TotalAmountToPay: -1, PaymentWindow: okWindow},
			},
			wantErr: ErrNegativeInstallmentAmount,
		},
		{
			name: "inverted payment window",
			installments: []NewInstallment{
				{InstallmentNumber: 1, TotalAmountToPay: 500, PaymentWindow: window(date(2025, time.October, 2), date(2025, time.October, 1))},
			},
			wantErr: ErrInvertedPaymentWindow,
		},
		{
			name: "first invalid installment aborts the batch",
			installments: []NewInstallment{
				{InstallmentNumber: 1, TotalAmountToPay: 500, PaymentWindow: okWindow},
				{InstallmentNumber: 9, TotalAmountToPay: 500, PaymentWindow: okWindow},
				{InstallmentNumber: 2, TotalAmountToPay: -1, PaymentWindow: okWindow},
			},
			wantErr: ErrInvalidInstallmentIndex,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInstallments(fourTime, tt.installments)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateInstallments() unexpected error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateInstallments() error = %v, wantErr %v", err, tt.wantErr)
			}
			var vErr *core.ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("ValidateInstallments() error = %T, want *core.ValidationError", err)
			}
		})
	}
}
