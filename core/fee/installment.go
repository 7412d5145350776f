package fee

import (
	"errors"
	"fmt"
	"time"

	"github.com/brainaspire/academia/core"
)

// Payment plans as selected at onboarding and their fee-type ids.
const (
	PlanOneTime  = "one-time"
	PlanTwoTime  = "two-time"
	PlanFourTime = "four-time"

	TypeIDOneTime  = "FEE01"
	TypeIDTwoTime  = "FEE02"
	TypeIDFourTime = "FEE04"
)

var typeIDs = map[string]string{
	PlanOneTime:  TypeIDOneTime,
	PlanTwoTime:  TypeIDTwoTime,
	PlanFourTime: TypeIDFourTime,
}

var (
	ErrUnknownFeeType = errors.New("unknown fee type")

	// installment validation errors
	ErrInvalidInstallmentIndex   = errors.New("invalid installment number index")
	ErrNegativeInstallmentAmount = errors.New("installment amount cannot be negative")
	ErrInvertedPaymentWindow     = errors.New("start date cannot be greater than end date")
)

// TypeID maps a payment plan to its fee-type id.
func TypeID(plan string) (string, error) {
	id, ok := typeIDs[plan]
	if !ok {
		return "", core.NewValidationError(ErrUnknownFeeType, core.FieldError{Field: "fee_type", Error: ErrUnknownFeeType.Error()})
	}
	return id, nil
}

type PaymentWindow struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// Installment is a fee-tracker record. Created in bulk at onboarding;
// mutated later by payment recording; never deleted, only marked paid.
type Installment struct {
	ID                string        `json:"id"`
	StudentID         string        `json:"studentID"`
	InstallmentNumber int           `json:"installment_number"`
	TotalAmountToPay  float64       `json:"total_installment_amount_to_pay"`
	AmountPaid        float64       `json:"amount_paid"`
	PaymentWindow     PaymentWindow `json:"payment_window"`
	DateOfPayment     *time.Time    `json:"date_of_payment_done"` // nil if not paid
	PaymentStatus     bool          `json:"payment_status"`
}

// NewInstallment is a client-supplied installment at onboarding.
type NewInstallment struct {
	InstallmentNumber int           `json:"installment_number"`
	TotalAmountToPay  float64       `json:"total_installment_amount_to_pay"`
	PaymentWindow     PaymentWindow `json:"payment_window"`
	PaymentStatus     bool          `json:"payment_status"`
}

// ValidateInstallments checks a client-supplied installment batch against the
// student's fee type. Fail-fast: the first invalid installment aborts the
// whole batch.
func ValidateInstallments(ft FeeType, installments []NewInstallment) error {
	for i, inst := range installments {
		field := fmt.Sprintf("installments[%d]", i)
		if inst.InstallmentNumber > ft.Installments {
			return core.NewValidationError(ErrInvalidInstallmentIndex, core.FieldError{Field: field, Error: ErrInvalidInstallmentIndex.Error()})
		}
		if inst.TotalAmountToPay < 0 {
			return core.NewValidationError(ErrNegativeInstallmentAmount, core.FieldError{Field: field, Error: ErrNegativeInstallmentAmount.Error()})
		}
		if inst.PaymentWindow.StartDate.After(inst.PaymentWindow.EndDate) {
			return core.NewValidationError(ErrInvertedPaymentWindow, core.FieldError{Field: field, Error: ErrInvertedPaymentWindow.Error()})
		}
	}
	return nil
}
