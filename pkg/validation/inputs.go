package validation

import (
	"fmt"

	"github.com/iwvelando/equity-payoff/pkg/constants"
	"github.com/iwvelando/equity-payoff/pkg/payoff"
)

// Input field names as they appear in requests and configuration.
const (
	FieldRemainingBalance      = "remainingBalance"
	FieldVehicleValue          = "vehicleValue"
	FieldCurrentMonthlyPayment = "currentMonthlyPayment"
	FieldAnnualInterestRate    = "annualInterestRate"
)

// PartialInputs are user-entered loan values where any field may be missing.
type PartialInputs struct {
	RemainingBalance      *float64 `json:"remainingBalance,omitempty"`
	VehicleValue          *float64 `json:"vehicleValue,omitempty"`
	CurrentMonthlyPayment *float64 `json:"currentMonthlyPayment,omitempty"`
	AnnualInterestRate    *float64 `json:"annualInterestRate,omitempty"`
}

// FromInputs wraps fully populated inputs for validation.
func FromInputs(in payoff.LoanInputs) PartialInputs {
	return PartialInputs{
		RemainingBalance:      &in.RemainingBalance,
		VehicleValue:          &in.VehicleValue,
		CurrentMonthlyPayment: &in.CurrentMonthlyPayment,
		AnnualInterestRate:    &in.AnnualInterestRate,
	}
}

// LoanInputs resolves the partial inputs, treating missing fields as zero.
func (p PartialInputs) LoanInputs() payoff.LoanInputs {
	return payoff.LoanInputs{
		RemainingBalance:      valueOrZero(p.RemainingBalance),
		VehicleValue:          valueOrZero(p.VehicleValue),
		CurrentMonthlyPayment: valueOrZero(p.CurrentMonthlyPayment),
		AnnualInterestRate:    valueOrZero(p.AnnualInterestRate),
	}
}

// InputValidation holds one message per invalid field; an empty message
// means the field passed.
type InputValidation struct {
	RemainingBalance      string `json:"remainingBalance,omitempty"`
	VehicleValue          string `json:"vehicleValue,omitempty"`
	CurrentMonthlyPayment string `json:"currentMonthlyPayment,omitempty"`
	AnnualInterestRate    string `json:"annualInterestRate,omitempty"`
}

// FieldError is a single failed field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// IsValid reports whether every field passed.
func (v InputValidation) IsValid() bool {
	return len(v.Errors()) == 0
}

// Errors lists the failed fields in input order.
func (v InputValidation) Errors() []FieldError {
	var errs []FieldError
	for _, candidate := range []FieldError{
		{Field: FieldRemainingBalance, Message: v.RemainingBalance},
		{Field: FieldVehicleValue, Message: v.VehicleValue},
		{Field: FieldCurrentMonthlyPayment, Message: v.CurrentMonthlyPayment},
		{Field: FieldAnnualInterestRate, Message: v.AnnualInterestRate},
	} {
		if candidate.Message != "" {
			errs = append(errs, candidate)
		}
	}
	return errs
}

// Err folds the failed fields into a single error, or nil when valid.
func (v InputValidation) Err() error {
	errs := v.Errors()
	if len(errs) == 0 {
		return nil
	}
	msg := errs[0].Message
	for _, e := range errs[1:] {
		msg += "; " + e.Message
	}
	return fmt.Errorf("invalid loan inputs: %s", msg)
}

// ValidateInputs checks user-entered loan values. It is advisory: the payoff
// calculations accept any numbers, and callers decide whether to enforce it.
func ValidateInputs(in PartialInputs) InputValidation {
	var result InputValidation

	if !positive(in.RemainingBalance) {
		result.RemainingBalance = "Remaining balance must be greater than 0"
	}
	if !positive(in.VehicleValue) {
		result.VehicleValue = "Vehicle value must be greater than 0"
	}
	if !positive(in.CurrentMonthlyPayment) {
		result.CurrentMonthlyPayment = "Current monthly payment must be greater than 0"
	}
	if in.AnnualInterestRate == nil ||
		!(*in.AnnualInterestRate >= constants.MinInterestRate && *in.AnnualInterestRate <= constants.MaxInterestRate) {
		result.AnnualInterestRate = fmt.Sprintf("Interest rate must be between %.0f%% and %.0f%%",
			constants.MinInterestRate, constants.MaxInterestRate)
	}

	return result
}

// positive is false for missing values and NaN.
func positive(v *float64) bool {
	return v != nil && *v > 0
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
