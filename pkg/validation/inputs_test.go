package validation

import (
	"math"
	"strings"
	"testing"

	"github.com/iwvelando/equity-payoff/pkg/payoff"
)

func ptr(v float64) *float64 {
	return &v
}

func TestValidateInputsValid(t *testing.T) {
	result := ValidateInputs(PartialInputs{
		RemainingBalance:      ptr(30000),
		VehicleValue:          ptr(20000),
		CurrentMonthlyPayment: ptr(500),
		AnnualInterestRate:    ptr(6.5),
	})

	if !result.IsValid() {
		t.Errorf("expected valid inputs, got errors %+v", result.Errors())
	}
	if result.Err() != nil {
		t.Errorf("Err() = %v, expected nil", result.Err())
	}
}

func TestValidateInputsInvalid(t *testing.T) {
	result := ValidateInputs(PartialInputs{
		RemainingBalance:      ptr(-1000),
		VehicleValue:          ptr(0),
		CurrentMonthlyPayment: ptr(500),
		AnnualInterestRate:    ptr(100),
	})

	if result.IsValid() {
		t.Fatal("expected invalid inputs")
	}
	if result.RemainingBalance == "" {
		t.Errorf("expected remainingBalance message")
	}
	if result.VehicleValue == "" {
		t.Errorf("expected vehicleValue message")
	}
	if result.CurrentMonthlyPayment != "" {
		t.Errorf("unexpected currentMonthlyPayment message %q", result.CurrentMonthlyPayment)
	}
	if result.AnnualInterestRate == "" {
		t.Errorf("expected annualInterestRate message")
	}

	errs := result.Errors()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	expectedFields := []string{FieldRemainingBalance, FieldVehicleValue, FieldAnnualInterestRate}
	for i, e := range errs {
		if e.Field != expectedFields[i] {
			t.Errorf("error %d field = %s, expected %s", i, e.Field, expectedFields[i])
		}
	}

	err := result.Err()
	if err == nil || !strings.Contains(err.Error(), "Interest rate must be between 0% and 50%") {
		t.Errorf("Err() = %v, expected interest rate message", err)
	}
}

func TestValidateInputsFieldRules(t *testing.T) {
	tests := []struct {
		name       string
		inputs     PartialInputs
		wantFields []string
	}{
		{
			name:       "All missing",
			inputs:     PartialInputs{},
			wantFields: []string{FieldRemainingBalance, FieldVehicleValue, FieldCurrentMonthlyPayment, FieldAnnualInterestRate},
		},
		{
			name: "Zero rate allowed",
			inputs: PartialInputs{
				RemainingBalance: ptr(1), VehicleValue: ptr(1), CurrentMonthlyPayment: ptr(1), AnnualInterestRate: ptr(0),
			},
		},
		{
			name: "Upper rate bound allowed",
			inputs: PartialInputs{
				RemainingBalance: ptr(1), VehicleValue: ptr(1), CurrentMonthlyPayment: ptr(1), AnnualInterestRate: ptr(50),
			},
		},
		{
			name: "Negative rate",
			inputs: PartialInputs{
				RemainingBalance: ptr(1), VehicleValue: ptr(1), CurrentMonthlyPayment: ptr(1), AnnualInterestRate: ptr(-0.5),
			},
			wantFields: []string{FieldAnnualInterestRate},
		},
		{
			name: "Rate just above bound",
			inputs: PartialInputs{
				RemainingBalance: ptr(1), VehicleValue: ptr(1), CurrentMonthlyPayment: ptr(1), AnnualInterestRate: ptr(50.01),
			},
			wantFields: []string{FieldAnnualInterestRate},
		},
		{
			name: "NaN values",
			inputs: PartialInputs{
				RemainingBalance: ptr(math.NaN()), VehicleValue: ptr(1), CurrentMonthlyPayment: ptr(1), AnnualInterestRate: ptr(math.NaN()),
			},
			wantFields: []string{FieldRemainingBalance, FieldAnnualInterestRate},
		},
		{
			name: "Zero payment",
			inputs: PartialInputs{
				RemainingBalance: ptr(1), VehicleValue: ptr(1), CurrentMonthlyPayment: ptr(0), AnnualInterestRate: ptr(5),
			},
			wantFields: []string{FieldCurrentMonthlyPayment},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateInputs(tt.inputs).Errors()
			if len(errs) != len(tt.wantFields) {
				t.Fatalf("expected %d errors, got %+v", len(tt.wantFields), errs)
			}
			for i, e := range errs {
				if e.Field != tt.wantFields[i] {
					t.Errorf("error %d field = %s, expected %s", i, e.Field, tt.wantFields[i])
				}
				if e.Message == "" {
					t.Errorf("error %d has empty message", i)
				}
			}
		})
	}
}

func TestPartialInputsRoundTrip(t *testing.T) {
	inputs := payoff.LoanInputs{RemainingBalance: 30000, VehicleValue: 20800, CurrentMonthlyPayment: 763, AnnualInterestRate: 6.5}

	if got := FromInputs(inputs).LoanInputs(); got != inputs {
		t.Errorf("LoanInputs() = %+v, expected %+v", got, inputs)
	}
	if got := (PartialInputs{VehicleValue: ptr(5)}).LoanInputs(); got != (payoff.LoanInputs{VehicleValue: 5}) {
		t.Errorf("missing fields should resolve to zero, got %+v", got)
	}
}
