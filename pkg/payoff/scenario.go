// Package payoff computes plans for retiring negative equity over fixed
// payoff timelines.
package payoff

import (
	"github.com/iwvelando/equity-payoff/pkg/constants"
	"github.com/iwvelando/equity-payoff/pkg/loans"
)

// LoanInputs describes the loan and collateral being evaluated.
// AnnualInterestRate is a percentage, e.g. 6.5 for 6.5% per year.
type LoanInputs struct {
	RemainingBalance      float64 `json:"remainingBalance" yaml:"remainingBalance" mapstructure:"remainingBalance"`
	VehicleValue          float64 `json:"vehicleValue" yaml:"vehicleValue" mapstructure:"vehicleValue"`
	CurrentMonthlyPayment float64 `json:"currentMonthlyPayment" yaml:"currentMonthlyPayment" mapstructure:"currentMonthlyPayment"`
	AnnualInterestRate    float64 `json:"annualInterestRate" yaml:"annualInterestRate" mapstructure:"annualInterestRate"`
}

// NegativeEquity returns the shortfall of the vehicle value against the balance.
func (in LoanInputs) NegativeEquity() float64 {
	return loans.CalculateNegativeEquity(in.RemainingBalance, in.VehicleValue)
}

// PayoffScenario is the plan for retiring negative equity over one timeline.
type PayoffScenario struct {
	Timeline            int     `json:"timeline"`
	NegativeEquity      float64 `json:"negativeEquity"`
	ExtraMonthlyPayment float64 `json:"extraMonthlyPayment"`
	TotalMonthlyPayment float64 `json:"totalMonthlyPayment"`
	TotalPaid           float64 `json:"totalPaid"`
	TotalInterestPaid   float64 `json:"totalInterestPaid"`
	Note                string  `json:"note"`
	Achievable          bool    `json:"achievable"`
}

// CalculatePayoffScenario solves for the extra monthly payment that retires
// the negative equity in timelineMonths. timelineMonths must be positive.
//
// TotalPaid is the flat projection TotalMonthlyPayment*timelineMonths rather
// than a sum over the schedule, so it does not shrink under early payoff.
// Achievable is always true; no affordability ceiling is applied.
func CalculatePayoffScenario(inputs LoanInputs, timelineMonths int) PayoffScenario {
	negativeEquity := inputs.NegativeEquity()

	if negativeEquity == 0 {
		return PayoffScenario{
			Timeline:            timelineMonths,
			NegativeEquity:      0,
			ExtraMonthlyPayment: 0,
			TotalMonthlyPayment: inputs.CurrentMonthlyPayment,
			TotalPaid:           inputs.CurrentMonthlyPayment * float64(timelineMonths),
			TotalInterestPaid:   0,
			Note:                constants.NoNegativeEquityNote,
			Achievable:          true,
		}
	}

	extraPayment := loans.CalculateMonthlyPayment(negativeEquity, inputs.AnnualInterestRate, timelineMonths)
	totalPayment := inputs.CurrentMonthlyPayment + extraPayment

	schedule := loans.GenerateAmortizationSchedule(negativeEquity, extraPayment, inputs.AnnualInterestRate, timelineMonths)

	return PayoffScenario{
		Timeline:            timelineMonths,
		NegativeEquity:      negativeEquity,
		ExtraMonthlyPayment: extraPayment,
		TotalMonthlyPayment: totalPayment,
		TotalPaid:           totalPayment * float64(timelineMonths),
		TotalInterestPaid:   loans.TotalInterest(schedule),
		Note:                StrategyLabel(timelineMonths),
		Achievable:          true,
	}
}

// CalculateAllScenarios evaluates the default timelines in ascending order.
func CalculateAllScenarios(inputs LoanInputs) []PayoffScenario {
	return CalculateScenarios(inputs, constants.DefaultTimelines)
}

// CalculateScenarios evaluates each timeline, preserving the given order.
func CalculateScenarios(inputs LoanInputs, timelines []int) []PayoffScenario {
	scenarios := make([]PayoffScenario, 0, len(timelines))
	for _, timeline := range timelines {
		scenarios = append(scenarios, CalculatePayoffScenario(inputs, timeline))
	}
	return scenarios
}

// StrategyLabel names the payoff strategy for a timeline.
func StrategyLabel(timelineMonths int) string {
	switch {
	case timelineMonths <= constants.AggressiveMaxMonths:
		return constants.StrategyAggressive
	case timelineMonths <= constants.ModerateMaxMonths:
		return constants.StrategyModerate
	default:
		return constants.StrategyConservative
	}
}

// Schedule returns the month-by-month paydown of the scenario's negative
// equity at its extra payment.
func (s PayoffScenario) Schedule(annualInterestRate float64) []loans.AmortizationEntry {
	if s.NegativeEquity == 0 {
		return nil
	}
	return loans.GenerateAmortizationSchedule(s.NegativeEquity, s.ExtraMonthlyPayment, annualInterestRate, s.Timeline)
}
