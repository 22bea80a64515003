// Package loans provides common loan processing utilities.
package loans

import (
	"fmt"
	"math"

	"github.com/iwvelando/equity-payoff/pkg/constants"
	"github.com/iwvelando/equity-payoff/pkg/mathutil"
	"go.uber.org/zap"
)

// AmortizationEntry holds the values for a single month of a schedule.
type AmortizationEntry struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	Principal        float64 `json:"principal"`
	Interest         float64 `json:"interest"`
	RemainingBalance float64 `json:"remainingBalance"`
}

// CalculateNegativeEquity returns how far the loan balance exceeds the
// collateral value, or zero when it does not. Non-numeric inputs yield zero.
func CalculateNegativeEquity(remainingBalance, vehicleValue float64) float64 {
	if equity := remainingBalance - vehicleValue; equity > 0 {
		return equity
	}
	return 0
}

// CalculateMonthlyPayment calculates the level monthly payment that amortizes
// principal over termMonths using the standard annuity formula. termMonths
// must be positive; callers are expected to validate it.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}

	periodicInterestRate := mathutil.MonthlyRate(annualInterestRate)
	power := math.Pow(1.00+periodicInterestRate, float64(termMonths))
	return principal * periodicInterestRate * power / (power - 1.00)
}

// CalculateInterestPayment calculates the interest portion of a payment.
func CalculateInterestPayment(remainingPrincipal, annualInterestRate float64) float64 {
	return remainingPrincipal * mathutil.MonthlyRate(annualInterestRate)
}

// AmortizationScheduleGenerator provides utilities for generating loan amortization schedules
type AmortizationScheduleGenerator struct {
	logger *zap.Logger
}

// NewAmortizationScheduleGenerator creates a new generator instance
func NewAmortizationScheduleGenerator(logger *zap.Logger) *AmortizationScheduleGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AmortizationScheduleGenerator{logger: logger}
}

// GenerateSchedule simulates a month-by-month paydown of principal at the
// given payment. It stops once the balance falls to the payoff threshold or
// after maxMonths entries, whichever comes first.
func (g *AmortizationScheduleGenerator) GenerateSchedule(principal, monthlyPayment, annualInterestRate float64, maxMonths int) []AmortizationEntry {
	schedule := make([]AmortizationEntry, 0, scheduleCapacity(maxMonths))
	remainingBalance := principal

	for month := 1; remainingBalance > constants.PayoffBalanceThreshold && month <= maxMonths; month++ {
		interestPayment := CalculateInterestPayment(remainingBalance, annualInterestRate)
		// The final period only retires what is left, and a payment below
		// the accrued interest never grows the balance.
		principalPayment := mathutil.Max(0, mathutil.Min(monthlyPayment-interestPayment, remainingBalance))

		remainingBalance = mathutil.Max(0, remainingBalance-principalPayment)

		schedule = append(schedule, AmortizationEntry{
			Month:            month,
			Payment:          principalPayment + interestPayment,
			Principal:        principalPayment,
			Interest:         interestPayment,
			RemainingBalance: remainingBalance,
		})
	}

	if maxMonths > 0 && len(schedule) == maxMonths && !PaidOff(schedule) {
		g.logger.Debug(fmt.Sprintf("schedule reached %d months with %.2f outstanding", maxMonths, remainingBalance),
			zap.String("op", "loans.GenerateSchedule"),
			zap.Float64("principal", principal),
			zap.Float64("monthlyPayment", monthlyPayment),
		)
	}

	return schedule
}

// GenerateAmortizationSchedule is GenerateSchedule without logging.
func GenerateAmortizationSchedule(principal, monthlyPayment, annualInterestRate float64, maxMonths int) []AmortizationEntry {
	return NewAmortizationScheduleGenerator(nil).GenerateSchedule(principal, monthlyPayment, annualInterestRate, maxMonths)
}

// PaidOff reports whether a schedule ends with the balance retired. An empty
// schedule means there was nothing to pay.
func PaidOff(schedule []AmortizationEntry) bool {
	if len(schedule) == 0 {
		return true
	}
	return schedule[len(schedule)-1].RemainingBalance <= constants.PayoffBalanceThreshold
}

// TotalInterest sums the interest component of every entry.
func TotalInterest(schedule []AmortizationEntry) float64 {
	total := 0.0
	for _, entry := range schedule {
		total += entry.Interest
	}
	return total
}

// TotalPayments sums the payment column of every entry.
func TotalPayments(schedule []AmortizationEntry) float64 {
	total := 0.0
	for _, entry := range schedule {
		total += entry.Payment
	}
	return total
}

func scheduleCapacity(maxMonths int) int {
	if maxMonths < 0 {
		return 0
	}
	if maxMonths > constants.DefaultScheduleMaxMonths {
		return constants.DefaultScheduleMaxMonths
	}
	return maxMonths
}
