package payoff

import (
	"fmt"

	"github.com/iwvelando/equity-payoff/pkg/constants"
	"github.com/iwvelando/equity-payoff/pkg/loans"
	"go.uber.org/zap"
)

// Calculator evaluates a configured set of timelines and logs what it computes.
type Calculator struct {
	logger            *zap.Logger
	timelines         []int
	scheduleMaxMonths int
}

// NewCalculator creates a calculator for the given timelines. An empty list
// selects constants.DefaultTimelines. scheduleMaxMonths bounds schedules that
// do not request their own horizon; non-positive values select
// constants.DefaultScheduleMaxMonths.
func NewCalculator(logger *zap.Logger, timelines []int, scheduleMaxMonths int) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(timelines) == 0 {
		timelines = constants.DefaultTimelines
	}
	if scheduleMaxMonths <= 0 {
		scheduleMaxMonths = constants.DefaultScheduleMaxMonths
	}
	return &Calculator{
		logger:            logger,
		timelines:         append([]int(nil), timelines...),
		scheduleMaxMonths: scheduleMaxMonths,
	}
}

// ScheduleMaxMonths returns the horizon used when a schedule asks for none.
func (c *Calculator) ScheduleMaxMonths() int {
	return c.scheduleMaxMonths
}

// Timelines returns a copy of the configured timelines.
func (c *Calculator) Timelines() []int {
	return append([]int(nil), c.timelines...)
}

// Scenarios computes one scenario per configured timeline.
func (c *Calculator) Scenarios(inputs LoanInputs) []PayoffScenario {
	scenarios := CalculateScenarios(inputs, c.timelines)
	for _, scenario := range scenarios {
		c.logger.Debug(fmt.Sprintf("%d month timeline requires %.2f extra per month", scenario.Timeline, scenario.ExtraMonthlyPayment),
			zap.String("op", "payoff.Scenarios"),
			zap.Float64("negativeEquity", scenario.NegativeEquity),
			zap.Float64("totalInterestPaid", scenario.TotalInterestPaid),
		)
	}
	return scenarios
}

// Schedule generates an amortization schedule with the calculator's logger.
// A zero maxMonths uses the calculator's configured horizon.
func (c *Calculator) Schedule(principal, monthlyPayment, annualInterestRate float64, maxMonths int) []loans.AmortizationEntry {
	if maxMonths == 0 {
		maxMonths = c.scheduleMaxMonths
	}
	return loans.NewAmortizationScheduleGenerator(c.logger).GenerateSchedule(principal, monthlyPayment, annualInterestRate, maxMonths)
}

// CurrentLoanSchedule projects the existing loan at its current payment,
// bounded by the configured horizon.
func (c *Calculator) CurrentLoanSchedule(inputs LoanInputs) []loans.AmortizationEntry {
	return c.Schedule(inputs.RemainingBalance, inputs.CurrentMonthlyPayment, inputs.AnnualInterestRate, 0)
}
