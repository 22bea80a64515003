// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/equity-payoff/pkg/payoff"
)

// FindScenario finds a scenario by timeline in the results slice.
// Returns a pointer to the scenario if found, nil otherwise.
func FindScenario(scenarios []payoff.PayoffScenario, timeline int) *payoff.PayoffScenario {
	for i := range scenarios {
		if scenarios[i].Timeline == timeline {
			return &scenarios[i]
		}
	}
	return nil
}
