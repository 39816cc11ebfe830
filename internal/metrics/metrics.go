// Package metrics exposes Prometheus counters for button presses and
// calculation outcomes.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Rorical/CalcPad/internal/calculator"
)

const (
	OutcomeResult         = "result"
	OutcomeDivisionByZero = "division_by_zero"
	OutcomeAborted        = "aborted"
)

// Recorder is nil-safe: a nil *Recorder records nothing.
type Recorder struct {
	presses      *prometheus.CounterVec
	calculations *prometheus.CounterVec
}

// New registers the CalcPad collectors on reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		presses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcpad_button_presses_total",
				Help: "Total number of button presses",
			},
			[]string{"button"},
		),
		calculations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calcpad_calculations_total",
				Help: "Equals presses by outcome",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(r.presses, r.calculations)
	return r
}

// Observe records a press of buttonID that moved the calculator from before
// to after.
func (r *Recorder) Observe(buttonID string, action calculator.Action, before, after calculator.Snapshot) {
	if r == nil {
		return
	}
	r.presses.WithLabelValues(buttonID).Inc()

	if action.Kind != calculator.ActionEquals {
		return
	}
	r.calculations.WithLabelValues(Outcome(before, after)).Inc()
}

// Outcome classifies an equals press.
func Outcome(before, after calculator.Snapshot) string {
	if after.State != calculator.StateResult || after == before {
		return OutcomeAborted
	}
	if after.Entry == calculator.ErrorText {
		return OutcomeDivisionByZero
	}
	return OutcomeResult
}
