// Package calculator implements the button-driven input state machine of
// CalcPad: an entry buffer, an accumulated operand and a single pending
// operator, evaluated strictly left to right.
//
// A Calculator is not safe for concurrent use. Owners serialise actions.
package calculator

import "strings"

// ErrorText is the entry buffer value produced by a division by zero.
const ErrorText = "Error"

// Display receives the rendered display text after every update.
type Display interface {
	Show(text string)
}

// Calculator holds the whole machine state.
type Calculator struct {
	entry       string
	accumulated string
	operator    Operator
	state       State
	display     string
	sink        Display
}

// New returns a calculator in the Idle state. sink may be nil.
func New(sink Display) *Calculator {
	c := &Calculator{sink: sink}
	c.updateDisplay()
	return c
}

// Dispatch applies a single action.
func (c *Calculator) Dispatch(a Action) {
	switch a.Kind {
	case ActionDigit:
		c.AppendDigit(a.Digit)
	case ActionDecimal:
		c.AppendDigit('.')
	case ActionOperator:
		c.ChooseOperator(a.Operator)
	case ActionEquals:
		c.Calculate()
	case ActionClear:
		c.ClearAll()
	case ActionToggleSign:
		c.ToggleSign()
	case ActionPercent:
		c.ApplyPercentage()
	}
}

// AppendDigit extends the entry buffer with '0'-'9' or '.'.
func (c *Calculator) AppendDigit(symbol byte) {
	if !isDigit(symbol) && symbol != '.' {
		return
	}

	if c.AwaitingNewEntry() {
		c.entry = string(symbol)
		c.state = StateEntering
		c.updateDisplay()
		return
	}

	if symbol == '.' && strings.Contains(c.entry, ".") {
		return
	}
	if c.entry == "0" && symbol != '.' {
		c.entry = string(symbol)
	} else {
		c.entry += string(symbol)
	}
	c.state = StateEntering
	c.updateDisplay()
}

// ChooseOperator sets the pending operator, folding any complete prior
// operation first.
func (c *Calculator) ChooseOperator(op Operator) {
	if !op.Valid() {
		return
	}
	if c.entry == "" && c.accumulated == "" {
		return
	}

	if c.accumulated != "" && c.operator != OpNone && !c.AwaitingNewEntry() {
		c.Calculate()
	}

	c.operator = op
	if c.entry != "" {
		c.accumulated = c.entry
	}
	c.entry = ""
	c.state = StateOperatorChosen
	c.show(c.accumulated + " " + op.Symbol())
}

// Calculate applies the pending operator to the accumulated value and the
// entry buffer. Unparsable operands or a missing operator leave every field
// untouched.
func (c *Calculator) Calculate() {
	prev, ok := parseOperand(c.accumulated)
	if !ok {
		return
	}
	current, ok := parseOperand(c.entry)
	if !ok {
		return
	}

	var result string
	switch c.operator {
	case OpAdd:
		result = FormatNumber(prev + current)
	case OpSubtract:
		result = FormatNumber(prev - current)
	case OpMultiply:
		result = FormatNumber(prev * current)
	case OpDivide:
		if current == 0 {
			result = ErrorText
		} else {
			result = FormatNumber(prev / current)
		}
	default:
		return
	}

	c.entry = result
	c.operator = OpNone
	c.accumulated = ""
	c.state = StateResult
	c.updateDisplay()
}

// ClearAll resets the calculator to Idle.
func (c *Calculator) ClearAll() {
	c.entry = ""
	c.accumulated = ""
	c.operator = OpNone
	c.state = StateIdle
	c.updateDisplay()
}

// ToggleSign negates the entry buffer.
func (c *Calculator) ToggleSign() {
	if c.entry == "" || c.entry == "0" {
		return
	}
	c.entry = FormatNumber(-parseLoose(c.entry))
	c.updateDisplay()
}

// ApplyPercentage divides the entry buffer by 100.
func (c *Calculator) ApplyPercentage() {
	if c.entry == "" {
		return
	}
	c.entry = FormatNumber(parseLoose(c.entry) / 100)
	c.updateDisplay()
}

// AwaitingNewEntry reports whether the next digit starts a fresh entry.
func (c *Calculator) AwaitingNewEntry() bool {
	return c.state == StateOperatorChosen || c.state == StateResult
}

func (c *Calculator) Display() string     { return c.display }
func (c *Calculator) Entry() string       { return c.entry }
func (c *Calculator) Accumulated() string { return c.accumulated }
func (c *Calculator) Operator() Operator  { return c.operator }
func (c *Calculator) State() State        { return c.state }

// Snapshot returns a copy of the current state.
func (c *Calculator) Snapshot() Snapshot {
	return Snapshot{
		Display:     c.display,
		Entry:       c.entry,
		Accumulated: c.accumulated,
		Operator:    c.operator,
		State:       c.state,
	}
}

func (c *Calculator) updateDisplay() {
	if c.entry == "" {
		c.show("0")
		return
	}
	c.show(c.entry)
}

func (c *Calculator) show(text string) {
	c.display = text
	if c.sink != nil {
		c.sink.Show(text)
	}
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseLoose parses s, yielding NaN when it is not a number.
func parseLoose(s string) float64 {
	f, ok := parseNumber(s)
	if !ok {
		return nan
	}
	return f
}
