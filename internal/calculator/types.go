package calculator

import "fmt"

// Operator is a binary operation awaiting its second operand.
type Operator int

const (
	OpNone Operator = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

var operatorSymbols = [...]string{
	OpNone:     "",
	OpAdd:      "+",
	OpSubtract: "-",
	OpMultiply: "*",
	OpDivide:   "/",
}

// Symbol returns the operator as shown on the display.
func (o Operator) Symbol() string {
	if o < OpNone || o > OpDivide {
		return ""
	}
	return operatorSymbols[o]
}

func (o Operator) Valid() bool { return o >= OpAdd && o <= OpDivide }

func (o Operator) String() string {
	if o == OpNone {
		return "none"
	}
	return o.Symbol()
}

func (o Operator) MarshalText() ([]byte, error) {
	return []byte(o.Symbol()), nil
}

func (o *Operator) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*o = OpNone
		return nil
	}
	op, ok := ParseOperator(string(text))
	if !ok {
		return fmt.Errorf("unknown operator %q", text)
	}
	*o = op
	return nil
}

// ParseOperator maps "+", "-", "*" and "/" to operators.
func ParseOperator(s string) (Operator, bool) {
	switch s {
	case "+":
		return OpAdd, true
	case "-":
		return OpSubtract, true
	case "*":
		return OpMultiply, true
	case "/":
		return OpDivide, true
	}
	return OpNone, false
}

// State is the explicit machine state. The awaiting-new-entry flag is true
// in OperatorChosen and Result.
//
//	Idle           --digit-->    Entering
//	Entering       --operator--> OperatorChosen
//	OperatorChosen --digit-->    Entering
//	Entering       --equals-->   Result
//	Result         --digit-->    Entering
//	Result         --operator--> OperatorChosen
//	any            --clear-->    Idle
type State int

const (
	StateIdle State = iota
	StateEntering
	StateOperatorChosen
	StateResult
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEntering:
		return "entering"
	case StateOperatorChosen:
		return "operator"
	case StateResult:
		return "result"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	for _, candidate := range []State{StateIdle, StateEntering, StateOperatorChosen, StateResult} {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown state %q", text)
}

// ActionKind discriminates Action.
type ActionKind int

const (
	ActionDigit ActionKind = iota
	ActionDecimal
	ActionOperator
	ActionEquals
	ActionClear
	ActionToggleSign
	ActionPercent
)

// Action is one button press.
type Action struct {
	Kind     ActionKind
	Digit    byte
	Operator Operator
}

func Digit(d byte) Action       { return Action{Kind: ActionDigit, Digit: d} }
func Decimal() Action           { return Action{Kind: ActionDecimal} }
func Choose(op Operator) Action { return Action{Kind: ActionOperator, Operator: op} }
func Equals() Action            { return Action{Kind: ActionEquals} }
func Clear() Action             { return Action{Kind: ActionClear} }
func ToggleSign() Action        { return Action{Kind: ActionToggleSign} }
func Percent() Action           { return Action{Kind: ActionPercent} }

// Snapshot is a point-in-time copy of a Calculator.
type Snapshot struct {
	Display     string   `json:"display"`
	Entry       string   `json:"entry"`
	Accumulated string   `json:"accumulated"`
	Operator    Operator `json:"operator"`
	State       State    `json:"state"`
}

// AwaitingNewEntry mirrors Calculator.AwaitingNewEntry.
func (s Snapshot) AwaitingNewEntry() bool {
	return s.State == StateOperatorChosen || s.State == StateResult
}
