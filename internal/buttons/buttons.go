package buttons

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Rorical/CalcPad/internal/calculator"
)

// ErrUnknownButton is returned when a button name cannot be resolved
var ErrUnknownButton = errors.New("unknown button")

// Kind groups buttons for styling
type Kind int

const (
	Digit Kind = iota
	Operator
	Function
	Equals
)

// Button is a single on-screen key
type Button struct {
	ID     string            `json:"id"`
	Label  string            `json:"label"`
	Kind   Kind              `json:"-"`
	Span   int               `json:"span"`
	Action calculator.Action `json:"-"`
}

func digit(d byte) Button {
	return Button{ID: "button" + string(d), Label: string(d), Kind: Digit, Span: 1, Action: calculator.Digit(d)}
}

func operator(id, label string, op calculator.Operator) Button {
	return Button{ID: id, Label: label, Kind: Operator, Span: 1, Action: calculator.Choose(op)}
}

func function(id, label string, action calculator.Action) Button {
	return Button{ID: id, Label: label, Kind: Function, Span: 1, Action: action}
}

var (
	buttonAC        = function("buttonAC", "AC", calculator.Clear())
	buttonPlusMinus = function("buttonPlusMinus", "±", calculator.ToggleSign())
	buttonPercent   = function("buttonPercent", "%", calculator.Percent())
	buttonDivide    = operator("buttonDivide", "÷", calculator.OpDivide)
	buttonMultiply  = operator("buttonMultiply", "×", calculator.OpMultiply)
	buttonMinus     = operator("buttonMinus", "−", calculator.OpSubtract)
	buttonPlus      = operator("buttonPlus", "+", calculator.OpAdd)
	buttonDot       = Button{ID: "buttonDot", Label: ".", Kind: Digit, Span: 1, Action: calculator.Decimal()}
	buttonEqual     = Button{ID: "buttonEqual", Label: "=", Kind: Equals, Span: 1, Action: calculator.Equals()}
	buttonZero      = Button{ID: "button0", Label: "0", Kind: Digit, Span: 2, Action: calculator.Digit('0')}
)

// Layout returns the keypad rows, top to bottom.
func Layout() [][]Button {
	return [][]Button{
		{buttonAC, buttonPlusMinus, buttonPercent, buttonDivide},
		{digit('7'), digit('8'), digit('9'), buttonMultiply},
		{digit('4'), digit('5'), digit('6'), buttonMinus},
		{digit('1'), digit('2'), digit('3'), buttonPlus},
		{buttonZero, buttonDot, buttonEqual},
	}
}

// aliases maps text-surface names onto canonical button IDs
var aliases = map[string]string{
	".":   "buttonDot",
	"+":   "buttonPlus",
	"-":   "buttonMinus",
	"*":   "buttonMultiply",
	"x":   "buttonMultiply",
	"/":   "buttonDivide",
	"=":   "buttonEqual",
	"ac":  "buttonAC",
	"c":   "buttonAC",
	"+/-": "buttonPlusMinus",
	"neg": "buttonPlusMinus",
	"%":   "buttonPercent",
}

var byID = func() map[string]Button {
	m := make(map[string]Button)
	for _, row := range Layout() {
		for _, b := range row {
			m[strings.ToLower(b.ID)] = b
		}
	}
	return m
}()

// Lookup resolves a canonical ID (case-insensitive), a label or an alias.
func Lookup(name string) (Button, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if b, ok := byID[key]; ok {
		return b, true
	}
	if id, ok := aliases[key]; ok {
		return byID[strings.ToLower(id)], true
	}
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return byID["button"+key], true
	}
	label := strings.TrimSpace(name)
	for _, b := range byID {
		if b.Label == label {
			return b, true
		}
	}
	return Button{}, false
}

// Press resolves name and dispatches its action on calc.
func Press(calc *calculator.Calculator, name string) (Button, error) {
	b, ok := Lookup(name)
	if !ok {
		return Button{}, fmt.Errorf("%w: %q", ErrUnknownButton, name)
	}
	calc.Dispatch(b.Action)
	return b, nil
}
