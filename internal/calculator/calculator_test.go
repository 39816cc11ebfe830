package calculator

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingDisplay struct {
	shown []string
}

func (r *recordingDisplay) Show(text string) { r.shown = append(r.shown, text) }

func (r *recordingDisplay) last() string {
	if len(r.shown) == 0 {
		return ""
	}
	return r.shown[len(r.shown)-1]
}

// press feeds button symbols through Dispatch.
func press(c *Calculator, keys ...string) {
	for _, k := range keys {
		switch k {
		case ".":
			c.Dispatch(Decimal())
		case "=":
			c.Dispatch(Equals())
		case "AC":
			c.Dispatch(Clear())
		case "+/-":
			c.Dispatch(ToggleSign())
		case "%":
			c.Dispatch(Percent())
		default:
			if op, ok := ParseOperator(k); ok {
				c.Dispatch(Choose(op))
				continue
			}
			for i := 0; i < len(k); i++ {
				c.Dispatch(Digit(k[i]))
			}
		}
	}
}

func TestNewShowsZero(t *testing.T) {
	d := &recordingDisplay{}
	c := New(d)

	assert.Equal(t, "0", c.Display())
	assert.Equal(t, []string{"0"}, d.shown)
	assert.Equal(t, StateIdle, c.State())
	assert.False(t, c.AwaitingNewEntry())
}

func TestAppendDigit(t *testing.T) {
	c := New(nil)
	c.ClearAll()

	c.AppendDigit('5')
	assert.Equal(t, "5", c.Display())
	c.AppendDigit('0')
	assert.Equal(t, "50", c.Display())
	assert.Equal(t, StateEntering, c.State())
}

func TestAppendDigitRejectsSecondDecimal(t *testing.T) {
	c := New(nil)
	press(c, "1", ".", "2", ".", "3", ".")

	assert.Equal(t, "1.23", c.Entry())
}

func TestAppendDigitNeverHoldsTwoDecimals(t *testing.T) {
	sequences := [][]byte{
		[]byte("..."),
		[]byte("0.0.0"),
		[]byte("12.34.56."),
		[]byte(".5.5"),
	}
	for _, seq := range sequences {
		c := New(nil)
		for _, b := range seq {
			c.AppendDigit(b)
		}
		dots := 0
		for i := 0; i < len(c.Entry()); i++ {
			if c.Entry()[i] == '.' {
				dots++
			}
		}
		assert.LessOrEqual(t, dots, 1, "sequence %q", seq)
	}
}

func TestAppendDigitLeadingZero(t *testing.T) {
	c := New(nil)
	press(c, "0", "0", "7")
	assert.Equal(t, "7", c.Entry())

	c.ClearAll()
	press(c, "0", ".", "5")
	assert.Equal(t, "0.5", c.Entry())
}

func TestAppendDigitIgnoresOtherSymbols(t *testing.T) {
	c := New(nil)
	c.AppendDigit('a')
	c.AppendDigit('+')

	assert.Equal(t, "", c.Entry())
	assert.Equal(t, StateIdle, c.State())
}

func TestAppendDigitStartsFreshEntryAfterOperator(t *testing.T) {
	c := New(nil)
	press(c, "3", "+", ".")

	assert.Equal(t, ".", c.Entry())
	assert.Equal(t, ".", c.Display())
	assert.False(t, c.AwaitingNewEntry())
}

func TestChooseOperator(t *testing.T) {
	d := &recordingDisplay{}
	c := New(d)
	press(c, "3")

	c.ChooseOperator(OpAdd)

	assert.Equal(t, "3 +", c.Display())
	assert.Equal(t, "3 +", d.last())
	assert.Equal(t, "", c.Entry())
	assert.Equal(t, "3", c.Accumulated())
	assert.Equal(t, OpAdd, c.Operator())
	assert.True(t, c.AwaitingNewEntry())
	assert.Equal(t, StateOperatorChosen, c.State())
}

func TestChooseOperatorWithNothingIsNoop(t *testing.T) {
	d := &recordingDisplay{}
	c := New(d)

	c.ChooseOperator(OpMultiply)

	assert.Equal(t, OpNone, c.Operator())
	assert.Equal(t, StateIdle, c.State())
	assert.Equal(t, []string{"0"}, d.shown)
}

func TestChooseOperatorReplacesPendingOperator(t *testing.T) {
	c := New(nil)
	press(c, "8", "+", "-")

	assert.Equal(t, "8 -", c.Display())
	assert.Equal(t, OpSubtract, c.Operator())
	assert.Equal(t, "8", c.Accumulated())
}

func TestChooseOperatorRejectsNone(t *testing.T) {
	c := New(nil)
	press(c, "4")
	c.ChooseOperator(OpNone)

	assert.Equal(t, "4", c.Display())
	assert.Equal(t, StateEntering, c.State())
}

func TestChainedEvaluationIsLeftToRight(t *testing.T) {
	c := New(nil)
	press(c, "3", "+", "4", "*")
	assert.Equal(t, "7 *", c.Display())

	press(c, "2")
	c.Calculate()

	assert.Equal(t, "14", c.Entry())
	assert.Equal(t, "14", c.Display())
	assert.Equal(t, StateResult, c.State())
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"add", []string{"2", "+", "3", "="}, "5"},
		{"subtract", []string{"2", "-", "5", "="}, "-3"},
		{"multiply", []string{"1.5", "*", "4", "="}, "6"},
		{"divide", []string{"1", "/", "4", "="}, "0.25"},
		{"repeating fraction", []string{"1", "/", "3", "="}, "0.3333333333333333"},
		{"float tail", []string{"0.1", "+", "0.2", "="}, "0.30000000000000004"},
		{"divide by zero", []string{"5", "/", "0", "="}, "Error"},
		{"divide by zero point zero", []string{"5", "/", "0.0", "="}, "Error"},
		{"trailing dot operand", []string{"5.", "+", "1", "="}, "6"},
		{"leading dot operand", []string{".5", "+", ".5", "="}, "1"},
		{"large product", []string{"100000000000", "*", "100000000000", "="}, "1e+22"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(nil)
			press(c, tt.keys...)

			assert.Equal(t, tt.want, c.Entry())
			assert.Equal(t, tt.want, c.Display())
			assert.Equal(t, OpNone, c.Operator())
			assert.Equal(t, "", c.Accumulated())
			assert.True(t, c.AwaitingNewEntry())
		})
	}
}

func TestCalculateDivideByZeroDirect(t *testing.T) {
	c := New(nil)
	c.entry = "5"
	c.ChooseOperator(OpDivide)
	c.AppendDigit('0')

	c.Calculate()

	assert.Equal(t, ErrorText, c.Entry())
	assert.Equal(t, StateResult, c.State())
}

func TestCalculateAbortsSilently(t *testing.T) {
	tests := []struct {
		name string
		keys []string
	}{
		{"no operator", []string{"5"}},
		{"missing second operand", []string{"5", "+"}},
		{"dot operand", []string{"5", "+", "."}},
		{"error operand", []string{"5", "/", "0", "=", "+", "1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &recordingDisplay{}
			c := New(d)
			press(c, tt.keys...)
			before := c.Snapshot()
			shown := len(d.shown)

			c.Calculate()

			assert.Equal(t, before, c.Snapshot())
			assert.Len(t, d.shown, shown)
		})
	}
}

func TestResultStartsFreshEntry(t *testing.T) {
	c := New(nil)
	press(c, "2", "+", "2", "=", "9")

	assert.Equal(t, "9", c.Entry())
	assert.Equal(t, StateEntering, c.State())
}

func TestOperatorAfterResultUsesResult(t *testing.T) {
	c := New(nil)
	press(c, "2", "+", "2", "=", "*")
	assert.Equal(t, "4 *", c.Display())

	press(c, "3", "=")
	assert.Equal(t, "12", c.Entry())
}

func TestErrorBehavesAsEntryUntilCleared(t *testing.T) {
	c := New(nil)
	press(c, "5", "/", "0", "=", "+")

	assert.Equal(t, "Error +", c.Display())
	assert.Equal(t, "Error", c.Accumulated())

	press(c, "AC")
	assert.Equal(t, "0", c.Display())
}

func TestClearAllFromAnyState(t *testing.T) {
	sequences := [][]string{
		{},
		{"1", "2"},
		{"1", "+"},
		{"1", "+", "2"},
		{"1", "+", "2", "="},
		{"5", "/", "0", "="},
	}
	for _, keys := range sequences {
		d := &recordingDisplay{}
		c := New(d)
		press(c, keys...)

		c.ClearAll()

		assert.Equal(t, Snapshot{Display: "0"}, c.Snapshot(), "keys %v", keys)
		assert.Equal(t, "0", d.last())
		assert.False(t, c.AwaitingNewEntry())
	}
}

func TestToggleSign(t *testing.T) {
	c := New(nil)
	press(c, "12")

	c.ToggleSign()
	assert.Equal(t, "-12", c.Display())
	c.ToggleSign()
	assert.Equal(t, "12", c.Display())
}

func TestToggleSignNoop(t *testing.T) {
	for _, keys := range [][]string{{}, {"0"}, {"3", "+"}} {
		d := &recordingDisplay{}
		c := New(d)
		press(c, keys...)
		display := c.Display()
		shown := len(d.shown)

		c.ToggleSign()

		assert.Equal(t, display, c.Display(), "keys %v", keys)
		assert.Len(t, d.shown, shown)
	}
}

func TestToggleSignKeepsResultState(t *testing.T) {
	c := New(nil)
	press(c, "2", "*", "3", "=", "+/-")

	assert.Equal(t, "-6", c.Entry())
	assert.True(t, c.AwaitingNewEntry())
}

func TestToggleSignOnError(t *testing.T) {
	c := New(nil)
	press(c, "1", "/", "0", "=", "+/-")

	assert.Equal(t, "NaN", c.Entry())
}

func TestApplyPercentage(t *testing.T) {
	c := New(nil)
	press(c, "50")

	c.ApplyPercentage()

	assert.Equal(t, "0.5", c.Entry())
	assert.Equal(t, "0.5", c.Display())
}

func TestApplyPercentageEmptyIsNoop(t *testing.T) {
	d := &recordingDisplay{}
	c := New(d)

	c.ApplyPercentage()

	assert.Equal(t, "", c.Entry())
	assert.Len(t, d.shown, 1)
}

func TestDispatchUnknownKindIsNoop(t *testing.T) {
	c := New(nil)
	press(c, "7")
	before := c.Snapshot()

	c.Dispatch(Action{Kind: ActionKind(99)})

	assert.Equal(t, before, c.Snapshot())
}

func TestSnapshotJSON(t *testing.T) {
	c := New(nil)
	press(c, "3", "+")

	data, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)
	assert.JSONEq(t, `{"display":"3 +","entry":"","accumulated":"3","operator":"+","state":"operator"}`, string(data))
}

func TestSnapshotJSONRoundTrip(t *testing.T) {
	c := New(nil)
	press(c, "9", "/", "3", "=")

	data, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)

	var got Snapshot
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, c.Snapshot(), got)
}

func TestOutOfRangeEntryIsInfinite(t *testing.T) {
	huge := "1" + strings.Repeat("0", 320)

	c := New(nil)
	press(c, huge, "+", "1", "=")
	assert.Equal(t, "Infinity", c.Entry())
	assert.Equal(t, StateResult, c.State())

	c.ClearAll()
	press(c, huge, "+/-")
	assert.Equal(t, "-Infinity", c.Entry())
}

func TestUnderflowingEntryIsZero(t *testing.T) {
	tiny := "0." + strings.Repeat("0", 400) + "1"

	c := New(nil)
	press(c, tiny, "+", "2", "=")
	assert.Equal(t, "2", c.Entry())
}
