package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/CalcPad/internal/calculator"
	"github.com/Rorical/CalcPad/internal/logging"
)

func newHandler() http.Handler {
	reg := prometheus.NewRegistry()
	return NewHandler(reg, reg, logging.NewNop())
}

func press(t *testing.T, h http.Handler, name string) (int, calculator.Snapshot) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/press/"+url.PathEscape(name), nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var snap calculator.Snapshot
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snap))
	}
	return w.Code, snap
}

func TestPressChainedEvaluation(t *testing.T) {
	h := newHandler()

	var snap calculator.Snapshot
	for _, name := range []string{"3", "buttonPlus", "4", "*", "2"} {
		code, s := press(t, h, name)
		require.Equal(t, http.StatusOK, code, name)
		snap = s
	}
	assert.Equal(t, "2", snap.Display)
	assert.Equal(t, "7", snap.Accumulated)
	assert.Equal(t, calculator.OpMultiply, snap.Operator)

	_, snap = press(t, h, "=")
	assert.Equal(t, "14", snap.Display)
	assert.Equal(t, calculator.StateResult, snap.State)
}

func TestPressUnknownButton(t *testing.T) {
	h := newHandler()

	code, _ := press(t, h, "sqrt")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDisplay(t *testing.T) {
	h := newHandler()
	press(t, h, "5")
	press(t, h, "/")

	req := httptest.NewRequest(http.MethodGet, "/display", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"display":"5 /","entry":"","accumulated":"5","operator":"/","state":"operator"}`, w.Body.String())
}

func TestButtons(t *testing.T) {
	h := newHandler()

	req := httptest.NewRequest(http.MethodGet, "/buttons", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var rows [][]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	assert.Len(t, rows, 5)
	assert.Equal(t, "buttonAC", rows[0][0]["id"])
}

func TestMetrics(t *testing.T) {
	h := newHandler()
	press(t, h, "8")
	press(t, h, "/")
	press(t, h, "0")
	press(t, h, "=")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `calcpad_button_presses_total{button="button8"} 1`)
	assert.Contains(t, body, `calcpad_calculations_total{outcome="division_by_zero"} 1`)
}

func TestConcurrentPressesAreSerialised(t *testing.T) {
	s := NewSession(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Press("1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, strings.Repeat("1", 50), s.Snapshot().Entry)
}
