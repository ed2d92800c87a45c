package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/stringlift/internal/form"
	"github.com/alexiusacademia/stringlift/internal/lift"
	"github.com/alexiusacademia/stringlift/internal/server"
	"github.com/alexiusacademia/stringlift/internal/store"
	"github.com/alexiusacademia/stringlift/internal/units"
)

func newTestServer(t *testing.T) (*httptest.Server, *store.Store) {
	t.Helper()
	st := store.New(memfs.New())
	ts := httptest.NewServer(server.New(st).Handler())
	t.Cleanup(ts.Close)
	return ts, st
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", strings.NewReader(string(b)))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

type liftBody struct {
	Result      *lift.Result  `json:"result"`
	Failure     *form.Failure `json:"failure"`
	Lift        string        `json:"lift"`
	Pressure    string        `json:"pressure"`
	Breakdown   string        `json:"breakdown"`
	PipePresent bool          `json:"pipe_present"`
}

func TestLiftDefaultState(t *testing.T) {
	ts, st := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/lift", form.Default())
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body liftBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Result)
	assert.Nil(t, body.Failure)
	assert.InDelta(t, 103.614062, body.Result.LiftForceMetricTons, 1e-5)
	assert.Equal(t, "103.6 tons", body.Lift)
	assert.Equal(t, "345 bar", body.Pressure)
	assert.True(t, body.PipePresent)
	assert.Contains(t, body.Breakdown, "Calculation: F = p × A")

	saved, ok, err := st.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, form.Default(), saved)
}

func TestLiftRejectedInput(t *testing.T) {
	ts, st := newTestServer(t)

	in := form.Default()
	in.Pressure = "-5"
	resp := postJSON(t, ts.URL+"/api/lift", in)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body liftBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Result)
	require.NotNil(t, body.Failure)
	assert.Equal(t, form.MsgOutOfRange, body.Failure.Message)
	assert.Equal(t, "— tons", body.Lift)
	assert.Empty(t, body.Breakdown)

	// rejected input is still remembered
	saved, ok, err := st.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "-5", saved.Pressure)
}

func TestLiftInfinitePressure(t *testing.T) {
	ts, _ := newTestServer(t)

	in := form.Default()
	in.Pressure = "1/0"
	resp := postJSON(t, ts.URL+"/api/lift", in)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	var body liftBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Nil(t, body.Result)
	require.NotNil(t, body.Failure)
	assert.Equal(t, form.MsgNotNumeric, body.Failure.Message)
	assert.Equal(t, form.FieldPressure, body.Failure.Field)
	assert.Equal(t, "— tons", body.Lift)
	assert.Equal(t, "— bar", body.Pressure)
}

func TestLiftBadBody(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/lift", "application/json", strings.NewReader(`{"bogus":1}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStateRoundTrip(t *testing.T) {
	ts, _ := newTestServer(t)

	get := func() form.State {
		resp, err := http.Get(ts.URL + "/api/state")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
		var s form.State
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
		return s
	}

	assert.Equal(t, form.Default(), get())

	custom := form.Default()
	custom.Pressure = "5000"
	custom.PressureUnit = "psi"
	b, err := json.Marshal(custom)
	require.NoError(t, err)
	req, err := http.NewRequest(http.MethodPut, ts.URL+"/api/state", strings.NewReader(string(b)))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, custom, get())

	req, err = http.NewRequest(http.MethodDelete, ts.URL+"/api/state", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, form.Default(), get())
}

func TestStateInServerCustomUnit(t *testing.T) {
	st := store.New(memfs.New())
	require.NoError(t, st.Save(form.Default()))
	ts := httptest.NewServer(server.New(st, server.WithCustomUnit(units.Millimeter)).Handler())
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/api/state")
	require.NoError(t, err)
	defer resp.Body.Close()
	var got form.State
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "244.475", got.OuterDCustom)
	assert.Equal(t, "mm", got.CustomUnit)

	// a submitted form without a unit is in the server's unit
	in := form.Default()
	in.CustomUnit = ""
	in.OuterDCustom = "244.475"
	in.InnerDCustom = "149.225"
	lr := postJSON(t, ts.URL+"/api/lift", in)
	require.Equal(t, http.StatusOK, lr.StatusCode)
	var body liftBody
	require.NoError(t, json.NewDecoder(lr.Body).Decode(&body))
	assert.Equal(t, "103.6 tons", body.Lift)
}

func TestConvertPressure(t *testing.T) {
	ts, _ := newTestServer(t)

	resp := postJSON(t, ts.URL+"/api/convert-pressure", map[string]string{
		"pressure": "345", "from": "bar", "to": "psi",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Pressure string `json:"pressure"`
		Unit     string `json:"unit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "5004", body.Pressure)
	assert.Equal(t, "psi", body.Unit)

	resp = postJSON(t, ts.URL+"/api/convert-pressure", map[string]string{
		"pressure": "1", "from": "atm", "to": "psi",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSizes(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/sizes")
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string][]struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body["outer"])
	require.NotEmpty(t, body["inner"])
	assert.Equal(t, "0", body["inner"][0].Value)
}

func TestSchematic(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/schematic.svg")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))

	var sb bytes.Buffer
	_, err = sb.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, sb.String(), `id="liftBoxValue"`)
	assert.Contains(t, sb.String(), "103.6 tons")
}

func TestIndexAndSubmit(t *testing.T) {
	ts, st := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	require.NoError(t, err)
	var sb bytes.Buffer
	_, err = sb.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	page := sb.String()
	assert.Contains(t, page, `id="liftValue">103.6 tons`)
	assert.Contains(t, page, "<svg")

	vals := url.Values{
		"outerD":        {"0.244475"},
		"outerD_custom": {""},
		"innerD":        {"0"},
		"innerD_custom": {""},
		"pressure":      {"abc"},
		"pressureUnit":  {"bar"},
	}
	resp, err = http.PostForm(ts.URL+"/", vals)
	require.NoError(t, err)
	sb.Reset()
	_, err = sb.ReadFrom(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)

	// redirected back to the page
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, sb.String(), form.MsgNotNumeric)
	assert.NotContains(t, sb.String(), "<svg")

	saved, ok, err := st.Load()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "abc", saved.Pressure)
}

func TestUnknownRoute(t *testing.T) {
	ts, _ := newTestServer(t)

	resp, err := http.Get(ts.URL + "/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
