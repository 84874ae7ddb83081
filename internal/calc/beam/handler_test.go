package beam

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Cantilever/internal/calc/calcerr"
	"Cantilever/internal/calc/loads"
)

func TestHandlerCalc(t *testing.T) {
	t.Parallel()

	body := `{"height_mm":100,"width_mm":50,"is_solid":true,"material":"Steel","length_m":1,"force_n":1000,"samples":11}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/beam/calc", strings.NewReader(body))
	(&Handler{}).Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp struct {
		Result Result  `json:"result"`
		Curve  []Point `json:"curve"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, -1000.0, resp.Result.MaxMomentNM)
	assert.InDelta(t, 0.381, resp.Result.MaxDeflectionMM, 5e-4)
	require.Len(t, resp.Curve, 11)
	assert.Equal(t, 1.0, resp.Curve[10].PositionM)
}

func TestHandlerCalcErrors(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name   string
		body   string
		status int
		kind   string
	}{
		{"bad json", `{`, http.StatusBadRequest, ""},
		{"degenerate hollow", `{"height_mm":20,"width_mm":20,"wall_thickness_mm":12,"modulus_gpa":210,"length_m":1,"force_n":10}`, http.StatusUnprocessableEntity, "invalid_geometry"},
		{"negative force", `{"height_mm":20,"width_mm":20,"is_solid":true,"modulus_gpa":210,"length_m":1,"force_n":-10}`, http.StatusUnprocessableEntity, "invalid_load"},
		{"bad load method", `{"height_mm":20,"width_mm":20,"is_solid":true,"modulus_gpa":210,"length_m":1,"load":{"method":"ACI","permanent_kn":1}}`, http.StatusUnprocessableEntity, "invalid_load"},
		{"unknown material", `{"height_mm":20,"width_mm":20,"is_solid":true,"material":"Unobtainium","length_m":1,"force_n":10}`, http.StatusUnprocessableEntity, "invalid_geometry"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/tools/beam/calc", strings.NewReader(tc.body))
			(&Handler{}).Calc(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			var resp map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.NotEmpty(t, resp["error"])
			assert.Equal(t, tc.kind, resp["kind"])
		})
	}
}

func TestRequestResolve(t *testing.T) {
	t.Parallel()

	in, err := Request{Input: Input{ModulusGPa: 0}, Material: "aluminum"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 69.0, in.ModulusGPa)

	in, err = Request{Input: Input{ModulusGPa: 150}, Material: "Steel"}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 150.0, in.ModulusGPa, "explicit modulus wins")
}

func TestRequestResolveLoad(t *testing.T) {
	t.Parallel()

	load := &loads.Input{Method: loads.MethodEC7, PermanentKN: 1, LongTermKN: 0.2}

	in, err := Request{Load: load}.Resolve()
	require.NoError(t, err)
	assert.InDelta(t, (1.35*1+1.5*0.2)*1000, in.ForceN, 1e-9)

	in, err = Request{Input: Input{ForceN: 500}, Load: load}.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 500.0, in.ForceN, "explicit force wins")

	_, err = Request{Load: &loads.Input{PermanentKN: -1}}.Resolve()
	assert.ErrorIs(t, err, calcerr.ErrInvalidLoad)
}

func TestHandlerCalcWithLoad(t *testing.T) {
	t.Parallel()

	body := `{"height_mm":100,"width_mm":50,"is_solid":true,"material":"Steel","length_m":1,"samples":3,"load":{"method":"SP24","permanent_kn":1}}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/tools/beam/calc", strings.NewReader(body))
	(&Handler{}).Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Result Result `json:"result"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.InDelta(t, 1100.0, resp.Result.ReactionForceN, 1e-9)
	assert.InDelta(t, -1100.0, resp.Result.MaxMomentNM, 1e-9)
}
