package importer

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"Cantilever/internal/calc/beam"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func header() []interface{} {
	out := make([]interface{}, len(Columns))
	for i, c := range Columns {
		out[i] = c
	}
	return out
}

func TestImportBeams(t *testing.T) {
	t.Parallel()

	buf := workbook(t, [][]interface{}{
		header(),
		{100, 50, "yes", "", 210, 1, 1000},
		{80, 40, "no", 4, "Aluminum", 2, 100},
		{20, 20, "", 12, 210, 1, 1000},
		{"abc", 50, "yes", "", 210, 1, 1000},
		{},
		{100, 50, "solid", "", "Unobtainium", 1, 1000},
	})

	res, err := ImportBeams(buf)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Rows)
	assert.Equal(t, 2, res.Count)
	require.Len(t, res.Results, 5)

	require.NotNil(t, res.Results[0].Result)
	assert.Equal(t, 2, res.Results[0].Index)
	assert.InDelta(t, 0.381, res.Results[0].Result.MaxDeflectionMM, 5e-4)

	require.NotNil(t, res.Results[1].Result)

	assert.Equal(t, "invalid_geometry", res.Results[2].Kind)
	assert.Contains(t, res.Results[3].Error, "height_mm")
	assert.Equal(t, 7, res.Results[4].Index)
	assert.Contains(t, res.Results[4].Error, "Unobtainium")
}

func TestImportBeamsEmpty(t *testing.T) {
	t.Parallel()

	_, err := ImportBeams(workbook(t, [][]interface{}{header()}))
	assert.Error(t, err)

	_, err = ImportBeams(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

func TestWriteCurve(t *testing.T) {
	t.Parallel()

	in := beam.Input{HeightMM: 100, WidthMM: 50, IsSolid: true, ModulusGPa: 210, LengthM: 1, ForceN: 1000, Samples: 5}
	out, err := beam.Calculate(in)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCurve(&buf, in, out))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(CurveSheet)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, []string{"Position x (m)", "Deflection (mm)"}, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "1", rows[5][0])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	assert.Equal(t, "Max deflection", summary[len(summary)-1][0])
}

func TestHandlerBeam(t *testing.T) {
	t.Parallel()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "beams.xlsx")
	require.NoError(t, err)
	_, err = part.Write(workbook(t, [][]interface{}{header(), {100, 50, "yes", "", "Steel", 1, 1000}}).Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/beam/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Beam(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"count":1`)
}

func TestHandlerExport(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	body := `{"height_mm":100,"width_mm":50,"is_solid":true,"material":"Steel","length_m":1,"force_n":1000,"samples":3}`
	(&Handler{}).Export(rec, httptest.NewRequest(http.MethodPost, "/api/user/tools/beam/export", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "deflection.xlsx")
	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(CurveSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 4)
}
