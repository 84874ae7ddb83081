package materials

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulus(t *testing.T) {
	t.Parallel()

	tcs := []struct {
		name string
		want float64
		ok   bool
	}{
		{"Steel", 210, true},
		{"aluminum", 69, true},
		{" TITANIUM ", 114, true},
		{"Copper", 117, true},
		{"Wood", 0, false},
		{"", 0, false},
	}
	for _, tc := range tcs {
		got, ok := Modulus(tc.name)
		assert.Equal(t, tc.ok, ok, tc.name)
		assert.Equal(t, tc.want, got, tc.name)
	}

	e, ok := Modulus(Default)
	require.True(t, ok)
	assert.Equal(t, 210.0, e)
}

func TestListIsSortedCopy(t *testing.T) {
	t.Parallel()

	want := []Material{
		{Name: "Aluminum", ModulusGPa: 69},
		{Name: "Copper", ModulusGPa: 117},
		{Name: "Steel", ModulusGPa: 210},
		{Name: "Titanium", ModulusGPa: 114},
	}
	got := List()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("List() mismatch (-want +got):\n%s", diff)
	}

	got[0].ModulusGPa = 1
	e, _ := Modulus("Aluminum")
	assert.Equal(t, 69.0, e)
}

func TestHandlerList(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	(&Handler{}).List(rec, httptest.NewRequest(http.MethodGet, "/api/materials", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []Material
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Len(t, got, 4)
}
