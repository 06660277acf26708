package testhelpers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vegichef/backend/internal/types"
)

// SampleCatalog is a small catalog shared by handler and integration tests.
func SampleCatalog() []types.CatalogEntry {
	return []types.CatalogEntry{
		{
			Name:        "Jeera Rice",
			Time:        "20 mins",
			Type:        "Lunch",
			Ingredients: []string{"Rice", "Jeera", "Ghee"},
			Steps:       []string{"Wash rice", "Temper jeera in ghee", "Cook rice"},
			Tags:        []string{"quick", "jain"},
		},
		{
			Name:        "Aloo Gobi",
			Time:        "35 mins",
			Type:        "Dinner",
			Ingredients: []string{"Potato", "Cauliflower", "Onion", "Turmeric"},
			Steps:       []string{"Chop", "Fry", "Simmer"},
			Tags:        []string{"healthy"},
		},
		{
			Name:        "Masala Oats",
			Time:        "10 mins",
			Type:        "Breakfast",
			Ingredients: []string{"Oats", "Tomato", "Peas"},
			Steps:       []string{"Boil water", "Add oats and vegetables"},
			Tags:        []string{"quick", "no onion/garlic"},
		},
	}
}

// PerformRequest sends a JSON request through handler and returns the
// recorder. A nil body sends no payload.
func PerformRequest(t *testing.T, handler http.Handler, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals a recorded response body into v.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
