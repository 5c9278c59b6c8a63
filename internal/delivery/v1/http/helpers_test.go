package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.Wrap("x", e.ErrInvalidItemID), http.StatusBadRequest},
		{e.Wrap("x", e.ErrProductNotFound), http.StatusNotFound},
		{e.Wrap("x", e.ErrSessionConflict), http.StatusConflict},
		{errors.New("redis down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, msg := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, tt.err.Error())
		assert.NotEmpty(t, msg)
	}
}

func TestParseBuildForm_AcceptsBracketedNames(t *testing.T) {
	form := url.Values{
		"growing_medium": {"Soil|5.00"},
		"plants":         {"Moss Mat|5.00"},
		"plants[]":       {"Fittonia (Red)|8.00"},
		"care[]":         {"Spray Bottle|3.00"},
	}
	r := httptest.NewRequest(http.MethodPost, "/build-summary", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	req, err := parseBuildForm(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.Equal(t, "Soil|5.00", req.GrowingMedium)
	assert.Empty(t, req.DrainageLayer)
	assert.Equal(t, []string{"Moss Mat|5.00", "Fittonia (Red)|8.00"}, req.Plants)
	assert.Equal(t, []string{"Spray Bottle|3.00"}, req.Care)
	assert.Empty(t, req.Accessories)
}
