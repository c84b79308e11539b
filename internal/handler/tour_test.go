package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/tour-booking/internal/handler"
	"github.com/iliyamo/tour-booking/internal/model"
)

func catalogFixture() *fakeTours {
	return &fakeTours{tours: []model.Tour{
		{ID: 1, Name: "Grand Canyon Expedition", Description: "Hiking and camping.", PriceCents: 499, Duration: "3 days", Image: "https://example.com/canyon.jpg"},
		{ID: 2, Name: "Kyoto Cherry Blossom Tour", Description: "Temples and gardens.", PriceCents: 1200, Duration: "5 days", Image: "https://example.com/kyoto.jpg"},
	}}
}

func newTourEcho(tours *fakeTours) *echo.Echo {
	e := echo.New()
	h := handler.NewTourHandler(tours)
	e.GET("/api/tours", h.List)
	e.GET("/api/tours/:id", h.Get)
	return e
}

func getPath(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestTourList(t *testing.T) {
	e := newTourEcho(catalogFixture())

	rec := getPath(e, "/api/tours")
	require.Equal(t, http.StatusOK, rec.Code)

	var tours []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tours))
	require.Len(t, tours, 2)
	assert.Equal(t, "Grand Canyon Expedition", tours[0]["name"])
	assert.EqualValues(t, 499, tours[0]["price"])
	assert.Equal(t, "5 days", tours[1]["duration"])
}

func TestTourList_EmptyCatalog(t *testing.T) {
	e := newTourEcho(&fakeTours{})
	rec := getPath(e, "/api/tours")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestTourGet(t *testing.T) {
	e := newTourEcho(catalogFixture())

	rec := getPath(e, "/api/tours/2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Kyoto Cherry Blossom Tour")

	rec = getPath(e, "/api/tours/99")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = getPath(e, "/api/tours/abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
