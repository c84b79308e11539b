// This file defines handlers for the public tour catalog. These routes
// allow unauthenticated users to browse tours; the catalog is read-only
// from the application's perspective, so only list and detail exist.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/model"
	"github.com/iliyamo/tour-booking/internal/repository"
)

// TourHandler serves the public catalog endpoints.
type TourHandler struct {
	Tours TourStore
}

func NewTourHandler(t TourStore) *TourHandler { return &TourHandler{Tours: t} }

// tourResp is the JSON shape of a tour. Field names are part of the client
// contract (camelCase like the rest of the API).
type tourResp struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Duration    string `json:"duration"`
	Image       string `json:"image"`
}

func toTourResp(t model.Tour) tourResp {
	return tourResp{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Price:       t.PriceCents,
		Duration:    t.Duration,
		Image:       t.Image,
	}
}

// List returns the full catalog in storage order.
func (h *TourHandler) List(c echo.Context) error {
	tours, err := h.Tours.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]tourResp, 0, len(tours))
	for _, t := range tours {
		out = append(out, toTourResp(t))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns a single tour by id, 404 when it does not exist.
func (h *TourHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	t, err := h.Tours.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tour not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, toTourResp(t))
}
