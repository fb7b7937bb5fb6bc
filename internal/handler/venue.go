package handler

import (
    "context"
    "errors"
    "net/http"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"

    "github.com/wedspace/wedspace-api/internal/model"
    "github.com/wedspace/wedspace-api/internal/repository"
)

// VenueHandler groups the repositories needed for the public venue
// browsing endpoints.
type VenueHandler struct {
	Venues  *repository.VenueRepo
	Reviews *repository.ReviewRepo
}

// NewVenueHandler constructs a new VenueHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewVenueHandler(venues *repository.VenueRepo, reviews *repository.ReviewRepo) *VenueHandler {
	if venues == nil || reviews == nil {
		panic("nil repository passed to NewVenueHandler")
	}
	return &VenueHandler{Venues: venues, Reviews: reviews}
}

// ListVenues handles GET /api/venues.  The optional query parameters
// min_price, max_price, min_capacity and location combine
// conjunctively; results are ordered by rating descending.
func (h *VenueHandler) ListVenues(c echo.Context) error {
	var f repository.VenueFilter
	if s := strings.TrimSpace(c.QueryParam("min_price")); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Parameter filter tidak valid"})
		}
		f.MinPrice = &d
	}
	if s := strings.TrimSpace(c.QueryParam("max_price")); s != "" {
		d, err := decimal.NewFromString(s)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Parameter filter tidak valid"})
		}
		f.MaxPrice = &d
	}
	if s := strings.TrimSpace(c.QueryParam("min_capacity")); s != "" {
		n, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Parameter filter tidak valid"})
		}
		cap32 := uint32(n)
		f.MinCapacity = &cap32
	}
	f.Location = strings.TrimSpace(c.QueryParam("location"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	venues, err := h.Venues.List(ctx, f)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, venues)
}

// GetVenueDetail handles GET /api/venues/:id.  It returns the venue
// joined with all of its reviews, each annotated with the reviewer's
// username, newest review first.
func (h *VenueHandler) GetVenueDetail(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "Venue tidak ditemukan"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	venue, err := h.Venues.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Venue tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	reviews, err := h.Reviews.ListByVenue(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, model.VenueDetail{Venue: venue, Reviews: reviews})
}
