package handler

import (
    "context"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/wedspace/wedspace-api/internal/model"
    "github.com/wedspace/wedspace-api/internal/repository"
)

// ReviewHandler groups the repositories required to create reviews.
// Creating a review and recomputing the venue's aggregate rating run
// in one transaction so the mean never drifts from the review rows.
type ReviewHandler struct {
	Venues   *repository.VenueRepo
	Bookings *repository.BookingRepo
	Reviews  *repository.ReviewRepo
}

// NewReviewHandler constructs a new ReviewHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewReviewHandler(venues *repository.VenueRepo, bookings *repository.BookingRepo, reviews *repository.ReviewRepo) *ReviewHandler {
	if venues == nil || bookings == nil || reviews == nil {
		panic("nil repository passed to NewReviewHandler")
	}
	return &ReviewHandler{Venues: venues, Bookings: bookings, Reviews: reviews}
}

type createReviewReq struct {
	UserID  uint64 `json:"user_id"`
	VenueID uint64 `json:"venue_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// CreateReview handles POST /api/reviews.  Only users holding a
// completed booking for the venue may review it.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User, venue, dan rating harus diisi"})
	}
	if req.UserID == 0 || req.VenueID == 0 || req.Rating == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "User, venue, dan rating harus diisi"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Rating harus antara 1-5"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tx, err := h.Bookings.DB().BeginTx(ctx, nil)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	eligible, err := h.Bookings.HasCompletedTx(ctx, tx, req.UserID, req.VenueID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if !eligible {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Hanya bisa mereview venue yang sudah digunakan"})
	}

	review := &model.Review{
		UserID:  req.UserID,
		VenueID: req.VenueID,
		Rating:  req.Rating,
		Comment: strings.TrimSpace(req.Comment),
	}
	if err := h.Reviews.CreateTx(ctx, tx, review); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if err := h.Venues.RecomputeRatingTx(ctx, tx, req.VenueID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	committed = true

	return c.JSON(http.StatusCreated, echo.Map{"message": "Review berhasil ditambahkan"})
}
