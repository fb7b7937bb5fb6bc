package handler

import (
    "context"
    "errors"
    "log"
    "net/http"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"

    "github.com/wedspace/wedspace-api/internal/model"
    "github.com/wedspace/wedspace-api/internal/queue"
    "github.com/wedspace/wedspace-api/internal/repository"
    queue_publisher "github.com/wedspace/wedspace-api/internal/service"
    "github.com/wedspace/wedspace-api/internal/utils"
)

// depositRate is the down-payment fraction of the venue price.  Kept
// as an exact decimal so dp_amount never drifts from price × 0.5.
var depositRate = decimal.New(5, -1)

// BookingHandler groups the repositories required to create bookings
// and list a user's bookings.  The create path runs inside a single
// transaction: availability check, booking insert, conditional venue
// flag flip and QRIS link update either all commit or all roll back.
type BookingHandler struct {
	Venues   *repository.VenueRepo
	Bookings *repository.BookingRepo
	// Publish sends the post-commit booking event.  Best effort: a
	// publish failure is logged and never fails the request.  May be
	// nil to disable publishing.
	Publish func(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// NewBookingHandler constructs a new BookingHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewBookingHandler(venues *repository.VenueRepo, bookings *repository.BookingRepo) *BookingHandler {
	if venues == nil || bookings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{
		Venues:   venues,
		Bookings: bookings,
		Publish:  queue_publisher.PublishBookingCreated,
	}
}

type createBookingReq struct {
	UserID      uint64 `json:"user_id"`
	VenueID     uint64 `json:"venue_id"`
	BookingDate string `json:"booking_date"`
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Semua field harus diisi"})
	}
	if req.UserID == 0 || req.VenueID == 0 || req.BookingDate == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Semua field harus diisi"})
	}
	bookingDate, err := parseBookingDate(req.BookingDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Format tanggal tidak valid"})
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

	venueName, price, isBooked, err := h.Venues.GetForBookingTx(ctx, tx, req.VenueID)
	if err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Venue tidak ditemukan"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	if isBooked {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Venue sudah dibooking"})
	}

	booking := &model.Booking{
		UserID:      req.UserID,
		VenueID:     req.VenueID,
		BookingDate: bookingDate,
		TotalPrice:  price,
		DPAmount:    price.Mul(depositRate),
		Status:      model.BookingStatusPending,
	}
	if err := h.Bookings.CreateTx(ctx, tx, booking); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	// Conditional update: a concurrent booking that got here first
	// leaves zero rows to update, and this transaction rolls back.
	if err := h.Venues.MarkBookedTx(ctx, tx, req.VenueID); err != nil {
		if errors.Is(err, repository.ErrVenueBooked) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "Venue sudah dibooking"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	qrisURL := utils.QRISImageURL(booking.ID)
	if err := h.Bookings.SetQRISURLTx(ctx, tx, booking.ID, qrisURL); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	booking.QRISImageURL = &qrisURL

	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	committed = true

	if h.Publish != nil {
		ev := queue.BookingCreatedEvent{
			BookingID:    booking.ID,
			UserID:       booking.UserID,
			VenueID:      booking.VenueID,
			VenueName:    venueName,
			BookingDate:  booking.BookingDate.Format("2006-01-02"),
			TotalPrice:   booking.TotalPrice.String(),
			DPAmount:     booking.DPAmount.String(),
			QRISImageURL: qrisURL,
			Status:       booking.Status,
			CreatedAt:    booking.CreatedAt.UTC().Format(time.RFC3339),
		}
		go func() {
			pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer pubCancel()
			if err := h.Publish(pubCtx, ev); err != nil {
				log.Printf("booking event publish failed: %v", err)
			}
		}()
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Booking berhasil dibuat",
		"booking":  booking,
		"qris_url": qrisURL,
	})
}

// ListUserBookings handles GET /api/bookings/user/:id.  An unknown
// user id is not an error; it yields an empty list, zero included.
func (h *BookingHandler) ListUserBookings(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Semua field harus diisi"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, bookings)
}

// parseBookingDate accepts the plain date the mobile client sends and,
// as a fallback, a full RFC3339 timestamp.
func parseBookingDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
