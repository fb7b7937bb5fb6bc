package model

import (
    "time"

    "github.com/shopspring/decimal"
)

// Booking status values.  A booking is inserted as pending; moving it
// to completed (after the event) or cancelled is an operator action
// performed outside this service.  Only completed is ever read back
// here, by the review eligibility check.
const (
    BookingStatusPending   = "pending"
    BookingStatusCompleted = "completed"
    BookingStatusCancelled = "cancelled"
)

// Booking mirrors the `bookings` table.  TotalPrice is copied from the
// venue price at booking time; DPAmount is exactly half of it.  The
// QRIS image URL is filled in right after insert, once the generated
// booking ID is known.
//
// Fields:
//  ID           – primary key identifier.
//  UserID       – user who made the booking.
//  VenueID      – venue being booked.
//  BookingDate  – date of the wedding event.
//  TotalPrice   – venue price at booking time.
//  DPAmount     – down payment, TotalPrice × 0.5.
//  Status       – booking_status enum (see constants above).
//  QRISImageURL – QR code link for the down payment (nullable).
//  CreatedAt    – creation timestamp.
type Booking struct {
    ID           uint64          `json:"id"`             // bookings.id
    UserID       uint64          `json:"user_id"`        // bookings.user_id
    VenueID      uint64          `json:"venue_id"`       // bookings.venue_id
    BookingDate  time.Time       `json:"booking_date"`   // bookings.booking_date
    TotalPrice   decimal.Decimal `json:"total_price"`    // bookings.total_price
    DPAmount     decimal.Decimal `json:"dp_amount"`      // bookings.dp_amount
    Status       string          `json:"booking_status"` // bookings.booking_status
    QRISImageURL *string         `json:"qris_image_url"` // bookings.qris_image_url (nullable)
    CreatedAt    time.Time       `json:"created_at"`     // bookings.created_at
}

// BookingWithVenue is a booking annotated with its venue's name and
// image, returned by the per-user booking list.
type BookingWithVenue struct {
    Booking
    VenueName  string `json:"venue_name"`
    VenueImage string `json:"venue_image"`
}
