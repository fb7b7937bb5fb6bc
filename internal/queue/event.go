// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking transaction commits.
// It contains enough information for downstream consumers to log,
// notify the venue over WhatsApp, or trigger analytics without
// querying the primary database.  Monetary amounts are decimal
// strings, never floats.
type BookingCreatedEvent struct {
    BookingID    uint64 `json:"booking_id"`
    UserID       uint64 `json:"user_id"`
    VenueID      uint64 `json:"venue_id"`
    VenueName    string `json:"venue_name"`
    BookingDate  string `json:"booking_date"`
    TotalPrice   string `json:"total_price"`
    DPAmount     string `json:"dp_amount"`
    QRISImageURL string `json:"qris_image_url"`
    Status       string `json:"booking_status"`
    CreatedAt    string `json:"created_at"`
}
