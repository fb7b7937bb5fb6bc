package utils

import "fmt"

// qrisEndpoint is the QR image service used to simulate the payment
// gateway.  The rendered QR encodes the booking reference only.
const qrisEndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// QRISImageURL builds the down-payment QR link for a booking.  The QR
// payload is the literal string WEDSPACE-BOOKING-{id}, which the
// operator scans to match incoming transfers to bookings.
func QRISImageURL(bookingID uint64) string {
	return fmt.Sprintf("%s?size=150x150&data=WEDSPACE-BOOKING-%d", qrisEndpoint, bookingID)
}
