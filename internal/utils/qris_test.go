package utils

import "testing"

func TestQRISImageURL(t *testing.T) {
	got := QRISImageURL(42)
	want := "https://api.qrserver.com/v1/create-qr-code/?size=150x150&data=WEDSPACE-BOOKING-42"
	if got != want {
		t.Errorf("QRISImageURL(42) = %q, want %q", got, want)
	}
}
