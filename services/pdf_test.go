package services

import (
	"bytes"
	"testing"
	"time"
)

func TestGenerateVoucherBytes(t *testing.T) {
	b := &Booking{
		ID:        "b-1",
		ItemID:    "hotel-2",
		ItemTitle: "Park Hyatt Tokyo",
		ItemKind:  KindHotel,
		Location:  "Tokyo, Japan",
		PriceZAR:  9800,
		Name:      "Alex",
		Email:     "alex@example.com",
		Status:    BookingSuccess,
		Reference: "DEMO-ABC123XYZ",
		CreatedAt: time.Now(),
	}

	pdf, err := GenerateVoucherBytes(b)
	if err != nil {
		t.Fatalf("GenerateVoucherBytes: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Error("output is not a PDF document")
	}
	if len(pdf) < 1000 {
		t.Errorf("voucher suspiciously small: %d bytes", len(pdf))
	}
}
