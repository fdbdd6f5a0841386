package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"globaltrotter/services"
)

func createTestBooking(t *testing.T) string {
	t.Helper()
	r := newTestRouter()
	w, fields := doJSON(t, r, "POST", "/api/bookings",
		`{"item_id":"hotel-1","name":"Alex","email":"alex@example.com"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status %d: %s", w.Code, w.Body.String())
	}

	var booking services.Booking
	if err := json.Unmarshal(fields["booking"], &booking); err != nil {
		t.Fatal(err)
	}
	if booking.Status != services.BookingDetails {
		t.Fatalf("new booking status %q", booking.Status)
	}
	return booking.ID
}

func TestCreateBookingValidation(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, "POST", "/api/bookings",
		`{"item_id":"hotel-1","name":"Alex","email":"not-an-email"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad email should 400, got %d", w.Code)
	}

	w, _ = doJSON(t, r, "POST", "/api/bookings",
		`{"item_id":"hotel-99","name":"Alex","email":"alex@example.com"}`)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown item should 404, got %d", w.Code)
	}

	w, _ = doJSON(t, r, "POST", "/api/bookings", `{"name":"Alex"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing fields should 400, got %d", w.Code)
	}
}

func TestBookingLifecycleEndpoints(t *testing.T) {
	r := newTestRouter()
	id := createTestBooking(t)

	w, fields := doJSON(t, r, "POST", "/api/bookings/"+id+"/confirm", "")
	if w.Code != http.StatusOK {
		t.Fatalf("confirm status %d: %s", w.Code, w.Body.String())
	}
	var booking services.Booking
	if err := json.Unmarshal(fields["booking"], &booking); err != nil {
		t.Fatal(err)
	}
	if booking.Status != services.BookingLoading {
		t.Errorf("status after confirm %q, want %q", booking.Status, services.BookingLoading)
	}

	// The voucher only exists once processing finishes.
	w, _ = doJSON(t, r, "GET", "/api/bookings/"+id+"/voucher", "")
	if w.Code != http.StatusConflict {
		t.Errorf("voucher before success should 409, got %d", w.Code)
	}

	w, _ = doJSON(t, r, "DELETE", "/api/bookings/"+id, "")
	if w.Code != http.StatusOK {
		t.Errorf("close status %d", w.Code)
	}

	w, _ = doJSON(t, r, "GET", "/api/bookings/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("closed booking should 404, got %d", w.Code)
	}
}

func TestConfirmUnknownBooking(t *testing.T) {
	r := newTestRouter()
	w, _ := doJSON(t, r, "POST", "/api/bookings/nope/confirm", "")
	if w.Code != http.StatusConflict {
		t.Errorf("unknown booking confirm should 409, got %d", w.Code)
	}
}

func TestAssistantEndpoint(t *testing.T) {
	r := newTestRouter()

	w, fields := doJSON(t, r, "POST", "/api/assistant", `{"message":"hello"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	var reply string
	if err := json.Unmarshal(fields["reply"], &reply); err != nil {
		t.Fatal(err)
	}
	if reply == "" {
		t.Error("empty reply")
	}

	w, _ = doJSON(t, r, "POST", "/api/assistant", `{"message":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank message should 400, got %d", w.Code)
	}
}
