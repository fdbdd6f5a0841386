package services

import (
	"strings"
	"testing"
	"time"
)

func testHotel() Hotel {
	return Hotel{ItemCore: ItemCore{
		ID: "hotel-2", Title: "Park Hyatt Tokyo", Location: "Tokyo, Japan", PriceZAR: 9800,
	}}
}

func TestValidEmail(t *testing.T) {
	cases := map[string]bool{
		"alex@example.com":  true,
		"a@b.co":            true,
		"a@b":               false,
		"@example.com":      false,
		"alex@":             false,
		"alex @example.com": false,
		"":                  false,
	}
	for in, want := range cases {
		if got := ValidEmail(in); got != want {
			t.Errorf("ValidEmail(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestBookingCreateValidation(t *testing.T) {
	s := NewBookingStore(time.Millisecond)

	if _, err := s.Create(testHotel(), "", "alex@example.com"); err == nil {
		t.Error("empty name must be rejected")
	}
	if _, err := s.Create(testHotel(), "Alex", "a@b"); err == nil {
		t.Error("email without tld must be rejected")
	}

	b, err := s.Create(testHotel(), "Alex", "alex@example.com")
	if err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}
	if b.Status != BookingDetails {
		t.Errorf("new booking status = %q, want %q", b.Status, BookingDetails)
	}
	if b.ItemTitle != "Park Hyatt Tokyo" || b.ItemKind != KindHotel || b.PriceZAR != 9800 {
		t.Errorf("item snapshot wrong: %+v", b)
	}
	if b.Reference != "" {
		t.Error("draft must not carry a reference yet")
	}
}

func TestBookingConfirmFlow(t *testing.T) {
	s := NewBookingStore(10 * time.Millisecond)
	b, err := s.Create(testHotel(), "Alex", "alex@example.com")
	if err != nil {
		t.Fatal(err)
	}

	confirmed, err := s.Confirm(b.ID)
	if err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if confirmed.Status != BookingLoading {
		t.Fatalf("status after confirm = %q, want %q", confirmed.Status, BookingLoading)
	}

	// Second confirm while loading is an error.
	if _, err := s.Confirm(b.ID); err == nil {
		t.Error("double confirm must fail")
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		cur, ok := s.Get(b.ID)
		if !ok {
			t.Fatal("booking vanished mid-flow")
		}
		if cur.Status == BookingSuccess {
			if !strings.HasPrefix(cur.Reference, "DEMO-") || len(cur.Reference) != len("DEMO-")+9 {
				t.Errorf("reference format wrong: %q", cur.Reference)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("booking never reached success, stuck at %q", cur.Status)
		}
		time.Sleep(time.Millisecond)
	}

	// Success is terminal.
	if _, err := s.Confirm(b.ID); err == nil {
		t.Error("confirming a finished booking must fail")
	}
}

func TestBookingConfirmUnknownID(t *testing.T) {
	s := NewBookingStore(time.Millisecond)
	if _, err := s.Confirm("nope"); err == nil {
		t.Fatal("expected error for unknown booking")
	}
}

func TestBookingClose(t *testing.T) {
	s := NewBookingStore(time.Millisecond)
	b, err := s.Create(testHotel(), "Alex", "alex@example.com")
	if err != nil {
		t.Fatal(err)
	}

	if !s.Close(b.ID) {
		t.Fatal("Close on live booking must succeed")
	}
	if _, ok := s.Get(b.ID); ok {
		t.Error("closed booking must be gone")
	}
	if s.Close(b.ID) {
		t.Error("closing twice must report false")
	}
}

func TestBookingGetReturnsSnapshot(t *testing.T) {
	s := NewBookingStore(time.Millisecond)
	b, err := s.Create(testHotel(), "Alex", "alex@example.com")
	if err != nil {
		t.Fatal(err)
	}

	snap, _ := s.Get(b.ID)
	snap.Status = BookingSuccess

	cur, _ := s.Get(b.ID)
	if cur.Status != BookingDetails {
		t.Error("mutating a snapshot must not touch the stored booking")
	}
}
