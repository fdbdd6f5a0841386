package services

import (
	"fmt"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Booking states. The flow is linear: details -> loading -> success.
// There is no failure path and no way back; closing a booking deletes
// it entirely.
type BookingStatus string

const (
	BookingDetails BookingStatus = "details"
	BookingLoading BookingStatus = "loading"
	BookingSuccess BookingStatus = "success"
)

// ConfirmDelay is the simulated processing time between confirm and
// success. Nothing real happens during it.
const ConfirmDelay = 2 * time.Second

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the booking form's email rule: local part, "@",
// domain, ".", tld, no embedded whitespace.
func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// Booking is a transient draft. It references a snapshot of the booked
// item so the voucher can render even after the source search session
// is gone. Bookings are never persisted.
type Booking struct {
	ID        string        `json:"id"`
	ItemID    string        `json:"item_id"`
	ItemTitle string        `json:"item_title"`
	ItemKind  ItemKind      `json:"item_kind"`
	Location  string        `json:"location"`
	PriceZAR  float64       `json:"priceZAR"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Status    BookingStatus `json:"status"`
	Reference string        `json:"reference,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// BookingStore holds live bookings in memory behind a mutex. There is
// deliberately no database table for these: the whole flow is a demo.
type BookingStore struct {
	mu           sync.Mutex
	bookings     map[string]*Booking
	confirmDelay time.Duration
}

var bookingStore *BookingStore

func InitBookings() {
	bookingStore = NewBookingStore(ConfirmDelay)
	log.Println("✅ Booking store ready (simulated bookings only)")
}

func GetBookingStore() *BookingStore {
	return bookingStore
}

func NewBookingStore(confirmDelay time.Duration) *BookingStore {
	return &BookingStore{
		bookings:     make(map[string]*Booking),
		confirmDelay: confirmDelay,
	}
}

// Create validates the draft and stores it in the details state.
func (s *BookingStore) Create(item Item, name, email string) (*Booking, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("name is required")
	}
	if !ValidEmail(email) {
		return nil, fmt.Errorf("invalid email address")
	}

	core := item.Core()
	b := &Booking{
		ID:        uuid.New().String(),
		ItemID:    core.ID,
		ItemTitle: core.Title,
		ItemKind:  item.Kind(),
		Location:  core.Location,
		PriceZAR:  core.PriceZAR,
		Name:      name,
		Email:     email,
		Status:    BookingDetails,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	s.bookings[b.ID] = b
	s.mu.Unlock()
	return b, nil
}

// Confirm moves a details-state booking into loading, then flips it to
// success after the simulated delay. Confirming twice, or confirming a
// finished booking, is an error: success is terminal.
func (s *BookingStore) Confirm(id string) (*Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking not found")
	}
	if b.Status != BookingDetails {
		return nil, fmt.Errorf("booking already %s", b.Status)
	}

	b.Status = BookingLoading
	time.AfterFunc(s.confirmDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if cur, ok := s.bookings[id]; ok && cur.Status == BookingLoading {
			cur.Status = BookingSuccess
			cur.Reference = newReference()
		}
	})

	snap := *b
	return &snap, nil
}

// Get returns a snapshot of the booking.
func (s *BookingStore) Get(id string) (*Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	snap := *b
	return &snap, true
}

// Close discards a booking, whatever its state. Re-opening the flow
// means creating a fresh draft.
func (s *BookingStore) Close(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return false
	}
	delete(s.bookings, id)
	return true
}

// newReference fabricates a confirmation code. It confirms nothing.
func newReference() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	buf := make([]byte, 9)
	for i := range buf {
		buf[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return "DEMO-" + strings.ToUpper(string(buf))
}
