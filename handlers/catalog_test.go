package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"globaltrotter/services"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	services.InitCatalog()
	services.InitBookings()
	InitSessions()
	os.Exit(m.Run())
}

// newTestRouter wires the routes that need no database.
func newTestRouter() *gin.Engine {
	r := gin.New()
	api := r.Group("/api")
	{
		api.GET("/flights", ListFlightsHandler)
		api.GET("/hotels", ListHotelsHandler)
		api.GET("/cars", ListCarsHandler)
		api.GET("/explore", ListExploreHandler)
		api.GET("/items/:id", GetItemHandler)
		api.GET("/featured", FeaturedHandler)
		api.GET("/testimonials", TestimonialsHandler)
		api.GET("/tips", TravelTipsHandler)
		api.GET("/tags", TagsHandler)
		api.GET("/hero-videos", HeroVideosHandler)

		api.POST("/bookings", CreateBookingHandler)
		api.POST("/bookings/:id/confirm", ConfirmBookingHandler)
		api.GET("/bookings/:id", GetBookingHandler)
		api.DELETE("/bookings/:id", CloseBookingHandler)
		api.GET("/bookings/:id/voucher", VoucherHandler)

		api.POST("/assistant", AssistantHandler)
	}
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	fields := map[string]json.RawMessage{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &fields); err != nil {
			t.Fatalf("%s %s: invalid JSON body %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, fields
}

func TestListFlights(t *testing.T) {
	r := newTestRouter()
	w, fields := doJSON(t, r, "GET", "/api/flights", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var flights []services.Flight
	if err := json.Unmarshal(fields["flights"], &flights); err != nil {
		t.Fatal(err)
	}
	if len(flights) != 10 {
		t.Fatalf("expected 10 flights, got %d", len(flights))
	}
}

func TestListFlightsQueryFilter(t *testing.T) {
	r := newTestRouter()
	w, fields := doJSON(t, r, "GET", "/api/flights?q=tokyo", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var flights []services.Flight
	if err := json.Unmarshal(fields["flights"], &flights); err != nil {
		t.Fatal(err)
	}
	if len(flights) != 1 || flights[0].ID != "flight-1" {
		t.Fatalf("expected only flight-1, got %+v", flights)
	}
}

func TestListHotelsSortedByPrice(t *testing.T) {
	r := newTestRouter()
	_, fields := doJSON(t, r, "GET", "/api/hotels?sort=price-asc", "")

	var hotels []services.Hotel
	if err := json.Unmarshal(fields["hotels"], &hotels); err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(hotels); i++ {
		if hotels[i-1].PriceZAR > hotels[i].PriceZAR {
			t.Fatalf("hotels not sorted ascending at %d: %v > %v",
				i, hotels[i-1].PriceZAR, hotels[i].PriceZAR)
		}
	}
}

func TestListExploreTagFilter(t *testing.T) {
	r := newTestRouter()
	_, fields := doJSON(t, r, "GET", "/api/explore?tags=adventure,nature", "")

	var items []services.ExploreItem
	if err := json.Unmarshal(fields["exploreItems"], &items); err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Fatal("expected at least one adventure+nature experience")
	}
	for _, item := range items {
		for _, want := range []string{"adventure", "nature"} {
			found := false
			for _, tag := range item.Tags {
				if tag == want {
					found = true
				}
			}
			if !found {
				t.Errorf("item %s lacks requested tag %q", item.ID, want)
			}
		}
	}
}

func TestGetItem(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, "GET", "/api/items/hotel-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	w, _ = doJSON(t, r, "GET", "/api/items/hotel-99", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown item should 404, got %d", w.Code)
	}
}

func TestFeaturedEndpoint(t *testing.T) {
	r := newTestRouter()
	w, fields := doJSON(t, r, "GET", "/api/featured", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var featured []services.FeaturedItem
	if err := json.Unmarshal(fields["featured"], &featured); err != nil {
		t.Fatal(err)
	}
	if len(featured) != 12 {
		t.Fatalf("expected 12 featured entries, got %d", len(featured))
	}
}

func TestStaticContentEndpoints(t *testing.T) {
	r := newTestRouter()
	for _, path := range []string{"/api/testimonials", "/api/tips", "/api/tags", "/api/hero-videos"} {
		w, _ := doJSON(t, r, "GET", path, "")
		if w.Code != http.StatusOK {
			t.Errorf("%s: status %d", path, w.Code)
		}
	}
}
