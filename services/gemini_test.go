package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestGemini(handler http.HandlerFunc) (*GeminiClient, *httptest.Server) {
	srv := httptest.NewServer(handler)
	client := &GeminiClient{
		apiKey:     "test-key",
		model:      "test-model",
		baseURL:    srv.URL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
	return client, srv
}

// geminiReply wraps text the way the generateContent endpoint does.
func geminiReply(text string) string {
	payload := map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	}
	b, _ := json.Marshal(payload)
	return string(b)
}

func TestSearchTripsParsesResults(t *testing.T) {
	results := `{"flights":[{"id":"flight-gen-1","title":"Cape Town Express","location":"JNB -> CPT","priceZAR":1800,"images":["https://example.com/a.jpg"],"rating":4.4,"reviews":[],"description":{"short":"Quick hop.","long":"A quick domestic hop."},"airline":"Flysafair","duration":"2h"}],"hotels":[],"cars":[]}`

	client, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-key" {
			t.Errorf("missing api key header")
		}
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.GenerationConfig == nil || req.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Errorf("search must request structured JSON output")
		}
		w.Write([]byte(geminiReply(results)))
	})
	defer srv.Close()

	got, err := client.SearchTrips("cape town")
	if err != nil {
		t.Fatalf("SearchTrips: %v", err)
	}
	if len(got.Flights) != 1 || got.Flights[0].ID != "flight-gen-1" {
		t.Fatalf("unexpected flights: %+v", got.Flights)
	}
	// Absent and empty categories both come back as empty slices.
	if got.Hotels == nil || got.Cars == nil || got.ExploreItems == nil {
		t.Fatal("categories must be non-nil after normalization")
	}
	if len(got.ExploreItems) != 0 {
		t.Fatalf("expected no experiences, got %d", len(got.ExploreItems))
	}
}

func TestSearchTripsMalformedJSON(t *testing.T) {
	client, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(geminiReply(`{"flights": [oops`)))
	})
	defer srv.Close()

	if _, err := client.SearchTrips("anything"); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestSearchTripsServerError(t *testing.T) {
	client, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	defer srv.Close()

	if _, err := client.SearchTrips("anything"); err == nil {
		t.Fatal("expected error on 500, got nil")
	}
}

func TestSearchTripsRateLimited(t *testing.T) {
	client, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	})
	defer srv.Close()

	_, err := client.SearchTrips("anything")
	if err == nil {
		t.Fatal("expected rate limit error, got nil")
	}
}

func TestGenerateContentEmptyCandidates(t *testing.T) {
	client, srv := newTestGemini(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})
	defer srv.Close()

	if _, err := client.generateContent("hi", nil); err == nil {
		t.Fatal("expected error on empty candidates, got nil")
	}
}

func TestGenerateContentMissingAPIKey(t *testing.T) {
	client := &GeminiClient{model: "m", baseURL: "http://unused", httpClient: http.DefaultClient}
	if _, err := client.generateContent("hi", nil); err == nil {
		t.Fatal("expected error without api key, got nil")
	}
}
