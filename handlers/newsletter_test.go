package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newNewsletterRouter() *gin.Engine {
	r := gin.New()
	r.GET("/api/newsletter/status", NewsletterStatusHandler)
	r.POST("/api/newsletter/dismiss", NewsletterDismissHandler)
	return r
}

func popupSeen(t *testing.T, body []byte) bool {
	t.Helper()
	var resp struct {
		Seen bool `json:"seen"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("invalid status body: %v", err)
	}
	return resp.Seen
}

func TestNewsletterPopupFirstVisit(t *testing.T) {
	r := newNewsletterRouter()

	req := httptest.NewRequest("GET", "/api/newsletter/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	if popupSeen(t, w.Body.Bytes()) {
		t.Error("a fresh session must not be marked seen")
	}
}

func TestNewsletterDismissPersistsInSession(t *testing.T) {
	r := newNewsletterRouter()

	dismiss := httptest.NewRequest("POST", "/api/newsletter/dismiss", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, dismiss)
	if w.Code != http.StatusOK {
		t.Fatalf("dismiss status %d", w.Code)
	}

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("dismiss must set a session cookie")
	}

	status := httptest.NewRequest("GET", "/api/newsletter/status", nil)
	for _, c := range cookies {
		status.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, status)

	if !popupSeen(t, w.Body.Bytes()) {
		t.Error("dismissal must persist for the rest of the session")
	}
}
