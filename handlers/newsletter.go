package handlers

import (
	"log"
	"net/http"
	"os"
	"strings"

	"globaltrotter/database"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	newsletterSessionName = "globaltrotter_session"
	newsletterSeenKey     = "newsletter_seen"
)

var sessionStore *sessions.CookieStore

// InitSessions sets up the cookie store that backs the newsletter
// popup's "already seen" flag. The flag lives in the browser session,
// so a fresh visit shows the popup again.
func InitSessions() {
	key := os.Getenv("SESSION_KEY")
	if key == "" {
		key = "dev-session-key-change-me"
		log.Println("⚠️ SESSION_KEY not set, using insecure dev default")
	}

	sessionStore = sessions.NewCookieStore([]byte(key))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0, // session cookie
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	log.Println("✅ Session store ready")
}

// NewsletterStatusHandler tells the client whether the popup has
// already been seen this session.
func NewsletterStatusHandler(c *gin.Context) {
	session, _ := sessionStore.Get(c.Request, newsletterSessionName)
	seen, _ := session.Values[newsletterSeenKey].(bool)
	c.JSON(http.StatusOK, gin.H{"seen": seen})
}

// NewsletterDismissHandler marks the popup seen for this session
// without subscribing.
func NewsletterDismissHandler(c *gin.Context) {
	session, _ := sessionStore.Get(c.Request, newsletterSessionName)
	session.Values[newsletterSeenKey] = true
	if err := session.Save(c.Request, c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dismissed"})
}

type NewsletterSubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

// NewsletterSubscribeHandler records the signup and marks the popup
// seen. Only presence is checked here; the stricter email rule belongs
// to the booking form.
func NewsletterSubscribeHandler(c *gin.Context) {
	var req NewsletterSubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	email := strings.TrimSpace(req.Email)
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email must not be empty"})
		return
	}

	if err := database.SaveNewsletterSignup(&database.NewsletterSignup{
		ID:    uuid.New().String(),
		Email: email,
	}); err != nil {
		log.Printf("❌ Failed to save newsletter signup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save signup"})
		return
	}

	session, _ := sessionStore.Get(c.Request, newsletterSessionName)
	session.Values[newsletterSeenKey] = true
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("⚠️ Signup saved but session not updated: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscribed! Check your inbox for travel deals."})
}
