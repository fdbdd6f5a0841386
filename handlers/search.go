package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"globaltrotter/database"
	"globaltrotter/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SearchRequest struct {
	Query string `json:"query" binding:"required"`
}

type SearchResponse struct {
	SearchID     string                 `json:"search_id"`
	Query        string                 `json:"query"`
	Flights      []services.Flight      `json:"flights"`
	Hotels       []services.Hotel       `json:"hotels"`
	Cars         []services.Car         `json:"cars"`
	ExploreItems []services.ExploreItem `json:"exploreItems"`
}

// SearchHandler runs a free-text query through the AI search gateway
// and records the result set as a search session. On any gateway
// failure the whole result set is discarded; nothing partial comes
// back.
func SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	query := strings.TrimSpace(req.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Search query must not be empty"})
		return
	}

	results, err := services.GetGeminiClient().SearchTrips(query)
	if err != nil {
		log.Printf("❌ AI search failed for %q: %v", query, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Sorry, we couldn't fetch results for your search. Please try again.",
		})
		return
	}

	resultsJSON, err := json.Marshal(results)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode search results"})
		return
	}

	searchID := uuid.New().String()
	if err := database.SaveSearch(&database.Search{
		ID:          searchID,
		Query:       query,
		ResultsJSON: string(resultsJSON),
	}); err != nil {
		log.Printf("❌ Failed to save search: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save search"})
		return
	}

	log.Printf("✅ AI search %q: %d flights, %d hotels, %d cars, %d experiences",
		query, len(results.Flights), len(results.Hotels), len(results.Cars), len(results.ExploreItems))

	c.JSON(http.StatusOK, SearchResponse{
		SearchID:     searchID,
		Query:        query,
		Flights:      results.Flights,
		Hotels:       results.Hotels,
		Cars:         results.Cars,
		ExploreItems: results.ExploreItems,
	})
}
