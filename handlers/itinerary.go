package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"globaltrotter/database"
	"globaltrotter/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ItineraryRequest struct {
	SearchID string `json:"search_id" binding:"required"`
}

type ItineraryResponse struct {
	ItineraryID string                     `json:"itinerary_id"`
	Markdown    string                     `json:"markdown"`
	Blocks      []services.ItineraryBlock  `json:"blocks"`
}

// ItineraryHandler builds a sample trip plan from a stored search's
// result set. A failure here leaves the search itself untouched.
func ItineraryHandler(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	search, err := database.GetSearch(req.SearchID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Search session not found"})
		return
	}

	var results services.SearchResults
	if err := json.Unmarshal([]byte(search.ResultsJSON), &results); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse stored search results"})
		return
	}
	results.Normalize()

	if results.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No results to plan a trip around"})
		return
	}

	content, err := services.GetGeminiClient().GenerateItinerary(search.Query, &results)
	if err != nil {
		log.Printf("❌ Itinerary generation failed for search %s: %v", req.SearchID, err)
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Our AI assistant couldn't create a plan right now. Please try again later.",
		})
		return
	}

	itineraryID := uuid.New().String()
	if err := database.SaveItinerary(&database.Itinerary{
		ID:       itineraryID,
		SearchID: req.SearchID,
		Content:  content,
	}); err != nil {
		log.Printf("❌ Failed to save itinerary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save itinerary"})
		return
	}

	c.JSON(http.StatusOK, ItineraryResponse{
		ItineraryID: itineraryID,
		Markdown:    content,
		Blocks:      services.RenderItinerary(content),
	})
}

// GetItineraryHandler returns a previously generated plan.
func GetItineraryHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing itinerary ID"})
		return
	}

	itinerary, err := database.GetItinerary(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Itinerary not found"})
		return
	}

	c.JSON(http.StatusOK, ItineraryResponse{
		ItineraryID: itinerary.ID,
		Markdown:    itinerary.Content,
		Blocks:      services.RenderItinerary(itinerary.Content),
	})
}
