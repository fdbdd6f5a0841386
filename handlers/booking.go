package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"globaltrotter/database"
	"globaltrotter/services"

	"github.com/gin-gonic/gin"
)

type CreateBookingRequest struct {
	ItemID   string `json:"item_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	SearchID string `json:"search_id"`
}

// resolveItem finds the item being booked. AI search results are not
// part of the static catalog, so when a search_id is supplied the
// stored session is checked as well.
func resolveItem(itemID, searchID string) (services.Item, bool) {
	if item, ok := services.GetCatalog().FindItem(itemID); ok {
		return item, true
	}
	if searchID == "" {
		return nil, false
	}

	search, err := database.GetSearch(searchID)
	if err != nil {
		return nil, false
	}
	var results services.SearchResults
	if err := json.Unmarshal([]byte(search.ResultsJSON), &results); err != nil {
		return nil, false
	}
	return results.Find(itemID)
}

func CreateBookingHandler(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	item, ok := resolveItem(req.ItemID, req.SearchID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	booking, err := services.GetBookingStore().Create(item, req.Name, req.Email)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking})
}

func ConfirmBookingHandler(c *gin.Context) {
	id := c.Param("id")
	booking, err := services.GetBookingStore().Confirm(id)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	booking, ok := services.GetBookingStore().Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

func CloseBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if !services.GetBookingStore().Close(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking closed"})
}

// VoucherHandler streams the demo voucher PDF. Only confirmed bookings
// have one.
func VoucherHandler(c *gin.Context) {
	id := c.Param("id")
	booking, ok := services.GetBookingStore().Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if booking.Status != services.BookingSuccess {
		c.JSON(http.StatusConflict, gin.H{"error": "Booking is not confirmed yet"})
		return
	}

	pdfBytes, err := services.GenerateVoucherBytes(booking)
	if err != nil {
		log.Printf("❌ Voucher generation failed for booking %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate voucher"})
		return
	}

	filename := fmt.Sprintf("voucher-%s.pdf", booking.Reference)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
