package handlers

import (
	"net/http"

	"globaltrotter/database"

	"github.com/gin-gonic/gin"
)

func HealthHandler(c *gin.Context) {
	db := database.DB
	dbStatus := "ok"
	if db == nil {
		dbStatus = "not initialized"
	} else if err := db.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "Global Trotter API",
		"database": dbStatus,
	})
}
