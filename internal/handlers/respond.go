// Package handlers contains HTTP request handlers for the application tracker API.
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mmehta29/backend/internal/middleware"
)

const internalErrorMessage = "Internal Server Error"

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondInternalError logs the full error server-side, tagged with the caller
// when authenticated, and hides it from the client.
func respondInternalError(c *gin.Context, operation string, err error) {
	if email := middleware.Email(c); email != "" {
		log.Printf("[%s] %s for %s: %v", middleware.GetRequestID(c), operation, email, err)
	} else {
		log.Printf("[%s] %s: %v", middleware.GetRequestID(c), operation, err)
	}
	respondMessage(c, http.StatusInternalServerError, internalErrorMessage)
}
