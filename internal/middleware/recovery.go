package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"flash_sale_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// Recover transforme un panic en 500 avec l'enveloppe d'échec de la route
func Recover(message string) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("❌ %s: %v", message, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.APIResponse{
			Success:   false,
			Message:   message,
			Error:     fmt.Sprint(recovered),
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}
