package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"flash_sale_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	APIMaxRequests = 100 // par minute, valeur par défaut
	APICooldown    = 1 * time.Minute
)

// APIRateLimit limite le nombre de requêtes par IP (fenêtre fixe d'une minute).
// Sans client Redis le middleware ne fait rien ; une erreur Redis laisse passer la requête.
func APIRateLimit(client *redis.Client, limit int) gin.HandlerFunc {
	if limit <= 0 {
		limit = APIMaxRequests
	}

	return func(c *gin.Context) {
		if client == nil || c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		key := "api_requests:" + c.ClientIP()

		pipe := client.Pipeline()
		incr := pipe.Incr(ctx, key)
		ttl := pipe.TTL(ctx, key)
		if _, err := pipe.Exec(ctx); err != nil {
			log.Printf("⚠️ Rate limit indisponible: %v", err)
			c.Next()
			return
		}

		// La fenêtre est fixe : l'expiration n'est posée qu'à son ouverture
		// (ou si une clé a perdu son TTL), jamais repoussée par les requêtes suivantes
		if ttl.Val() < 0 {
			if err := client.Expire(ctx, key, APICooldown).Err(); err != nil {
				log.Printf("⚠️ Rate limit: expiration non posée: %v", err)
			}
		}

		requests := int(incr.Val())
		remaining := limit - requests
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if requests > limit {
			c.Header("Retry-After", fmt.Sprintf("%d", int(APICooldown.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.APIResponse{
				Success:    false,
				Message:    "Too many requests",
				RetryAfter: int(APICooldown.Seconds()),
				Timestamp:  time.Now().UTC().Format(time.RFC3339Nano),
			})
			return
		}

		c.Next()
	}
}
