package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"flash_sale_back_end/internal/config"
	"flash_sale_back_end/internal/database"
	"flash_sale_back_end/internal/handlers"
	"flash_sale_back_end/internal/routes"
	"flash_sale_back_end/internal/services"
	"flash_sale_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	config.Load()
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore := openOrderStore(ctx, cfg)
	defer closeStore()

	redisClient := connectRedis(ctx, cfg)
	if redisClient != nil {
		defer redisClient.Close()
	}

	opts := []services.OrderOption{
		services.WithLatency(utils.NewLatency(cfg.OrderLatency, cfg.LatencyEnabled)),
	}

	var events *services.OrderEvents
	if redisClient != nil {
		events = services.NewOrderEvents(redisClient)
		opts = append(opts, services.WithPublisher(events))
	}

	if cfg.SMTP.Enabled() {
		opts = append(opts, services.WithMailer(services.NewMailer(cfg.SMTP)))
		log.Println("✅ Emails de confirmation activés via", cfg.SMTP.Host)
	}

	orders := services.NewOrderService(store, cfg.OrderTTL, opts...)
	h := handlers.New(orders, store, utils.NewLatency(cfg.ProductsLatency, cfg.LatencyEnabled), events)

	r := gin.Default()
	routes.RegisterRoutes(r, h, redisClient, cfg.RateLimit)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Println("🚀 Serveur Flash Sale lancé sur le port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Erreur serveur: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("🛑 Arrêt du serveur...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Arrêt forcé: %v", err)
	}
}

// openOrderStore retourne le store choisi par ORDER_STORE et sa fonction de fermeture
func openOrderStore(ctx context.Context, cfg config.Config) (database.OrderStore, func()) {
	if cfg.OrderStore == config.StoreMemory {
		log.Println("⚠️ Store mémoire : les commandes ne survivent pas au redémarrage")
		return database.NewMemoryOrderStore(), func() {}
	}

	manager := database.NewScyllaManager(cfg.Scylla)
	store := database.NewScyllaOrderStore(manager, cfg.Scylla.Table, cfg.OrderTTL)

	if cfg.Scylla.AutoMigrate {
		if err := manager.EnsureKeyspace(ctx); err != nil {
			log.Fatalf("❌ %v", err)
		}
		if err := store.EnsureSchema(ctx); err != nil {
			log.Fatalf("❌ %v", err)
		}
		log.Println("✅ Schéma ScyllaDB vérifié")
	}

	if _, err := manager.Session(); err != nil {
		log.Fatalf("❌ Échec initialisation ScyllaDB: %v", err)
	}
	return store, manager.Close
}

// connectRedis : Redis est optionnel (rate limit et flux live)
func connectRedis(ctx context.Context, cfg config.Config) *redis.Client {
	if cfg.RedisHost == "" {
		log.Println("⚠️ REDIS_HOST absent : rate limit et flux live désactivés")
		return nil
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := database.ConnectRedis(pingCtx, cfg.RedisHost, cfg.RedisPassword)
	if err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	return client
}
