package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreScylla = "scylla"
	StoreMemory = "memory"
)

// Latency décrit un intervalle de délai aléatoire
type Latency struct {
	Min time.Duration
	Max time.Duration
}

type ScyllaConfig struct {
	Hosts       []string
	Keyspace    string
	Username    string
	Password    string
	Table       string
	AutoMigrate bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled : l'envoi d'emails est optionnel
func (s SMTPConfig) Enabled() bool {
	return s.Host != ""
}

type Config struct {
	Port            string
	OrderStore      string
	OrderTTL        time.Duration
	Scylla          ScyllaConfig
	RedisHost       string
	RedisPassword   string
	RateLimit       int
	LatencyEnabled  bool
	ProductsLatency Latency
	OrderLatency    Latency
	SMTP            SMTPConfig
	ShutdownTimeout time.Duration
}

// Load charge le .env s'il existe
func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// FromEnv construit la configuration à partir des variables d'environnement
func FromEnv() Config {
	return Config{
		Port:       getEnv("PORT", "8080"),
		OrderStore: strings.ToLower(getEnv("ORDER_STORE", StoreScylla)),
		OrderTTL:   time.Duration(getEnvPositiveInt("ORDER_TTL_DAYS", 30)) * 24 * time.Hour,
		Scylla: ScyllaConfig{
			Hosts:       splitHosts(getEnv("SCYLLA_HOSTS", "127.0.0.1")),
			Keyspace:    getEnv("SCYLLA_KS_ORDERS_KEYSPACE", "flash_sale"),
			Username:    os.Getenv("SCYLLA_KS_ORDERS_ROLE"),
			Password:    os.Getenv("SCYLLA_KS_ORDERS_PASSWORD"),
			Table:       getEnv("ORDERS_TABLE", "orders"),
			AutoMigrate: getEnvBool("SCYLLA_AUTO_MIGRATE", false),
		},
		RedisHost:      os.Getenv("REDIS_HOST"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RateLimit:      getEnvInt("RATE_LIMIT_PER_MINUTE", 100),
		LatencyEnabled: getEnvBool("LATENCY_ENABLED", true),
		ProductsLatency: Latency{
			Min: 200 * time.Millisecond,
			Max: 800 * time.Millisecond,
		},
		OrderLatency: Latency{
			Min: 500 * time.Millisecond,
			Max: 4000 * time.Millisecond,
		},
		SMTP: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Port:     getEnvInt("SMTP_PORT", 587),
			Username: os.Getenv("SMTP_USERNAME"),
			Password: os.Getenv("SMTP_PASSWORD"),
			From:     getEnv("SMTP_FROM", "noreply@flashsale.local"),
		},
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

// getEnvPositiveInt : une valeur nulle ou négative retombe sur la valeur par défaut
func getEnvPositiveInt(key string, fallback int) int {
	if v := getEnvInt(key, fallback); v > 0 {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func splitHosts(raw string) []string {
	var hosts []string
	for _, h := range strings.Split(raw, ",") {
		if h = strings.TrimSpace(h); h != "" {
			hosts = append(hosts, h)
		}
	}
	return hosts
}
