package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// request simulation
	SimMinLatency  time.Duration
	SimMaxLatency  time.Duration
	SimFailureRate float64

	// payment decline injection
	PaymentFailureRate float64

	// multiplier on the lifecycle delays; <1 speeds the demo up
	LifecycleTimeScale float64
}

func LoadConfig() *Config {
	// .env is optional; env vars win either way
	_ = godotenv.Load()

	return &Config{
		DBSource:           getEnv("DB_SOURCE", "foodlink.db"),
		Port:               getEnv("PORT", "8000"),
		JWTSecret:          getEnv("JWT_SECRET", "changeme"),
		JWTTTL:             24 * time.Hour,
		SimMinLatency:      envMillis("SIM_MIN_LATENCY_MS", 200),
		SimMaxLatency:      envMillis("SIM_MAX_LATENCY_MS", 600),
		SimFailureRate:     envFloat("SIM_FAILURE_RATE", 0.05),
		PaymentFailureRate: envFloat("PAYMENT_FAILURE_RATE", 0.10),
		LifecycleTimeScale: envFloat("LIFECYCLE_TIME_SCALE", 1.0),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func envMillis(key string, fallback int64) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(n) * time.Millisecond
		}
		log.Printf("config: invalid %s=%q, using default", key, v)
	}
	return time.Duration(fallback) * time.Millisecond
}

func envFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("config: invalid %s=%q, using default", key, v)
	}
	return fallback
}
