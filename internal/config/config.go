package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr              string
	DataPath              string
	JWTSecret             string
	TokenTTL              time.Duration
	FreeShippingThreshold int
	ShippingFee           int
	KafkaBrokers          []string
	ESURL                 string
	ESUser                string
	ESPassword            string
	ESIndex               string
	LogLevel              string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return Config{
		HTTPAddr:              getenv("HTTP_ADDR", ":4000"),
		DataPath:              getenv("DATA_PATH", "zeromade-data.json"),
		JWTSecret:             getenv("JWT_SECRET", "change-this-in-production"),
		TokenTTL:              getduration("TOKEN_TTL", 7*24*time.Hour),
		FreeShippingThreshold: getint("FREE_SHIPPING_THRESHOLD", 999),
		ShippingFee:           getint("SHIPPING_FEE", 99),
		KafkaBrokers:          splitCSV(os.Getenv("KAFKA_BROKERS")),
		ESURL:                 os.Getenv("ES_URL"),
		ESUser:                os.Getenv("ES_USER"),
		ESPassword:            os.Getenv("ES_PASSWORD"),
		ESIndex:               getenv("ES_INDEX", "products"),
		LogLevel:              getenv("LOG_LEVEL", "info"),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
