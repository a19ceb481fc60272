package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type Auth struct {
	AdminSecret string
	TokenTTL    time.Duration
}

type RateLimit struct {
	PerMinute int
}

const (
	CatalogSourceMemory   = "memory"
	CatalogSourcePostgres = "postgres"
)

type Catalog struct {
	Source string
}

type Config struct {
	HTTP      HTTPServer
	Redis     RedisCache
	Postgres  Postgres
	Auth      Auth
	RateLimit RateLimit
	Catalog   Catalog
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:      *newHTTP(),
		Redis:     *newRedis(),
		Postgres:  *newPostgres(),
		Auth:      *newAuth(),
		RateLimit: *newRateLimit(),
		Catalog:   *newCatalog(),
	}

	log.Printf("%s catalog source : %s", logtag, cfg.Catalog.Source)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "movies"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newAuth() *Auth {
	return &Auth{
		AdminSecret: getenv("ADMIN_SECRET", "shared"),
		TokenTTL:    getenvDuration("AUTH_TOKEN_TTL", 10*time.Minute),
	}
}

func newRateLimit() *RateLimit {
	return &RateLimit{
		PerMinute: getenvInt("RATE_LIMIT_PER_MINUTE", 60),
	}
}

func newCatalog() *Catalog {
	return &Catalog{
		Source: getenv("CATALOG_SOURCE", CatalogSourceMemory),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}

func getenvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		fmt.Printf("%s %s undefined. Using default value %d\n", logtag, key, defaultValue)
		return defaultValue
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		fmt.Printf("%s %s invalid value %s. Using default value %d\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %d\n", logtag, key, val)
	return val
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	val, err := time.ParseDuration(raw)
	if err != nil {
		fmt.Printf("%s %s invalid value %s. Using default value %s\n", logtag, key, raw, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}
