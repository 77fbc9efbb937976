package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTAccessSecret   string
	JWTRefreshSecret  string
	JWTAccessTTLSecs  int
	JWTRefreshTTLSecs int

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// TTL for tenant resolution cache entries, seconds
	TenantCacheTTLSecs int

	// Bootstrap admin seeded on first start
	AdminEmail    string
	AdminPassword string
}

// Load reads environment variables and returns a Config object
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, using environment variables")
	}

	accessTTL, _ := strconv.Atoi(os.Getenv("JWT_ACCESS_TTL_SECONDS"))
	if accessTTL <= 0 {
		accessTTL = 3600
	}
	refreshTTL, _ := strconv.Atoi(os.Getenv("JWT_REFRESH_TTL_SECONDS"))
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * 3600
	}
	tenantTTL, _ := strconv.Atoi(os.Getenv("TENANT_CACHE_TTL_SECONDS"))
	if tenantTTL <= 0 {
		tenantTTL = 300
	}
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port: port,

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),

		JWTAccessSecret:   os.Getenv("JWT_ACCESS_SECRET"),
		JWTRefreshSecret:  os.Getenv("JWT_REFRESH_SECRET"),
		JWTAccessTTLSecs:  accessTTL,
		JWTRefreshTTLSecs: refreshTTL,

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,

		TenantCacheTTLSecs: tenantTTL,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}
