package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv            string
	AppPort           string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	MigrateOnStart    bool
	TrustedProxies    []string
	TranslationFolder string

	JwksURL     string
	JwtIssuer   string
	JwtAudience string

	CorsAllowedOrigins []string

	RateLimitRPS   float64
	RateLimitBurst int
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppEnv:             getEnv("APP_ENV", "production"),
		AppPort:            getEnv("APP_PORT", "8080"),
		DbHost:             getEnv("MYSQL_HOST", "db"),
		DbPort:             getEnv("MYSQL_PORT", "3306"),
		DbUser:             getEnv("MYSQL_USER", "planner"),
		DbPassword:         getEnv("MYSQL_PASSWORD", "planner"),
		DbName:             getEnv("MYSQL_DATABASE", "mental_planner"),
		DbParams:           getEnv("MYSQL_PARAMS", DefaultDbParams),
		MigrateOnStart:     getEnvBool("MIGRATE_ON_START", true),
		TrustedProxies:     parseList(os.Getenv("TRUSTED_PROXIES")),
		TranslationFolder:  getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		JwksURL:            os.Getenv("JWKS_URL"),
		JwtIssuer:          os.Getenv("JWT_ISSUER"),
		JwtAudience:        os.Getenv("JWT_AUDIENCE"),
		CorsAllowedOrigins: parseList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		RateLimitRPS:       getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

// DefaultDbParams keeps timestamps in UTC and allows the multi-statement
// migration files to run.
const DefaultDbParams = "parseTime=true&loc=UTC&multiStatements=true"

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return value
}

func getEnvFloat(key string, fallback float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return value
}

func parseList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil
	}

	return items
}
