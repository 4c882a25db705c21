package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultJWTSecret   = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer   = "repair-shop-app"
	defaultWorkingDays = 22
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	RunMigrations     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// AdminPasswordHash is the bcrypt hash of the shop admin password.
	AdminPasswordHash  string
	CORSAllowedOrigins []string
	LoginRateLimit     string
	RedisURL           string

	OrderNumberMaxRetries int
	DefaultWorkingDays    int
	StoreTimeout          time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_DURATION", "12h")
	viper.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("ORDER_NUMBER_MAX_RETRIES", 3)
	viper.SetDefault("DEFAULT_WORKING_DAYS", defaultWorkingDays)
	viper.SetDefault("STORE_TIMEOUT", "5s")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.AdminPasswordHash = viper.GetString("ADMIN_PASSWORD_HASH")
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Login will reject every password.")
	}

	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.LoginRateLimit = viper.GetString("LOGIN_RATE_LIMIT")
	cfg.RedisURL = viper.GetString("REDIS_URL")

	cfg.OrderNumberMaxRetries = viper.GetInt("ORDER_NUMBER_MAX_RETRIES")
	if cfg.OrderNumberMaxRetries < 1 {
		log.Printf("Warning: ORDER_NUMBER_MAX_RETRIES must be at least 1, got %d. Defaulting to 3.\n", cfg.OrderNumberMaxRetries)
		cfg.OrderNumberMaxRetries = 3
	}

	cfg.DefaultWorkingDays = viper.GetInt("DEFAULT_WORKING_DAYS")
	if cfg.DefaultWorkingDays < 0 || cfg.DefaultWorkingDays > 31 {
		log.Printf("Warning: DEFAULT_WORKING_DAYS out of range (%d). Defaulting to %d.\n", cfg.DefaultWorkingDays, defaultWorkingDays)
		cfg.DefaultWorkingDays = defaultWorkingDays
	}

	storeTimeoutStr := viper.GetString("STORE_TIMEOUT")
	cfg.StoreTimeout, err = time.ParseDuration(storeTimeoutStr)
	if err != nil || cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = 5 * time.Second
		log.Printf("Warning: Invalid value for STORE_TIMEOUT ('%s'). Defaulting to %s.\n", storeTimeoutStr, cfg.StoreTimeout)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RunMigrations = viper.GetBool("RUN_MIGRATIONS")
	cfg.MigrationsPath = viper.GetString("MIGRATIONS_PATH")

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
