package config

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	SecretKey []byte
	Port      string

	RedisAddr   string
	DatabaseURL string

	CartTTL           time.Duration
	StrictValidation  bool
	MenuLookupTimeout time.Duration
)

func Init() {
	if err := godotenv.Load(); err != nil {
		logrus.Printf("no .env file loaded: %v", err)
	}

	var errs *multierror.Error

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		errs = multierror.Append(errs, fmt.Errorf("JWT_SECRET_KEY not set"))
	}
	SecretKey = []byte(secret)

	Port = envOr("PORT", ":8080")
	RedisAddr = os.Getenv("REDIS_ADDR")
	DatabaseURL = os.Getenv("DATABASE_URL")

	CartTTL = durationOr("CART_TTL", 30*time.Minute, &errs)
	MenuLookupTimeout = durationOr("MENU_LOOKUP_TIMEOUT", 2*time.Second, &errs)
	StrictValidation = os.Getenv("CART_STRICT_VALIDATION") == "true"

	if StrictValidation && DatabaseURL == "" {
		errs = multierror.Append(errs, fmt.Errorf("CART_STRICT_VALIDATION requires DATABASE_URL"))
	}

	if err := errs.ErrorOrNil(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration, errs **multierror.Error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = multierror.Append(*errs, fmt.Errorf("%s: %w", key, err))
		return fallback
	}
	if d <= 0 {
		*errs = multierror.Append(*errs, fmt.Errorf("%s must be positive", key))
		return fallback
	}
	return d
}
