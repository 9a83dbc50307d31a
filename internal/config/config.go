package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"

	defaultDestination = "2348123456789"
	defaultBaseURL     = "https://wa.me"
)

type Config struct {
	Env     string
	Store   StoreConfig
	Handoff HandoffConfig
}

type StoreConfig struct {
	Driver       string
	DatabaseURL  string
	DeviceID     uuid.UUID
	WriteTimeout time.Duration
}

// HandoffConfig is fixed per deployment.
type HandoffConfig struct {
	Destination string
	BaseURL     string
}

func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	deviceID, err := getDeviceID("DEVICE_ID")
	if err != nil {
		return nil, err
	}

	writeTimeout, err := getDuration("STORE_WRITE_TIMEOUT", 3*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env: getEnv("APP_ENV", "production"),
		Store: StoreConfig{
			Driver:       strings.ToLower(getEnv("STORE_DRIVER", DriverMemory)),
			DatabaseURL:  getEnv("DATABASE_URL", ""),
			DeviceID:     deviceID,
			WriteTimeout: writeTimeout,
		},
		Handoff: HandoffConfig{
			Destination: getEnv("ORDER_DESTINATION", defaultDestination),
			BaseURL:     getEnv("MESSAGING_BASE_URL", defaultBaseURL),
		},
	}

	switch cfg.Store.Driver {
	case DriverMemory:
	case DriverPostgres:
		if cfg.Store.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is empty")
		}
	default:
		return nil, fmt.Errorf("STORE_DRIVER[%s] is not supported", cfg.Store.Driver)
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return def, nil
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s[%s] is not a duration: %w", key, v, err)
	}

	return d, nil
}

// getDeviceID falls back to an id derived from the hostname so the same
// machine finds its cart again after a restart.
func getDeviceID(key string) (uuid.UUID, error) {
	if v := getEnv(key, ""); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, fmt.Errorf("%s[%s] is not a uuid: %w", key, v, err)
		}
		return id, nil
	}

	host, err := os.Hostname()
	if err != nil {
		host = "localhost"
	}

	return uuid.NewSHA1(uuid.NameSpaceDNS, []byte(host)), nil
}
