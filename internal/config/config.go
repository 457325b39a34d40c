package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the host process configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// Profile store selection: "memory", "sqlite" or "postgres"
	StoreDriver string
	SQLitePath  string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string

	// Engine tuning file (YAML) and catalog document (JSON)
	EngineConfigPath string
	CatalogPath      string

	// API access
	APIKey         string
	TrustedProxies []string

	// Player profile scope and event dead-letter file
	PlayerID       string
	DeadLetterPath string

	// Wall-clock day length driving the rotation calendar
	DayLengthSeconds int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv(EnvKeyLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvKeyLogFormat, DefaultLogFormat),
		LogDir:           getEnv(EnvKeyLogDir, DefaultLogDir),
		Environment:      getEnv(EnvKeyEnvironment, DefaultEnvironment),
		ServiceName:      getEnv(EnvKeyServiceName, DefaultServiceName),
		Version:          getEnv(EnvKeyVersion, DefaultVersion),
		StoreDriver:      getEnv(EnvKeyStoreDriver, DefaultStoreDriver),
		SQLitePath:       getEnv(EnvKeySQLitePath, DefaultSQLitePath),
		DBUser:           getEnv(EnvKeyDBUser, "postgres"),
		DBPassword:       getEnv(EnvKeyDBPassword, "postgres"),
		DBHost:           getEnv(EnvKeyDBHost, "localhost"),
		DBPort:           getEnv(EnvKeyDBPort, "5432"),
		DBName:           getEnv(EnvKeyDBName, "bountyhall"),
		EngineConfigPath: getEnv(EnvKeyEngineConfig, DefaultEngineConfigPath),
		CatalogPath:      getEnv(EnvKeyCatalogPath, DefaultCatalogPath),
		APIKey:           getEnv(EnvKeyAPIKey, ""),
		PlayerID:         getEnv(EnvKeyPlayerID, DefaultPlayerID),
		DeadLetterPath:   getEnv(EnvKeyDeadLetterPath, DefaultDeadLetterPath),
	}

	if proxies := getEnv(EnvKeyTrustedProxies, ""); proxies != "" {
		for _, p := range strings.Split(proxies, ",") {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, trimmed)
			}
		}
	}

	portStr := getEnv(EnvKeyPort, DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	dayLength, err := strconv.Atoi(getEnv(EnvKeyDayLengthSecs, DefaultDayLengthSecs))
	if err != nil || dayLength <= 0 {
		return nil, fmt.Errorf("invalid DAY_LENGTH_SECONDS value")
	}
	cfg.DayLengthSeconds = dayLength

	switch cfg.StoreDriver {
	case StoreDriverMemory, StoreDriverSQLite, StoreDriverPostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER value %q", cfg.StoreDriver)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
