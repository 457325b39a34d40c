package config

// Environment variable keys
const (
	EnvKeyPort         = "PORT"
	EnvKeyLogLevel     = "LOG_LEVEL"
	EnvKeyLogFormat    = "LOG_FORMAT"
	EnvKeyLogDir       = "LOG_DIR"
	EnvKeyEnvironment  = "ENVIRONMENT"
	EnvKeyServiceName  = "SERVICE_NAME"
	EnvKeyVersion      = "VERSION"
	EnvKeyStoreDriver  = "STORE_DRIVER"
	EnvKeySQLitePath   = "SQLITE_PATH"
	EnvKeyDBUser       = "DB_USER"
	EnvKeyDBPassword   = "DB_PASSWORD"
	EnvKeyDBHost       = "DB_HOST"
	EnvKeyDBPort       = "DB_PORT"
	EnvKeyDBName       = "DB_NAME"
	EnvKeyEngineConfig = "ENGINE_CONFIG"
	EnvKeyCatalogPath  = "CATALOG_PATH"

	EnvKeyAPIKey         = "API_KEY"
	EnvKeyDayLengthSecs  = "DAY_LENGTH_SECONDS"
	EnvKeyTrustedProxies = "TRUSTED_PROXIES"
	EnvKeyPlayerID       = "PLAYER_ID"
	EnvKeyDeadLetterPath = "EVENT_DEADLETTER_PATH"
)

// Defaults
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultLogDir           = "logs"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "bountyhall"
	DefaultVersion          = "dev"
	DefaultStoreDriver      = StoreDriverSQLite
	DefaultSQLitePath       = "data/profile.db"
	DefaultEngineConfigPath = "config/engine.yaml"
	DefaultCatalogPath      = "config/bounties.json"
	DefaultPlayerID         = "default"
	DefaultDayLengthSecs    = "1800"
	DefaultDeadLetterPath   = "data/deadletter.jsonl"
)

// Profile store driver names
const (
	StoreDriverMemory   = "memory"
	StoreDriverSQLite   = "sqlite"
	StoreDriverPostgres = "postgres"
)
