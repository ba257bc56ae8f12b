package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type GeneralConfig struct {
	Env             string
	LogLevel        string
	Port            int
	ShutdownTimeout time.Duration
}

// StorageConfig selects where the campaign list is persisted
type StorageConfig struct {
	Backend  string
	Key      string
	FilePath string
	Timezone string
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int // minutes
	ConnMaxIdleTime int // minutes
	MigrationsPath  string
}

// DSN returns the lib/pq connection string for the configured database
func (c DatabaseConfig) DSN() string {
	return c.dsnFor(c.DBName)
}

// MaintenanceDSN points at the postgres maintenance database, used to create DBName
func (c DatabaseConfig) MaintenanceDSN() string {
	return c.dsnFor("postgres")
}

func (c DatabaseConfig) dsnFor(dbName string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, dbName, c.SSLMode)
}

// EventsConfig configures campaign event publishing. An empty AMQPURL disables it.
type EventsConfig struct {
	AMQPURL string
	Queue   string
}

type AppConfig struct {
	GeneralConfig  GeneralConfig
	StorageConfig  StorageConfig
	RedisConfig    RedisConfig
	DatabaseConfig DatabaseConfig
	EventsConfig   EventsConfig
}

// Storage backends accepted in STORAGE_BACKEND
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// LoadConfigs loads the configurations from the environment variables
func LoadConfigs() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env files: %v", err)
	}

	loadGeneralConfigs()
	loadStorageConfigs()
	loadRedisConfigs()
	loadDatabaseConfigs()
	loadEventsConfigs()
}

var AppConfigInstance AppConfig

// loadGeneralConfigs loads the general configurations from the environment variables
func loadGeneralConfigs() {
	AppConfigInstance.GeneralConfig.Env = getEnv("APP_ENV", "dev")
	AppConfigInstance.GeneralConfig.LogLevel = getEnv("LOG_LEVEL", "info")
	AppConfigInstance.GeneralConfig.Port = getEnvInt("PORT", 8080)
	AppConfigInstance.GeneralConfig.ShutdownTimeout = getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
}

func loadStorageConfigs() {
	AppConfigInstance.StorageConfig.Backend = getEnv("STORAGE_BACKEND", BackendFile)
	AppConfigInstance.StorageConfig.Key = getEnv("STORAGE_KEY", "campaign-storage")
	AppConfigInstance.StorageConfig.FilePath = getEnv("STORAGE_FILE_DIR", "data")
	AppConfigInstance.StorageConfig.Timezone = getEnv("DISPLAY_TIMEZONE", "UTC")
}

func loadRedisConfigs() {
	AppConfigInstance.RedisConfig.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	AppConfigInstance.RedisConfig.Password = getEnv("REDIS_PASSWORD", "")
	AppConfigInstance.RedisConfig.DB = getEnvInt("REDIS_DB", 0)
	AppConfigInstance.RedisConfig.KeyPrefix = getEnv("REDIS_KEY_PREFIX", "campaignconsole:")
}

func loadDatabaseConfigs() {
	AppConfigInstance.DatabaseConfig.Host = getEnv("DB_HOST", "localhost")
	AppConfigInstance.DatabaseConfig.Port = getEnvInt("DB_PORT", 5432)
	AppConfigInstance.DatabaseConfig.User = getEnv("DB_USER", "postgres")
	AppConfigInstance.DatabaseConfig.Password = getEnv("DB_PASSWORD", "postgres")
	AppConfigInstance.DatabaseConfig.DBName = getEnv("DB_NAME", "campaignconsole")
	AppConfigInstance.DatabaseConfig.SSLMode = getEnv("DB_SSLMODE", "disable")
	AppConfigInstance.DatabaseConfig.MaxOpenConns = getEnvInt("DB_MAX_OPEN_CONNS", 10)
	AppConfigInstance.DatabaseConfig.MaxIdleConns = getEnvInt("DB_MAX_IDLE_CONNS", 5)
	AppConfigInstance.DatabaseConfig.ConnMaxLifetime = getEnvInt("DB_CONN_MAX_LIFETIME", 30)
	AppConfigInstance.DatabaseConfig.ConnMaxIdleTime = getEnvInt("DB_CONN_MAX_IDLE_TIME", 5)
	AppConfigInstance.DatabaseConfig.MigrationsPath = getEnv("DB_MIGRATIONS_PATH", "migrations")
}

func loadEventsConfigs() {
	AppConfigInstance.EventsConfig.AMQPURL = getEnv("EVENTS_AMQP_URL", "")
	AppConfigInstance.EventsConfig.Queue = getEnv("EVENTS_QUEUE", "campaign_events")
}

// getEnv returns the environment variable value if it exists, otherwise returns the fallback value
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns the environment variable value as int if it exists, otherwise returns the fallback value
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
