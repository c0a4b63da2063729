package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Драйверы хранилища документов
const (
	StorageDriverPostgres  = "postgres"
	StorageDriverMongo     = "mongo"
	StorageDriverFirestore = "firestore"
	StorageDriverMemory    = "memory"
)

// Режимы идентификации пользователя
const (
	AuthModeHeader   = "header"
	AuthModeJWT      = "jwt"
	AuthModeFirebase = "firebase"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Database  DatabaseConfig  `toml:"database"`
	Mongo     MongoConfig     `toml:"mongo"`
	Firebase  FirebaseConfig  `toml:"firebase"`
	Cache     CacheConfig     `toml:"cache"`
	Events    EventsConfig    `toml:"events"`
	Auth      AuthConfig      `toml:"auth"`
	Studies   StudiesConfig   `toml:"studies"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Driver string `toml:"driver"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
	Timeout  int    `toml:"timeout"`
}

type FirebaseConfig struct {
	ProjectID       string `toml:"project_id"`
	CredentialsFile string `toml:"credentials_file"`
}

type CacheConfig struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
	TTL      int    `toml:"ttl"`
}

type EventsConfig struct {
	Enabled    bool   `toml:"enabled"`
	URL        string `toml:"url"`
	Exchange   string `toml:"exchange"`
	RoutingKey string `toml:"routing_key"`
}

type AuthConfig struct {
	Mode      string `toml:"mode"`
	JWTSecret string `toml:"jwt_secret"`
	JWTIssuer string `toml:"jwt_issuer"`
}

type StudiesConfig struct {
	Enabled     bool   `toml:"enabled"`
	Endpoint    string `toml:"endpoint"`
	AccessKey   string `toml:"access_key"`
	SecretKey   string `toml:"secret_key"`
	UseSSL      bool   `toml:"use_ssl"`
	Bucket      string `toml:"bucket"`
	MaxFileSize int64  `toml:"max_file_size"`
	URLExpiry   int    `toml:"url_expiry"`
}

type RateLimitConfig struct {
	Enabled           bool `toml:"enabled"`
	RequestsPerMinute int  `toml:"requests_per_minute"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load читает TOML файл, затем накладывает секреты из окружения (.env, если есть)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	// .env необязателен
	_ = godotenv.Load()
	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, от которых зависит выбор реализаций
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverMongo, StorageDriverFirestore, StorageDriverMemory:
	default:
		return fmt.Errorf("%w: unknown storage driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	switch c.Auth.Mode {
	case AuthModeHeader, AuthModeFirebase:
	case AuthModeJWT:
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("%w: auth.jwt_secret is required in jwt mode", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown auth mode %q", ErrInvalidConfig, c.Auth.Mode)
	}

	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}

	if c.Studies.Enabled && c.Studies.Bucket == "" {
		return fmt.Errorf("%w: studies.bucket is required", ErrInvalidConfig)
	}

	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs:     LogsConfig{Level: "info"},
		Metrics:  MetricsConfig{Path: "/metrics", ServiceName: "availability_service"},
		Storage:  StorageConfig{Driver: StorageDriverPostgres},
		Database: DatabaseConfig{Port: 5432, SSLMode: "disable", MaxOpenConns: 10, MaxIdleConns: 5, ConnMaxLifetime: 300},
		Mongo:    MongoConfig{Timeout: 10},
		Cache:    CacheConfig{TTL: 300},
		Events:   EventsConfig{Exchange: "availability", RoutingKey: "schedule.updated"},
		Auth:     AuthConfig{Mode: AuthModeHeader},
		Studies:  StudiesConfig{MaxFileSize: 10 << 20, URLExpiry: 900},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 120,
		},
	}
}

// applyEnv переопределяет секреты и адреса переменными окружения
func applyEnv(cfg *Config) {
	setString(&cfg.Database.Host, "DB_HOST")
	setInt(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.DBName, "DB_NAME")
	setString(&cfg.Mongo.URI, "MONGO_URI")
	setString(&cfg.Firebase.CredentialsFile, "FIREBASE_CREDENTIALS_FILE")
	setString(&cfg.Firebase.ProjectID, "FIREBASE_PROJECT_ID")
	setString(&cfg.Cache.Addr, "REDIS_ADDR")
	setString(&cfg.Cache.Password, "REDIS_PASSWORD")
	setString(&cfg.Events.URL, "RABBITMQ_URL")
	setString(&cfg.Auth.JWTSecret, "JWT_SECRET")
	setString(&cfg.Studies.AccessKey, "MINIO_ACCESS_KEY")
	setString(&cfg.Studies.SecretKey, "MINIO_SECRET_KEY")
	setString(&cfg.Studies.Endpoint, "MINIO_ENDPOINT")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
