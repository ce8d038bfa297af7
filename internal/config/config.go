package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix префикс переменных окружения, переопределяющих config.toml
const EnvPrefix = "PLACEBOOKING"

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	Booking  BookingConfig  `toml:"booking"`
	Sweeper  SweeperConfig  `toml:"sweeper"`
	Audit    AuditConfig    `toml:"audit"`
}

// ServerConfig настройки HTTP сервера; таймауты в секундах
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	CORSOrigins     []string `toml:"cors_origins"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
	AutoMigrate     bool   `toml:"auto_migrate"`
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig настройки проверки JWT
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
	Issuer    string `toml:"issuer"`
}

// BookingConfig настройки бронирования
type BookingConfig struct {
	// Timezone зона, в которой заданы часы работы объектов (IANA, например "Europe/Moscow")
	Timezone string `toml:"timezone"`
}

// Location загружает временную зону
func (c BookingConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// SweeperConfig настройки автозавершения
type SweeperConfig struct {
	Enabled  bool   `toml:"enabled"`
	Schedule string `toml:"schedule"`
	Timeout  int    `toml:"timeout"` // секунды на один проход
}

// AuditConfig настройки журнала аудита (RabbitMQ)
type AuditConfig struct {
	Enabled        bool   `toml:"enabled"`
	URL            string `toml:"url"`
	Exchange       string `toml:"exchange"`
	PublishTimeout int    `toml:"publish_timeout"` // секунды
}

// envOverrides значения из окружения, имеющие приоритет над файлом
type envOverrides struct {
	HTTPPort   *int    `envconfig:"HTTP_PORT"`
	DBHost     *string `envconfig:"DB_HOST"`
	DBPort     *int    `envconfig:"DB_PORT"`
	DBUser     *string `envconfig:"DB_USER"`
	DBPassword *string `envconfig:"DB_PASSWORD"`
	DBName     *string `envconfig:"DB_NAME"`
	LogLevel   *string `envconfig:"LOG_LEVEL"`
	JWTSecret  *string `envconfig:"JWT_SECRET"`
	Timezone   *string `envconfig:"TIMEZONE"`
	AuditURL   *string `envconfig:"AUDIT_URL"`
}

// Load читает конфигурацию из TOML файла, затем применяет .env и переменные PLACEBOOKING_*
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return nil, fmt.Errorf("config: read environment: %w", err)
	}
	cfg.apply(env)
	cfg.setDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) apply(env envOverrides) {
	set(&c.Server.HTTPPort, env.HTTPPort)
	set(&c.Database.Host, env.DBHost)
	set(&c.Database.Port, env.DBPort)
	set(&c.Database.User, env.DBUser)
	set(&c.Database.Password, env.DBPassword)
	set(&c.Database.DBName, env.DBName)
	set(&c.Logs.Level, env.LogLevel)
	set(&c.Auth.JWTSecret, env.JWTSecret)
	set(&c.Booking.Timezone, env.Timezone)
	set(&c.Audit.URL, env.AuditURL)
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func (c *Config) setDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 25
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 300
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "place_booking"
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = "Local"
	}
	if c.Sweeper.Schedule == "" {
		c.Sweeper.Schedule = "@every 1m"
	}
	if c.Sweeper.Timeout == 0 {
		c.Sweeper.Timeout = 30
	}
	if c.Audit.Exchange == "" {
		c.Audit.Exchange = "place_booking.audit"
	}
	if c.Audit.PublishTimeout == 0 {
		c.Audit.PublishTimeout = 5
	}
}

// Validate проверяет обязательные поля и допустимые значения
func (c *Config) Validate() error {
	var problems []string

	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		problems = append(problems, fmt.Sprintf("server.http_port out of range: %d", c.Server.HTTPPort))
	}
	if c.Database.Host == "" {
		problems = append(problems, "database.host is required")
	}
	if c.Database.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	if c.Auth.JWTSecret == "" {
		problems = append(problems, "auth.jwt_secret is required (or "+EnvPrefix+"_JWT_SECRET)")
	}
	if _, err := c.Booking.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("booking.timezone: %v", err))
	}
	if c.Audit.Enabled && c.Audit.URL == "" {
		problems = append(problems, "audit.url is required when audit is enabled")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config: invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}
