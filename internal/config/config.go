package config

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderGemini    = "gemini"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Security SecurityConfig
	AI       AIConfig
	Webhook  WebhookConfig
	Demo     DemoConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
	SeedsPath       string
	SeedDatabase    bool
}

type JWTConfig struct {
	AccessTokenDuration time.Duration
	PrivateKey          *rsa.PrivateKey
	PublicKey           *rsa.PublicKey
	Issuer              string
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	RateLimitBurst     int
}

// AIConfig is handed to the provider factory on every propose call.
// Nothing in the llm package reads the process environment.
type AIConfig struct {
	DefaultProvider    string
	RequestTimeout     time.Duration
	OpenAIAPIKey       string
	OpenAIModel        string
	OpenAIBaseURL      string
	AnthropicAPIKey    string
	AnthropicModel     string
	AnthropicBaseURL   string
	AnthropicMaxTokens int
	GeminiAPIKey       string
	GeminiModel        string
	GeminiBaseURL      string
}

type WebhookConfig struct {
	SigningSecret string
}

type DemoConfig struct {
	AdminSecret string
}

type LogConfig struct {
	Level  string
	Format string
}

// SetDefaults registers every configuration key with its default value so
// that AutomaticEnv can resolve it from the environment.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 90*time.Second)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("CORS_ALLOW_ORIGINS", "")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "ledger")
	v.SetDefault("DB_PASSWORD", "ledger")
	v.SetDefault("DB_NAME", "ledger_copilot")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_SQLITE_PATH", "ledger-copilot.db")
	v.SetDefault("DB_MAX_CONNECTIONS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", time.Hour)
	v.SetDefault("AUTO_MIGRATE", false)
	v.SetDefault("MIGRATIONS_PATH", "db/migrations")
	v.SetDefault("SEEDS_PATH", "db/seeds")
	v.SetDefault("SEED_DATABASE", false)

	v.SetDefault("JWT_ACCESS_TOKEN_DURATION", 24*time.Hour)
	v.SetDefault("JWT_ISSUER", "ledger-copilot")
	v.SetDefault("JWT_PRIVATE_KEY", "")
	v.SetDefault("JWT_PUBLIC_KEY", "")

	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("RATE_LIMIT_PER_SECOND", 5)
	v.SetDefault("RATE_LIMIT_BURST", 10)

	v.SetDefault("AI_PROVIDER", ProviderOpenAI)
	v.SetDefault("AI_REQUEST_TIMEOUT", 60*time.Second)
	v.SetDefault("OPENAI_API_KEY", "")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("ANTHROPIC_API_KEY", "")
	v.SetDefault("CLAUDE_MODEL", "claude-sonnet-4-6")
	v.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com")
	v.SetDefault("ANTHROPIC_MAX_TOKENS", 1024)
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "")

	v.SetDefault("PLAID_WEBHOOK_SECRET", "")
	v.SetDefault("DEMO_ADMIN_SECRET", "")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
}

// Load reads configuration from the global viper instance, which the CLI
// binds to flags, an optional config file and the environment.
func Load() (*Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper builds a Config from the given viper instance.
func FromViper(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.AutomaticEnv()

	config := &Config{
		Server: ServerConfig{
			Port:            v.GetString("SERVER_PORT"),
			Host:            v.GetString("SERVER_HOST"),
			Environment:     v.GetString("APP_ENV"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
		},
		Database: DatabaseConfig{
			Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetString("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			Name:            v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSL_MODE"),
			SQLitePath:      v.GetString("DB_SQLITE_PATH"),
			MaxConnections:  v.GetInt("DB_MAX_CONNECTIONS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("AUTO_MIGRATE"),
			MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
			SeedsPath:       v.GetString("SEEDS_PATH"),
			SeedDatabase:    v.GetBool("SEED_DATABASE"),
		},
		Security: SecurityConfig{
			BCryptCost:         v.GetInt("BCRYPT_COST"),
			RateLimitPerSecond: v.GetInt("RATE_LIMIT_PER_SECOND"),
			RateLimitBurst:     v.GetInt("RATE_LIMIT_BURST"),
		},
		JWT: JWTConfig{
			AccessTokenDuration: v.GetDuration("JWT_ACCESS_TOKEN_DURATION"),
			Issuer:              v.GetString("JWT_ISSUER"),
		},
		AI: AIConfig{
			DefaultProvider:    strings.ToLower(v.GetString("AI_PROVIDER")),
			RequestTimeout:     v.GetDuration("AI_REQUEST_TIMEOUT"),
			OpenAIAPIKey:       v.GetString("OPENAI_API_KEY"),
			OpenAIModel:        v.GetString("OPENAI_MODEL"),
			OpenAIBaseURL:      v.GetString("OPENAI_BASE_URL"),
			AnthropicAPIKey:    v.GetString("ANTHROPIC_API_KEY"),
			AnthropicModel:     v.GetString("CLAUDE_MODEL"),
			AnthropicBaseURL:   strings.TrimRight(v.GetString("ANTHROPIC_BASE_URL"), "/"),
			AnthropicMaxTokens: v.GetInt("ANTHROPIC_MAX_TOKENS"),
			GeminiAPIKey:       v.GetString("GEMINI_API_KEY"),
			GeminiModel:        v.GetString("GEMINI_MODEL"),
			GeminiBaseURL:      v.GetString("GEMINI_BASE_URL"),
		},
		Webhook: WebhookConfig{
			SigningSecret: v.GetString("PLAID_WEBHOOK_SECRET"),
		},
		Demo: DemoConfig{
			AdminSecret: v.GetString("DEMO_ADMIN_SECRET"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins(v.GetString("CORS_ALLOW_ORIGINS"))

	var err error
	config.JWT.PrivateKey, config.JWT.PublicKey, err = config.loadJWTKeys(
		v.GetString("JWT_PRIVATE_KEY"),
		v.GetString("JWT_PUBLIC_KEY"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	if config.IsProduction() && config.Webhook.SigningSecret == "" {
		slog.Warn("PLAID_WEBHOOK_SECRET is not set; every webhook delivery will be rejected")
	}

	return config, nil
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// URL returns the connection string in the form golang-migrate expects.
func (c *DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// Address is the listen address for the HTTP server.
func (c *ServerConfig) Address() string {
	return c.Host + ":" + c.Port
}

// loadJWTKeys loads RSA keys for JWT signing and verification
// Priority order:
// 1. If JWT_PRIVATE_KEY and JWT_PUBLIC_KEY are set, use them (works in all environments)
// 2. If production and keys missing, fail with error
// 3. Otherwise generate a new keypair
func (c *Config) loadJWTKeys(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if privateKeyB64 != "" && publicKeyB64 != "" {
		slog.Info("loading RSA keypair from configuration")
		return loadKeysFromBase64(privateKeyB64, publicKeyB64)
	}

	if c.IsProduction() {
		return nil, nil, fmt.Errorf("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set in production environments")
	}

	slog.Info("generating ephemeral RSA keypair for JWT; tokens will not survive a restart")
	return GenerateRSAKeyPair()
}

func loadKeysFromBase64(privateKeyB64, publicKeyB64 string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKeyBytes, err := base64.StdEncoding.DecodeString(privateKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}

	publicKeyBytes, err := base64.StdEncoding.DecodeString(publicKeyB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}

	privateKey, err := loadRSAPrivateKey(privateKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	publicKey, err := loadRSAPublicKey(publicKeyBytes)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	return privateKey, publicKey, nil
}

func (c *Config) loadCORSAllowOrigins(raw string) []string {
	if raw == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(raw, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}

// GenerateRSAKeyPair generates a new RSA key pair
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}

	return privateKey, &privateKey.PublicKey, nil
}

func loadRSAPrivateKey(pemData []byte) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	privateKey, err := x509.ParsePKCS1PrivateKey(block.Bytes)
	if err == nil {
		return privateKey, nil
	}

	// PKCS8 fallback
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, errors.New("not an RSA private key")
	}
	return rsaKey, nil
}

func loadRSAPublicKey(pemData []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemData)
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing the key")
	}

	publicKey, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}

	rsaPublicKey, ok := publicKey.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPublicKey, nil
}
