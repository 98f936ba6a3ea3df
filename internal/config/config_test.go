package config

import (
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
	v *viper.Viper
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.v = viper.New()
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := FromViper(s.v)
	s.Require().NoError(err)

	s.Equal("8080", cfg.Server.Port)
	s.Equal("development", cfg.Server.Environment)
	s.Equal(ProviderOpenAI, cfg.AI.DefaultProvider)
	s.Equal("gpt-4o-mini", cfg.AI.OpenAIModel)
	s.Equal("claude-sonnet-4-6", cfg.AI.AnthropicModel)
	s.Equal(1024, cfg.AI.AnthropicMaxTokens)
	s.Equal(24*time.Hour, cfg.JWT.AccessTokenDuration)
	s.Equal([]string{"*"}, cfg.Server.CORSAllowOrigins)
	s.NotNil(cfg.JWT.PrivateKey)
	s.NotNil(cfg.JWT.PublicKey)
}

func (s *ConfigTestSuite) TestOverrides() {
	s.v.Set("AI_PROVIDER", "Claude")
	s.v.Set("ANTHROPIC_BASE_URL", "http://localhost:9999/")
	s.v.Set("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")
	s.v.Set("PLAID_WEBHOOK_SECRET", "whsec")
	s.v.Set("DB_DRIVER", "SQLITE")

	cfg, err := FromViper(s.v)
	s.Require().NoError(err)

	s.Equal("claude", cfg.AI.DefaultProvider)
	s.Equal("http://localhost:9999", cfg.AI.AnthropicBaseURL)
	s.Equal([]string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
	s.Equal("whsec", cfg.Webhook.SigningSecret)
	s.Equal("sqlite", cfg.Database.Driver)
}

func (s *ConfigTestSuite) TestProductionRequiresKeys() {
	s.v.Set("APP_ENV", "production")

	_, err := FromViper(s.v)
	s.Error(err)
	s.Contains(err.Error(), "must be set in production")
}

func (s *ConfigTestSuite) TestKeysFromBase64() {
	privateKey, publicKey, err := GenerateRSAKeyPair()
	s.Require().NoError(err)

	pubBytes, err := x509.MarshalPKIXPublicKey(publicKey)
	s.Require().NoError(err)

	privPEM := pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(privateKey)})
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubBytes})

	s.v.Set("APP_ENV", "production")
	s.v.Set("JWT_PRIVATE_KEY", base64.StdEncoding.EncodeToString(privPEM))
	s.v.Set("JWT_PUBLIC_KEY", base64.StdEncoding.EncodeToString(pubPEM))

	cfg, err := FromViper(s.v)
	s.Require().NoError(err)
	s.True(cfg.JWT.PrivateKey.Equal(privateKey))
	s.True(cfg.JWT.PublicKey.Equal(publicKey))
}

func (s *ConfigTestSuite) TestInvalidBase64Key() {
	s.v.Set("JWT_PRIVATE_KEY", "not-base64!")
	s.v.Set("JWT_PUBLIC_KEY", "not-base64!")

	_, err := FromViper(s.v)
	s.Error(err)
	s.Contains(err.Error(), "failed to decode JWT_PRIVATE_KEY")
}

func (s *ConfigTestSuite) TestDatabaseURLs() {
	db := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	s.Equal("host=db port=5432 user=u password=p dbname=n sslmode=disable", db.DSN())
	s.Equal("postgres://u:p@db:5432/n?sslmode=disable", db.URL())
}
