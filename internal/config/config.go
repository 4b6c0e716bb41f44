package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API         APIConfig         `mapstructure:"api"`
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	Busca       BuscaConfig       `mapstructure:"busca"`
	AWS         AWSConfig         `mapstructure:"aws"`
	Redis       RedisConfig       `mapstructure:"redis"`
	MercadoPago MercadoPagoConfig `mapstructure:"mercadopago"`
}

// APIConfig points at the orçamentos REST backend.
type APIConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	Token      string        `mapstructure:"token"`
	Timeout    time.Duration `mapstructure:"timeout"`
	VendedorID int64         `mapstructure:"vendedor_id"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type BuscaConfig struct {
	Debounce time.Duration `mapstructure:"debounce"`
}

// AWSConfig covers the optional journal table and PDF archive bucket.
// Empty table or bucket names disable the respective component.
type AWSConfig struct {
	Region              string `mapstructure:"region"`
	AccessKeyID         string `mapstructure:"access_key_id"`
	SecretAccessKey     string `mapstructure:"secret_access_key"`
	DynamoDBEndpoint    string `mapstructure:"dynamodb_endpoint"`
	WorkflowEventsTable string `mapstructure:"workflow_events_table"`
	S3Endpoint          string `mapstructure:"s3_endpoint"`
	PDFBucket           string `mapstructure:"pdf_bucket"`
}

type RedisConfig struct {
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	CEPCacheTTL time.Duration `mapstructure:"cep_cache_ttl"`
}

type MercadoPagoConfig struct {
	AccessToken    string `mapstructure:"access_token"`
	Mock           bool   `mapstructure:"mock"`
	TestPayerEmail string `mapstructure:"test_payer_email"`
}

func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	bindEnvVariables(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.API.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.API.BaseURL), "/")
	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	cfg.Busca.Debounce = clampDebounce(cfg.Busca.Debounce)

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8000")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("busca.debounce", "300ms")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("redis.cep_cache_ttl", "24h")
}

func bindEnvVariables(v *viper.Viper) {
	// API
	v.BindEnv("api.base_url", "API_BASE_URL")
	v.BindEnv("api.token", "API_TOKEN")
	v.BindEnv("api.timeout", "API_TIMEOUT")
	v.BindEnv("api.vendedor_id", "VENDEDOR_ID")

	// Server
	v.BindEnv("server.port", "SERVER_PORT")
	v.BindEnv("server.mode", "SERVER_MODE")
	v.BindEnv("server.shutdown_timeout", "SERVER_SHUTDOWN_TIMEOUT")

	// Log
	v.BindEnv("log.level", "LOG_LEVEL")
	v.BindEnv("log.format", "LOG_FORMAT")

	v.BindEnv("busca.debounce", "BUSCA_DEBOUNCE")

	// AWS
	v.BindEnv("aws.region", "AWS_REGION")
	v.BindEnv("aws.access_key_id", "AWS_ACCESS_KEY_ID")
	v.BindEnv("aws.secret_access_key", "AWS_SECRET_ACCESS_KEY")
	v.BindEnv("aws.dynamodb_endpoint", "DYNAMODB_ENDPOINT")
	v.BindEnv("aws.workflow_events_table", "WORKFLOW_EVENTS_TABLE")
	v.BindEnv("aws.s3_endpoint", "S3_ENDPOINT")
	v.BindEnv("aws.pdf_bucket", "PDF_BUCKET")

	// Redis
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.db", "REDIS_DB")
	v.BindEnv("redis.cep_cache_ttl", "CEP_CACHE_TTL")

	// Mercado Pago
	v.BindEnv("mercadopago.access_token", "MERCADOPAGO_ACCESS_TOKEN")
	v.BindEnv("mercadopago.mock", "PAYMENT_GATEWAY_MOCK")
	v.BindEnv("mercadopago.test_payer_email", "MERCADOPAGO_TEST_PAYER_EMAIL")
}

// clampDebounce keeps the search debounce in the 300ms..1s range.
func clampDebounce(d time.Duration) time.Duration {
	switch {
	case d < 300*time.Millisecond:
		return 300 * time.Millisecond
	case d > time.Second:
		return time.Second
	}
	return d
}
