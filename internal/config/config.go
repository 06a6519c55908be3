package config

import (
	"log"

	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/pkg/utils"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Pricing   PricingConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

// PricingConfig holds the deployment constants of the pricing engine
type PricingConfig struct {
	IVA            decimal.Decimal
	FabricPriceM2  decimal.Decimal
	FabricMinPrice decimal.Decimal
	MaxConcurrency int
}

type StorageConfig struct {
	UploadMaxSize int64
	MoldSheetName string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// Load reads .env and the environment into a Config
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	return build(viper.GetViper())
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "framing-api")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_NAME", "framing")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_TIMEZONE", "Europe/Madrid")
	v.SetDefault("PRICING_IVA", "1.21")
	v.SetDefault("PRICING_FABRIC_PRICE_M2", "20")
	v.SetDefault("PRICING_FABRIC_MIN_PRICE", "0")
	v.SetDefault("PRICING_MAX_CONCURRENCY", 8)
	v.SetDefault("UPLOAD_MAX_SIZE", 10485760)
	v.SetDefault("MOLD_SHEET_NAME", "TODAS")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	v.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	v.SetDefault("RATE_LIMIT_REQUESTS", 100)
	v.SetDefault("RATE_LIMIT_DURATION", 60)
}

func build(v *viper.Viper) *Config {
	setDefaults(v)

	return &Config{
		App: AppConfig{
			Name:  v.GetString("APP_NAME"),
			Env:   v.GetString("APP_ENV"),
			Port:  v.GetString("APP_PORT"),
			Debug: v.GetBool("APP_DEBUG"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
			Timezone: v.GetString("DB_TIMEZONE"),
		},
		Pricing: PricingConfig{
			IVA:            getDecimal(v, "PRICING_IVA"),
			FabricPriceM2:  getDecimal(v, "PRICING_FABRIC_PRICE_M2"),
			FabricMinPrice: getDecimal(v, "PRICING_FABRIC_MIN_PRICE"),
			MaxConcurrency: v.GetInt("PRICING_MAX_CONCURRENCY"),
		},
		Storage: StorageConfig{
			UploadMaxSize: v.GetInt64("UPLOAD_MAX_SIZE"),
			MoldSheetName: v.GetString("MOLD_SHEET_NAME"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: v.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: v.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: v.GetInt("RATE_LIMIT_DURATION"),
		},
	}
}

// getDecimal parses a decimal setting, accepting a comma as decimal separator
func getDecimal(v *viper.Viper, key string) decimal.Decimal {
	raw := v.GetString(key)
	d, err := utils.ParseDecimal(raw)
	if err != nil {
		log.Printf("Warning: invalid decimal %s=%q, using 0: %v", key, raw, err)
		return decimal.Zero
	}
	return d
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}
