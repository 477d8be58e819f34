package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/farellandr/ticketservice/internal/models"
	"github.com/farellandr/ticketservice/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/xendit/xendit-go/v6"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Xendit   XenditConfig
	Pricing  services.PriceList
	JWT      JWTConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Enabled reports whether a ledger database has been configured.
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type XenditConfig struct {
	SecretKey string
	PublicKey string
}

type JWTConfig struct {
	Secret string
}

type LogConfig struct {
	Mode string
}

func LoadConfig() (*Config, error) {
	defaults := services.DefaultPriceList()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Mode: getEnv("GIN_MODE", gin.DebugMode),
		},
		Database: DatabaseConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		Xendit: XenditConfig{
			SecretKey: os.Getenv("XENDIT_SECRET_KEY"),
			PublicKey: os.Getenv("XENDIT_PUBLIC_KEY"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
		Log: LogConfig{
			Mode: getEnv("LOG_MODE", "development"),
		},
	}

	switch cfg.Server.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return nil, fmt.Errorf("GIN_MODE must be one of %s, %s, %s: got %q",
			gin.DebugMode, gin.ReleaseMode, gin.TestMode, cfg.Server.Mode)
	}

	var err error
	if cfg.Pricing.Adult, err = getEnvAsInt("TICKET_PRICE_ADULT", defaults.Adult); err != nil {
		return nil, err
	}
	if cfg.Pricing.Child, err = getEnvAsInt("TICKET_PRICE_CHILD", defaults.Child); err != nil {
		return nil, err
	}
	if cfg.Pricing.Infant, err = getEnvAsInt("TICKET_PRICE_INFANT", defaults.Infant); err != nil {
		return nil, err
	}
	if err := cfg.Pricing.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ticket prices: %w", err)
	}

	return cfg, nil
}

// InitXenditClient returns nil when no secret key is configured, which puts
// the payment gateway in sandbox mode.
func InitXenditClient(cfg XenditConfig) *xendit.APIClient {
	if cfg.SecretKey == "" {
		return nil
	}
	return xendit.NewClient(cfg.SecretKey)
}

func InitDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Payment{}, &models.SeatReservation{})
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
