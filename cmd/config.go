package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// RabbitMQURL is optional. Without it order events are not published.
	RabbitMQURL string

	OrderCodeRetries       int
	OrderCodeFloorCustomer uint64
	OrderCodeFloorManual   uint64
	SalaryRatePerLoad      decimal.Decimal

	StaleOrderAfter    time.Duration
	StaleOrderSchedule string
	ReportSchedule     string
	ReportDir          string
	ShopName           string
}

// LoadConfig reads the environment, after loading .env when the file exists.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{
		HTTPPort:           getEnv("HTTP_PORT", "8080"),
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", "5432"),
		DBUser:             getEnv("DB_USER", "postgres"),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBName:             getEnv("DB_NAME", "laundry"),
		DBSslMode:          getEnv("DB_SSLMODE", "disable"),
		RabbitMQURL:        getEnv("RABBITMQ_URL", ""),
		StaleOrderSchedule: getEnv("STALE_ORDER_SCHEDULE", "0 */15 * * * *"),
		ReportSchedule:     getEnv("REPORT_SCHEDULE", "0 5 0 * * *"),
		ReportDir:          getEnv("REPORT_DIR", "reports"),
		ShopName:           getEnv("SHOP_NAME", "Laundry"),
	}

	var (
		staleHours int
		errList    []error
	)
	cfg.OrderCodeRetries, errList = parseInt("ORDER_CODE_RETRIES", 1, errList)
	cfg.OrderCodeFloorCustomer, errList = parseUint("ORDER_CODE_FLOOR_CUSTOMER", 1, errList)
	cfg.OrderCodeFloorManual, errList = parseUint("ORDER_CODE_FLOOR_MANUAL", 0, errList)
	staleHours, errList = parseInt("STALE_ORDER_HOURS", 48, errList)

	ratePerLoad, err := decimal.NewFromString(getEnv("SALARY_RATE_PER_LOAD", "20"))
	if err != nil {
		errList = append(errList, fmt.Errorf("SALARY_RATE_PER_LOAD: %w", err))
	}
	cfg.SalaryRatePerLoad = ratePerLoad

	if cfg.OrderCodeRetries < 0 {
		errList = append(errList, errors.New("ORDER_CODE_RETRIES must not be negative"))
	}
	if staleHours <= 0 {
		errList = append(errList, errors.New("STALE_ORDER_HOURS must be positive"))
	}
	cfg.StaleOrderAfter = time.Duration(staleHours) * time.Hour

	if err = errors.Join(errList...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DSN is the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func parseInt(key string, fallback int, errList []error) (int, []error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, errList
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, append(errList, fmt.Errorf("%s: %w", key, err))
	}
	return n, errList
}

func parseUint(key string, fallback uint64, errList []error) (uint64, []error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, errList
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback, append(errList, fmt.Errorf("%s: %w", key, err))
	}
	return n, errList
}
