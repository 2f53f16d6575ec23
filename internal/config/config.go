package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/crestfin/crm-backend-go/internal/domain/attendance"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database  DatabaseConfig
	JWT       JWTConfig
	App       AppConfig
	SMTP      SMTPConfig
	Storage   StorageConfig
	FaceMatch FaceMatchConfig
	Policy    attendance.Policy
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port         int
	Env          string
	LogLevel     string
	HRAlertEmail string // recipient for absconding/override alerts
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type StorageConfig struct {
	Type     string // "local"
	BasePath string
	BaseURL  string
}

// FaceMatchConfig points at the external face verification service.
type FaceMatchConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
	// MinConfidence rejects matches the service verified but with low
	// confidence.
	MinConfidence float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "crestfin-crm"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:         appPort,
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		HRAlertEmail: getEnv("HR_ALERT_EMAIL", ""),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@crestfin.example"),
		FromName: getEnv("SMTP_FROM_NAME", "Crestfin Attendance"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
	}

	// Face matcher configuration
	faceTimeout, err := strconv.Atoi(getEnv("FACEMATCH_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid FACEMATCH_TIMEOUT_SECONDS: %w", err)
	}
	minConfidence, err := parseFloat(getEnv("FACEMATCH_MIN_CONFIDENCE", "0.8"))
	if err != nil {
		return nil, fmt.Errorf("invalid FACEMATCH_MIN_CONFIDENCE: %w", err)
	}
	config.FaceMatch = FaceMatchConfig{
		BaseURL:        getEnv("FACEMATCH_URL", "http://localhost:9000"),
		APIKey:         getEnv("FACEMATCH_API_KEY", ""),
		TimeoutSeconds: faceTimeout,
		MinConfidence:  minConfidence,
	}

	policy, err := loadPolicy()
	if err != nil {
		return nil, err
	}
	config.Policy = policy

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadPolicy builds the attendance policy from env, falling back to
// the stock defaults per field.
func loadPolicy() (attendance.Policy, error) {
	p := attendance.DefaultPolicy()

	p.ReportingDeadline = getEnv("POLICY_REPORTING_DEADLINE", p.ReportingDeadline)

	var err error
	if p.FullDayWorkingHours, err = parseFloat(getEnv("POLICY_FULL_DAY_HOURS", fmt.Sprintf("%g", p.FullDayWorkingHours))); err != nil {
		return p, fmt.Errorf("invalid POLICY_FULL_DAY_HOURS: %w", err)
	}
	if p.HalfDayMinimumWorkingHours, err = parseFloat(getEnv("POLICY_HALF_DAY_MIN_HOURS", fmt.Sprintf("%g", p.HalfDayMinimumWorkingHours))); err != nil {
		return p, fmt.Errorf("invalid POLICY_HALF_DAY_MIN_HOURS: %w", err)
	}
	if p.GracePeriodMinutes, err = strconv.Atoi(getEnv("POLICY_GRACE_PERIOD_MINUTES", strconv.Itoa(p.GracePeriodMinutes))); err != nil {
		return p, fmt.Errorf("invalid POLICY_GRACE_PERIOD_MINUTES: %w", err)
	}
	if p.GraceUsageLimit, err = strconv.Atoi(getEnv("POLICY_GRACE_USAGE_LIMIT", strconv.Itoa(p.GraceUsageLimit))); err != nil {
		return p, fmt.Errorf("invalid POLICY_GRACE_USAGE_LIMIT: %w", err)
	}
	if p.MinimumWorkingDaysForSunday, err = strconv.Atoi(getEnv("POLICY_MIN_WORKING_DAYS_SUNDAY", strconv.Itoa(p.MinimumWorkingDaysForSunday))); err != nil {
		return p, fmt.Errorf("invalid POLICY_MIN_WORKING_DAYS_SUNDAY: %w", err)
	}
	if p.PendingLeaveAutoConvertDays, err = strconv.Atoi(getEnv("POLICY_PENDING_LEAVE_CONVERT_DAYS", strconv.Itoa(p.PendingLeaveAutoConvertDays))); err != nil {
		return p, fmt.Errorf("invalid POLICY_PENDING_LEAVE_CONVERT_DAYS: %w", err)
	}
	p.EnableSundaySandwichRule = getEnv("POLICY_SUNDAY_SANDWICH", "true") == "true"

	penalty := getEnv("POLICY_SUNDAY_PENALTY_COUNT", "0")
	switch penalty {
	case "0", "0.0":
		p.SundayPenaltyCount = decimal.Zero
	case "-1", "-1.0":
		p.SundayPenaltyCount = attendance.CountAbsconding
	default:
		return p, fmt.Errorf("invalid POLICY_SUNDAY_PENALTY_COUNT: must be 0 or -1, got %q", penalty)
	}

	return p, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}
