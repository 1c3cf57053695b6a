// internal/config/config.go
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DataSourceSample   = "sample"
	DataSourcePostgres = "postgres"
	DataSourceCRM      = "crm"
)

type Config struct {
	Port       string
	DataSource string

	DatabaseURL string

	// CRM (Salesforce) connection. Only the BFF ever sees these.
	CRMLoginURL       string
	CRMInstanceURL    string
	CRMAPIVersion     string
	CRMClientID       string
	CRMClientSecret   string
	CRMUpdatePath     string
	CRMFabricatorName string
	CRMTimeout        time.Duration

	SessionSecret          []byte
	SessionTTL             time.Duration
	SecureCookies          bool
	FabricatorPasswordHash string
	FabricatorDisplayName  string

	AMQPURL string

	TechnicianName string
	TechnicianID   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	cfg := &Config{
		Port:       getEnv("PORT", "8080"),
		DataSource: getEnv("DATA_SOURCE", DataSourceSample),

		DatabaseURL: databaseURL(),

		CRMLoginURL:       getEnv("CRM_LOGIN_URL", "https://login.salesforce.com"),
		CRMInstanceURL:    getEnv("CRM_INSTANCE_URL", ""),
		CRMAPIVersion:     getEnv("CRM_API_VERSION", "v59.0"),
		CRMClientID:       getEnv("CRM_CLIENT_ID", ""),
		CRMClientSecret:   getEnv("CRM_CLIENT_SECRET", ""),
		CRMUpdatePath:     getEnv("CRM_UPDATE_PATH", "/services/apexrest/FabricatorUpdate"),
		CRMFabricatorName: getEnv("CRM_FABRICATOR_NAME", "Demo Fabricator"),
		CRMTimeout:        time.Duration(getEnvInt("CRM_TIMEOUT_SECONDS", 15)) * time.Second,

		SessionTTL:             time.Duration(getEnvInt("SESSION_TTL_HOURS", 12)) * time.Hour,
		SecureCookies:          getEnvBool("SECURE_COOKIES", false),
		FabricatorPasswordHash: getEnv("FABRICATOR_PASSWORD_HASH", ""),
		FabricatorDisplayName:  getEnv("FABRICATOR_DISPLAY_NAME", "John Smith"),

		AMQPURL: getEnv("AMQP_URL", ""),

		TechnicianName: getEnv("TECHNICIAN_NAME", "Rajesh Kumar"),
		TechnicianID:   getEnv("TECHNICIAN_ID", "8301"),
	}

	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		cfg.SessionSecret = []byte(secret)
	} else {
		log.Println("⚠️ SESSION_SECRET not set, sessions will not survive a restart")
		cfg.SessionSecret = randomSecret()
	}

	return cfg
}

// Validate reports configuration that makes the selected data source unusable.
func (c *Config) Validate() error {
	switch c.DataSource {
	case DataSourceSample:
	case DataSourcePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATA_SOURCE=postgres requires DATABASE_URL or DB_* variables")
		}
	case DataSourceCRM:
		if c.CRMClientID == "" || c.CRMClientSecret == "" {
			return fmt.Errorf("DATA_SOURCE=crm requires CRM_CLIENT_ID and CRM_CLIENT_SECRET")
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}
	return nil
}

func databaseURL() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}
	user := os.Getenv("DB_USER")
	name := os.Getenv("DB_NAME")
	if user == "" || name == "" {
		return ""
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		user, os.Getenv("DB_PASSWORD"), getEnv("DB_HOST", "localhost"), getEnv("DB_PORT", "5432"), name,
	)
}

func randomSecret() []byte {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("failed to generate session secret: %v", err)
	}
	return []byte(hex.EncodeToString(b))
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
