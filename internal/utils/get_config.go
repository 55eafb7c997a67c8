package utils

import (
	"os"
	"strconv"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"
)

const (
	ConfigFile = "config.yaml"
	EnvPrefix  = "GROCERY"
)

type Config struct {
	// Application
	AppPort  string `yaml:"APP_PORT" envconfig:"APP_PORT"`
	LogLevel string `yaml:"LOG_LEVEL" envconfig:"LOG_LEVEL"`
	LogFile  string `yaml:"LOG_FILE" envconfig:"LOG_FILE"`

	// Document storage
	StorageDriver string `yaml:"STORAGE_DRIVER" envconfig:"STORAGE_DRIVER"`
	DataDir       string `yaml:"DATA_DIR" envconfig:"DATA_DIR"`
	CatalogFile   string `yaml:"CATALOG_FILE" envconfig:"CATALOG_FILE"`
	HistoryFile   string `yaml:"HISTORY_FILE" envconfig:"HISTORY_FILE"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET" envconfig:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION" envconfig:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY" envconfig:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY" envconfig:"AWS_SECRET_KEY"`

	// Gemini API configuration
	GeminiAPIKey         string `yaml:"GEMINI_API_KEY" envconfig:"GEMINI_API_KEY"`
	GeminiModel          string `yaml:"GEMINI_MODEL" envconfig:"GEMINI_MODEL"`
	GeminiBaseURL        string `yaml:"GEMINI_BASE_URL" envconfig:"GEMINI_BASE_URL"`
	GeminiTimeoutSeconds int    `yaml:"GEMINI_TIMEOUT_SECONDS" envconfig:"GEMINI_TIMEOUT_SECONDS"`

	// Mailing configuration
	SMTPHost         string `yaml:"SMTP_HOST" envconfig:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT" envconfig:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME" envconfig:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL" envconfig:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD" envconfig:"SMTP_AUTH_PASSWORD"`
	NotifyEmail      string `yaml:"NOTIFY_EMAIL" envconfig:"NOTIFY_EMAIL"`
}

var (
	config   = defaultConfig()
	configMu sync.RWMutex
)

func defaultConfig() Config {
	return Config{
		AppPort:              "3000",
		LogLevel:             "info",
		LogFile:              "./logs/app.log",
		StorageDriver:        "file",
		DataDir:              ".",
		CatalogFile:          "products.json",
		HistoryFile:          "pantry_history.json",
		GeminiModel:          "gemini-1.5-flash",
		GeminiBaseURL:        "https://generativelanguage.googleapis.com/v1beta",
		GeminiTimeoutSeconds: 30,
		SMTPPort:             "587",
	}
}

// LoadConfig reads config.yaml from the working directory and applies
// GROCERY_* environment overrides on top of it.
func LoadConfig() {
	LoadConfigFrom(ConfigFile)
}

func LoadConfigFrom(path string) {
	cfg := defaultConfig()

	file, err := os.ReadFile(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("config file not read, using defaults")
	} else if err := yaml.Unmarshal(file, &cfg); err != nil {
		log.Error().Err(err).Str("path", path).Msg("error parsing config file")
	}

	// Unset variables leave the YAML value untouched.
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		log.Error().Err(err).Msg("error processing environment overrides")
	}

	configMu.Lock()
	config = cfg
	configMu.Unlock()

	log.Info().
		Str("storage_driver", cfg.StorageDriver).
		Str("data_dir", cfg.DataDir).
		Str("gemini_model", cfg.GeminiModel).
		Bool("gemini_key_present", cfg.GeminiAPIKey != "").
		Bool("smtp_configured", cfg.SMTPHost != "").
		Msg("configuration loaded")
}

// AppConfig returns a copy of the loaded configuration.
func AppConfig() Config {
	configMu.RLock()
	defer configMu.RUnlock()
	return config
}

func GetConfig(key string) string {
	cfg := AppConfig()

	switch key {
	case "APP_PORT":
		return cfg.AppPort
	case "LOG_LEVEL":
		return cfg.LogLevel
	case "LOG_FILE":
		return cfg.LogFile
	case "STORAGE_DRIVER":
		return cfg.StorageDriver
	case "DATA_DIR":
		return cfg.DataDir
	case "CATALOG_FILE":
		return cfg.CatalogFile
	case "HISTORY_FILE":
		return cfg.HistoryFile
	case "AWS_S3_BUCKET":
		return cfg.AWSS3Bucket
	case "AWS_S3_REGION":
		return cfg.AWSS3Region
	case "AWS_ACCESS_KEY":
		return cfg.AWSAccessKey
	case "AWS_SECRET_KEY":
		return cfg.AWSSecretKey
	case "GEMINI_API_KEY":
		return cfg.GeminiAPIKey
	case "GEMINI_MODEL":
		return cfg.GeminiModel
	case "GEMINI_BASE_URL":
		return cfg.GeminiBaseURL
	case "GEMINI_TIMEOUT_SECONDS":
		return strconv.Itoa(cfg.GeminiTimeoutSeconds)
	case "SMTP_HOST":
		return cfg.SMTPHost
	case "SMTP_PORT":
		return cfg.SMTPPort
	case "SMTP_SENDER_NAME":
		return cfg.SMTPSenderName
	case "SMTP_AUTH_EMAIL":
		return cfg.SMTPAuthEmail
	case "SMTP_AUTH_PASSWORD":
		return cfg.SMTPAuthPassword
	case "NOTIFY_EMAIL":
		return cfg.NotifyEmail
	default:
		return ""
	}
}
