package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	JWT struct {
		Secret  string `yaml:"secret"`
		TTLDays int    `yaml:"ttl_days"`
	} `yaml:"jwt"`

	// AdminEmail is force-assigned the admin role at registration and is
	// admitted by the admin gate regardless of the token role.
	AdminEmail string `yaml:"admin_email"`

	CORS struct {
		Origins []string `yaml:"origins"`
	} `yaml:"cors"`

	Email struct {
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		UseSSL       bool   `yaml:"use_ssl"`
		AppName      string `yaml:"app_name"`
		FrontendURL  string `yaml:"frontend_url"`
	} `yaml:"email"`

	Storage struct {
		Type       string `yaml:"type"`       // local, s3, cloudflare_r2
		BasePath   string `yaml:"base_path"`  // for local storage
		BaseURL    string `yaml:"base_url"`   // public URL base
		Bucket     string `yaml:"bucket"`     // for S3/R2
		Region     string `yaml:"region"`     // for S3
		AccessKey  string `yaml:"access_key"` // for S3/R2
		SecretKey  string `yaml:"secret_key"` // for S3/R2
		Endpoint   string `yaml:"endpoint"`   // for R2 or custom S3
		UseSSL     bool   `yaml:"use_ssl"`
		PublicRead bool   `yaml:"public_read"`
	} `yaml:"storage"`

	Upload struct {
		MaxSize      int64    `yaml:"max_size"`      // max file size in bytes
		AllowedTypes []string `yaml:"allowed_types"` // allowed MIME types
	} `yaml:"upload"`
}

var AppConfig *Config

// LoadConfig populates AppConfig. When DATABASE_URL is set the whole
// configuration comes from the environment; otherwise config.yaml is read.
func LoadConfig() {
	var cfg Config

	if os.Getenv("DATABASE_URL") == "" {
		configPath := os.Getenv("CONFIG_PATH")
		if configPath == "" {
			configPath = "config/config.yaml"
		}

		f, err := os.Open(configPath)
		if err != nil {
			log.Fatalf("Failed to open config file at %s: %v", configPath, err)
		}
		defer f.Close()

		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}

		applyDefaults(&cfg)
		AppConfig = &cfg
		return
	}

	cfg.Database.DSN = os.Getenv("DATABASE_URL")
	cfg.Server.Env = getEnv("SERVER_ENV", "production")
	cfg.Server.Host = os.Getenv("SERVER_HOST")
	cfg.Server.Port = getEnvInt("PORT", 8080)

	cfg.JWT.Secret = os.Getenv("JWT_SECRET")
	cfg.JWT.TTLDays = getEnvInt("JWT_TTL_DAYS", 7)

	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.CORS.Origins = splitOrigins(getEnv("CORS_ORIGIN", "*"))

	cfg.Email.SMTPHost = os.Getenv("SMTP_HOST")
	cfg.Email.SMTPPort = getEnvInt("SMTP_PORT", 587)
	cfg.Email.SMTPUsername = os.Getenv("SMTP_USER")
	cfg.Email.SMTPPassword = os.Getenv("SMTP_PASS")
	cfg.Email.UseSSL = os.Getenv("SMTP_SECURE") == "true"
	cfg.Email.FromEmail = getEnv("EMAIL_FROM", cfg.Email.SMTPUsername)
	cfg.Email.FromName = getEnv("EMAIL_FROM_NAME", "Mini Job Portal")
	cfg.Email.AppName = getEnv("APP_NAME", "Mini Job Portal")
	cfg.Email.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:3000")

	cfg.Storage.Type = getEnv("STORAGE_TYPE", "local")
	cfg.Storage.BasePath = getEnv("STORAGE_BASE_PATH", "./uploads")
	cfg.Storage.BaseURL = getEnv("STORAGE_BASE_URL", "/uploads")
	cfg.Storage.Bucket = os.Getenv("STORAGE_BUCKET")
	cfg.Storage.Region = os.Getenv("STORAGE_REGION")
	cfg.Storage.AccessKey = os.Getenv("STORAGE_ACCESS_KEY")
	cfg.Storage.SecretKey = os.Getenv("STORAGE_SECRET_KEY")
	cfg.Storage.Endpoint = os.Getenv("STORAGE_ENDPOINT")
	cfg.Storage.PublicRead = os.Getenv("STORAGE_PUBLIC_READ") == "true"

	applyDefaults(&cfg)
	AppConfig = &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.JWT.TTLDays == 0 {
		cfg.JWT.TTLDays = 7
	}
	if len(cfg.CORS.Origins) == 0 {
		cfg.CORS.Origins = []string{"*"}
	}
	if cfg.Upload.MaxSize == 0 {
		cfg.Upload.MaxSize = 5 * 1024 * 1024 // 5MB, CV PDFs only
	}
	if len(cfg.Upload.AllowedTypes) == 0 {
		cfg.Upload.AllowedTypes = []string{"application/pdf"}
	}
	if cfg.Email.SMTPPort == 0 {
		cfg.Email.SMTPPort = 587
	}
}

// GetConfig returns the loaded configuration, loading it on first use.
func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), "/")
		if p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
