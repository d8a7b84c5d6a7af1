package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Admin AdminConfig
	Site  SiteConfig
}

type AppConfig struct {
	Port         string
	Host         string
	BaseURL      string
	Environment  string
	LogFilePath  string
	CatalogTopic string
}

type AdminConfig struct {
	Password      string
	PasswordHash  string
	JwtSecret     string
	SessionHours  int
	LoginAttempts int
}

type SiteConfig struct {
	DataDir      string
	PublicDir    string
	UploadsDir   string
	AppsDir      string
	TemplatesDir string
	ViewsDir     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	publicDir := getEnv("PUBLIC_DIR", "public")

	return &Config{
		App: AppConfig{
			Port:         getEnv("APP_PORT", "3001"),
			Host:         getEnv("APP_HOST", "127.0.0.1"),
			BaseURL:      getEnv("BASE_URL", "http://localhost:3001"),
			Environment:  getEnv("GO_ENV", "development"),
			LogFilePath:  getEnv("LOG_FILE_PATH", "logs/app.log"),
			CatalogTopic: getEnv("CATALOG_CHANGED_TOPIC_NAME", "CATALOG_CHANGED"),
		},
		Admin: AdminConfig{
			Password:      getEnv("ADMIN_PASSWORD", ""),
			PasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
			JwtSecret:     getEnv("JWT_SECRET", "change-me"),
			SessionHours:  getEnvAsInt("ADMIN_SESSION_HOURS", 12),
			LoginAttempts: getEnvAsInt("ADMIN_LOGIN_ATTEMPTS", 5),
		},
		Site: SiteConfig{
			DataDir:      getEnv("DATA_DIR", "data"),
			PublicDir:    publicDir,
			UploadsDir:   getEnv("UPLOADS_DIR", filepath.Join(publicDir, "uploads")),
			AppsDir:      getEnv("APPS_DIR", filepath.Join(publicDir, "apps")),
			TemplatesDir: getEnv("TEMPLATES_DIR", "templates"),
			ViewsDir:     getEnv("VIEWS_DIR", "views"),
		},
	}
}

// CatalogFile is the canonical path of the apps document.
func (c *Config) CatalogFile() string {
	return filepath.Join(c.Site.DataDir, "apps.json")
}

// SettingsFile is the canonical path of the settings document.
func (c *Config) SettingsFile() string {
	return filepath.Join(c.Site.DataDir, "settings.json")
}

// TutorialsFile is the canonical path of the global tutorials document.
func (c *Config) TutorialsFile() string {
	return filepath.Join(c.Site.DataDir, "tutorials.json")
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
