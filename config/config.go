package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	Port         string
	JWTSecret    string
	DatabasePath string
	MySQLURL     string
	UploadDir    string
	ExportDir    string

	SeedAdminUser string
	SeedAdminPass string
}

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// Load reads configuration from environment variables, falling back to
// defaults suitable for a local front-desk deployment.
func Load() *Config {
	mysqlURL := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if mysqlURL == "" {
		mysqlURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	cfg := &Config{
		Port:          envOrDefault("PORT", "8080"),
		JWTSecret:     envOrDefault("JWT_SECRET", "lodging-dev-secret"),
		DatabasePath:  envOrDefault("DATABASE_PATH", "./lodging.db"),
		MySQLURL:      mysqlURL,
		UploadDir:     envOrDefault("UPLOAD_DIR", "./uploads"),
		ExportDir:     envOrDefault("EXPORT_DIR", "./exports"),
		SeedAdminUser: envOrDefault("SEED_ADMIN_USER", "admin"),
		SeedAdminPass: envOrDefault("SEED_ADMIN_PASS", "admin123"),
	}

	log.Printf("config loaded: port=%s upload_dir=%s export_dir=%s", cfg.Port, cfg.UploadDir, cfg.ExportDir)
	return cfg
}

// EnsureDirs creates the staging and export directories if missing.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{c.UploadDir, c.ExportDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return nil
}
