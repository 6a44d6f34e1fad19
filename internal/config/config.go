package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPAddr             string
	DBDriver             string
	DatabaseURL          string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string
	TokenTTL  time.Duration

	UploadDir    string
	MaxLogoBytes int64
}

// Load reads .env (if present), then the optional YAML file named by
// CONFIG_FILE, then the process environment. Environment values win.
func Load() (Config, error) {
	_ = godotenv.Load()

	src := source{}
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		file, err := readFile(path)
		if err != nil {
			return Config{}, err
		}
		src.file = file
	}

	cfg := Config{
		HTTPAddr:             src.get("HTTP_ADDR", ":8080"),
		DBDriver:             strings.ToLower(src.get("DB_DRIVER", DriverPostgres)),
		CORSAllowCredentials: src.get("CORS_ALLOW_CREDENTIALS", "false") == "true",
		UploadDir:            src.get("UPLOAD_DIR", "uploads"),
	}

	origins := strings.Split(src.get("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	switch cfg.DBDriver {
	case DriverPostgres:
		url, err := src.require("DATABASE_URL")
		if err != nil {
			return Config{}, err
		}
		cfg.DatabaseURL = url
	case DriverMemory:
	default:
		return Config{}, fmt.Errorf("config: unknown DB_DRIVER %q", cfg.DBDriver)
	}

	secret, err := src.require("JWT_SECRET")
	if err != nil {
		return Config{}, err
	}
	cfg.JWTSecret = secret

	ttl, err := time.ParseDuration(src.get("TOKEN_TTL", "168h"))
	if err != nil || ttl <= 0 {
		return Config{}, fmt.Errorf("config: invalid TOKEN_TTL")
	}
	cfg.TokenTTL = ttl

	maxLogo, err := strconv.ParseInt(src.get("MAX_LOGO_BYTES", "5242880"), 10, 64)
	if err != nil || maxLogo <= 0 {
		return Config{}, fmt.Errorf("config: invalid MAX_LOGO_BYTES")
	}
	cfg.MaxLogoBytes = maxLogo

	return cfg, nil
}

type source struct {
	file map[string]string
}

func (s source) get(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	if v := strings.TrimSpace(s.file[key]); v != "" {
		return v
	}
	return def
}

func (s source) require(key string) (string, error) {
	v := s.get(key, "")
	if v == "" {
		return "", fmt.Errorf("config: missing %s", key)
	}
	return v, nil
}

// readFile parses a flat YAML mapping keyed by the environment variable
// names. ${VAR} references are expanded before parsing.
func readFile(path string) (map[string]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	out := map[string]string{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(b))), &out); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return out, nil
}
