package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Backend names accepted in the backend field.
const (
	BackendAppwrite = "appwrite"
	BackendMongo    = "mongo"
	BackendFile     = "file"
)

// Config is everything carlot reads at startup.
type Config struct {
	Backend      string
	DatabaseID   string
	CollectionID string

	Appwrite AppwriteConfig
	Mongo    MongoConfig
	File     FileConfig
	Cache    CacheConfig

	LogPath   string
	LogLevel  string
	LogFormat string
}

// AppwriteConfig locates an Appwrite project.
type AppwriteConfig struct {
	Endpoint  string
	ProjectID string
	APIKey    string
}

// MongoConfig locates a MongoDB deployment.
type MongoConfig struct {
	URI            string
	ConnectTimeout time.Duration
}

// FileConfig points at a local JSON export of the collection.
type FileConfig struct {
	Path string
}

// CacheConfig enables the Redis read-through cache when RedisAddr is set.
type CacheConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// Enabled reports whether a cache address is configured.
func (c CacheConfig) Enabled() bool {
	return c.RedisAddr != ""
}

const (
	defaultConfigPath       = "~/.config/carlot/config.toml"
	defaultLogPath          = "~/.local/share/carlot/carlot.log"
	defaultBackend          = BackendAppwrite
	defaultAppwriteEndpoint = "https://cloud.appwrite.io/v1"
	defaultMongoURI         = "mongodb://localhost:27017"
	defaultMongoTimeout     = 10 * time.Second
	defaultCacheTTL         = 5 * time.Minute
	defaultLogLevel         = "info"
	defaultLogFormat        = "console"
)

type rawConfig struct {
	Backend      string `toml:"backend"`
	DatabaseID   string `toml:"database_id"`
	CollectionID string `toml:"collection_id"`
	LogPath      string `toml:"log_path"`
	LogLevel     string `toml:"log_level"`
	LogFormat    string `toml:"log_format"`

	Appwrite struct {
		Endpoint  string `toml:"endpoint"`
		ProjectID string `toml:"project_id"`
		APIKey    string `toml:"api_key"`
	} `toml:"appwrite"`

	Mongo struct {
		URI            string `toml:"uri"`
		ConnectTimeout int    `toml:"connect_timeout_seconds"`
	} `toml:"mongo"`

	File struct {
		Path string `toml:"path"`
	} `toml:"file"`

	Cache struct {
		RedisAddr     string `toml:"redis_addr"`
		RedisPassword string `toml:"redis_password"`
		RedisDB       int    `toml:"redis_db"`
		TTLSeconds    int    `toml:"ttl_seconds"`
	} `toml:"cache"`
}

// Load locates and parses the config file, falling back to defaults when it
// is missing. Environment variables override file values.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	var raw rawConfig
	file, err := os.Open(resolved)
	switch {
	case err == nil:
		defer file.Close()
		bytes, err := io.ReadAll(file)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(bytes, &raw); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	cfg := fromRaw(raw)
	applyEnv(&cfg)
	cfg.LogPath = mustExpand(cfg.LogPath)
	if cfg.File.Path != "" {
		cfg.File.Path = mustExpand(cfg.File.Path)
	}
	return cfg, nil
}

// LoadEnvFile loads KEY=VALUE pairs from a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	resolved, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(resolved); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(resolved); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// Validate checks that the selected backend has what it needs.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendAppwrite:
		if c.Appwrite.ProjectID == "" {
			return errors.New("appwrite.project_id is required")
		}
		if c.Appwrite.Endpoint == "" {
			return errors.New("appwrite.endpoint is required")
		}
	case BackendMongo:
		if c.Mongo.URI == "" {
			return errors.New("mongo.uri is required")
		}
	case BackendFile:
		if c.File.Path == "" {
			return errors.New("file.path is required")
		}
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want appwrite, mongo or file)", c.Backend)
	}
	if c.DatabaseID == "" {
		return errors.New("database_id is required")
	}
	if c.CollectionID == "" {
		return errors.New("collection_id is required")
	}
	return nil
}

func fromRaw(raw rawConfig) Config {
	cfg := Config{
		Backend:      strings.ToLower(orDefault(raw.Backend, defaultBackend)),
		DatabaseID:   strings.TrimSpace(raw.DatabaseID),
		CollectionID: strings.TrimSpace(raw.CollectionID),
		Appwrite: AppwriteConfig{
			Endpoint:  orDefault(raw.Appwrite.Endpoint, defaultAppwriteEndpoint),
			ProjectID: strings.TrimSpace(raw.Appwrite.ProjectID),
			APIKey:    strings.TrimSpace(raw.Appwrite.APIKey),
		},
		Mongo: MongoConfig{
			URI:            orDefault(raw.Mongo.URI, defaultMongoURI),
			ConnectTimeout: seconds(raw.Mongo.ConnectTimeout, defaultMongoTimeout),
		},
		File: FileConfig{Path: strings.TrimSpace(raw.File.Path)},
		Cache: CacheConfig{
			RedisAddr:     strings.TrimSpace(raw.Cache.RedisAddr),
			RedisPassword: raw.Cache.RedisPassword,
			RedisDB:       raw.Cache.RedisDB,
			TTL:           seconds(raw.Cache.TTLSeconds, defaultCacheTTL),
		},
		LogPath:   orDefault(raw.LogPath, defaultLogPath),
		LogLevel:  strings.ToLower(orDefault(raw.LogLevel, defaultLogLevel)),
		LogFormat: strings.ToLower(orDefault(raw.LogFormat, defaultLogFormat)),
	}
	return cfg
}

func applyEnv(cfg *Config) {
	overrides := []struct {
		key  string
		dest *string
	}{
		{"CARLOT_BACKEND", &cfg.Backend},
		{"CARLOT_DATABASE_ID", &cfg.DatabaseID},
		{"CARLOT_COLLECTION_ID", &cfg.CollectionID},
		{"CARLOT_APPWRITE_ENDPOINT", &cfg.Appwrite.Endpoint},
		{"CARLOT_APPWRITE_PROJECT", &cfg.Appwrite.ProjectID},
		{"CARLOT_APPWRITE_API_KEY", &cfg.Appwrite.APIKey},
		{"CARLOT_MONGO_URI", &cfg.Mongo.URI},
		{"CARLOT_FILE_PATH", &cfg.File.Path},
		{"CARLOT_REDIS_ADDR", &cfg.Cache.RedisAddr},
		{"CARLOT_REDIS_PASSWORD", &cfg.Cache.RedisPassword},
		{"CARLOT_LOG_LEVEL", &cfg.LogLevel},
	}
	for _, o := range overrides {
		if v := strings.TrimSpace(os.Getenv(o.key)); v != "" {
			*o.dest = v
		}
	}
	cfg.Backend = strings.ToLower(cfg.Backend)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if v := strings.TrimSpace(os.Getenv("CARLOT_REDIS_DB")); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Cache.RedisDB = db
		}
	}
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}

func seconds(n int, fallback time.Duration) time.Duration {
	if n <= 0 {
		return fallback
	}
	return time.Duration(n) * time.Second
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
