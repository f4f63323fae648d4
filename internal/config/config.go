// Package config handles loading and validating application configuration.
//
// Values come from, in increasing priority:
//  1. Defaults declared in the env-default struct tags below
//  2. A YAML file named by the CONFIG_PATH environment variable (optional)
//  3. The process environment, after a local .env file (if any) is loaded
//
// There are no command-line flags.
package config

import (
	"errors"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// DefaultDatabase is used when MONGO_URI carries no database path.
const DefaultDatabase = "studentsdb"

// Config is the root configuration structure.
// Every field maps to a key in the optional YAML file and can be
// overridden by the environment variable named in its env tag.
type Config struct {
	// Env controls log format and verbosity: "dev", "staging" or "prod".
	Env string `yaml:"env" env:"ENV" env-default:"dev" validate:"oneof=dev staging prod"`

	// HTTPServer is embedded so cfg.Port works directly.
	HTTPServer `yaml:"http_server"`

	// Storage selects and locates the record store.
	Storage `yaml:"storage"`
}

// HTTPServer holds settings specific to the HTTP server.
type HTTPServer struct {
	// Port is the TCP port the server listens on, on all interfaces.
	Port string `yaml:"port" env:"PORT" env-default:"3000" validate:"required,numeric"`

	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"MAX_BODY_BYTES" env-default:"102400" validate:"gt=0"`
}

// Storage holds record store settings.
type Storage struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"mongo" validate:"oneof=mongo sqlite memory"`

	// MongoURI is the connection string for the mongo driver. The path
	// component names the database.
	MongoURI string `yaml:"mongo_uri" env:"MONGO_URI" env-default:"mongodb://mongo:27017/studentsdb" validate:"required,uri"`

	// StoragePath is the SQLite file used by the sqlite driver.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"storage/students.db" validate:"required"`
}

// Addr returns the listen address for http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort("", c.Port)
}

// DatabaseName returns the database named by the path of MongoURI,
// falling back to DefaultDatabase.
func (c *Config) DatabaseName() string {
	u, err := url.Parse(c.MongoURI)
	if err != nil {
		return DefaultDatabase
	}
	if name := strings.Trim(u.Path, "/"); name != "" {
		return name
	}
	return DefaultDatabase
}

// Load reads the configuration. When envFilename is not empty that file
// is loaded into the environment first; variables already set in the
// process environment win over the file.
func Load(envFilename string) (*Config, error) {
	if envFilename != "" {
		if err := godotenv.Load(envFilename); err != nil {
			return nil, fmt.Errorf("error loading %s file: %w", envFilename, err)
		}
	}

	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file does not exist: %s", path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot read config: %w", err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads the configuration, picking up ./.env when it exists,
// and exits the process if anything is wrong. If it returns, the config
// is valid.
func MustLoad() *Config {
	envFilename := ""
	if _, err := os.Stat(".env"); err == nil {
		envFilename = ".env"
	}

	cfg, err := Load(envFilename)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}
