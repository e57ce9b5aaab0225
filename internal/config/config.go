// Package config loads process configuration from flags, the environment
// and an optional .env file. Flags take precedence over the environment.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

type Config struct {
	Port          int
	Store         string
	MongoURI      string
	MongoDatabase string

	AdminEmail    string
	AdminPassword string

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	LogFile string
	GinMode string
}

// Load parses args, falling back to environment variables. A .env file in
// the working directory is read first if present; it never overrides
// variables already set.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to read .env: %w", err)
	}
	return parse(args)
}

func parse(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("eventvote", flag.ContinueOnError)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Store, "store", "", "Backing store (mongo or memory)")
	fs.StringVar(&cfg.MongoURI, "mongo-uri", "", "MongoDB connection string")
	fs.StringVar(&cfg.MongoDatabase, "db", "", "MongoDB database name")
	fs.StringVar(&cfg.LogFile, "log", "", "Also append logs to this file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080
		}
	}

	if cfg.Store == "" {
		cfg.Store = envOr("STORE", StoreMongo)
	}
	cfg.Store = strings.ToLower(cfg.Store)
	if cfg.Store != StoreMongo && cfg.Store != StoreMemory {
		return Config{}, fmt.Errorf("unknown store %q (use mongo or memory)", cfg.Store)
	}

	if cfg.MongoURI == "" {
		cfg.MongoURI = os.Getenv("MONGODB_URI")
	}
	if cfg.Store == StoreMongo && cfg.MongoURI == "" {
		return Config{}, errors.New("mongodb URI required (use -mongo-uri or MONGODB_URI env)")
	}
	if cfg.MongoDatabase == "" {
		cfg.MongoDatabase = envOr("MONGODB_DATABASE", "voting_app")
	}

	cfg.AdminEmail = os.Getenv("ADMIN_EMAIL")
	cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	if cfg.AdminPassword == "" {
		return Config{}, errors.New("ADMIN_PASSWORD required")
	}

	cfg.CloudinaryCloudName = os.Getenv("CLOUDINARY_CLOUD_NAME")
	cfg.CloudinaryAPIKey = os.Getenv("CLOUDINARY_API_KEY")
	cfg.CloudinaryAPISecret = os.Getenv("CLOUDINARY_API_SECRET")

	if cfg.LogFile == "" {
		cfg.LogFile = os.Getenv("LOG_FILE")
	}
	cfg.GinMode = os.Getenv("GIN_MODE")
	if envBool("GIN_DEBUG", false) {
		cfg.GinMode = "debug"
	}

	return cfg, nil
}

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}
