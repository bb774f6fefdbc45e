package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

var defaults = map[string]string{
	"POSTGRES_DB_ADDRESS": "localhost:5432",
	"POSTGRES_DB":         "lifeflow",
	"API_ADDRESS":         ":8080",
	"APP_TIMEZONE":        "Asia/Ho_Chi_Minh",
	"LOG_LEVEL":           "info",
	"MIGRATIONS_DIR":      "./migrations",
	"JWT_TTL":             "24h",
}

type Config struct {
}

// New loads ./configs/.env once. A missing file is fine, variables may come
// from the environment alone.
func New() *Config {
	once.Do(func() {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Fatal("loading envs error: ", err)
		}
		instance = &Config{}
	})
	return instance
}

// GetString returns the variable, or its default when unset.
func (c *Config) GetString(key string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return defaults[key]
}

func (c *Config) GetDuration(key string) time.Duration {
	d, err := time.ParseDuration(c.GetString(key))
	if err != nil {
		log.Fatal("invalid duration in " + key + ": " + err.Error())
	}
	return d
}

// MustString fails when the variable is unset and has no default.
func (c *Config) MustString(key string) string {
	v := c.GetString(key)
	if v == "" {
		log.Fatal("required env " + key + " is not set")
	}
	return v
}
