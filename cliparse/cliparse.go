package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port      int
	RedisAddr string
	RedisDB   int
	Salt      string
	AdminSalt string
	LogPath   string
	RateRPS   float64
	RateBurst int
}

// ParseFlags validates flags and builds the server configuration
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("scoring-api", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.RedisAddr, "r", "", "Redis address (host:port)")
	fs.IntVar(&cfg.RedisDB, "redis-db", 0, "Redis database number")
	fs.StringVar(&cfg.LogPath, "l", "", "Log file path (default stderr)")
	fs.Float64Var(&cfg.RateRPS, "rate-rps", 100, "Per-client rate limit (0 disables)")
	fs.IntVar(&cfg.RateBurst, "rate-burst", 200, "Per-client rate limit burst")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.Salt, "salt", "", "Token salt (prefer env)")
	fs.StringVar(&cfg.AdminSalt, "admin-salt", "", "Admin token salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080 // default
		}
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	}
	if cfg.RedisAddr == "" {
		cfg.RedisAddr = "localhost:6379"
	}
	if cfg.LogPath == "" {
		cfg.LogPath = os.Getenv("LOG_PATH")
	}

	// Secrets - MUST be provided
	if cfg.Salt == "" {
		cfg.Salt = os.Getenv("SALT")
	}
	if cfg.Salt == "" {
		return Config{}, errors.New("SALT required")
	}

	if cfg.AdminSalt == "" {
		cfg.AdminSalt = os.Getenv("ADMIN_SALT")
	}
	if cfg.AdminSalt == "" {
		return Config{}, errors.New("ADMIN_SALT required")
	}

	return cfg, nil
}
