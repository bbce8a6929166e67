// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: server listen port (default: 8080)
  - RedisAddr: Redis host:port (default: localhost:6379)
  - RedisDB: Redis database number (default: 0)
  - Salt: token digest salt (required)
  - AdminSalt: admin token digest salt (required)
  - LogPath: log file path (default: stderr)
  - RateRPS / RateBurst: per-client rate limit (0 disables)

# CLI Flags

	-p           Server port
	-r           Redis address
	-l           Log file path
	--redis-db   Redis database number
	--salt       Token salt
	--admin-salt Admin token salt
	--rate-rps   Rate limit requests/second
	--rate-burst Rate limit burst

# Environment Variables

Flags fall back to environment variables:

	PORT       → -p
	REDIS_ADDR → -r
	LOG_PATH   → -l
	SALT       → --salt
	ADMIN_SALT → --admin-salt

CLI flags take precedence. ParseFlags returns an error if SALT or ADMIN_SALT
is missing.
*/
package cliparse
