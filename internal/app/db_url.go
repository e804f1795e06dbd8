package app

import (
	"math"
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/fpl-livesync/internal/config"
)

// DatabaseURL resolves the postgres DSN. DB_URL wins over the discrete
// DB_* settings.
func DatabaseURL(cfg config.Config) string {
	raw := strings.TrimSpace(cfg.DBURL)
	if raw == "" {
		raw = buildDBURL(cfg)
	}
	return normalizeDBURL(raw, cfg.DBDisablePreparedBinary)
}

// DatabaseName is used for span attributes and migration logs.
func DatabaseName(cfg config.Config) string {
	if name := strings.TrimSpace(cfg.DBName); name != "" && strings.TrimSpace(cfg.DBURL) == "" {
		return name
	}
	return dbNameFromURL(cfg.DBURL)
}

func buildDBURL(cfg config.Config) string {
	sslMode := "disable"
	if cfg.DBEncrypt {
		sslMode = "require"
	}

	query := url.Values{}
	query.Set("sslmode", sslMode)
	if cfg.DBConnectTimeout > 0 {
		// lib/pq takes whole seconds.
		seconds := int(math.Ceil(cfg.DBConnectTimeout.Seconds()))
		query.Set("connect_timeout", strconv.Itoa(seconds))
	}

	out := url.URL{
		Scheme:   "postgres",
		Host:     net.JoinHostPort(cfg.DBServer, strconv.Itoa(cfg.DBPort)),
		Path:     "/" + cfg.DBName,
		RawQuery: query.Encode(),
	}
	if cfg.DBUser != "" {
		out.User = url.UserPassword(cfg.DBUser, cfg.DBPassword)
	}

	return out.String()
}

func normalizeDBURL(raw string, disablePreparedBinaryResult bool) string {
	if !disablePreparedBinaryResult {
		return raw
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed == nil || parsed.Scheme == "" {
		return raw
	}

	query := parsed.Query()
	if query.Get("disable_prepared_binary_result") == "" {
		query.Set("disable_prepared_binary_result", "yes")
		parsed.RawQuery = query.Encode()
	}

	return parsed.String()
}

func dbNameFromURL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	parsed, err := url.Parse(trimmed)
	if err == nil && parsed != nil && parsed.Scheme != "" {
		name := strings.TrimSpace(strings.TrimPrefix(parsed.Path, "/"))
		if name != "" {
			return name
		}
	}

	for _, token := range strings.Fields(trimmed) {
		if !strings.HasPrefix(token, "dbname=") {
			continue
		}
		name := strings.TrimSpace(strings.TrimPrefix(token, "dbname="))
		name = strings.Trim(name, `"'`)
		if name != "" {
			return name
		}
	}

	return ""
}
