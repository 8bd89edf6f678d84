package database

import (
	"net"
	"net/url"
	"strconv"

	"github.com/rickgao/temarket-data/internal/config"
)

// BuildConnString builds a PostgreSQL URL from cfg. User info is escaped by
// net/url, so passwords may contain any character.
func BuildConnString(cfg config.DBConfig) string {
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = config.DefaultDBSSLMode
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Path:     "/" + cfg.Name,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}
