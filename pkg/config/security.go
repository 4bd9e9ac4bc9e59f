package config

import (
	"os"
	"strings"

	"github.com/spf13/cast"
)

const (
	AllowedKeysEnv     = "ALLOWED_KEYS"
	SQLSeverityEnv     = "SQL_SEVERITY"
	NoSQLSeverityEnv   = "NOSQL_SEVERITY"
	DefaultSensitivity = 3
)

// DefaultAllowedKeywords are business words that must not trip SQL signatures.
var DefaultAllowedKeywords = []string{"insert", "update", "delete"}

// SecurityConfig is read once at startup and shared read-only by the detector.
type SecurityConfig struct {
	AllowedKeywords  []string
	SQLSensitivity   int
	NoSQLSensitivity int
}

func DefaultSecurityConfig() SecurityConfig {
	keywords := make([]string, len(DefaultAllowedKeywords))
	copy(keywords, DefaultAllowedKeywords)
	return SecurityConfig{
		AllowedKeywords:  keywords,
		SQLSensitivity:   DefaultSensitivity,
		NoSQLSensitivity: DefaultSensitivity,
	}
}

// LoadSecurityConfig never fails: absent or malformed values keep their defaults.
// A nil lookup reads the process environment.
func LoadSecurityConfig(lookup func(string) (string, bool)) SecurityConfig {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := DefaultSecurityConfig()

	if raw, ok := lookup(AllowedKeysEnv); ok {
		cfg.AllowedKeywords = strings.Split(raw, ";")
	}
	if v, ok := lookupInt(lookup, SQLSeverityEnv); ok {
		cfg.SQLSensitivity = v
	}
	if v, ok := lookupInt(lookup, NoSQLSeverityEnv); ok {
		cfg.NoSQLSensitivity = v
	}

	return cfg
}

// IsAllowedKeyword compares against the lowercase form of token.
func (c SecurityConfig) IsAllowedKeyword(token string) bool {
	lower := strings.ToLower(token)
	for _, k := range c.AllowedKeywords {
		if k == lower {
			return true
		}
	}
	return false
}

func lookupInt(lookup func(string) (string, bool), key string) (int, bool) {
	raw, ok := lookup(key)
	if !ok {
		return 0, false
	}
	v, err := cast.ToIntE(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return v, true
}
