package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mapLookup(values map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

func TestLoadSecurityConfig_Defaults(t *testing.T) {
	cfg := LoadSecurityConfig(mapLookup(nil))

	assert.Equal(t, []string{"insert", "update", "delete"}, cfg.AllowedKeywords)
	assert.Equal(t, 3, cfg.SQLSensitivity)
	assert.Equal(t, 3, cfg.NoSQLSensitivity)
}

func TestLoadSecurityConfig_Overrides(t *testing.T) {
	cfg := LoadSecurityConfig(mapLookup(map[string]string{
		AllowedKeysEnv:   "insert;merge;upsert",
		SQLSeverityEnv:   "5",
		NoSQLSeverityEnv: " 2 ",
	}))

	assert.Equal(t, []string{"insert", "merge", "upsert"}, cfg.AllowedKeywords)
	assert.Equal(t, 5, cfg.SQLSensitivity)
	assert.Equal(t, 2, cfg.NoSQLSensitivity)
}

func TestLoadSecurityConfig_MalformedFallsBack(t *testing.T) {
	cfg := LoadSecurityConfig(mapLookup(map[string]string{
		SQLSeverityEnv:   "high",
		NoSQLSeverityEnv: "3.7.1",
	}))

	assert.Equal(t, DefaultSensitivity, cfg.SQLSensitivity)
	assert.Equal(t, DefaultSensitivity, cfg.NoSQLSensitivity)
	assert.Equal(t, DefaultAllowedKeywords, cfg.AllowedKeywords)
}

func TestDefaultSecurityConfig_DoesNotShareKeywords(t *testing.T) {
	cfg := DefaultSecurityConfig()
	cfg.AllowedKeywords[0] = "select"

	assert.Equal(t, "insert", DefaultAllowedKeywords[0])
}

func TestSecurityConfig_IsAllowedKeyword(t *testing.T) {
	cfg := DefaultSecurityConfig()

	assert.True(t, cfg.IsAllowedKeyword("INSERT"))
	assert.True(t, cfg.IsAllowedKeyword("Delete"))
	assert.False(t, cfg.IsAllowedKeyword("drop"))
	assert.False(t, cfg.IsAllowedKeyword("inserts"))
}

func TestDestinationsConfig_Lookup(t *testing.T) {
	cfg := DestinationsConfig{Destinations: map[string]DestinationConfig{
		"dms": {BaseURL: "http://dms.local"},
	}}

	d, ok := cfg.Lookup("dms")
	assert.True(t, ok)
	assert.Equal(t, "dms", d.Name)
	assert.NotZero(t, d.Timeout)

	_, ok = cfg.Lookup("missing")
	assert.False(t, ok)
}
