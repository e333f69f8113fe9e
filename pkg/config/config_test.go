package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.Database.Driver)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 2*time.Minute, cfg.Results.CacheTTL)
	assert.Equal(t, 5000, cfg.Results.ExportMaxRows)
	assert.True(t, cfg.Auth.TrustCollegeHeader)
	assert.False(t, cfg.Results.CacheEnabled)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]interface{}{
		"DB_DRIVER":               " Postgres ",
		"JWT_EXPIRATION":          "not-a-duration",
		"STUDENT_EMAIL_DOMAIN":    "@uni.example",
		"ALLOWED_ORIGINS":         "https://a.example, ,https://b.example",
		"RESULTS_EXPORT_MAX_ROWS": -1,
		"RESULTS_CACHE_TTL":       "30s",
	}))
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "uni.example", cfg.Students.EmailDomain)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 5000, cfg.Results.ExportMaxRows)
	assert.Equal(t, 30*time.Second, cfg.Results.CacheTTL)
}

func TestFromViperRejectsUnknownDriver(t *testing.T) {
	_, err := fromViper(newViper(map[string]interface{}{"DB_DRIVER": "sqlite"}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}
