package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5001", cfg.Backend.URL)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, 18.0, cfg.Billing.DefaultGSTPercent)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "0 9 * * *", cfg.Reminder.Schedule)
	assert.False(t, cfg.Twilio.Enabled())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("BACKEND_URL", "https://api.hairlab.example/")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	v.Set("DEFAULT_GST_PERCENT", "5")
	v.Set("TWILIO_ACCOUNT_SID", "AC123")
	v.Set("TWILIO_AUTH_TOKEN", "tok")
	v.Set("COOKIE_SECURE", "true")

	cfg := fromViper(v)
	assert.Equal(t, "https://api.hairlab.example", cfg.Backend.URL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5.0, cfg.Billing.DefaultGSTPercent)
	assert.True(t, cfg.Twilio.Enabled())
	assert.True(t, cfg.Server.SecureCookie)
}

func TestLoadSite(t *testing.T) {
	site := LoadSite("site.toml")

	assert.Equal(t, "HairLab", site.Name)
	require.Len(t, site.Services, 6)
	assert.Equal(t, "Haircut", site.Services[0].Title)
	require.Len(t, site.WorkingHours, 6)
	assert.True(t, site.WorkingHours[5].IsClosed)
}

func TestLoadSite_MissingFile(t *testing.T) {
	site := LoadSite(filepath.Join(t.TempDir(), "nope.toml"))

	require.NotNil(t, site)
	assert.Empty(t, site.Services)
}
