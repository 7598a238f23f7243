package config

import (
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Backend  BackendConfig
	Database DatabaseConfig
	Billing  BillingConfig
	Twilio   TwilioConfig
	Reminder ReminderConfig
	LogLevel string
	SiteFile string
}

type ServerConfig struct {
	Port               string
	JWTSecret          string
	JWTExpiryHours     int
	AllowedOrigins     []string
	LoginRatePerMinute int
	SecureCookie       bool
}

type BackendConfig struct {
	URL          string
	Timeout      time.Duration
	ServiceToken string
}

type DatabaseConfig struct {
	URL string
}

type BillingConfig struct {
	DefaultGSTPercent float64
	NotifyReceipts    bool
}

type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	PhoneNumber    string
	WhatsAppNumber string
}

// Enabled reports whether enough credentials are present to talk to Twilio.
func (t TwilioConfig) Enabled() bool {
	return t.AccountSID != "" && t.AuthToken != ""
}

type ReminderConfig struct {
	Schedule  string
	DaysAhead int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("BACKEND_URL", "http://localhost:5001")
	v.SetDefault("BACKEND_TIMEOUT", "15s")
	v.SetDefault("JWT_EXPIRY_HOURS", 24)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOGIN_RATE_PER_MINUTE", 10)
	v.SetDefault("COOKIE_SECURE", false)
	v.SetDefault("DEFAULT_GST_PERCENT", 18)
	v.SetDefault("NOTIFY_BILL_RECEIPTS", false)
	v.SetDefault("REMINDER_CRON", "0 9 * * *")
	v.SetDefault("REMINDER_DAYS_AHEAD", 7)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SITE_CONFIG", "config/site.toml")
}

// Load reads .env (when present) and the process environment into a Config.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) *Config {
	var origins []string
	for _, o := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &Config{
		Server: ServerConfig{
			Port:               v.GetString("PORT"),
			JWTSecret:          v.GetString("JWT_SECRET"),
			JWTExpiryHours:     v.GetInt("JWT_EXPIRY_HOURS"),
			AllowedOrigins:     origins,
			LoginRatePerMinute: v.GetInt("LOGIN_RATE_PER_MINUTE"),
			SecureCookie:       v.GetBool("COOKIE_SECURE"),
		},
		Backend: BackendConfig{
			URL:          strings.TrimRight(v.GetString("BACKEND_URL"), "/"),
			Timeout:      v.GetDuration("BACKEND_TIMEOUT"),
			ServiceToken: v.GetString("BACKEND_SERVICE_TOKEN"),
		},
		Database: DatabaseConfig{
			URL: v.GetString("DB_URL"),
		},
		Billing: BillingConfig{
			DefaultGSTPercent: v.GetFloat64("DEFAULT_GST_PERCENT"),
			NotifyReceipts:    v.GetBool("NOTIFY_BILL_RECEIPTS"),
		},
		Twilio: TwilioConfig{
			AccountSID:     v.GetString("TWILIO_ACCOUNT_SID"),
			AuthToken:      v.GetString("TWILIO_AUTH_TOKEN"),
			PhoneNumber:    v.GetString("TWILIO_PHONE_NUMBER"),
			WhatsAppNumber: v.GetString("TWILIO_WHATSAPP_NUMBER"),
		},
		Reminder: ReminderConfig{
			Schedule:  v.GetString("REMINDER_CRON"),
			DaysAhead: v.GetInt("REMINDER_DAYS_AHEAD"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
		SiteFile: v.GetString("SITE_CONFIG"),
	}
}
