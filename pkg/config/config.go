package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// Config materialises application configuration.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Labcom   LabcomConfig   `mapstructure:"labcom"`
	Alerts   AlertsConfig   `mapstructure:"alerts"`
	Auth     AuthConfig     `mapstructure:"auth"`
	SMTP     SMTPConfig     `mapstructure:"smtp"`
	Report   ReportConfig   `mapstructure:"report"`
}

// AppConfig general metadata.
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

// HTTPConfig covers the dashboard API listener.
type HTTPConfig struct {
	HostPort string `mapstructure:"host_port"`
}

// DatabaseConfig locates the two SQLite stores.
type DatabaseConfig struct {
	VesselPath string `mapstructure:"vessel_path"`
	AdminPath  string `mapstructure:"admin_path"`
}

// LabcomConfig covers access to the Labcom cloud API.
type LabcomConfig struct {
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	WindowDays     int           `mapstructure:"window_days"`
	LanguageID     int           `mapstructure:"language_id"`
}

// AlertsConfig governs alert recalculation.
type AlertsConfig struct {
	LookbackDays   int     `mapstructure:"lookback_days"`
	CriticalFactor float64 `mapstructure:"critical_factor"`
}

// AuthConfig defines session and login throttling behaviour.
type AuthConfig struct {
	SessionTTL time.Duration `mapstructure:"session_ttl"`
	LoginRate  float64       `mapstructure:"login_rate"`
	LoginBurst int           `mapstructure:"login_burst"`
}

// SMTPConfig captures outbound mail settings. Credentials are always
// injected, never checked in.
type SMTPConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

// ReportConfig sets CLI report behaviour.
type ReportConfig struct {
	MaxDataPoints int    `mapstructure:"max_data_points"`
	OutputDir     string `mapstructure:"output_dir"`
}

// Load builds configuration from file, environment, and defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ACCUPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decodeHook()); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "accuport")
	v.SetDefault("app.environment", "development")

	v.SetDefault("http.host_port", "localhost:8080")

	v.SetDefault("database.vessel_path", "data/accubase.sqlite")
	v.SetDefault("database.admin_path", "data/users.sqlite")

	v.SetDefault("labcom.base_url", "https://backend.labcom.cloud/graphql")
	v.SetDefault("labcom.request_timeout", "30s")
	v.SetDefault("labcom.window_days", 30)
	v.SetDefault("labcom.language_id", 1)

	v.SetDefault("alerts.lookback_days", 90)
	v.SetDefault("alerts.critical_factor", 0.5)

	v.SetDefault("auth.session_ttl", "8h")
	v.SetDefault("auth.login_rate", 1.0)
	v.SetDefault("auth.login_burst", 5)

	v.SetDefault("smtp.enabled", false)
	v.SetDefault("smtp.host", "")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("smtp.username", "")
	v.SetDefault("smtp.password", "")
	v.SetDefault("smtp.from", "")

	v.SetDefault("report.max_data_points", 1280)
	v.SetDefault("report.output_dir", "reports")
}

func decodeHook() viper.DecoderConfigOption {
	return func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}
}

// Validate performs basic sanity checks on the configuration values.
func (c *Config) Validate() error {
	if c.Database.VesselPath == "" {
		return fmt.Errorf("database.vessel_path must be set")
	}
	if c.Database.AdminPath == "" {
		return fmt.Errorf("database.admin_path must be set")
	}
	if c.Labcom.WindowDays <= 0 {
		return fmt.Errorf("labcom.window_days must be greater than zero")
	}
	if c.Alerts.LookbackDays <= 0 {
		return fmt.Errorf("alerts.lookback_days must be greater than zero")
	}
	if c.Alerts.CriticalFactor < 0 {
		return fmt.Errorf("alerts.critical_factor cannot be negative")
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be greater than zero")
	}
	if c.Report.MaxDataPoints <= 0 {
		return fmt.Errorf("report.max_data_points must be greater than zero")
	}
	if c.SMTP.Enabled {
		if c.SMTP.Host == "" {
			return fmt.Errorf("smtp.host must be set when smtp is enabled")
		}
		if c.SMTP.Username == "" {
			return fmt.Errorf("smtp.username must be set when smtp is enabled")
		}
	}
	return nil
}

// FromAddress returns the configured sender, falling back to the SMTP username.
func (c *SMTPConfig) FromAddress() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

// ResolveMaxPoints returns either the CLI override or config default.
func (c *Config) ResolveMaxPoints(override int) int {
	if override > 0 {
		return override
	}
	return c.Report.MaxDataPoints
}
