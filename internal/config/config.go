package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "PREDICTOR"

// Config is everything main needs to wire the service.
type Config struct {
	Port string
	Log  struct {
		Level  string
		Format string
	}
	Prediction struct {
		EndpointURL string
		Timeout     time.Duration // 0 keeps the transport default
		RateLimit   struct {
			RPS   float64 // 0 disables throttling
			Burst int
		}
	}
	Picker struct {
		MaxDaysAhead int
		Timezone     string
	}
	HTTP struct {
		ReadHeaderTimeout time.Duration
		WriteTimeout      time.Duration
		IdleTimeout       time.Duration
	}
}

var errNoEndpoint = errors.New("prediction.endpoint_url is required")

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("prediction.timeout", "0s")
	v.SetDefault("prediction.rate_limit.rps", 0)
	v.SetDefault("prediction.rate_limit.burst", 1)
	v.SetDefault("picker.max_days_ahead", 7)
	v.SetDefault("picker.timezone", "UTC")
	v.SetDefault("http.read_header_timeout", "10s")
	v.SetDefault("http.write_timeout", "10s")
	v.SetDefault("http.idle_timeout", "60s")
}

// Load reads configs/config.yml (if present) and PREDICTOR_* environment overrides,
// e.g. PREDICTOR_PREDICTION_ENDPOINT_URL.
func Load(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{"configs"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	c := &Config{}
	c.Port = v.GetString("port")
	c.Log.Level = v.GetString("log.level")
	c.Log.Format = v.GetString("log.format")

	c.Prediction.EndpointURL = strings.TrimSpace(v.GetString("prediction.endpoint_url"))
	c.Prediction.Timeout = v.GetDuration("prediction.timeout")
	c.Prediction.RateLimit.RPS = v.GetFloat64("prediction.rate_limit.rps")
	c.Prediction.RateLimit.Burst = v.GetInt("prediction.rate_limit.burst")

	c.Picker.MaxDaysAhead = v.GetInt("picker.max_days_ahead")
	c.Picker.Timezone = v.GetString("picker.timezone")

	c.HTTP.ReadHeaderTimeout = v.GetDuration("http.read_header_timeout")
	c.HTTP.WriteTimeout = v.GetDuration("http.write_timeout")
	c.HTTP.IdleTimeout = v.GetDuration("http.idle_timeout")

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Prediction.EndpointURL == "" {
		return errNoEndpoint
	}
	u, err := url.Parse(c.Prediction.EndpointURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("prediction.endpoint_url %q is not an http(s) URL", c.Prediction.EndpointURL)
	}
	if c.Prediction.Timeout < 0 {
		return fmt.Errorf("prediction.timeout must not be negative, got %s", c.Prediction.Timeout)
	}
	if c.Picker.MaxDaysAhead < 0 {
		return fmt.Errorf("picker.max_days_ahead must not be negative, got %d", c.Picker.MaxDaysAhead)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves picker.timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Picker.Timezone)
	if err != nil {
		return nil, fmt.Errorf("picker.timezone %q: %w", c.Picker.Timezone, err)
	}
	return loc, nil
}
