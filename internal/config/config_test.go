package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_FromFile(t *testing.T) {
	dir := writeConfig(t, `
port: "9000"
prediction:
  endpoint_url: "http://localhost:5000/predict"
  timeout: 3s
  rate_limit:
    rps: 2.5
    burst: 3
picker:
  max_days_ahead: 5
  timezone: Europe/Madrid
`)
	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != "9000" || c.Prediction.EndpointURL != "http://localhost:5000/predict" {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.Prediction.Timeout != 3*time.Second || c.Prediction.RateLimit.RPS != 2.5 || c.Prediction.RateLimit.Burst != 3 {
		t.Fatalf("prediction section: %+v", c.Prediction)
	}
	if c.Picker.MaxDaysAhead != 5 || c.Picker.Timezone != "Europe/Madrid" {
		t.Fatalf("picker section: %+v", c.Picker)
	}
	if c.Log.Level != "info" || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := writeConfig(t, `
prediction:
  endpoint_url: "http://localhost:5000/predict"
`)
	t.Setenv("PREDICTOR_PREDICTION_ENDPOINT_URL", "https://predict.example.com/v1")
	t.Setenv("PREDICTOR_LOG_LEVEL", "debug")

	c, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Prediction.EndpointURL != "https://predict.example.com/v1" || c.Log.Level != "debug" {
		t.Fatalf("env not applied: %+v", c)
	}
	if c.Prediction.Timeout != 0 {
		t.Fatalf("default timeout should be 0, got %s", c.Prediction.Timeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing endpoint": `port: "8080"`,
		"relative endpoint": `
prediction:
  endpoint_url: "/predict"`,
		"bad timezone": `
prediction:
  endpoint_url: "http://x/predict"
picker:
  timezone: Mars/Olympus`,
		"negative days": `
prediction:
  endpoint_url: "http://x/predict"
picker:
  max_days_ahead: -1`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, body)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoad_NoFileUsesEnv(t *testing.T) {
	t.Setenv("PREDICTOR_PREDICTION_ENDPOINT_URL", "http://localhost:5000/predict")
	c, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Port != "8080" || c.Picker.MaxDaysAhead != 7 {
		t.Fatalf("defaults: %+v", c)
	}
}
