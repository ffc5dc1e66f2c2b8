package config

import (
	"os"
	"path"
	"testing"
	"time"

	_ "accuport.cloud/fleet-service/pkg/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "accuport", cfg.App.Name)
	assert.Equal(t, "localhost:8080", cfg.HTTP.HostPort)
	assert.Equal(t, "https://backend.labcom.cloud/graphql", cfg.Labcom.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Labcom.RequestTimeout)
	assert.Equal(t, 30, cfg.Labcom.WindowDays)
	assert.Equal(t, 1, cfg.Labcom.LanguageID)
	assert.Equal(t, 90, cfg.Alerts.LookbackDays)
	assert.Equal(t, 0.5, cfg.Alerts.CriticalFactor)
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
	assert.False(t, cfg.SMTP.Enabled)
	assert.Equal(t, 1280, cfg.Report.MaxDataPoints)
}

func TestLoadFromFile(t *testing.T) {
	content := `
http:
  host_port: "0.0.0.0:9090"
alerts:
  lookback_days: 45
smtp:
  enabled: true
  host: smtp.example.com
  username: alerts@example.com
  password: secret
`
	cfgPath := path.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.HostPort)
	assert.Equal(t, 45, cfg.Alerts.LookbackDays)
	assert.Equal(t, 0.5, cfg.Alerts.CriticalFactor)
	assert.True(t, cfg.SMTP.Enabled)
	assert.Equal(t, "alerts@example.com", cfg.SMTP.FromAddress())
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("ACCUPORT_ALERTS_LOOKBACK_DAYS", "30")
	t.Setenv("ACCUPORT_DATABASE_VESSEL_PATH", "/tmp/vessel.db")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Alerts.LookbackDays)
	assert.Equal(t, "/tmp/vessel.db", cfg.Database.VesselPath)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Report.MaxDataPoints = 0
	assert.Error(t, cfg.Validate())

	cfg, err = Load("")
	require.NoError(t, err)
	cfg.SMTP.Enabled = true
	assert.Error(t, cfg.Validate())
}

func TestResolveMaxPoints(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.ResolveMaxPoints(500))
	assert.Equal(t, cfg.Report.MaxDataPoints, cfg.ResolveMaxPoints(0))
}
