package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  cors_origins:
    - https://scout.example
attachments:
  bucket: clips
  max_size_mb: 20
feed:
  subject_prefix: bacau.events
wyscout:
  clips_dir: /srv/clips
`), 0o600))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://scout.example"}, config.Server.CORSOrigins)
	assert.Equal(t, "clips", config.Attachments.Bucket)
	assert.Equal(t, int64(20), config.Attachments.MaxSizeMB)
	assert.Equal(t, "bacau.events", config.Feed.SubjectPrefix)
	assert.Equal(t, "/srv/clips", config.Wyscout.ClipsDir)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:3000, https://scout.example ,")
	t.Setenv("UPLOAD_MAX_MB", "")
	t.Setenv("WYSCOUT_METRICS_PATH", "")
	t.Setenv("WYSCOUT_DATA_DIR", "")

	config, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://scout.example"}, config.Server.CORSOrigins)
	assert.Equal(t, int64(50), config.Attachments.MaxSizeMB)
	assert.Equal(t, "public/wyscout-metrics.json", config.Wyscout.MetricsPath)
	assert.Equal(t, "public/data", config.Wyscout.DataDir)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
