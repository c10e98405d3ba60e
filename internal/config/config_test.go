package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const minimalConfig = `
api:
  key: re_test
sync:
  audience_id: aud_1
server:
  trigger_secret: s3cret
storage:
  backend: s3
  s3:
    bucket: newsletters
`

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "https://api.resend.com", cfg.API.BaseURL)
	assert.Equal(t, 100, cfg.API.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.API.MinInterval)
	assert.Equal(t, ModeInline, cfg.Sync.Mode)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_API_KEY", "re_from_env")

	cfg, err := Load(writeConfig(t, `
api:
  key: ${TEST_API_KEY}
sync:
  audience_id: aud_1
server:
  trigger_secret: s3cret
storage:
  s3:
    bucket: newsletters
`))
	require.NoError(t, err)

	assert.Equal(t, "re_from_env", cfg.API.Key)
}

func TestLoad_RejectsMissingRequiredValues(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{
			name: "missing api key",
			config: `
sync:
  audience_id: aud_1
server:
  trigger_secret: s3cret
storage:
  s3:
    bucket: b
`,
			wantErr: "api.key",
		},
		{
			name: "missing audience id",
			config: `
api:
  key: re_test
server:
  trigger_secret: s3cret
storage:
  s3:
    bucket: b
`,
			wantErr: "sync.audience_id",
		},
		{
			name: "missing trigger secret",
			config: `
api:
  key: re_test
sync:
  audience_id: aud_1
storage:
  s3:
    bucket: b
`,
			wantErr: "server.trigger_secret",
		},
		{
			name: "unknown mode",
			config: `
api:
  key: re_test
sync:
  audience_id: aud_1
  mode: detect
server:
  trigger_secret: s3cret
storage:
  s3:
    bucket: b
`,
			wantErr: "sync.mode",
		},
		{
			name: "unknown backend",
			config: `
api:
  key: re_test
sync:
  audience_id: aud_1
server:
  trigger_secret: s3cret
storage:
  backend: dynamo
`,
			wantErr: "storage.backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.config))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_PostgresBackendNeedsHost(t *testing.T) {
	_, err := Load(writeConfig(t, `
api:
  key: re_test
sync:
  audience_id: aud_1
server:
  trigger_secret: s3cret
storage:
  backend: postgres
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.postgres.host")
}
