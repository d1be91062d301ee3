package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/trailfit")
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, DefaultUploadDir, cfg.Storage.BasePath)
	assert.Equal(t, "local", cfg.Storage.Type)
	assert.Equal(t, 30*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, ".fit", cfg.Upload.AllowedExtension)
	assert.Equal(t, int64(32<<20), cfg.Upload.MaxMemory)
	assert.Zero(t, cfg.Upload.MaxSize)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, ":8000", cfg.Address())
}

func TestLoad_FileThenEnvOverride(t *testing.T) {
	path := writeFile(t, `
server:
  port: 9000
database:
  driver: sqlite
  url: file::memory:
jwt:
  secret: from-file
  ttl: 15
storage:
  base_path: /data/files
cors:
  allowed_origins: ["http://localhost:3000"]
`)
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("UPLOAD_DIR", "/srv/uploads")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("UPLOAD_MAX_SIZE", "1048576")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.TTL())
	assert.Equal(t, "/srv/uploads", cfg.Storage.BasePath)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, int64(1<<20), cfg.Upload.MaxSize)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing secret",
			env:  map[string]string{"DATABASE_URL": "postgres://x"},
			want: "jwt secret is required",
		},
		{
			name: "missing dsn",
			env:  map[string]string{"JWT_SECRET": "s"},
			want: "database url is required",
		},
		{
			name: "unknown driver",
			env:  map[string]string{"JWT_SECRET": "s", "DATABASE_URL": "x", "DATABASE_DRIVER": "oracle"},
			want: "unsupported database driver",
		},
		{
			name: "s3 without bucket",
			env:  map[string]string{"JWT_SECRET": "s", "DATABASE_URL": "x", "STORAGE_TYPE": "s3"},
			want: "s3 storage requires",
		},
		{
			name: "bad port",
			env:  map[string]string{"JWT_SECRET": "s", "DATABASE_URL": "x", "SERVER_PORT": "http"},
			want: "invalid SERVER_PORT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			t.Setenv("DATABASE_URL", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
