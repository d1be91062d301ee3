package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

func TestContextFields(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-1")
	ctx = WithUserID(ctx, 42)

	assert.Equal(t, "req-1", RequestIDFrom(ctx))
	assert.Equal(t, uint(42), UserIDFrom(ctx))

	empty := context.Background()
	assert.Empty(t, RequestIDFrom(empty))
	assert.Zero(t, UserIDFrom(empty))
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestContextHandlerAddsRequestFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "production")

	ctx := WithUserID(WithRequestID(context.Background(), "req-7"), 3)
	l.InfoContext(ctx, "upload stored", "key", "3/a.fit")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "req-7", entry["request_id"])
	assert.Equal(t, float64(3), entry["user_id"])
	assert.Equal(t, "3/a.fit", entry["key"])
}

func TestSensitiveValuesAreRedacted(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "production")

	l.Info("login attempt", "email", "user@example.com", "password", "password123", "Authorization", "Bearer abc")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "user@example.com", entry["email"])
	assert.Equal(t, redacted, entry["password"])
	assert.Equal(t, redacted, entry["Authorization"])
	assert.NotContains(t, buf.String(), "password123")
}

func TestTestEnvSuppressesInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test")

	l.Info("noise")
	assert.Zero(t, buf.Len())

	l.Warn("kept", "error", errors.New("boom"))
	assert.Contains(t, buf.String(), "kept")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormLoggerLogModeReturnsCopy(t *testing.T) {
	base := NewGormLogger(gormlogger.Warn, 0)
	silent := base.LogMode(gormlogger.Silent)

	assert.Equal(t, gormlogger.Warn, base.level)
	assert.Equal(t, gormlogger.Silent, silent.(*GormLogger).level)
}
