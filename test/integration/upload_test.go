package integration_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trailfit_backend/internal/services/dto"
	"trailfit_backend/test/helpers"
)

func decodeUploads(t *testing.T, body string) []dto.UploadResponse {
	t.Helper()
	var uploads []dto.UploadResponse
	require.NoError(t, json.Unmarshal([]byte(body), &uploads), body)
	return uploads
}

func TestUploadFlow(t *testing.T) {
	ts := helpers.NewTestServer(t, nil)
	token := helpers.RegisterAndLogin(t, ts, "user@example.com")

	content := []byte("FIT activity payload")
	res, body := ts.SendMultipart(t, "/api/upload/", token, "run.fit", content, map[string]string{
		"session_type":      "training",
		"fatigue_level":     "3",
		"general_sensation": "4",
		"weather_condition": "rain",
		"notes":             "easy loop",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var upload dto.UploadResponse
	require.NoError(t, json.Unmarshal([]byte(body), &upload))
	assert.NotZero(t, upload.ID)
	assert.Equal(t, "run.fit", upload.Filename)
	require.NotNil(t, upload.SessionType)
	assert.Equal(t, "training", string(*upload.SessionType))
	require.NotNil(t, upload.FatigueLevel)
	assert.Equal(t, 3, *upload.FatigueLevel)
	require.NotNil(t, upload.GeneralSensation)
	assert.Equal(t, 4, *upload.GeneralSensation)
	require.NotNil(t, upload.WeatherCondition)
	assert.Equal(t, "rain", string(*upload.WeatherCondition))
	assert.Nil(t, upload.RaceName)
	assert.Nil(t, upload.SleepQuality)
	assert.False(t, upload.UploadDate.IsZero())

	// файл лежит под каталогом пользователя с исходным содержимым
	assert.True(t, strings.HasPrefix(upload.FilePath, ts.UploadDir), upload.FilePath)
	assert.True(t, strings.HasSuffix(upload.FilePath, "_run.fit"), upload.FilePath)
	stored, err := os.ReadFile(upload.FilePath)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(content, stored))

	res, body = ts.SendRequest(t, http.MethodGet, "/api/upload/", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	uploads := decodeUploads(t, body)
	require.Len(t, uploads, 1)
	assert.Equal(t, upload.ID, uploads[0].ID)
	assert.Equal(t, upload.FilePath, uploads[0].FilePath)
}

func TestUpload_ListIsIdempotentAndOrdered(t *testing.T) {
	ts := helpers.NewTestServer(t, nil)
	token := helpers.RegisterAndLogin(t, ts, "user@example.com")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/upload/", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `[]`, body)

	for _, name := range []string{"a.fit", "b.FIT", "c.fit"} {
		res, body := ts.SendMultipart(t, "/api/upload/", token, name, []byte(name), nil)
		require.Equal(t, http.StatusCreated, res.StatusCode, body)
	}

	_, first := ts.SendRequest(t, http.MethodGet, "/api/upload/", token, nil)
	_, second := ts.SendRequest(t, http.MethodGet, "/api/upload/", token, nil)
	assert.Equal(t, first, second)

	uploads := decodeUploads(t, first)
	require.Len(t, uploads, 3)
	assert.Equal(t, "a.fit", uploads[0].Filename)
	assert.Equal(t, "b.FIT", uploads[1].Filename)
	assert.Equal(t, "c.fit", uploads[2].Filename)

	seen := map[string]bool{}
	for _, u := range uploads {
		assert.False(t, seen[u.FilePath], "duplicate path %s", u.FilePath)
		seen[u.FilePath] = true
	}
}

func TestUpload_UserIsolation(t *testing.T) {
	ts := helpers.NewTestServer(t, nil)
	alice := helpers.RegisterAndLogin(t, ts, "alice@example.com")
	bob := helpers.RegisterAndLogin(t, ts, "bob@example.com")

	res, body := ts.SendMultipart(t, "/api/upload/", alice, "alice.fit", []byte("a"), nil)
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	_, body = ts.SendRequest(t, http.MethodGet, "/api/upload/", bob, nil)
	assert.Empty(t, decodeUploads(t, body))

	_, body = ts.SendRequest(t, http.MethodGet, "/api/upload/", alice, nil)
	uploads := decodeUploads(t, body)
	require.Len(t, uploads, 1)
	assert.Equal(t, "alice.fit", uploads[0].Filename)
}

func TestUpload_RejectsWrongExtension(t *testing.T) {
	ts := helpers.NewTestServer(t, nil)
	token := helpers.RegisterAndLogin(t, ts, "user@example.com")

	res, body := ts.SendMultipart(t, "/api/upload/", token, "notes.txt", []byte("hello"), nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Only .fit files")

	// ни файла, ни записи
	entries, err := os.ReadDir(ts.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, body = ts.SendRequest(t, http.MethodGet, "/api/upload/", token, nil)
	assert.Empty(t, decodeUploads(t, body))
}

func TestUpload_RequiresToken(t *testing.T) {
	ts := helpers.NewTestServer(t, nil)

	tests := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not-a-jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _ := ts.SendMultipart(t, "/api/upload/", tt.token, "run.fit", []byte("x"), nil)
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
			assert.Equal(t, "Bearer", res.Header.Get("WWW-Authenticate"))

			res, _ = ts.SendRequest(t, http.MethodGet, "/api/upload/", tt.token, nil)
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		})
	}
}

func TestUpload_InvalidMetadata(t *testing.T) {
	ts := helpers.NewTestServer(t, nil)
	token := helpers.RegisterAndLogin(t, ts, "user@example.com")

	tests := []struct {
		name   string
		fields map[string]string
		field  string
	}{
		{"non-integer fatigue", map[string]string{"fatigue_level": "abc"}, "fatigue_level"},
		{"fatigue above range", map[string]string{"fatigue_level": "6"}, "fatigue_level"},
		{"sleep below range", map[string]string{"sleep_quality": "0"}, "sleep_quality"},
		{"unknown session type", map[string]string{"session_type": "commute"}, "session_type"},
		{"unknown trail condition", map[string]string{"trail_condition": "lava"}, "trail_condition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := ts.SendMultipart(t, "/api/upload/", token, "run.fit", []byte("x"), tt.fields)
			assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode, body)
			assert.Contains(t, body, tt.field)
		})
	}

	entries, err := os.ReadDir(ts.UploadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpload_MissingFile(t *testing.T) {
	ts := helpers.NewTestServer(t, nil)
	token := helpers.RegisterAndLogin(t, ts, "user@example.com")

	res, _ := ts.SendMultipart(t, "/api/upload/", token, "", nil, map[string]string{"session_type": "race"})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
}

func TestUpload_TooLarge(t *testing.T) {
	cfg := helpers.TestConfig(t)
	cfg.Upload.MaxSize = 1024
	ts := helpers.NewTestServer(t, cfg)
	token := helpers.RegisterAndLogin(t, ts, "user@example.com")

	res, _ := ts.SendMultipart(t, "/api/upload/", token, "big.fit", bytes.Repeat([]byte("x"), 4096), nil)
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.StatusCode)

	entries, err := os.ReadDir(filepath.Clean(ts.UploadDir))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpload_ConfiguredExtension(t *testing.T) {
	cfg := helpers.TestConfig(t)
	cfg.Upload.AllowedExtension = ".gpx"
	ts := helpers.NewTestServer(t, cfg)
	token := helpers.RegisterAndLogin(t, ts, "user@example.com")

	res, body := ts.SendMultipart(t, "/api/upload/", token, "run.fit", []byte("x"), nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "Only .gpx files are allowed")

	res, body = ts.SendMultipart(t, "/api/upload/", token, "run.GPX", []byte("x"), nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)
}
