package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"trailfit_backend/database"
	"trailfit_backend/internal/app"
	"trailfit_backend/internal/auth"
	"trailfit_backend/internal/config"
	"trailfit_backend/internal/storage"
)

type TestServer struct {
	Server    *httptest.Server
	DB        *gorm.DB
	Config    *config.Config
	UploadDir string
}

// TestConfig возвращает конфигурацию с in-memory SQLite и временным каталогом загрузок
func TestConfig(t *testing.T) *config.Config {
	dir := t.TempDir()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	return &config.Config{
		Server: config.ServerConfig{Env: "test"},
		Database: config.DatabaseConfig{
			Driver: "sqlite",
			DSN:    "file:" + name + "?mode=memory&cache=shared",
		},
		JWT:     config.JWTConfig{Secret: "test-secret-key", TTLMinutes: 30, Issuer: "trailfit"},
		Storage: config.StorageConfig{Type: "local", BasePath: dir},
		Upload:  config.UploadConfig{AllowedExtension: ".fit", MaxMemory: 32 << 20},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"*"},
			AllowedHeaders: []string{"*"},
		},
	}
}

// NewTestServer поднимает полный роутер поверх cfg. nil - конфигурация по умолчанию.
func NewTestServer(t *testing.T, cfg *config.Config) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	auth.SetPasswordCost(4)

	if cfg == nil {
		cfg = TestConfig(t)
	}

	db, err := database.Open(cfg.Database)
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, database.AutoMigrate(db))

	store, err := storage.NewStorage(context.Background(), cfg.Storage)
	require.NoError(t, err, "failed to init storage")

	ts := &TestServer{
		Server:    httptest.NewServer(app.SetupRouter(cfg, db, store)),
		DB:        db,
		Config:    cfg,
		UploadDir: cfg.Storage.BasePath,
	}
	t.Cleanup(ts.Close)
	return ts
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	_ = database.Close(ts.DB)
}

// SendRequest отправляет JSON-запрос и возвращает ответ и тело
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return ts.do(t, req, token)
}

// SendForm отправляет application/x-www-form-urlencoded
func (ts *TestServer) SendForm(t *testing.T, path string, values url.Values) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, strings.NewReader(values.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return ts.do(t, req, "")
}

// SendMultipart отправляет файл и поля формы. Пустой filename - без файла.
func (ts *TestServer) SendMultipart(t *testing.T, path, token, filename string, content []byte, fields map[string]string) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, ts.Server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return ts.do(t, req, token)
}

func (ts *TestServer) do(t *testing.T, req *http.Request, token string) (*http.Response, string) {
	t.Helper()

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.Server.Client().Do(req)
	require.NoError(t, err, fmt.Sprintf("%s %s", req.Method, req.URL.Path))
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(resBody)
}
