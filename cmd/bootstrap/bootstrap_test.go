package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-registry/config"
	"hospital-registry/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Port: "0", Env: "test", LogLevel: "error"},
		Store: config.StoreConfig{Driver: config.DriverMemory},
		JWT:   config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Minute},
	}
}

func TestNewServesMemoryStore(t *testing.T) {
	app, err := New(memoryConfig())
	require.NoError(t, err)
	defer app.Close()

	handler := app.Server.Handler

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := jwt.NewJWTService(app.Config.JWT).GenerateAccessToken("nurse", jwt.RoleStaff)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "registry_store_operations_total")
}

func TestNewWithoutSecretDisablesAuth(t *testing.T) {
	cfg := memoryConfig()
	cfg.JWT.Secret = ""

	app, err := New(cfg)
	require.NoError(t, err)
	defer app.Close()

	rec := httptest.NewRecorder()
	app.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/departments", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	cfg := memoryConfig()
	cfg.Redis = config.RedisConfig{Enabled: true, Host: host, Port: port}

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestOpenStores(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.Driver = config.DriverRemote
	cfg.Remote = config.RemoteConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Second}

	s, err := openStores(cfg, logrus.New(), nil, nil)
	require.NoError(t, err)
	assert.NotNil(t, s.patients)
	assert.NotNil(t, s.medicalRecords)

	cfg.Store.Driver = "sqlite"
	_, err = openStores(cfg, logrus.New(), nil, nil)
	assert.Error(t, err)
}

func TestOpenStoresMissingFixtureDir(t *testing.T) {
	cfg := memoryConfig()
	cfg.Store.FixtureDir = t.TempDir()

	_, err := openStores(cfg, logrus.New(), nil, nil)
	assert.ErrorContains(t, err, "patient")
}

func TestSetupLogger(t *testing.T) {
	log := SetupLogger(config.AppConfig{LogLevel: "debug"})
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log = SetupLogger(config.AppConfig{LogLevel: "chatty"})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestIssueToken(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := memoryConfig()
	cfg.Redis = config.RedisConfig{Enabled: true, Host: mr.Host(), Port: mr.Port()}

	issued, err := IssueToken(context.Background(), cfg, "alice", jwt.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, time.Minute, issued.ExpiresIn)

	claims, err := jwt.NewJWTService(cfg.JWT).ValidateToken(issued.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)
	assert.True(t, mr.Exists("access_token:alice:"+issued.TokenID))
}

func TestIssueTokenRejectsUnknownRole(t *testing.T) {
	_, err := IssueToken(context.Background(), memoryConfig(), "alice", jwt.Role("janitor"))
	assert.ErrorIs(t, err, jwt.ErrInvalidRole)
}
