package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/micromarket/backend/internal/db"
	"github.com/micromarket/backend/internal/repo"
	"github.com/micromarket/backend/internal/service"
)

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	Repo    *repo.GormRepo
	Auth    *AuthHTTP
	Catalog *CatalogHTTP
	Cart    *CartHTTP
	Demo    *DemoHTTP
	Secret  []byte
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}

	store := &repo.GormRepo{DB: gdb}
	secret := []byte("test_secret")

	return &testEnv{
		T:       t,
		E:       echo.New(),
		Repo:    store,
		Auth:    &AuthHTTP{Svc: &service.AuthService{Repo: store, JWTSecret: secret}},
		Catalog: &CatalogHTTP{Svc: &service.CatalogService{Repo: store}},
		Cart:    &CartHTTP{Svc: &service.CartService{Repo: store}},
		Demo:    &DemoHTTP{Svc: &service.DemoService{Repo: store}},
		Secret:  secret,
	}
}

func (env *testEnv) doJSONRequest(method, path string, body interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) register(email, userType string) (token string, userID string) {
	env.T.Helper()

	load := map[string]string{
		"email":     email,
		"name":      "Test User",
		"password":  "password",
		"user_type": userType,
	}
	rec, c := env.doJSONRequest(http.MethodPost, "/api/auth/register", load)
	require.NoError(env.T, env.Auth.Register(c))
	require.Equal(env.T, http.StatusOK, rec.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(env.T, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(env.T, resp.AccessToken)
	return resp.AccessToken, resp.User.ID
}
