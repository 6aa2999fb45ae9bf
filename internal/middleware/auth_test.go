package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/micromarket/backend/internal/db"
	"github.com/micromarket/backend/internal/models"
	"github.com/micromarket/backend/internal/repo"
	"github.com/micromarket/backend/internal/tokens"
)

var testSecret = []byte("test_secret")

func initTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return &repo.GormRepo{DB: gdb}
}

func callWithAuth(t *testing.T, r *repo.GormRepo, authHeader string) (*httptest.ResponseRecorder, echo.Context, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	err := BearerAuth(testSecret, r)(next)(c)
	return rec, c, err
}

func TestBearerAuthAllowsValidToken(t *testing.T) {
	r := initTestRepo(t)

	user := models.User{Email: "vendor@example.com", Name: "Vendor", UserType: "vendor", PasswordHash: "x"}
	require.NoError(t, r.DB.Create(&user).Error)

	token, err := tokens.Issue(user.ID.String(), user.Email, testSecret)
	require.NoError(t, err)

	rec, c, err := callWithAuth(t, r, "Bearer "+token)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user.ID.String(), c.Get(CtxUserID))
	require.Equal(t, "vendor", c.Get(CtxUserType))
}

func TestBearerAuthMissingHeader(t *testing.T) {
	r := initTestRepo(t)

	_, _, err := callWithAuth(t, r, "")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestBearerAuthExpiredToken(t *testing.T) {
	r := initTestRepo(t)

	claims := tokens.AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "b6f5a7f0-0000-0000-0000-000000000000",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	require.NoError(t, err)

	_, _, err = callWithAuth(t, r, "Bearer "+expired)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "token expired", he.Message)
}

func TestBearerAuthGarbageToken(t *testing.T) {
	r := initTestRepo(t)

	_, _, err := callWithAuth(t, r, "Bearer garbage")
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "invalid token", he.Message)
}

func TestBearerAuthUnknownUser(t *testing.T) {
	r := initTestRepo(t)

	// token signs a user id that has no record in the store
	token, err := tokens.Issue("3e2c1f94-9e6a-4c3b-8d1a-58a1b3f7c2d0", "ghost@example.com", testSecret)
	require.NoError(t, err)

	_, _, err = callWithAuth(t, r, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected HTTPError")
	require.Equal(t, http.StatusUnauthorized, he.Code)
	require.Equal(t, "user not found", he.Message)
}
