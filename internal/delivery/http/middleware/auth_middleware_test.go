package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tradie/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-access-secret"

func newAuthMiddleware() *AuthMiddleware {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret

	return NewAuthMiddleware(cfg)
}

func signedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	return signed
}

func invokeAuthenticate(m *AuthMiddleware, authHeader string) (echo.Context, *httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/my/listings", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	next := func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}
	err := m.Authenticate(next)(c)

	return c, rec, err
}

func TestAuthenticate_ValidToken(t *testing.T) {
	m := newAuthMiddleware()
	userID := uuid.New()
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	c, rec, err := invokeAuthenticate(m, "Bearer "+token)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	gotID, ok := GetUserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, gotID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := newAuthMiddleware()

	_, rec, err := invokeAuthenticate(m, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := newAuthMiddleware()

	_, rec, err := invokeAuthenticate(m, "Basic dXNlcjpwYXNz")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	m := newAuthMiddleware()
	token := signedToken(t, "some-other-secret", jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, rec, err := invokeAuthenticate(m, "Bearer "+token)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	m := newAuthMiddleware()
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, rec, err := invokeAuthenticate(m, "Bearer "+token)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedSubject(t *testing.T) {
	m := newAuthMiddleware()
	token := signedToken(t, testSecret, jwt.MapClaims{
		"sub": "not-a-uuid",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, rec, err := invokeAuthenticate(m, "Bearer "+token)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserID_Unset(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)
}
