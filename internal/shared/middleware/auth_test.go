package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authRouter(permission string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	handlers := []gin.HandlerFunc{Auth(testSecret)}
	if permission != "" {
		handlers = append(handlers, RequirePermission(permission))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserID(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func doAuth(t *testing.T, r *gin.Engine, header string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Message
}

func TestAuthHeaderCases(t *testing.T) {
	valid := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantMsg    string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authorization header is expected."},
		{"wrong scheme", "Basic abc123", http.StatusUnauthorized, `Authorization header must start with "Bearer".`},
		{"bearer without token", "Bearer", http.StatusUnauthorized, "Token not found."},
		{"too many parts", "Bearer " + valid + " extra", http.StatusUnauthorized, "Authorization header must be bearer token."},
		{"garbage token", "Bearer not.a.jwt", http.StatusBadRequest, "Unable to parse authentication token."},
	}

	r := authRouter("")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuth(t, r, tt.header)
			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, w))
		})
	}
}

func TestAuthExpiredToken(t *testing.T) {
	expired := signToken(t, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	w := doAuth(t, authRouter(""), "Bearer "+expired)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token has expired.", errorMessage(t, w))
}

func TestAuthWrongSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	w := doAuth(t, authRouter(""), "Bearer "+signed)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unable to parse authentication token.", errorMessage(t, w))
}

func TestAuthValidTokenExposesUserID(t *testing.T) {
	valid := signToken(t, jwt.MapClaims{
		"sub": "auth0|12345",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	w := doAuth(t, authRouter(""), "Bearer "+valid)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "auth0|12345", body.UserID)
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		claims     jwt.MapClaims
		wantStatus int
		wantMsg    string
	}{
		{
			name: "permission granted",
			claims: jwt.MapClaims{
				"sub":         "user-1",
				"exp":         time.Now().Add(time.Hour).Unix(),
				"permissions": []string{"booklist:get", "booklist:curator"},
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "permission absent",
			claims: jwt.MapClaims{
				"sub":         "user-1",
				"exp":         time.Now().Add(time.Hour).Unix(),
				"permissions": []string{"booklist:get"},
			},
			wantStatus: http.StatusForbidden,
			wantMsg:    "Permission not found.",
		},
		{
			name: "permissions claim missing",
			claims: jwt.MapClaims{
				"sub": "user-1",
				"exp": time.Now().Add(time.Hour).Unix(),
			},
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Permissions not included in JWT.",
		},
	}

	r := authRouter("booklist:curator")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doAuth(t, r, "Bearer "+signToken(t, tt.claims))
			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errorMessage(t, w))
			}
		})
	}
}
