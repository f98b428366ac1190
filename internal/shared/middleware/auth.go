package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"booktracker-backend/internal/shared/response"
)

const (
	claimsKey = "claims"
	userIDKey = "user_id"
)

// Auth verifies the bearer token and stores its claims on the context.
// Identity itself is owned by the external provider; this backend only
// checks the signature and the standard time claims.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		claims := jwt.MapClaims{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})

		switch {
		case err == nil && parsed.Valid:
			// fallthrough to claim extraction below
		case errors.Is(err, jwt.ErrTokenExpired):
			response.JSONError(c, http.StatusUnauthorized, "Token has expired.")
			return
		case errors.Is(err, jwt.ErrTokenInvalidAudience):
			response.JSONError(c, http.StatusUnauthorized, "Incorrect audience in the token.")
			return
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			response.JSONError(c, http.StatusUnauthorized, "Incorrect issuer in the token.")
			return
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			response.JSONError(c, http.StatusUnauthorized, "Token is not yet valid (nbf claim).")
			return
		default:
			response.JSONError(c, http.StatusBadRequest, "Unable to parse authentication token.")
			return
		}

		c.Set(claimsKey, claims)
		if sub, ok := claims["sub"].(string); ok {
			c.Set(userIDKey, sub)
		}

		c.Next()
	}
}

// RequirePermission enforces that the verified token carries the given
// permission string in its "permissions" claim.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(claimsKey)
		if !exists {
			response.JSONError(c, http.StatusUnauthorized, "Authorization header is expected.")
			return
		}

		claims, ok := value.(jwt.MapClaims)
		if !ok {
			response.JSONError(c, http.StatusBadRequest, "Unable to parse authentication token.")
			return
		}

		raw, ok := claims["permissions"]
		if !ok {
			response.JSONError(c, http.StatusBadRequest, "Permissions not included in JWT.")
			return
		}

		perms, ok := raw.([]interface{})
		if !ok {
			response.JSONError(c, http.StatusBadRequest, "Permissions not included in JWT.")
			return
		}

		for _, p := range perms {
			if s, ok := p.(string); ok && s == permission {
				c.Next()
				return
			}
		}

		response.JSONError(c, http.StatusForbidden, "Permission not found.")
	}
}

// UserID returns the token subject stored by Auth.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		response.JSONError(c, http.StatusUnauthorized, "Authorization header is expected.")
		return "", false
	}

	parts := strings.Fields(header)
	switch {
	case len(parts) == 0:
		response.JSONError(c, http.StatusUnauthorized, "Authorization header is expected.")
		return "", false
	case !strings.EqualFold(parts[0], "Bearer"):
		response.JSONError(c, http.StatusUnauthorized, `Authorization header must start with "Bearer".`)
		return "", false
	case len(parts) == 1:
		response.JSONError(c, http.StatusUnauthorized, "Token not found.")
		return "", false
	case len(parts) > 2:
		response.JSONError(c, http.StatusUnauthorized, "Authorization header must be bearer token.")
		return "", false
	}

	return parts[1], true
}
