package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"lodging-backend/models"
)

var jwtSecret []byte

// InitJWT sets the signing key used for all tokens.
func InitJWT(secret string) {
	jwtSecret = []byte(secret)
}

const claimsKey = "auth_claims"

// Claims is the per-request identity carried by a bearer token.
type Claims struct {
	UserID   uint        `json:"user_id"`
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed 24h token for the user. The token gets
// a unique ID so it can be revoked on logout.
func GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			Issuer:    "lodging-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

// Revocation set for logged-out tokens, keyed by token ID. Entries are
// dropped once the token would have expired anyway.
var (
	revokedMu sync.Mutex
	revoked   = map[string]time.Time{}
)

// RevokeToken invalidates a parsed token for the rest of its lifetime.
func RevokeToken(claims *Claims) {
	expiry := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}

	revokedMu.Lock()
	defer revokedMu.Unlock()

	now := time.Now()
	for id, exp := range revoked {
		if exp.Before(now) {
			delete(revoked, id)
		}
	}
	revoked[claims.ID] = expiry
}

func isRevoked(claims *Claims) bool {
	if claims.ID == "" {
		return false
	}
	revokedMu.Lock()
	defer revokedMu.Unlock()
	exp, ok := revoked[claims.ID]
	return ok && exp.After(time.Now())
}

func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

func rejectUnauthenticated(c *gin.Context, message string) {
	// Browser clients get sent to the login page; API clients get 401.
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}

// AuthMiddleware gates every protected route behind a valid, unrevoked
// bearer token and stores the identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			rejectUnauthenticated(c, "authentication required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			rejectUnauthenticated(c, "invalid authorization format")
			return
		}

		claims, err := ParseToken(tokenString)
		if err != nil {
			rejectUnauthenticated(c, "invalid token")
			return
		}
		if isRevoked(claims) {
			rejectUnauthenticated(c, "session ended")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// AdminMiddleware allows only admin sessions through. Unlike a missing
// session this is a hard denial, never a redirect.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "authentication required"})
			return
		}

		switch claims.Role {
		case models.RoleAdmin:
			c.Next()
		case models.RoleStaff:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "admin access required"})
		default:
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "unknown role"})
		}
	}
}

// CurrentClaims returns the identity set by AuthMiddleware, or nil.
func CurrentClaims(c *gin.Context) *Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
