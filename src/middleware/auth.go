package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/vwoinilowicz/portfolio-backend/src/models"
)

// Context keys populated by RequireAuth for downstream handlers.
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
	ContextRole     = "role"
)

// Signing state is process-wide, initialized once at startup.
var (
	jwtSecret string
	tokenTTL  = 7 * 24 * time.Hour
)

// Configure initializes the token signing secret and lifetime.
func Configure(secret string, ttl time.Duration) error {
	if secret == "" {
		return fmt.Errorf("JWT secret cannot be empty")
	}
	if len(secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters long")
	}
	jwtSecret = secret
	if ttl > 0 {
		tokenTTL = ttl
	}
	return nil
}

// Claims represents the session claims carried by issued tokens.
type Claims struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed session token binding a user id and role.
func GenerateToken(userID uuid.UUID, username, role string) (string, error) {
	if jwtSecret == "" {
		return "", fmt.Errorf("JWT secret not initialized")
	}

	claims := Claims{
		UserID:   userID.String(),
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "portfolio-backend",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// ValidateToken verifies a token's signature and expiry and returns its
// claims. Malformed, tampered and expired tokens all fail the same way.
func ValidateToken(tokenString string) (*Claims, error) {
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT secret not initialized")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	return claims, nil
}

// RequireAuth validates the bearer token and attaches the resolved identity
// to the request context. Public read routes skip it.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No hay token, autorización denegada",
			})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Formato de autorización inválido",
			})
			c.Abort()
			return
		}

		claims, err := ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token no válido",
			})
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin rejects requests whose resolved role is not admin. It must be
// chained after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No hay token, autorización denegada",
			})
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Acceso denegado: se requiere rol de administrador",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
