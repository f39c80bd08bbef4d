package middleware

import (
	"fmt"
	"strings"
	"time"

	"holistica/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT generates a bearer token embedding the user id and role
func GenerateJWT(userID uint, roleID uint) (string, error) {
	claims := jwt.MapClaims{
		"id":   userID,
		"role": roleID,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(config.AppConfig.JWTExpire).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token no proporcionado")
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Formato de autorización inválido")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.AppConfig.JWTKey), nil
	})

	if err != nil || !token.Valid {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token inválido o expirado")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["id"] == nil || claims["role"] == nil {
		return ErrorResponse(c, fiber.StatusUnauthorized, "Token inválido o expirado")
	}

	// JWT numeric claims decode as float64
	userID := claims["id"].(float64)
	roleID := claims["role"].(float64)
	c.Locals("userId", uint(userID))
	c.Locals("roleId", uint(roleID))

	return c.Next()
}
