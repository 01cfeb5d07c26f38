package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/models"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/responses"
	"github.com/sreekar7586/Croxora-Full-Stack-Web-Platform/stores"
)

// Auth validates the bearer token, loads the account it names and stores it
// in Locals("user") for downstream handlers.
func Auth(users stores.UserStore, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return responses.Error(c, fiber.StatusUnauthorized, "No auth token, access denied")
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || bearerToken[0] != "Bearer" {
			return responses.Error(c, fiber.StatusUnauthorized, "Invalid authorization header format")
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(bearerToken[1], claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return responses.Error(c, fiber.StatusUnauthorized, "Token verification failed, access denied")
		}

		id, ok := claims["id"].(string)
		if !ok || id == "" {
			return responses.Error(c, fiber.StatusUnauthorized, "User ID not found in token")
		}

		userId, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return responses.Error(c, fiber.StatusUnauthorized, "Invalid user ID in token")
		}

		user, err := users.FindById(c.Context(), userId)
		if err != nil {
			return responses.Error(c, fiber.StatusUnauthorized, "User no longer exists")
		}

		c.Locals("user", user)
		return c.Next()
	}
}

// AdminOnly rejects requests from accounts without the admin role. It must
// run after Auth.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("user").(*models.User)
		if !ok || !user.IsAdmin() {
			return responses.Error(c, fiber.StatusForbidden, "Not authorized to access this route")
		}
		return c.Next()
	}
}

// CurrentUser returns the account Auth stored for this request.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("user").(*models.User)
	return user
}
