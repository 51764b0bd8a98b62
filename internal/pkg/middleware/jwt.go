package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/angkutin/angkutin/internal/pkg/jwt"
	"github.com/angkutin/angkutin/internal/pkg/models"
	"github.com/angkutin/angkutin/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			// Check if the Authorization header has the correct format
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			// Extract the token
			tokenString := parts[1]

			// Validate the token using our JWT package
			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			// Extract actor ID and role from claims
			actorIDStr, ok := (*claims)["actor_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing actor_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			// Parse the UUID
			actorID, err := uuid.Parse(fmt.Sprintf("%v", actorIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: actor_id is not a valid UUID")
			}

			// Set the actor ID and role in the context
			c.Set("actor_id", actorID)
			c.Set("actor_role", fmt.Sprintf("%v", role))

			return next(c)
		}
	}
}

// ActorFromContext reads the authenticated actor placed in context by JWTAuthMiddleware
func ActorFromContext(c echo.Context) (models.Actor, error) {
	actorID, ok := c.Get("actor_id").(uuid.UUID)
	if !ok {
		return models.Actor{}, fmt.Errorf("actor_id not found in context")
	}

	role, ok := c.Get("actor_role").(string)
	if !ok {
		return models.Actor{}, fmt.Errorf("actor_role not found in context")
	}

	return models.Actor{ID: actorID.String(), Role: models.ActorRole(role)}, nil
}
