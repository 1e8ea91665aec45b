package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/utils"
)

// RequireRole must run after Protected.
func RequireRole(roles ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := SessionFrom(c)
		if session == nil {
			return utils.Fail(c, fiber.StatusUnauthorized, "Authentication required")
		}
		for _, role := range roles {
			if session.Role == role {
				return c.Next()
			}
		}
		return utils.Fail(c, fiber.StatusForbidden, "You don't have the required role to perform this action")
	}
}
