package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/meinhoongagan/skillverify/models"
	"github.com/meinhoongagan/skillverify/services"
	"github.com/meinhoongagan/skillverify/utils"
	"github.com/sirupsen/logrus"
)

const sessionKey = "session"

// Protected verifies the bearer token and stores the caller's Session on the
// request. Revoked tokens are rejected.
func Protected(tokens *services.TokenService) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   tokens.Secret(),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok {
				return utils.HandleError(c, services.ErrUnauthorized)
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return utils.HandleError(c, services.ErrUnauthorized)
			}

			session, err := services.SessionFromClaims(claims)
			if err != nil {
				return utils.HandleError(c, err)
			}

			revoked, err := tokens.IsRevoked(c.UserContext(), session)
			if err != nil {
				// Fail open when the revocation store is unreachable.
				utils.Logger.WithError(err).Warn("token revocation check failed")
			}
			if revoked {
				return utils.HandleError(c, services.ErrUnauthorized)
			}

			c.Locals(sessionKey, session)
			return c.Next()
		},
	})
}

// SessionFrom returns the caller set by Protected, or nil on public routes.
func SessionFrom(c *fiber.Ctx) *models.Session {
	session, _ := c.Locals(sessionKey).(*models.Session)
	return session
}

func jwtError(c *fiber.Ctx, err error) error {
	utils.Logger.WithFields(logrus.Fields{
		"path":  c.Path(),
		"error": err,
	}).Debug("rejected bearer token")

	if err.Error() == "Missing or malformed JWT" {
		return utils.Fail(c, fiber.StatusUnauthorized, "Missing or malformed token")
	}
	return utils.HandleError(c, services.ErrUnauthorized)
}
