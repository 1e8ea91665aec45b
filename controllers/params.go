package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// paramUUID parses a path parameter; a malformed id is reported as notFound
// since no record can have it.
func paramUUID(c *fiber.Ctx, name string, notFound error) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, notFound
	}
	return id, nil
}
