package handler

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// queryUUID parses an optional UUID query filter. A blank value means no filter.
func queryUUID(c echo.Context, name string) (*uuid.UUID, bool) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, true
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, false
	}

	return &id, true
}
