package httpserver

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// idParam returns the named path parameter when it is a well-formed id.
func idParam(c echo.Context, name string) (string, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%s %q is not a uuid: %w", name, raw, err)
	}
	return id.String(), nil
}
