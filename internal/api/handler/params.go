package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// intParam parses a numeric path parameter, failing the request with a 400
// when the segment is not an integer.
func intParam(c echo.Context, name string) (int, error) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return v, nil
}
