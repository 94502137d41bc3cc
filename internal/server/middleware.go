package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// errorHandler covers errors the controller did not map itself: unmatched
// routes and anything escaping a handler. Internal detail never reaches the
// response body.
func errorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		var he *echo.HTTPError
		if !errors.As(err, &he) {
			he = &echo.HTTPError{
				Code:    http.StatusInternalServerError,
				Message: http.StatusText(http.StatusInternalServerError),
			}
		}

		if !c.Response().Committed {
			var werr error
			if c.Request().Method == http.MethodHead {
				werr = c.NoContent(he.Code)
			} else {
				werr = c.JSON(he.Code, echo.Map{"error": he.Message})
			}
			if werr != nil {
				c.Logger().Error(werr)
			}
		}
	}
}
