// Package middleware carries the echo middleware shared by the HTTP server.
package middleware

import "github.com/labstack/echo/v4"

type Skipper func(c echo.Context) bool

var DefaultSkipper = func(c echo.Context) bool {
	return false
}

// Logger is the structured logging surface the middleware needs; satisfied
// by *zap.SugaredLogger.
type Logger interface {
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}
