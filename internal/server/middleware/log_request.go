package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
)

type LogRequestConfig struct {
	Logger       Logger
	Enabled      func(c echo.Context) bool
	KeyAndValues func(c echo.Context) []interface{}
}

// LogRequest logs one structured line per request. Level follows the
// response status: 5xx at error, 4xx at warning, the rest at info.
func LogRequest(config LogRequestConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		panic("Logger is required to use LogRequest")
	}
	if config.Enabled == nil {
		config.Enabled = func(echo.Context) bool { return true }
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !config.Enabled(c) {
				return next(c)
			}

			start := time.Now()
			req := c.Request()
			res := c.Response()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			args := make([]interface{}, 0, 16)
			args = append(args,
				"status", res.Status,
				"method", req.Method,
				"uri", req.RequestURI,
				"latency_ms", time.Since(start).Milliseconds(),
				"real_ip", c.RealIP(),
				"request_id", GetRequestID(c),
			)
			if config.KeyAndValues != nil {
				args = append(args, config.KeyAndValues(c)...)
			}

			switch {
			case res.Status >= 500:
				if err != nil {
					args = append(args, "error", err.Error())
				}
				config.Logger.Errorw("request", args...)
			case res.Status >= 400:
				config.Logger.Warnw("request", args...)
			default:
				config.Logger.Infow("request", args...)
			}

			return err
		}
	}
}
