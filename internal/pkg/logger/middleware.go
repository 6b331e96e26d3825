package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware returns an Echo middleware that logs each request with
// method, path, status and latency
func EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := []Field{
				String("method", req.Method),
				String("path", req.URL.Path),
				Int("status", res.Status),
				Duration("latency", time.Since(start)),
				String("remote_ip", c.RealIP()),
			}

			if res.Status >= 500 {
				Error("request failed", fields...)
			} else {
				Info("request completed", fields...)
			}

			return err
		}
	}
}
