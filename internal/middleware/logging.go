package middleware

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const (
	// RequestIDHeader is echoed back on every response.
	RequestIDHeader = "X-Request-Id"

	loggerKey = "logger"
)

// requestID honours an upstream id only when it is a UUID; anything else is
// replaced so arbitrary client text never reaches the logs.
func requestID(r *http.Request) string {
	if id, err := uuid.Parse(r.Header.Get(RequestIDHeader)); err == nil {
		return id.String()
	}
	return uuid.New().String()
}

// RequestLogger attaches a request scoped logrus entry to the context and
// logs one line per completed request. Panics in downstream handlers are
// recovered, logged with their stack and turned into a 500.
func RequestLogger(logger *logrus.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			start := time.Now()
			r := c.Request()
			id := requestID(r)

			fieldsLogger := logger.WithFields(logrus.Fields{
				"request-id": id,
				"method":     r.Method,
				"path":       r.URL.Path,
			})
			c.Set(loggerKey, fieldsLogger)
			c.Response().Header().Set(RequestIDHeader, id)

			defer func() {
				if recovered := recover(); recovered != nil {
					fieldsLogger.WithFields(logrus.Fields{
						"panic":    recovered,
						"stack":    string(debug.Stack()),
						"duration": time.Since(start).String(),
					}).Error("request panicked")
					err = echo.NewHTTPError(http.StatusInternalServerError, "internal error")
				}
			}()

			err = next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			entry := fieldsLogger.WithFields(logrus.Fields{
				"status":   status,
				"duration": time.Since(start).String(),
				"ip":       c.RealIP(),
			})
			switch {
			case status >= http.StatusInternalServerError:
				entry.Error("request completed")
			case status >= http.StatusBadRequest:
				entry.Warn("request completed")
			default:
				entry.Info("request completed")
			}
			return nil
		}
	}
}

// Logger returns the request scoped entry set by RequestLogger, or the
// standard logger when the middleware is not installed.
func Logger(c echo.Context) logrus.FieldLogger {
	if l, ok := c.Get(loggerKey).(*logrus.Entry); ok {
		return l
	}
	return logrus.StandardLogger()
}
