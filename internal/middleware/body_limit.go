package middleware

import (
	"net/http"

	"github.com/deppfellow/qrgen/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

// BodyLimitMiddleware caps request bodies and reports rejected requests.
type BodyLimitMiddleware struct {
	server *server.Server
}

func NewBodyLimitMiddleware(s *server.Server) *BodyLimitMiddleware {
	return &BodyLimitMiddleware{
		server: s,
	}
}

// Limit rejects bodies above the configured size with 413, whether the
// Content-Length announces it or the body turns out larger while read.
func (b *BodyLimitMiddleware) Limit() echo.MiddlewareFunc {
	limit := middleware.BodyLimit(b.server.Config.Server.BodyLimit)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		limited := limit(next)

		return func(c echo.Context) error {
			err := limited(c)

			var echoErr *echo.HTTPError
			if errors.As(err, &echoErr) && echoErr.Code == http.StatusRequestEntityTooLarge {
				b.RecordBodyLimitHit(c.Path())
			}

			return err
		}
	}
}

func (b *BodyLimitMiddleware) RecordBodyLimitHit(endpoint string) {
	if b.server.LoggerService != nil && b.server.LoggerService.GetApplication() != nil {
		b.server.LoggerService.GetApplication().RecordCustomEvent("BodyLimitHit", map[string]interface{}{
			"endpoint": endpoint,
			"limit":    b.server.Config.Server.BodyLimit,
		})
	}
}
