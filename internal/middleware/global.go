package middleware

import (
	"net/http"

	"github.com/deppfellow/qrgen/internal/errs"
	"github.com/deppfellow/qrgen/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups “global” middleware and the global error handler.
//
// It is a struct so middleware functions can read config values
// (CORS origins) and the logger from *server.Server.
type GlobalMiddlewares struct {
	server *server.Server
}

// NewGlobalMiddlewares constructs the middleware bundle.
func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

// CORS returns Echo’s CORS middleware configured by the server config.
//
// The QR endpoints are meant to be embedded from any page, so the default
// allows every origin.
func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	})
}

// RequestLogger returns Echo’s request logger middleware with a custom LogValuesFunc.
//
// One “API” log line per request, with severity based on the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,

		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// When a handler returns an error, Echo has not written the final
			// status yet; GlobalErrorHandler will. Derive it from the error so
			// a 400 is not logged as a 200.
			// Reference: https://github.com/labstack/echo/issues/2310#issuecomment-1288196898
			if v.Error != nil {
				var httpErr *errs.HTTPError
				var echoErr *echo.HTTPError

				if errors.As(v.Error, &httpErr) {
					statusCode = httpErr.Status
				} else if errors.As(v.Error, &echoErr) {
					statusCode = echoErr.Code
				} else {
					statusCode = http.StatusInternalServerError
				}
			}

			logger := GetLogger(c)

			// 5xx = server fault -> Error, 4xx = client fault -> Warn, otherwise -> Info
			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Str("request_id", GetRequestID(c)).
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

// Recover returns Echo’s panic recovery middleware.
//
// Panics become errors that reach GlobalErrorHandler as 500s.
func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

// Secure returns Echo’s secure headers middleware.
func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// GlobalErrorHandler is the final error funnel for the entire HTTP server.
//
// Every error ends up here and is written as errs.ErrorResponse:
//   - *errs.HTTPError keeps its own status, code and field errors
//   - Echo 404/405 become the matching errs errors
//   - other Echo errors keep their status with a generic code
//   - anything else is a 500 that never exposes the real error
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	// Logs keep the real underlying error; the client may get a sanitized one.
	originalErr := err

	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		var echoErr *echo.HTTPError

		switch {
		case errors.As(err, &echoErr) && echoErr.Code == http.StatusNotFound:
			httpErr = errs.NewNotFoundError("Route not found", false, nil)

		case errors.As(err, &echoErr) && echoErr.Code == http.StatusMethodNotAllowed:
			httpErr = errs.NewMethodNotAllowedError("Method not allowed")

		case errors.As(err, &echoErr):
			message := http.StatusText(echoErr.Code)
			if msg, ok := echoErr.Message.(string); ok {
				message = msg
			}
			httpErr = &errs.HTTPError{
				Code:    errs.MakeUpperCaseWithUnderscores(http.StatusText(echoErr.Code)),
				Message: message,
				Status:  echoErr.Code,
			}

		default:
			httpErr = errs.NewInternalServerError()
		}
	}

	logger := GetLogger(c)

	if httpErr.Status >= http.StatusInternalServerError {
		logger.Error().Stack().
			Err(originalErr).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)
	} else {
		logger.Debug().
			Err(originalErr).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Strs("fields", httpErr.Fields()).
			Msg(httpErr.Message)
	}

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(httpErr.Status)
		return
	}

	_ = c.JSON(httpErr.Status, errs.ErrorResponse{Error: httpErr.Normalized()})
}
