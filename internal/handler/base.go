package handler

import (
	"time"

	"github.com/deppfellow/qrgen/internal/middleware"
	"github.com/deppfellow/qrgen/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by concrete handlers (QRHandler, HealthHandler) so they can
// access shared resources via *server.Server (config, logger).
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// Binder reads a request payload out of the HTTP request and validates it.
//
// It returns the typed request or an error for the global error handler,
// normally a 400 *errs.HTTPError carrying field errors.
type Binder[Req any] func(c echo.Context) (Req, error)

// HandlerFunc represents a typed endpoint function that:
//
// - receives a validated request payload (Req)
// - returns a response (Res) or an error
type HandlerFunc[Req any, Res any] func(c echo.Context, req Req) (Res, error)

// NoInput is a Binder for endpoints that read nothing from the request.
func NoInput(c echo.Context) (struct{}, error) {
	return struct{}{}, nil
}

// ResponseHandler defines how a successful handler result is written to the
// HTTP response, and how observability attributes are attached for it.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	GetOperation() string

	// AddAttributes attaches New Relic attributes based on response type and/or result.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes JSON responses with a given status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by tracing middleware (EnhanceTracing).
}

// BlobResponseHandler writes a raw body with a fixed content type, shown
// inline (no Content-Disposition).
//
// It expects the handler result to be a []byte.
type BlobResponseHandler struct {
	status      int
	contentType string
}

func (h BlobResponseHandler) Handle(c echo.Context, result interface{}) error {
	data, _ := result.([]byte)
	return c.Blob(h.status, h.contentType, data)
}

func (h BlobResponseHandler) GetOperation() string {
	return "handler_blob"
}

func (h BlobResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	txn.AddAttribute("response.content_type", h.contentType)
	if data, ok := result.([]byte); ok {
		txn.AddAttribute("response.size_bytes", len(data))
	}
}

// handleRequest is the shared execution pipeline for all handlers.
//
// It centralizes:
//
// - request binding + validation
// - structured logging (with request context)
// - New Relic tracing attributes and error reporting
// - timing (validation duration, handler duration, total duration)
// - response writing (json / blob)
func handleRequest[Req any](
	c echo.Context,
	bind Binder[Req],
	handler func(c echo.Context, req Req) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	method := c.Request().Method
	route := c.Path()

	// Set by the nrecho middleware; nil when New Relic is disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", method).
		Str("route", route).
		Logger()

	logger.Info().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	req, err := bind(c)
	validationDuration := time.Since(validationStart)

	if err != nil {
		// A client problem, not a server fault.
		logger.Debug().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}

		// The global error handler formats the response.
		return err
	}

	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Msg("request validation successful")

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())

		responseHandler.AddAttributes(txn, result)
	}

	logger.Info().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a handler with binding, validation, logging and tracing, and
// writes its result as JSON.
//
// Usage:
//
//	r.GET("/health", handler.Handle(h, handler.NoInput, h.CheckHealth, http.StatusOK))
func Handle[Req any, Res any](
	h Handler,
	bind Binder[Req],
	handler HandlerFunc[Req, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, bind, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, JSONResponseHandler{status: status})
	}
}

// HandleBlob wraps a handler that returns raw bytes into the unified pipeline
// and writes them with contentType.
func HandleBlob[Req any](
	h Handler,
	bind Binder[Req],
	handler HandlerFunc[Req, []byte],
	status int,
	contentType string,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest(c, bind, func(c echo.Context, req Req) (interface{}, error) {
			return handler(c, req)
		}, BlobResponseHandler{
			status:      status,
			contentType: contentType,
		})
	}
}
