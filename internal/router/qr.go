package router

import (
	"net/http"

	"github.com/deppfellow/qrgen/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerQRRoutes registers the two QR entry points.
//
// GET answers 200 (a representation retrieved), POST answers 201 (a
// representation created); nothing is stored either way.
func registerQRRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/qr", handler.HandleBlob(h.QR.Handler, handler.BindQuery, h.QR.Render, http.StatusOK, handler.MIMEImageSVG))
	r.POST("/qr", handler.HandleBlob(h.QR.Handler, handler.BindJSON, h.QR.Render, http.StatusCreated, handler.MIMEImageSVG))
}
