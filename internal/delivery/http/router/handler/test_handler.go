package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"stundenplan/internal/delivery/http/response"
)

// TestHandler handles the index and echo endpoints used by frontends for
// connectivity and token checks.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// Index answers with an empty body. The explicit CORS headers are kept for
// older frontends that probe this endpoint before any real request.
func (h *TestHandler) Index(c echo.Context) error {
	header := c.Response().Header()
	header.Set(echo.HeaderAccessControlAllowOrigin, "*")
	header.Set(echo.HeaderAccessControlAllowHeaders, "origin, content-type, accept, authorization")
	header.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS, HEAD")

	return response.Text(c, http.StatusOK, "")
}

// Echo mirrors the message query parameter back as plain text.
func (h *TestHandler) Echo(c echo.Context) error {
	message := c.QueryParam("message")
	if message == "" {
		message = "No message!"
	}

	return response.Text(c, http.StatusOK, message)
}

// EchoAuth behaves like Echo but sits behind the token gate, which makes it
// a cheap way for clients to check whether their token is still valid. The
// message comes back unchanged so callers can compare the round-trip.
func (h *TestHandler) EchoAuth(c echo.Context) error {
	message := c.QueryParam("message")
	if message == "" {
		message = "No message!"
	}

	return response.Text(c, http.StatusOK, message)
}
