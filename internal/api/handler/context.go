package handler

import "github.com/labstack/echo/v4"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// sessionIdentifier returns the login handle the Auth middleware stored for
// this request, or "" on unauthenticated routes.
func sessionIdentifier(c echo.Context) string {
	identifier, _ := c.Get("identifier").(string)
	return identifier
}
