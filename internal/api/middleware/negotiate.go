package middleware

import (
	"mime"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AcceptsJSON reports whether the client accepts a JSON response: the Accept
// header is absent, or it mentions application/json or */*.
func AcceptsJSON(r *http.Request) bool {
	accept := r.Header.Get(echo.HeaderAccept)
	if strings.TrimSpace(accept) == "" {
		return true
	}
	return strings.Contains(accept, echo.MIMEApplicationJSON) || strings.Contains(accept, "*/*")
}

// IsJSON reports whether the request body is declared as application/json.
// Media type parameters such as charset are ignored.
func IsJSON(r *http.Request) bool {
	ct := r.Header.Get(echo.HeaderContentType)
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == echo.MIMEApplicationJSON
}
