package api

import (
	"net/http"
	"path"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/webshop/storefront-api/internal/api/handler"
	"github.com/webshop/storefront-api/internal/api/middleware"
	"github.com/webshop/storefront-api/internal/core/domain"
	"github.com/webshop/storefront-api/internal/core/ports"
)

const (
	apiPrefix       = "/api"
	corsAllowHeader = "Content-Type,Accept"
	corsMaxAge      = "86400"
)

var userPath = regexp.MustCompile(`^(/api)?/users/([0-9a-z]{8,24})$`)

// StaticResponder serves files for GET requests outside the API prefix.
type StaticResponder interface {
	Serve(c echo.Context) error
}

// Dispatcher routes every non-operational request. The order of checks is
// fixed: static files, target user lookup, table lookup, OPTIONS, method,
// Accept, then authentication and role (inside the wrapped handler).
type Dispatcher struct {
	table  resourceTable
	users  ports.UserService
	static StaticResponder
}

func newDispatcher(table resourceTable, users ports.UserService, static StaticResponder) *Dispatcher {
	return &Dispatcher{table: table, users: users, static: static}
}

// Handle is registered as echo's catch-all route.
func (d *Dispatcher) Handle(c echo.Context) error {
	req := c.Request()
	p := path.Clean("/" + req.URL.Path)

	if req.Method == http.MethodGet && !isAPIPath(p) {
		if d.static == nil {
			return echo.ErrNotFound
		}
		return d.static.Serve(c)
	}

	res, err := d.resolve(c, p)
	if err != nil {
		return err
	}

	if req.Method == http.MethodOptions {
		h := c.Response().Header()
		h.Set(echo.HeaderAccessControlAllowMethods, res.allow)
		h.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeader)
		h.Set(echo.HeaderAccessControlMaxAge, corsMaxAge)
		h.Set(echo.HeaderAccessControlExposeHeaders, corsAllowHeader)
		return c.NoContent(http.StatusNoContent)
	}

	next, ok := res.handler(req.Method)
	if !ok {
		c.Response().Header().Set(echo.HeaderAllow, res.allow)
		return echo.ErrMethodNotAllowed
	}

	if res.acceptJSON && !middleware.AcceptsJSON(req) {
		return domain.ErrNotAcceptable
	}

	return next(c)
}

// resolve finds the resource addressed by p. For /users/{id} the target user
// is loaded first, so an unknown id is a 404 whatever the caller's credentials.
func (d *Dispatcher) resolve(c echo.Context, p string) (*resource, error) {
	if m := userPath.FindStringSubmatch(p); m != nil {
		target, err := d.users.Get(c.Request().Context(), m[2])
		if err != nil {
			return nil, err
		}
		handler.SetTargetUser(c, target)
		return d.table.user, nil
	}

	if isAPIPath(p) {
		p = strings.TrimPrefix(p, apiPrefix)
	}
	res, ok := d.table.byPath[p]
	if !ok {
		return nil, echo.ErrNotFound
	}
	return res, nil
}

func isAPIPath(p string) bool {
	return p == apiPrefix || strings.HasPrefix(p, apiPrefix+"/")
}
