package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/webshop/storefront-api/internal/api/handler"
	"github.com/webshop/storefront-api/internal/api/middleware"
	"github.com/webshop/storefront-api/internal/core/domain"
	"github.com/webshop/storefront-api/internal/core/ports"
)

// route binds one HTTP method of a resource to its handler.
type route struct {
	method  string
	handler echo.HandlerFunc
}

// resource is one entry of the dispatch table. A resource with roles requires
// Basic authentication and one of those roles; acceptJSON resources answer 406
// to clients that cannot take a JSON response.
type resource struct {
	routes     []route
	roles      []domain.Role
	acceptJSON bool

	allow string
}

func newResource(roles []domain.Role, acceptJSON bool, routes ...route) *resource {
	methods := make([]string, 0, len(routes))
	for _, r := range routes {
		methods = append(methods, r.method)
	}
	return &resource{
		routes:     routes,
		roles:      roles,
		acceptJSON: acceptJSON,
		allow:      strings.Join(methods, ","),
	}
}

func (r *resource) handler(method string) (echo.HandlerFunc, bool) {
	for _, rt := range r.routes {
		if rt.method == method {
			return rt.handler, true
		}
	}
	return nil, false
}

// protect wraps every route with authentication and the role check. Public
// resources are left untouched.
func (r *resource) protect(authenticator ports.AuthService) *resource {
	if len(r.roles) == 0 {
		return r
	}
	auth := middleware.Auth(authenticator)
	rbac := middleware.RBAC(r.roles...)
	for i := range r.routes {
		r.routes[i].handler = auth(rbac(r.routes[i].handler))
	}
	return r
}

// resourceTable holds the resources addressed by fixed paths plus the
// single-user resource matched by pattern.
type resourceTable struct {
	byPath map[string]*resource
	user   *resource
}

func newResourceTable(users *handler.UserHandler, products *handler.ProductHandler, authenticator ports.AuthService) resourceTable {
	admin := []domain.Role{domain.RoleAdmin}
	anyone := []domain.Role{domain.RoleAdmin, domain.RoleCustomer}

	register := newResource(nil, true,
		route{http.MethodPost, users.Register},
	)
	list := newResource(admin, true,
		route{http.MethodGet, users.List},
	).protect(authenticator)
	catalog := newResource(anyone, true,
		route{http.MethodGet, products.List},
	).protect(authenticator)
	single := newResource(admin, false,
		route{http.MethodGet, users.Get},
		route{http.MethodPut, users.UpdateRole},
		route{http.MethodDelete, users.Delete},
	).protect(authenticator)

	return resourceTable{
		byPath: map[string]*resource{
			"/register": register,
			"/users":    list,
			"/products": catalog,
		},
		user: single,
	}
}
